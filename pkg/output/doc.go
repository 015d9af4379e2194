// Package output renders resolution results.
//
// Formats:
//
//	term  styled text for terminals (lipgloss, adaptive colors)
//	text  plain text
//	json  indented JSON
//	xml   XML document
//	toml  TOML document
//
// The auto format picks term or text from the output file, honoring
// NO_COLOR. Category documentation is produced as markdown and rendered
// with glamour on terminals.
package output
