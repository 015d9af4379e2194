package output

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/assetsel/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects term or text from the output
	FormatAuto Format = iota
	// FormatTerminal renders styled text
	FormatTerminal
	// FormatText renders plain text
	FormatText
	// FormatJSON renders JSON
	FormatJSON
	// FormatXML renders XML
	FormatXML
	// FormatTOML renders TOML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrOutputFormat, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// IsStructured reports whether the format is machine readable
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatXML || f == FormatTOML
}

// IsStyled reports whether the format renders with terminal styling
func (f Format) IsStyled() bool {
	return f == FormatTerminal
}
