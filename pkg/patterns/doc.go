// Package patterns compiles path templates and matches package file paths
// against them.
//
// A template is a "/"-separated list of segments. A segment is literal
// text, a required capture "{name}" or an optional capture "{name?}".
// Optional captures form a trailing run and may be missing from a path.
// Each capture is parsed by the registered property of that name, so a
// match both recognizes a path and extracts typed properties from it:
//
//	lib/{tfm}/{assembly}       matches  lib/net6.0/Tool.dll
//	runtimes/{rid}/native/{any?}  matches  runtimes/win-x64/native/e_sqlite3.dll
//
// Sets group a looser presence list, used to probe whether a category has
// any asset for a criteria entry, with a stricter enumeration list that
// yields the concrete items.
package patterns
