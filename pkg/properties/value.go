package properties

import (
	"fmt"

	"github.com/arthur-debert/assetsel/pkg/framework"
)

// Kind is the closed set of property kinds
type Kind int

const (
	// KindText is free text, optionally restricted by a token filter
	KindText Kind = iota
	// KindFramework is a target framework
	KindFramework
	// KindRuntime is a runtime identifier
	KindRuntime
	// KindLocale is a culture name such as "fr" or "pt-BR"
	KindLocale
	// KindFile is a file name restricted to a set of extensions
	KindFile
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFramework:
		return "framework"
	case KindRuntime:
		return "runtime"
	case KindLocale:
		return "locale"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged union of property values. The zero Value is invalid.
type Value struct {
	kind      Kind
	raw       string
	text      string
	framework framework.Framework
	valid     bool
}

// TextValue creates a free-text value
func TextValue(s string) Value {
	return Value{kind: KindText, raw: s, text: s, valid: true}
}

// RuntimeValue creates a runtime identifier value
func RuntimeValue(rid string) Value {
	return Value{kind: KindRuntime, raw: rid, text: rid, valid: true}
}

// LocaleValue creates a locale value
func LocaleValue(locale string) Value {
	return Value{kind: KindLocale, raw: locale, text: locale, valid: true}
}

// FileValue creates a file name value
func FileValue(name string) Value {
	return Value{kind: KindFile, raw: name, text: name, valid: true}
}

// FrameworkValue creates a framework value whose raw token is the
// framework's short folder name
func FrameworkValue(fw framework.Framework) Value {
	return Value{kind: KindFramework, raw: fw.String(), framework: fw, valid: true}
}

// withRaw returns a copy of v that remembers the token it was parsed from
func (v Value) withRaw(raw string) Value {
	v.raw = raw
	return v
}

// Kind returns the value kind
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds a value
func (v Value) IsValid() bool {
	return v.valid
}

// Raw returns the token the value was parsed from
func (v Value) Raw() string {
	return v.raw
}

// Framework returns the framework held by a framework value
func (v Value) Framework() (framework.Framework, bool) {
	if !v.valid || v.kind != KindFramework {
		return framework.Framework{}, false
	}
	return v.framework, true
}

// String renders the value: short folder name for frameworks, the text
// otherwise.
func (v Value) String() string {
	if !v.valid {
		return "<none>"
	}
	if v.kind == KindFramework {
		return v.framework.String()
	}
	return v.text
}
