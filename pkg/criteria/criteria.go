package criteria

import (
	"strings"

	"github.com/arthur-debert/assetsel/pkg/properties"
)

// Binding ties a property to a desired value. A nil Value means unset.
type Binding struct {
	Property *properties.Property
	Value    *properties.Value
}

// IsSet reports whether the binding carries a value
func (b Binding) IsSet() bool {
	return b.Value != nil
}

// String renders "name=value" or "name=<unset>"
func (b Binding) String() string {
	if b.Value == nil {
		return b.Property.Name() + "=<unset>"
	}
	return b.Property.Name() + "=" + b.Value.String()
}

// Entry is one fallback level
type Entry struct {
	Bindings []Binding
}

// Get returns the binding for a property name
func (e Entry) Get(name string) (Binding, bool) {
	for _, b := range e.Bindings {
		if b.Property.Name() == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Satisfies reports whether a set of extracted properties meets every
// binding of the entry. Properties the entry does not mention are ignored.
func (e Entry) Satisfies(props map[string]properties.Value) bool {
	for _, b := range e.Bindings {
		v, has := props[b.Property.Name()]
		if b.Value == nil {
			if has {
				return false
			}
			continue
		}
		if !has || !b.Property.IsCompatible(*b.Value, v) {
			return false
		}
	}
	return true
}

func (e Entry) String() string {
	parts := make([]string, 0, len(e.Bindings))
	for _, b := range e.Bindings {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}

// Criteria is an ordered list of entries, most specific first
type Criteria struct {
	Entries []Entry
}

// Len returns the number of fallback levels
func (c Criteria) Len() int {
	return len(c.Entries)
}
