package criteria

import (
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

// Assignment is one property assignment passed to Builder.Add
type Assignment struct {
	name  string
	value *properties.Value
}

// Set assigns a value to the named property
func Set(name string, value properties.Value) Assignment {
	return Assignment{name: name, value: &value}
}

// Unset requires the named property to be absent
func Unset(name string) Assignment {
	return Assignment{name: name}
}

// Builder accumulates entries. The first error is kept and returned by
// Build; later calls to Add are ignored.
type Builder struct {
	registry *properties.Registry
	entries  []Entry
	err      error
}

// NewBuilder creates a builder resolving names against registry
func NewBuilder(registry *properties.Registry) *Builder {
	return &Builder{registry: registry}
}

// Add appends one entry made of the given assignments, in order
func (b *Builder) Add(assignments ...Assignment) *Builder {
	if b.err != nil {
		return b
	}

	entry := Entry{Bindings: make([]Binding, 0, len(assignments))}
	for _, a := range assignments {
		prop, err := b.registry.Get(a.name)
		if err != nil {
			b.err = err
			return b
		}
		if a.value != nil && a.value.Kind() != prop.Kind() {
			b.err = errors.Newf(errors.ErrInvalidInput, "value for '%s' is a %s, want %s",
				a.name, a.value.Kind(), prop.Kind()).WithDetail("property", a.name)
			return b
		}
		entry.Bindings = append(entry.Bindings, Binding{Property: prop, Value: a.value})
	}
	b.entries = append(b.entries, entry)
	return b
}

// Build returns the criteria or the first error met while adding entries
func (b *Builder) Build() (Criteria, error) {
	if b.err != nil {
		return Criteria{}, b.err
	}
	return Criteria{Entries: append([]Entry(nil), b.entries...)}, nil
}
