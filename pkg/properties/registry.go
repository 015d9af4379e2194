package properties

import (
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/registry"
)

// Registry holds the properties known to a convention set
type Registry struct {
	items registry.Registry[*Property]
}

// NewRegistry creates a registry holding props
func NewRegistry(props ...*Property) (*Registry, error) {
	r := &Registry{items: registry.New[*Property]()}
	for _, p := range props {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a property. Names must be unique.
func (r *Registry) Register(p *Property) error {
	if p == nil {
		return errors.New(errors.ErrInvalidInput, "property cannot be nil")
	}
	return r.items.Register(p.Name(), p)
}

// Get returns the named property or an ErrUnknownProperty error
func (r *Registry) Get(name string) (*Property, error) {
	p, err := r.items.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnknownProperty, "property '%s' is not registered", name).
			WithDetail("property", name)
	}
	return p, nil
}

// Has reports whether the named property is registered
func (r *Registry) Has(name string) bool {
	return r.items.Has(name)
}

// Names returns the registered property names, sorted
func (r *Registry) Names() []string {
	return r.items.List()
}

// All returns the properties in registration order
func (r *Registry) All() []*Property {
	return r.items.Ordered()
}
