package conventions

import (
	"github.com/arthur-debert/assetsel/pkg/cache"
	"github.com/arthur-debert/assetsel/pkg/criteria"
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/properties"
	"github.com/arthur-debert/assetsel/pkg/registry"
)

type options struct {
	graph      properties.RuntimeGraph
	frameworks cache.Cache[framework.Framework]
}

// Option configures New
type Option func(*options)

// WithRuntimeGraph makes runtime identifiers compatible through graph
// imports. Without a graph they must be equal.
func WithRuntimeGraph(graph properties.RuntimeGraph) Option {
	return func(o *options) {
		o.graph = graph
	}
}

// WithFrameworkCache sets the framework parse cache. The default is
// cache.NewConcurrent.
func WithFrameworkCache(c cache.Cache[framework.Framework]) Option {
	return func(o *options) {
		o.frameworks = c
	}
}

// Conventions is the managed-code convention set
type Conventions struct {
	properties *properties.Registry
	categories registry.Registry[*Category]
	criteria   *criteria.Factory
	hasGraph   bool
}

// New builds the convention set
func New(opts ...Option) (*Conventions, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	props, err := newProperties(o.graph, o.frameworks)
	if err != nil {
		return nil, err
	}
	factory, err := criteria.NewFactory(props)
	if err != nil {
		return nil, err
	}

	c := &Conventions{
		properties: props,
		categories: registry.New[*Category](),
		criteria:   factory,
		hasGraph:   o.graph != nil,
	}
	for _, spec := range categorySpecs() {
		category, err := spec.build(props)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to build category '%s'", spec.name)
		}
		if err := c.categories.Register(category.Name, category); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Properties returns the property registry
func (c *Conventions) Properties() *properties.Registry {
	return c.properties
}

// Criteria returns the criteria factory bound to the registry
func (c *Conventions) Criteria() *criteria.Factory {
	return c.criteria
}

// HasRuntimeGraph reports whether runtime identifiers use a graph
func (c *Conventions) HasRuntimeGraph() bool {
	return c.hasGraph
}

// Category returns a category by name
func (c *Conventions) Category(name string) (*Category, error) {
	category, err := c.categories.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrNotFound, "unknown asset category '%s'", name).
			WithDetail("category", name)
	}
	return category, nil
}

// Categories returns every category in declaration order
func (c *Conventions) Categories() []*Category {
	return c.categories.Ordered()
}

// CategoryNames returns the category names in declaration order
func (c *Conventions) CategoryNames() []string {
	categories := c.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return names
}
