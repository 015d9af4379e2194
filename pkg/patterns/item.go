package patterns

import (
	"sort"

	"github.com/arthur-debert/assetsel/pkg/properties"
)

// ContentItem is a file path with the properties extracted by the
// template that matched it
type ContentItem struct {
	Path       string
	Pattern    string
	Properties map[string]properties.Value
}

// Get returns the value of a property
func (c ContentItem) Get(name string) (properties.Value, bool) {
	v, ok := c.Properties[name]
	return v, ok
}

// PropertyNames returns the item's property names, sorted
func (c ContentItem) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
