package resolver

import (
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/patterns"
)

// Context is the target a resolution is performed for
type Context struct {
	Framework         framework.Framework
	RuntimeIdentifier string
	Locale            string
}

// Group is the resolved assets of one category
type Group struct {
	Category string
	// Level is the index of the criteria entry that produced the group,
	// or -1 when the group is empty
	Level    int
	Criteria string
	Items    []patterns.ContentItem
}

// IsEmpty reports whether the group has no items
func (g Group) IsEmpty() bool {
	return len(g.Items) == 0
}

// Paths returns the item paths in listing order, nil for an empty group
func (g Group) Paths() []string {
	var paths []string
	for _, item := range g.Items {
		paths = append(paths, item.Path)
	}
	return paths
}

// Result is the outcome of Resolve, one group per requested category in
// request order
type Result struct {
	Context Context
	Groups  []Group
}

// Group returns the group of a category
func (r Result) Group(category string) (Group, bool) {
	for _, g := range r.Groups {
		if g.Category == category {
			return g, true
		}
	}
	return Group{}, false
}

// Count returns the number of resolved items across all groups
func (r Result) Count() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Items)
	}
	return n
}
