package resolver

import (
	"strings"

	"github.com/arthur-debert/assetsel/pkg/criteria"
	"github.com/arthur-debert/assetsel/pkg/patterns"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

type itemGroup struct {
	values []properties.Value
	items  []patterns.ContentItem
}

// reduceNearest groups items by the values of the entry's rankable
// bindings and keeps the nearest group. Bindings are compared in entry
// order. A group replaces the current best only when strictly nearer, so
// ties keep the group whose first item comes earliest in the listing.
func reduceNearest(entry criteria.Entry, items []patterns.ContentItem) []patterns.ContentItem {
	var ranked []criteria.Binding
	for _, b := range entry.Bindings {
		if b.IsSet() && b.Property.SupportsNearest() {
			ranked = append(ranked, b)
		}
	}
	if len(ranked) == 0 || len(items) < 2 {
		return items
	}

	var groups []*itemGroup
	index := make(map[string]*itemGroup)
	for _, item := range items {
		values := make([]properties.Value, len(ranked))
		keys := make([]string, len(ranked))
		for i, b := range ranked {
			values[i], _ = item.Get(b.Property.Name())
			keys[i] = values[i].String()
		}
		key := strings.Join(keys, "\x00")

		g, ok := index[key]
		if !ok {
			g = &itemGroup{values: values}
			index[key] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, item)
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if compareGroups(ranked, g, best) < 0 {
			best = g
		}
	}
	return best.items
}

func compareGroups(ranked []criteria.Binding, a, b *itemGroup) int {
	for i, binding := range ranked {
		if c := binding.Property.CompareNearest(*binding.Value, a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return 0
}
