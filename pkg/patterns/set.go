package patterns

import (
	"github.com/arthur-debert/assetsel/pkg/criteria"
)

// Set is the presence and enumeration template lists of one category.
// Both lists are tried in declaration order.
type Set struct {
	name        string
	presence    []*Definition
	enumeration []*Definition
}

// NewSet creates a pattern set
func NewSet(name string, presence, enumeration []*Definition) *Set {
	return &Set{
		name:        name,
		presence:    append([]*Definition(nil), presence...),
		enumeration: append([]*Definition(nil), enumeration...),
	}
}

// Name returns the set name
func (s *Set) Name() string {
	return s.name
}

// Presence returns the presence templates
func (s *Set) Presence() []*Definition {
	return append([]*Definition(nil), s.presence...)
}

// Enumeration returns the enumeration templates
func (s *Set) Enumeration() []*Definition {
	return append([]*Definition(nil), s.enumeration...)
}

// HasAny reports whether some file matches a presence template with
// properties that satisfy entry
func (s *Set) HasAny(entry criteria.Entry, files []string) bool {
	_, ok := s.Probe(entry, files)
	return ok
}

// Probe returns the first presence match satisfying entry, testing files
// in listing order and templates in declaration order
func (s *Set) Probe(entry criteria.Entry, files []string) (ContentItem, bool) {
	for _, file := range files {
		for _, def := range s.presence {
			item, ok := def.Match(file, ModeProbe)
			if ok && entry.Satisfies(item.Properties) {
				return item, true
			}
		}
	}
	return ContentItem{}, false
}

// Enumerate returns, in listing order, one item per file for the first
// enumeration template that matches it with properties satisfying entry.
func (s *Set) Enumerate(entry criteria.Entry, files []string) []ContentItem {
	var items []ContentItem
	for _, file := range files {
		for _, def := range s.enumeration {
			item, ok := def.Match(file, ModeEnumerate)
			if !ok || !entry.Satisfies(item.Properties) {
				continue
			}
			items = append(items, item)
			break
		}
	}
	return items
}
