package listing

import (
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Filter drops paths matching any of its exclusion globs. Globs use
// doublestar syntax, so "**/*.pdb" matches at any depth. A nil *Filter
// excludes nothing.
type Filter struct {
	excludes []string
}

// NewFilter validates the exclusion globs
func NewFilter(excludes ...string) (*Filter, error) {
	f := &Filter{}
	for _, pattern := range excludes {
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid exclude pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
		f.excludes = append(f.excludes, pattern)
	}
	return f, nil
}

// Excludes returns the exclusion globs
func (f *Filter) Excludes() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.excludes...)
}

// Excluded reports whether path matches an exclusion glob
func (f *Filter) Excluded(path string) bool {
	if f == nil {
		return false
	}
	for _, pattern := range f.excludes {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

// Apply returns the paths that are not excluded, in order
func (f *Filter) Apply(paths []string) []string {
	if f == nil || len(f.excludes) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !f.Excluded(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
