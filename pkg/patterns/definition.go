package patterns

import (
	"sort"
	"strings"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

// Mode selects how strictly optional captures are treated
type Mode int

const (
	// ModeProbe lets trailing optional captures be absent
	ModeProbe Mode = iota
	// ModeEnumerate tolerates an absent optional capture only when the
	// definition declares a default for its property
	ModeEnumerate
)

type segment struct {
	literal  string
	property *properties.Property
	optional bool
}

func (s segment) isCapture() bool {
	return s.property != nil
}

// Definition is a compiled template
type Definition struct {
	template string
	segments []segment
	required int
	table    *properties.Table
	defaults map[string]properties.Value
	defNames []string
}

// Compile parses template against registry. table may be nil; defaults
// fill properties the path does not capture.
func Compile(registry *properties.Registry, template string, table *properties.Table, defaults map[string]properties.Value) (*Definition, error) {
	if template == "" {
		return nil, errors.New(errors.ErrInvalidPattern, "pattern cannot be empty")
	}

	d := &Definition{
		template: template,
		table:    table,
		defaults: make(map[string]properties.Value, len(defaults)),
	}

	seenOptional := false
	for _, raw := range strings.Split(template, "/") {
		seg, err := compileSegment(registry, template, raw)
		if err != nil {
			return nil, err
		}
		if seenOptional && !seg.optional {
			return nil, invalidPattern(template, "optional captures must be the last segments")
		}
		seenOptional = seg.optional
		if !seg.optional {
			d.required++
		}
		d.segments = append(d.segments, seg)
	}

	for name, value := range defaults {
		prop, err := registry.Get(name)
		if err != nil {
			return nil, unknownProperty(template, name)
		}
		if value.Kind() != prop.Kind() {
			return nil, errors.Newf(errors.ErrInvalidInput, "default for '%s' is a %s, want %s",
				name, value.Kind(), prop.Kind()).
				WithDetail("pattern", template).
				WithDetail("property", name)
		}
		d.defaults[name] = value
		d.defNames = append(d.defNames, name)
	}
	sort.Strings(d.defNames)

	return d, nil
}

func compileSegment(registry *properties.Registry, template, raw string) (segment, error) {
	if raw == "" {
		return segment{}, invalidPattern(template, "empty segment")
	}

	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		if strings.ContainsAny(raw, "{}") {
			return segment{}, invalidPattern(template, "unbalanced brace in "+raw)
		}
		return segment{literal: raw}, nil
	}

	name := raw[1 : len(raw)-1]
	optional := strings.HasSuffix(name, "?")
	name = strings.TrimSuffix(name, "?")
	if name == "" || strings.ContainsAny(name, "{}?") {
		return segment{}, invalidPattern(template, "malformed capture "+raw)
	}

	prop, err := registry.Get(name)
	if err != nil {
		return segment{}, unknownProperty(template, name)
	}
	return segment{property: prop, optional: optional}, nil
}

func invalidPattern(template, reason string) error {
	return errors.Newf(errors.ErrInvalidPattern, "invalid pattern %q: %s", template, reason).
		WithDetail("pattern", template)
}

func unknownProperty(template, name string) error {
	return errors.Newf(errors.ErrUnknownProperty, "pattern %q references unknown property '%s'", template, name).
		WithDetail("pattern", template).
		WithDetail("property", name)
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level convention tables.
func MustCompile(registry *properties.Registry, template string, table *properties.Table, defaults map[string]properties.Value) *Definition {
	d, err := Compile(registry, template, table, defaults)
	if err != nil {
		panic(err)
	}
	return d
}

// Template returns the source template
func (d *Definition) Template() string {
	return d.template
}

// Captures returns the captured property names in template order
func (d *Definition) Captures() []string {
	var names []string
	for _, s := range d.segments {
		if s.isCapture() {
			names = append(names, s.property.Name())
		}
	}
	return names
}

// Defaults returns a copy of the default values
func (d *Definition) Defaults() map[string]properties.Value {
	out := make(map[string]properties.Value, len(d.defaults))
	for k, v := range d.defaults {
		out[k] = v
	}
	return out
}

func (d *Definition) String() string {
	return d.template
}

// Match aligns path against the template. Literals compare exactly and
// every present capture must parse. A property captured twice keeps its
// last value. Mismatches are reported as false, never as errors.
func (d *Definition) Match(path string, mode Mode) (ContentItem, bool) {
	parts := strings.Split(path, "/")
	if len(parts) < d.required || len(parts) > len(d.segments) {
		return ContentItem{}, false
	}

	props := make(map[string]properties.Value, len(d.segments)+len(d.defaults))
	for i, seg := range d.segments {
		if i >= len(parts) {
			if mode == ModeEnumerate {
				if _, ok := d.defaults[seg.property.Name()]; !ok {
					return ContentItem{}, false
				}
			}
			continue
		}

		token := parts[i]
		if !seg.isCapture() {
			if token != seg.literal {
				return ContentItem{}, false
			}
			continue
		}

		value, ok := seg.property.Parse(token, d.table)
		if !ok {
			return ContentItem{}, false
		}
		props[seg.property.Name()] = value
	}

	for _, name := range d.defNames {
		if _, ok := props[name]; !ok {
			props[name] = d.defaults[name]
		}
	}

	return ContentItem{Path: path, Pattern: d.template, Properties: props}, true
}
