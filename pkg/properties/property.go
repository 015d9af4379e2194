package properties

import (
	"strings"

	"github.com/arthur-debert/assetsel/pkg/cache"
	"github.com/arthur-debert/assetsel/pkg/framework"
)

// RuntimeGraph answers directed runtime compatibility questions: can a
// project running on criteria use assets built for available?
type RuntimeGraph interface {
	AreCompatible(criteria, available string) bool
}

// runtimeExpander is implemented by graphs that can list the import
// closure of a runtime, nearest first
type runtimeExpander interface {
	Expand(rid string) []string
}

// Property is a named, typed property. Behavior is selected by Kind.
type Property struct {
	name       string
	kind       Kind
	extensions []string
	filter     func(string) bool
	graph      RuntimeGraph
	frameworks cache.Cache[framework.Framework]
}

// Option configures a Property
type Option func(*Property)

// WithExtensions sets the accepted file extensions of a KindFile property.
// Matching is case-insensitive.
func WithExtensions(extensions ...string) Option {
	return func(p *Property) {
		p.extensions = append(p.extensions, extensions...)
	}
}

// WithTokenFilter restricts the tokens a KindText property accepts
func WithTokenFilter(filter func(string) bool) Option {
	return func(p *Property) {
		p.filter = filter
	}
}

// WithRuntimeGraph makes a KindRuntime property use graph compatibility
// instead of string equality. A nil graph keeps equality.
func WithRuntimeGraph(graph RuntimeGraph) Option {
	return func(p *Property) {
		p.graph = graph
	}
}

// WithFrameworkCache sets the parse cache of a KindFramework property
func WithFrameworkCache(c cache.Cache[framework.Framework]) Option {
	return func(p *Property) {
		p.frameworks = c
	}
}

// New creates a property. Framework properties without an explicit cache
// get a concurrent one.
func New(name string, kind Kind, opts ...Option) *Property {
	p := &Property{name: name, kind: kind}
	for _, opt := range opts {
		opt(p)
	}
	if p.kind == KindFramework && p.frameworks == nil {
		p.frameworks = cache.NewConcurrent[framework.Framework]()
	}
	return p
}

// Name returns the property name
func (p *Property) Name() string {
	return p.name
}

// Kind returns the property kind
func (p *Property) Kind() Kind {
	return p.kind
}

// Extensions returns the accepted extensions of a file property
func (p *Property) Extensions() []string {
	return append([]string(nil), p.extensions...)
}

// SupportsNearest reports whether CompareNearest can rank values of this
// property. Runtime identifiers are ranked only when the graph can
// expand import closures.
func (p *Property) SupportsNearest() bool {
	switch p.kind {
	case KindFramework:
		return true
	case KindRuntime:
		_, ok := p.graph.(runtimeExpander)
		return ok
	}
	return false
}

// Parse converts a path segment into a value. The table is consulted
// first; a nil table is allowed. Empty tokens never parse.
func (p *Property) Parse(token string, table *Table) (Value, bool) {
	if token == "" {
		return Value{}, false
	}
	if v, ok := table.Lookup(p.name, token); ok {
		return v, true
	}

	switch p.kind {
	case KindFramework:
		fw := p.frameworks.GetOrCompute(token, func() framework.Framework {
			return framework.Parse(token)
		})
		return FrameworkValue(fw).withRaw(token), true

	case KindRuntime:
		return RuntimeValue(token), true

	case KindLocale:
		if len(token) == 2 || (len(token) >= 4 && token[2] == '-') {
			return LocaleValue(token), true
		}
		return Value{}, false

	case KindText:
		if p.filter != nil && !p.filter(token) {
			return Value{}, false
		}
		return TextValue(token), true

	case KindFile:
		if token == EmptyFolder || p.hasExtension(token) {
			return FileValue(token), true
		}
		return Value{}, false
	}
	return Value{}, false
}

func (p *Property) hasExtension(token string) bool {
	for _, ext := range p.extensions {
		if len(token) >= len(ext) && strings.EqualFold(token[len(token)-len(ext):], ext) {
			return true
		}
	}
	return false
}

// Equals reports whether two values of this property are equal
func (p *Property) Equals(a, b Value) bool {
	if !a.valid || !b.valid || a.kind != b.kind {
		return false
	}
	if a.kind == KindFramework {
		return a.framework.Equals(b.framework)
	}
	return a.text == b.text
}

// IsCompatible reports whether an available value satisfies a criteria
// value. Kinds without a compatibility relation fall back to Equals.
func (p *Property) IsCompatible(criteria, available Value) bool {
	if !criteria.valid || !available.valid || criteria.kind != p.kind || available.kind != p.kind {
		return false
	}

	switch p.kind {
	case KindFramework:
		return frameworkCompatible(criteria.framework, available.framework)
	case KindRuntime:
		if p.graph == nil {
			return p.Equals(criteria, available)
		}
		return p.graph.AreCompatible(criteria.text, available.text)
	}
	return p.Equals(criteria, available)
}

// frameworkCompatible applies the wildcard rules before delegating to the
// general framework relation:
//  1. both wildcards are compatible
//  2. an asset for the explicit "any" marker satisfies every criteria
//  3. otherwise a wildcard on only one side is incompatible
func frameworkCompatible(criteria, available framework.Framework) bool {
	switch {
	case criteria.IsAny() && available.IsAny():
		return true
	case available.Equals(framework.Any):
		return true
	case criteria.IsAny() || available.IsAny():
		return false
	}
	return framework.IsCompatible(criteria, available)
}

// CompareNearest returns -1 when a is nearer the reference, 1 when b is,
// and 0 when undecided or when the property has no notion of nearness.
// Runtimes are nearer the earlier they appear in the reference's import
// closure.
func (p *Property) CompareNearest(reference, a, b Value) int {
	switch p.kind {
	case KindFramework:
		ref, okRef := reference.Framework()
		fa, okA := a.Framework()
		fb, okB := b.Framework()
		if !okRef || !okA || !okB {
			return 0
		}
		return framework.CompareNearest(ref, fa, fb)

	case KindRuntime:
		expander, ok := p.graph.(runtimeExpander)
		if !ok || !reference.valid || !a.valid || !b.valid {
			return 0
		}
		return compareClosureIndex(expander.Expand(reference.text), a.text, b.text)
	}
	return 0
}

func compareClosureIndex(closure []string, a, b string) int {
	ia, ib := indexOf(closure, a), indexOf(closure, b)
	switch {
	case ia == ib:
		return 0
	case ia < 0:
		return 1
	case ib < 0:
		return -1
	case ia < ib:
		return -1
	}
	return 1
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
