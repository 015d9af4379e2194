package criteria

import (
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

// Factory builds the standard framework and runtime criteria
type Factory struct {
	registry *properties.Registry
}

// NewFactory creates a factory. The registry must define the framework
// and runtime identifier properties.
func NewFactory(registry *properties.Registry) (*Factory, error) {
	for _, name := range []string{properties.TargetFramework, properties.RuntimeIdentifier} {
		if _, err := registry.Get(name); err != nil {
			return nil, err
		}
	}
	return &Factory{registry: registry}, nil
}

// ForFrameworkAndRuntime returns up to two levels: framework and runtime
// when rid is non-empty, then framework only with the runtime unset.
// Fallback frameworks are rejected with ErrUnsupportedFrameworkKind.
func (f *Factory) ForFrameworkAndRuntime(fw framework.Framework, rid string) (Criteria, error) {
	if fw.IsFallback() {
		return Criteria{}, errors.Newf(errors.ErrUnsupportedFrameworkKind,
			"fallback framework '%s' cannot be used as selection criteria", fw).
			WithDetail("framework", fw.String())
	}

	value := properties.FrameworkValue(fw)
	b := NewBuilder(f.registry)
	if rid != "" {
		b.Add(
			Set(properties.TargetFramework, value),
			Set(properties.RuntimeIdentifier, properties.RuntimeValue(rid)),
		)
	}
	b.Add(
		Set(properties.TargetFramework, value),
		Unset(properties.RuntimeIdentifier),
	)
	return b.Build()
}

// ForFramework returns the single framework-only level
func (f *Factory) ForFramework(fw framework.Framework) (Criteria, error) {
	return f.ForFrameworkAndRuntime(fw, "")
}

// ForRuntime returns a single level binding only the runtime identifier
func (f *Factory) ForRuntime(rid string) (Criteria, error) {
	if rid == "" {
		return Criteria{}, errors.New(errors.ErrInvalidInput, "runtime identifier cannot be empty")
	}
	return NewBuilder(f.registry).
		Add(Set(properties.RuntimeIdentifier, properties.RuntimeValue(rid))).
		Build()
}
