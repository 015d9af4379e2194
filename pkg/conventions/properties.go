package conventions

import (
	"unicode"

	"github.com/arthur-debert/assetsel/pkg/cache"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

func isCodeLanguage(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func newProperties(graph properties.RuntimeGraph, frameworks cache.Cache[framework.Framework]) (*properties.Registry, error) {
	ridOpts := []properties.Option{}
	if graph != nil {
		ridOpts = append(ridOpts, properties.WithRuntimeGraph(graph))
	}
	tfmOpts := []properties.Option{}
	if frameworks != nil {
		tfmOpts = append(tfmOpts, properties.WithFrameworkCache(frameworks))
	}

	return properties.NewRegistry(
		properties.New(properties.AnyValue, properties.KindText),
		properties.New(properties.ManagedAssembly, properties.KindFile,
			properties.WithExtensions(".dll", ".winmd", ".exe")),
		properties.New(properties.Locale, properties.KindLocale),
		properties.New(properties.MSBuild, properties.KindFile,
			properties.WithExtensions(".targets", ".props")),
		properties.New(properties.SatelliteAssembly, properties.KindFile,
			properties.WithExtensions(".resources.dll")),
		properties.New(properties.CodeLanguage, properties.KindText,
			properties.WithTokenFilter(isCodeLanguage)),
		properties.New(properties.RuntimeIdentifier, properties.KindRuntime, ridOpts...),
		properties.New(properties.TargetFramework, properties.KindFramework, tfmOpts...),
	)
}

var (
	// dotnetAnyTable reads a literal "any" framework folder as dotnet
	dotnetAnyTable = properties.NewTable(properties.TableEntry{
		Property: properties.TargetFramework,
		Token:    properties.AnyValue,
		Value:    properties.FrameworkValue(framework.DotNet),
	})

	// anyTable reads a literal "any" framework folder as the any marker
	anyTable = properties.NewTable(properties.TableEntry{
		Property: properties.TargetFramework,
		Token:    properties.AnyValue,
		Value:    properties.FrameworkValue(framework.Any),
	})
)

// netFrameworkDefaults places root lib files on .NETFramework with no
// version
func netFrameworkDefaults() map[string]properties.Value {
	return map[string]properties.Value{
		properties.TargetFramework: properties.FrameworkValue(framework.New(framework.NetFramework, framework.EmptyVersion)),
	}
}

func anyFrameworkDefaults() map[string]properties.Value {
	return map[string]properties.Value{
		properties.TargetFramework: properties.FrameworkValue(framework.Any),
	}
}
