package conventions

import (
	"github.com/arthur-debert/assetsel/pkg/patterns"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

// Category names
const (
	AnyTargetedFile            = "any"
	RuntimeAssemblies          = "runtime"
	CompileRefAssemblies       = "compile-ref"
	CompileLibAssemblies       = "compile-lib"
	NativeLibraries            = "native"
	ResourceAssemblies         = "resources"
	MSBuildFiles               = "build"
	MSBuildMultiTargetingFiles = "build-multitargeting"
	ContentFiles               = "content"
	ToolsAssemblies            = "tools"
	EmbedAssemblies            = "embed"
	MSBuildTransitiveFiles     = "build-transitive"
)

// Category is one kind of asset a package can carry
type Category struct {
	Name        string
	Description string
	Set         *patterns.Set

	// RuntimeSpecific categories are resolved with runtime criteria
	RuntimeSpecific bool
	// LocaleSpecific categories are filtered by the context locale
	LocaleSpecific bool
}

type template struct {
	pattern  string
	table    *properties.Table
	defaults map[string]properties.Value
}

type categorySpec struct {
	name        string
	description string
	runtime     bool
	locale      bool
	presence    []template
	enumeration []template
}

func categorySpecs() []categorySpec {
	netDefaults := netFrameworkDefaults()
	anyDefaults := anyFrameworkDefaults()

	return []categorySpec{
		{
			name:        AnyTargetedFile,
			description: "Any file placed under a framework folder, with or without a runtime.",
			runtime:     true,
			presence: []template{
				{"{any}/{tfm}/{any?}", dotnetAnyTable, nil},
				{"runtimes/{rid}/{any}/{tfm}/{any?}", dotnetAnyTable, nil},
			},
			enumeration: []template{
				{"{any}/{tfm}/{any?}", dotnetAnyTable, nil},
				{"runtimes/{rid}/{any}/{tfm}/{any?}", dotnetAnyTable, nil},
			},
		},
		{
			name:        RuntimeAssemblies,
			description: "Assemblies loaded at run time.",
			runtime:     true,
			presence: []template{
				{"runtimes/{rid}/lib/{tfm}/{any?}", dotnetAnyTable, nil},
				{"lib/{tfm}/{any?}", dotnetAnyTable, nil},
				{"lib/{assembly?}", dotnetAnyTable, netDefaults},
			},
			enumeration: []template{
				{"runtimes/{rid}/lib/{tfm}/{assembly}", dotnetAnyTable, nil},
				{"lib/{tfm}/{assembly}", dotnetAnyTable, nil},
				{"lib/{assembly}", dotnetAnyTable, netDefaults},
			},
		},
		{
			name:        CompileRefAssemblies,
			description: "Reference assemblies used at compile time.",
			presence: []template{
				{"ref/{tfm}/{any?}", dotnetAnyTable, nil},
			},
			enumeration: []template{
				{"ref/{tfm}/{assembly}", dotnetAnyTable, nil},
			},
		},
		{
			name:        CompileLibAssemblies,
			description: "Implementation assemblies used at compile time when no reference assemblies exist.",
			presence: []template{
				{"lib/{tfm}/{any?}", dotnetAnyTable, nil},
				{"lib/{assembly?}", dotnetAnyTable, netDefaults},
			},
			enumeration: []template{
				{"lib/{tfm}/{assembly}", dotnetAnyTable, nil},
				{"lib/{assembly}", dotnetAnyTable, netDefaults},
			},
		},
		{
			name:        NativeLibraries,
			description: "Runtime-specific native libraries.",
			runtime:     true,
			presence: []template{
				{"runtimes/{rid}/nativeassets/{tfm}/{any?}", dotnetAnyTable, nil},
				{"runtimes/{rid}/native/{any?}", nil, anyDefaults},
			},
			enumeration: []template{
				{"runtimes/{rid}/nativeassets/{tfm}/{any}", dotnetAnyTable, nil},
				{"runtimes/{rid}/native/{any}", nil, anyDefaults},
			},
		},
		{
			name:        ResourceAssemblies,
			description: "Satellite resource assemblies, one folder per locale.",
			runtime:     true,
			locale:      true,
			presence: []template{
				{"runtimes/{rid}/lib/{tfm}/{locale?}/{any?}", dotnetAnyTable, nil},
				{"lib/{tfm}/{locale?}/{any?}", dotnetAnyTable, nil},
			},
			enumeration: []template{
				{"runtimes/{rid}/lib/{tfm}/{locale}/{satelliteAssembly}", dotnetAnyTable, nil},
				{"lib/{tfm}/{locale}/{satelliteAssembly}", dotnetAnyTable, nil},
			},
		},
		{
			name:        MSBuildFiles,
			description: "MSBuild targets and props imported by the consuming project.",
			presence: []template{
				{"build/{tfm}/{msbuild?}", dotnetAnyTable, nil},
				{"build/{msbuild?}", nil, anyDefaults},
			},
			enumeration: []template{
				{"build/{tfm}/{msbuild}", dotnetAnyTable, nil},
				{"build/{msbuild}", nil, anyDefaults},
			},
		},
		{
			name:        MSBuildMultiTargetingFiles,
			description: "MSBuild files imported by the outer build of multi-targeting projects.",
			presence: []template{
				{"buildMultiTargeting/{msbuild?}", nil, anyDefaults},
				{"buildCrossTargeting/{msbuild?}", nil, anyDefaults},
			},
			enumeration: []template{
				{"buildMultiTargeting/{msbuild}", nil, anyDefaults},
				{"buildCrossTargeting/{msbuild}", nil, anyDefaults},
			},
		},
		{
			name:        ContentFiles,
			description: "Content files, per code language and framework.",
			presence: []template{
				{"contentFiles/{codeLanguage}/{tfm}/{any?}", nil, nil},
			},
			enumeration: []template{
				{"contentFiles/{codeLanguage}/{tfm}/{any?}", nil, nil},
			},
		},
		{
			name:        ToolsAssemblies,
			description: "Tool assemblies, per framework and runtime.",
			runtime:     true,
			presence: []template{
				{"tools/{tfm}/{rid}/{any?}", anyTable, nil},
			},
			enumeration: []template{
				{"tools/{tfm}/{rid}/{any?}", anyTable, nil},
			},
		},
		{
			name:        EmbedAssemblies,
			description: "Assemblies embedded into the consuming assembly.",
			presence: []template{
				{"embed/{tfm}/{any?}", dotnetAnyTable, nil},
			},
			enumeration: []template{
				{"embed/{tfm}/{assembly}", dotnetAnyTable, nil},
			},
		},
		{
			name:        MSBuildTransitiveFiles,
			description: "MSBuild files that flow to transitive consumers.",
			presence: []template{
				{"buildTransitive/{tfm}/{msbuild?}", dotnetAnyTable, nil},
				{"buildTransitive/{msbuild?}", nil, anyDefaults},
			},
			enumeration: []template{
				{"buildTransitive/{tfm}/{msbuild}", dotnetAnyTable, nil},
				{"buildTransitive/{msbuild}", nil, anyDefaults},
			},
		},
	}
}

func compileAll(reg *properties.Registry, templates []template) ([]*patterns.Definition, error) {
	defs := make([]*patterns.Definition, 0, len(templates))
	for _, t := range templates {
		d, err := patterns.Compile(reg, t.pattern, t.table, t.defaults)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func (s categorySpec) build(reg *properties.Registry) (*Category, error) {
	presence, err := compileAll(reg, s.presence)
	if err != nil {
		return nil, err
	}
	enumeration, err := compileAll(reg, s.enumeration)
	if err != nil {
		return nil, err
	}
	return &Category{
		Name:            s.name,
		Description:     s.description,
		Set:             patterns.NewSet(s.name, presence, enumeration),
		RuntimeSpecific: s.runtime,
		LocaleSpecific:  s.locale,
	}, nil
}
