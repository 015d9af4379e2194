package resolver

import (
	"testing"

	"github.com/arthur-debert/assetsel/pkg/criteria"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/patterns"
	"github.com/arthur-debert/assetsel/pkg/properties"
	"github.com/arthur-debert/assetsel/pkg/runtimegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(path string, props map[string]properties.Value) patterns.ContentItem {
	return patterns.ContentItem{Path: path, Properties: props}
}

func TestReduceNearest_TieKeepsEarliestGroup(t *testing.T) {
	graph := runtimegraph.New(
		runtimegraph.Description{RID: "win-x64", Imports: []string{"win"}},
		runtimegraph.Description{RID: "win"},
	)
	reg, err := properties.NewRegistry(
		properties.New(properties.RuntimeIdentifier, properties.KindRuntime, properties.WithRuntimeGraph(graph)),
	)
	require.NoError(t, err)

	c, err := criteria.NewBuilder(reg).
		Add(criteria.Set(properties.RuntimeIdentifier, properties.RuntimeValue("win-x64"))).
		Build()
	require.NoError(t, err)

	items := []patterns.ContentItem{
		item("a/osx", map[string]properties.Value{"rid": properties.RuntimeValue("osx")}),
		item("b/linux", map[string]properties.Value{"rid": properties.RuntimeValue("linux")}),
		item("c/osx", map[string]properties.Value{"rid": properties.RuntimeValue("osx")}),
	}

	got := reduceNearest(c.Entries[0], items)
	require.Len(t, got, 2)
	assert.Equal(t, "a/osx", got[0].Path)
	assert.Equal(t, "c/osx", got[1].Path)
}

func TestReduceNearest_NothingToRank(t *testing.T) {
	reg, err := properties.NewRegistry(
		properties.New(properties.TargetFramework, properties.KindFramework),
		properties.New(properties.Locale, properties.KindLocale),
	)
	require.NoError(t, err)

	c, err := criteria.NewBuilder(reg).
		Add(criteria.Set(properties.Locale, properties.LocaleValue("fr")), criteria.Unset(properties.TargetFramework)).
		Build()
	require.NoError(t, err)

	items := []patterns.ContentItem{
		item("x", map[string]properties.Value{"locale": properties.LocaleValue("fr")}),
		item("y", map[string]properties.Value{"locale": properties.LocaleValue("fr")}),
	}
	assert.Equal(t, items, reduceNearest(c.Entries[0], items))
}

func TestReduceNearest_CanonicalFrameworkNames(t *testing.T) {
	reg, err := properties.NewRegistry(properties.New(properties.TargetFramework, properties.KindFramework))
	require.NoError(t, err)

	c, err := criteria.NewBuilder(reg).
		Add(criteria.Set(properties.TargetFramework, properties.FrameworkValue(framework.Parse("net6.0")))).
		Build()
	require.NoError(t, err)

	tfm := func(s string) map[string]properties.Value {
		return map[string]properties.Value{"tfm": properties.FrameworkValue(framework.Parse(s))}
	}
	items := []patterns.ContentItem{
		item("lib/net5.0/A.dll", tfm("net5.0")),
		item("lib/netcoreapp5.0/B.dll", tfm("netcoreapp5.0")),
		item("lib/netstandard2.1/C.dll", tfm("netstandard2.1")),
	}

	got := reduceNearest(c.Entries[0], items)
	require.Len(t, got, 2)
	assert.Equal(t, "lib/net5.0/A.dll", got[0].Path)
	assert.Equal(t, "lib/netcoreapp5.0/B.dll", got[1].Path)
}

func TestLocaleChain(t *testing.T) {
	assert.Equal(t, []string{"fr-FR", "fr"}, localeChain("fr-FR"))
	assert.Equal(t, []string{"de"}, localeChain("de"))
	assert.Equal(t, []string{"not a locale!"}, localeChain("not a locale!"))
}
