package resolver

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/assetsel/pkg/conventions"
	"github.com/arthur-debert/assetsel/pkg/criteria"
	"github.com/arthur-debert/assetsel/pkg/logging"
	"github.com/arthur-debert/assetsel/pkg/patterns"
)

// Resolver resolves asset categories of a convention set
type Resolver struct {
	conventions *conventions.Conventions
}

// New creates a resolver for conventions
func New(c *conventions.Conventions) *Resolver {
	return &Resolver{conventions: c}
}

// Conventions returns the convention set in use
func (r *Resolver) Conventions() *conventions.Conventions {
	return r.conventions
}

// ResolveSet resolves one pattern set against criteria. The first level
// with a presence match is enumerated and reduced to its nearest group.
func (r *Resolver) ResolveSet(set *patterns.Set, c criteria.Criteria, files []string) Group {
	return resolveSet(logging.GetLogger("resolver"), set, c, files)
}

func resolveSet(logger zerolog.Logger, set *patterns.Set, c criteria.Criteria, files []string) Group {
	for level, entry := range c.Entries {
		probe, ok := set.Probe(entry, files)
		if !ok {
			continue
		}
		logger.Trace().
			Str("category", set.Name()).
			Str("file", probe.Path).
			Str("pattern", probe.Pattern).
			Str("criteria", entry.String()).
			Msg("Presence match")

		items := set.Enumerate(entry, files)
		items = reduceNearest(entry, items)
		logger.Debug().
			Str("category", set.Name()).
			Int("level", level).
			Str("criteria", entry.String()).
			Int("items", len(items)).
			Msg("Category resolved")

		group := Group{Category: set.Name(), Level: level, Criteria: entry.String(), Items: items}
		if len(items) == 0 {
			group.Level = -1
		}
		return group
	}

	logger.Debug().Str("category", set.Name()).Msg("No assets for category")
	return Group{Category: set.Name(), Level: -1}
}

// Resolve resolves the named categories, or every category when none is
// named. Criteria are built and category names checked before any file is
// examined.
func (r *Resolver) Resolve(ctx Context, files []string, categories ...string) (Result, error) {
	logger := logging.GetLogger("resolver")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	factory := r.conventions.Criteria()
	withRuntime, err := factory.ForFrameworkAndRuntime(ctx.Framework, ctx.RuntimeIdentifier)
	if err != nil {
		return Result{}, err
	}
	frameworkOnly, err := factory.ForFramework(ctx.Framework)
	if err != nil {
		return Result{}, err
	}

	selected := r.conventions.Categories()
	if len(categories) > 0 {
		selected = make([]*conventions.Category, 0, len(categories))
		for _, name := range categories {
			category, err := r.conventions.Category(name)
			if err != nil {
				return Result{}, err
			}
			selected = append(selected, category)
		}
	}

	logger.Debug().
		Str("framework", ctx.Framework.String()).
		Str("runtime", ctx.RuntimeIdentifier).
		Str("locale", ctx.Locale).
		Int("files", len(files)).
		Int("categories", len(selected)).
		Msg("Resolving assets")

	result := Result{Context: ctx, Groups: make([]Group, 0, len(selected))}
	for _, category := range selected {
		c := frameworkOnly
		if category.RuntimeSpecific {
			c = withRuntime
		}

		group := resolveSet(logger, category.Set, c, files)
		if category.LocaleSpecific && ctx.Locale != "" && !group.IsEmpty() {
			group.Items = filterLocale(group.Items, ctx.Locale)
			if group.IsEmpty() {
				group.Level = -1
			}
		}
		result.Groups = append(result.Groups, group)
	}
	return result, nil
}
