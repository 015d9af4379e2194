package resolver

import (
	"strings"

	"github.com/arthur-debert/assetsel/pkg/patterns"
	"github.com/arthur-debert/assetsel/pkg/properties"
	"golang.org/x/text/language"
)

// localeChain returns the canonical tag of locale followed by its parent
// cultures, most specific first. The root is not included.
func localeChain(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return []string{locale}
	}
	var chain []string
	for !tag.IsRoot() {
		chain = append(chain, tag.String())
		tag = tag.Parent()
	}
	return chain
}

func canonicalLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// filterLocale keeps items whose locale is the context locale or one of
// its parents. Items without a locale are kept.
func filterLocale(items []patterns.ContentItem, locale string) []patterns.ContentItem {
	chain := localeChain(locale)
	var kept []patterns.ContentItem
	for _, item := range items {
		v, ok := item.Get(properties.Locale)
		if !ok || inChain(chain, canonicalLocale(v.String())) {
			kept = append(kept, item)
		}
	}
	return kept
}

func inChain(chain []string, locale string) bool {
	for _, c := range chain {
		if strings.EqualFold(c, locale) {
			return true
		}
	}
	return false
}
