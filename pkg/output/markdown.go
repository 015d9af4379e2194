package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/assetsel/pkg/conventions"
	"github.com/arthur-debert/assetsel/pkg/patterns"
	"github.com/arthur-debert/assetsel/pkg/properties"
)

// CategoriesMarkdown documents categories and their patterns as markdown
func CategoriesMarkdown(categories []*conventions.Category) string {
	var b strings.Builder
	b.WriteString("# Asset categories\n")

	for _, c := range categories {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", c.Name, c.Description)

		var flags []string
		if c.RuntimeSpecific {
			flags = append(flags, "runtime specific")
		}
		if c.LocaleSpecific {
			flags = append(flags, "locale specific")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&b, "\n_%s_\n", strings.Join(flags, ", "))
		}
		if captures := setCaptures(c.Set); len(captures) > 0 {
			fmt.Fprintf(&b, "\nProperties: `%s`\n", strings.Join(captures, "`, `"))
		}

		b.WriteString("\n| Probe | Enumerate |\n| --- | --- |\n")
		presence := c.Set.Presence()
		enumeration := c.Set.Enumeration()
		rows := len(presence)
		if len(enumeration) > rows {
			rows = len(enumeration)
		}
		for i := 0; i < rows; i++ {
			var probe, enumerate string
			if i < len(presence) {
				probe = "`" + presence[i].Template() + "`"
			}
			if i < len(enumeration) {
				enumerate = "`" + enumeration[i].Template() + "`" + formatDefaults(enumeration[i])
			}
			fmt.Fprintf(&b, "| %s | %s |\n", probe, enumerate)
		}
	}
	return b.String()
}

// PropertiesMarkdown documents the properties templates capture
func PropertiesMarkdown(props []*properties.Property) string {
	var b strings.Builder
	b.WriteString("# Properties\n\n| Name | Kind | Extensions |\n| --- | --- | --- |\n")
	for _, p := range props {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Name(), p.Kind(), strings.Join(p.Extensions(), " "))
	}
	return b.String()
}

// setCaptures returns the properties captured by a set's templates in
// first-seen order
func setCaptures(set *patterns.Set) []string {
	seen := map[string]bool{}
	var names []string
	for _, def := range append(set.Presence(), set.Enumeration()...) {
		for _, name := range def.Captures() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func formatDefaults(def *patterns.Definition) string {
	defaults := def.Defaults()
	if len(defaults) == 0 {
		return ""
	}
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+defaults[name].String())
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // "auto", a glamour style name, or a path to a style file
	Width int    // 0 keeps glamour's default wrapping
}

// NewMarkdownRenderer creates a renderer with automatic style detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render returns content styled for the terminal. On any glamour error the
// content is returned unchanged.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
