package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/assetsel/pkg/resolver"
)

// textRenderer writes one block per category. A nil styles map renders
// plain text.
type textRenderer struct {
	output io.Writer
	styles Styles
}

func newTextRenderer(output io.Writer, styles Styles) *textRenderer {
	return &textRenderer{output: output, styles: styles}
}

func (r *textRenderer) style(name, s string) string {
	if r.styles == nil {
		return s
	}
	return r.styles.Get(name).Render(s)
}

func (r *textRenderer) RenderResult(result resolver.Result) error {
	report := NewReport(result)

	var b strings.Builder
	b.WriteString(r.style("Header", "Target"))
	fmt.Fprintf(&b, " %s", report.Framework)
	if report.Runtime != "" {
		fmt.Fprintf(&b, " runtime=%s", report.Runtime)
	}
	if report.Locale != "" {
		fmt.Fprintf(&b, " locale=%s", report.Locale)
	}
	b.WriteString("\n")

	for _, c := range report.Categories {
		b.WriteString("\n")
		b.WriteString(r.style("Category", c.Name))
		if len(c.Items) == 0 {
			b.WriteString(" " + r.style("Empty", "(none)") + "\n")
			continue
		}
		b.WriteString(" " + r.style("Muted", fmt.Sprintf("[%s]", c.Criteria)) + "\n")
		for _, item := range c.Items {
			fmt.Fprintf(&b, "  %s  %s\n", r.style("FilePath", item.Path), r.style("Property", formatProperties(item.Properties)))
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func formatProperties(props map[string]string) string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+props[name])
	}
	return strings.Join(parts, " ")
}

func (r *textRenderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
