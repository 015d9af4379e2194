package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetsel/pkg/conventions"
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/resolver"
)

func sampleResult(t *testing.T) resolver.Result {
	t.Helper()
	c, err := conventions.New()
	require.NoError(t, err)

	ctx := resolver.Context{Framework: framework.Parse("net6.0"), RuntimeIdentifier: "win-x64"}
	files := []string{"lib/net6.0/Tool.dll", "runtimes/win-x64/native/tool.dll"}

	result, err := resolver.New(c).Resolve(ctx, files,
		conventions.RuntimeAssemblies, conventions.NativeLibraries, conventions.ContentFiles)
	require.NoError(t, err)
	return result
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"text", FormatText},
		{"json", FormatJSON},
		{" xml ", FormatXML},
		{"toml", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatXML, FormatTOML} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.True(t, FormatTerminal.IsStyled())
	assert.False(t, FormatText.IsStyled())
	assert.True(t, FormatJSON.IsStructured())
	assert.True(t, FormatXML.IsStructured())
	assert.True(t, FormatTOML.IsStructured())
	assert.False(t, FormatAuto.IsStructured())
	assert.False(t, FormatText.IsStructured())
}

func TestNewReport(t *testing.T) {
	report := NewReport(sampleResult(t))

	assert.Equal(t, "net6.0", report.Framework)
	assert.Equal(t, ".NETCoreApp,Version=v6.0", report.FrameworkName)
	assert.Equal(t, "win-x64", report.Runtime)
	require.Len(t, report.Categories, 3)

	runtime := report.Categories[0]
	assert.Equal(t, conventions.RuntimeAssemblies, runtime.Name)
	require.Len(t, runtime.Items, 1)
	assert.Equal(t, "lib/net6.0/Tool.dll", runtime.Items[0].Path)
	assert.Equal(t, "Tool.dll", runtime.Items[0].Properties["assembly"])
	assert.Equal(t, "net6.0", runtime.Items[0].Properties["tfm"])

	native := report.Categories[1]
	require.Len(t, native.Items, 1)
	assert.Equal(t, "win-x64", native.Items[0].Properties["rid"])

	content := report.Categories[2]
	assert.Equal(t, -1, content.Level)
	assert.NotNil(t, content.Items)
	assert.Empty(t, content.Items)
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer(Format(42), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
}

func TestNewRenderer_AutoOnBuffer(t *testing.T) {
	r, err := NewRenderer(FormatAuto, &bytes.Buffer{})
	require.NoError(t, err)
	text, ok := r.(*textRenderer)
	require.True(t, ok)
	assert.NotNil(t, text.styles)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Target net6.0 runtime=win-x64\n"))
	assert.Contains(t, out, "  lib/net6.0/Tool.dll  assembly=Tool.dll tfm=net6.0\n")
	assert.Contains(t, out, "runtimes/win-x64/native/tool.dll")
	assert.Contains(t, out, "content (none)\n")
}

func TestTextRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	r := newTextRenderer(&buf, nil)

	require.NoError(t, r.RenderError(stderrors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleResult(t)))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, NewReport(sampleResult(t)), report)

	buf.Reset()
	require.NoError(t, r.RenderError(stderrors.New("boom")))
	assert.JSONEq(t, `{"error":"boom","code":"UNKNOWN"}`, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrUnsupportedFrameworkKind, "fallback")))
	assert.JSONEq(t, `{"error":"[UNSUPPORTED_FRAMEWORK_KIND] fallback","code":"UNSUPPORTED_FRAMEWORK_KIND"}`, buf.String())
}

func TestXMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatXML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleResult(t)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("assets")
	require.NotNil(t, root)
	assert.Equal(t, "net6.0", root.SelectAttrValue("framework", ""))
	assert.Equal(t, "win-x64", root.SelectAttrValue("runtime", ""))

	categories := root.SelectElements("category")
	require.Len(t, categories, 3)
	assert.Equal(t, "runtime", categories[0].SelectAttrValue("name", ""))
	assert.Equal(t, "-1", categories[2].SelectAttrValue("level", ""))

	item := categories[1].SelectElement("item")
	require.NotNil(t, item)
	assert.Equal(t, "runtimes/win-x64/native/tool.dll", item.SelectAttrValue("path", ""))

	rid := item.FindElement("property[@name='rid']")
	require.NotNil(t, rid)
	assert.Equal(t, "win-x64", rid.Text())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "missing")))
	failure := etree.NewDocument()
	require.NoError(t, failure.ReadFromBytes(buf.Bytes()))
	el := failure.SelectElement("error")
	require.NotNil(t, el)
	assert.Equal(t, "NOT_FOUND", el.SelectAttrValue("code", ""))
	assert.Equal(t, "[NOT_FOUND] missing", el.Text())
}

func TestTOMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTOML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleResult(t)))

	var report Report
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "net6.0", report.Framework)
	require.Len(t, report.Categories, 3)
	require.Len(t, report.Categories[1].Items, 1)
	assert.Equal(t, "runtimes/win-x64/native/tool.dll", report.Categories[1].Items[0].Path)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "category 'x' not found")))
	var failure ErrorReport
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &failure))
	assert.Equal(t, "NOT_FOUND", failure.Code)
}

func TestParseStyles(t *testing.T) {
	styles, err := ParseStyles([]byte(`
colors:
  accent:
    light: "#005f87"
    dark: "#5fafd7"
styles:
  Header:
    bold: true
    foreground: accent
`))
	require.NoError(t, err)
	assert.True(t, styles.Get("Header").GetBold())
	assert.False(t, styles.Get("Missing").GetBold())

	_, err = ParseStyles([]byte("styles: ["))
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))

	assert.NotEmpty(t, DefaultStyles())
}

func TestCategoriesMarkdown(t *testing.T) {
	c, err := conventions.New()
	require.NoError(t, err)

	md := CategoriesMarkdown(c.Categories())
	assert.True(t, strings.HasPrefix(md, "# Asset categories\n"))
	assert.Contains(t, md, "## resources\n")
	assert.Contains(t, md, "_runtime specific, locale specific_")
	assert.Contains(t, md, "`lib/{tfm}/{assembly}`")
	assert.Contains(t, md, "`runtimes/{rid}/native/{any}` (tfm=any)")
	assert.Contains(t, md, "Properties: `rid`, `tfm`")
}

func TestPropertiesMarkdown(t *testing.T) {
	c, err := conventions.New()
	require.NoError(t, err)

	md := PropertiesMarkdown(c.Properties().All())
	assert.True(t, strings.HasPrefix(md, "# Properties\n"))
	assert.Contains(t, md, "| tfm | framework |  |\n")
	assert.Contains(t, md, "| assembly | file | .dll .winmd .exe |")
}

func TestMarkdownRenderer_FallsBackOnBadStyle(t *testing.T) {
	r := &MarkdownRenderer{Style: "/nonexistent/style.json"}
	assert.Equal(t, "# title", r.Render("# title"))
}
