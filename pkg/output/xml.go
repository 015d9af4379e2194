package output

import (
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/assetsel/pkg/resolver"
)

// xmlRenderer writes an <assets> document:
//
//	<assets framework="net6.0" name=".NETCoreApp,Version=v6.0" runtime="win-x64">
//	  <category name="native" level="0" criteria="...">
//	    <item path="runtimes/win-x64/native/x.dll" pattern="...">
//	      <property name="rid">win-x64</property>
//	    </item>
//	  </category>
//	</assets>
type xmlRenderer struct {
	output io.Writer
}

func newXMLRenderer(output io.Writer) *xmlRenderer {
	return &xmlRenderer{output: output}
}

func (r *xmlRenderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *xmlRenderer) RenderResult(result resolver.Result) error {
	report := NewReport(result)

	doc := newDocument()
	root := doc.CreateElement("assets")
	root.CreateAttr("framework", report.Framework)
	root.CreateAttr("name", report.FrameworkName)
	if report.Runtime != "" {
		root.CreateAttr("runtime", report.Runtime)
	}
	if report.Locale != "" {
		root.CreateAttr("locale", report.Locale)
	}

	for _, c := range report.Categories {
		category := root.CreateElement("category")
		category.CreateAttr("name", c.Name)
		category.CreateAttr("level", strconv.Itoa(c.Level))
		if c.Criteria != "" {
			category.CreateAttr("criteria", c.Criteria)
		}
		for _, item := range c.Items {
			el := category.CreateElement("item")
			el.CreateAttr("path", item.Path)
			el.CreateAttr("pattern", item.Pattern)

			names := make([]string, 0, len(item.Properties))
			for name := range item.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				prop := el.CreateElement("property")
				prop.CreateAttr("name", name)
				prop.SetText(item.Properties[name])
			}
		}
	}

	return r.write(doc)
}

func (r *xmlRenderer) RenderError(err error) error {
	report := NewErrorReport(err)

	doc := newDocument()
	el := doc.CreateElement("error")
	el.CreateAttr("code", report.Code)
	el.SetText(report.Error)
	return r.write(doc)
}
