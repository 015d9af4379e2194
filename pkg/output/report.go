package output

import (
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/resolver"
)

// Report is the serializable form of a resolution result
type Report struct {
	Framework     string           `json:"framework" toml:"framework"`
	FrameworkName string           `json:"frameworkName" toml:"frameworkName"`
	Runtime       string           `json:"runtime,omitempty" toml:"runtime,omitempty"`
	Locale        string           `json:"locale,omitempty" toml:"locale,omitempty"`
	Categories    []CategoryReport `json:"categories" toml:"categories"`
}

// CategoryReport is one resolved category
type CategoryReport struct {
	Name     string       `json:"name" toml:"name"`
	Level    int          `json:"level" toml:"level"`
	Criteria string       `json:"criteria,omitempty" toml:"criteria,omitempty"`
	Items    []ItemReport `json:"items" toml:"items"`
}

// ItemReport is one resolved file
type ItemReport struct {
	Path       string            `json:"path" toml:"path"`
	Pattern    string            `json:"pattern" toml:"pattern"`
	Properties map[string]string `json:"properties" toml:"properties"`
}

// NewReport converts a result. Empty categories keep an empty item list.
func NewReport(result resolver.Result) Report {
	report := Report{
		Framework:     result.Context.Framework.String(),
		FrameworkName: result.Context.Framework.FullName(),
		Runtime:       result.Context.RuntimeIdentifier,
		Locale:        result.Context.Locale,
		Categories:    make([]CategoryReport, 0, len(result.Groups)),
	}

	for _, g := range result.Groups {
		category := CategoryReport{
			Name:     g.Category,
			Level:    g.Level,
			Criteria: g.Criteria,
			Items:    make([]ItemReport, 0, len(g.Items)),
		}
		for _, item := range g.Items {
			props := make(map[string]string, len(item.Properties))
			for name, v := range item.Properties {
				props[name] = v.String()
			}
			category.Items = append(category.Items, ItemReport{
				Path:       item.Path,
				Pattern:    item.Pattern,
				Properties: props,
			})
		}
		report.Categories = append(report.Categories, category)
	}
	return report
}

// ErrorReport is the serializable form of a failure
type ErrorReport struct {
	Error string `json:"error" toml:"error"`
	Code  string `json:"code" toml:"code"`
}

// NewErrorReport converts an error, keeping its code when it has one
func NewErrorReport(err error) ErrorReport {
	return ErrorReport{Error: err.Error(), Code: string(errors.GetErrorCode(err))}
}
