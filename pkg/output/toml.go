package output

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/assetsel/pkg/resolver"
)

type tomlRenderer struct {
	encoder *toml.Encoder
}

func newTOMLRenderer(output io.Writer) *tomlRenderer {
	encoder := toml.NewEncoder(output)
	encoder.SetIndentTables(true)
	return &tomlRenderer{encoder: encoder}
}

func (r *tomlRenderer) RenderResult(result resolver.Result) error {
	return r.encoder.Encode(NewReport(result))
}

func (r *tomlRenderer) RenderError(err error) error {
	return r.encoder.Encode(NewErrorReport(err))
}
