package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/assetsel/pkg/resolver"
)

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderResult(result resolver.Result) error {
	return r.encoder.Encode(NewReport(result))
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(NewErrorReport(err))
}
