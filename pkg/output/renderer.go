package output

import (
	"io"
	"os"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/resolver"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a resolution result
	RenderResult(result resolver.Result) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto detects the
// format when output is a file and falls back to terminal otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return newTextRenderer(output, DefaultStyles()), nil
	case FormatText:
		return newTextRenderer(output, nil), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatXML:
		return newXMLRenderer(output), nil
	case FormatTOML:
		return newTOMLRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format)
	}
}
