// Package export renders a colour system into files designers and
// developers consume: a JSON document, CSS custom properties, a Tailwind
// theme and a PNG swatch sheet.
package export

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

// Format names an export renderer.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatPNG      Format = "png"
)

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSS, FormatTailwind, FormatPNG}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (available: %s)", s, formatList())
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Renderer turns a colour system into one or more named files.
type Renderer interface {
	// Name returns the format this renderer produces.
	Name() string

	// Description returns a one-line summary for help output.
	Description() string

	// Generate returns the rendered files keyed by file name.
	Generate(sys *brand.ColorSystem) (map[string][]byte, error)
}

// Options configure the renderers.
type Options struct {
	// BrandName is written into file headers. Empty means "Brand".
	BrandName string

	// TemplateDir holds optional template overrides, one file per
	// embedded template name.
	TemplateDir string

	// Logger receives debug output. Nil discards it.
	Logger hclog.Logger
}

func (o Options) brandName() string {
	if strings.TrimSpace(o.BrandName) == "" {
		return "Brand"
	}
	return strings.TrimSpace(o.BrandName)
}

func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// New returns the renderer for format.
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatCSS:
		return newCSSRenderer(opts), nil
	case FormatTailwind:
		return newTailwindRenderer(opts), nil
	case FormatPNG:
		return &PNGRenderer{brand: opts.brandName()}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (available: %s)", format, formatList())
	}
}
