package export

import (
	"fmt"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

// CSSRenderer writes CSS custom properties for the light palette, every
// ramp step and a dark theme override.
type CSSRenderer struct {
	brand  string
	loader *templateLoader
}

func newCSSRenderer(opts Options) *CSSRenderer {
	return &CSSRenderer{
		brand:  opts.brandName(),
		loader: newTemplateLoader(opts.TemplateDir, opts.logger().Named("css")),
	}
}

func (r *CSSRenderer) Name() string { return string(FormatCSS) }

func (r *CSSRenderer) Description() string {
	return "CSS custom properties with a dark theme override (brand.css)"
}

// Generate renders brand.css.
func (r *CSSRenderer) Generate(sys *brand.ColorSystem) (map[string][]byte, error) {
	if sys == nil {
		return nil, fmt.Errorf("colour system cannot be nil")
	}

	content, err := render(r.loader, "brand.css.tmpl", newTemplateData(sys, r.brand))
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"brand.css": content}, nil
}
