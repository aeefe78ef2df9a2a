package export

import (
	"fmt"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

// TailwindRenderer writes a tailwind.config.js extending the theme with
// the brand scales, semantic colours and gradients.
type TailwindRenderer struct {
	brand  string
	loader *templateLoader
}

func newTailwindRenderer(opts Options) *TailwindRenderer {
	return &TailwindRenderer{
		brand:  opts.brandName(),
		loader: newTemplateLoader(opts.TemplateDir, opts.logger().Named("tailwind")),
	}
}

func (r *TailwindRenderer) Name() string { return string(FormatTailwind) }

func (r *TailwindRenderer) Description() string {
	return "Tailwind CSS theme extension (tailwind.config.js)"
}

// Generate renders tailwind.config.js.
func (r *TailwindRenderer) Generate(sys *brand.ColorSystem) (map[string][]byte, error) {
	if sys == nil {
		return nil, fmt.Errorf("colour system cannot be nil")
	}

	content, err := render(r.loader, "tailwind.config.js.tmpl", newTemplateData(sys, r.brand))
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"tailwind.config.js": content}, nil
}
