package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
)

// Swatch sheet geometry, in pixels.
const (
	sheetMargin    = 16
	sheetHeader    = 28
	rowTitle       = 18
	swatchWidth    = 72
	swatchHeight   = 48
	swatchLabel    = 30
	swatchGutter   = 8
	labelLineSpace = 13
)

var (
	sheetBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	sheetInk        = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	sheetMutedInk   = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// PNGRenderer draws a labelled swatch sheet of every ramp, the semantic
// colours and the dark mode set.
type PNGRenderer struct {
	brand string
}

func (r *PNGRenderer) Name() string { return string(FormatPNG) }

func (r *PNGRenderer) Description() string {
	return "Labelled swatch sheet (swatches.png)"
}

type swatchRow struct {
	title   string
	colours []brand.NamedColor
}

func swatchRows(sys *brand.ColorSystem) []swatchRow {
	data := newTemplateData(sys, "")

	rows := make([]swatchRow, 0, len(data.Scales)+2)
	for _, s := range data.Scales {
		row := swatchRow{title: s.Name}
		for _, step := range s.Steps {
			row.colours = append(row.colours, brand.NamedColor{Name: strconv.Itoa(step.Step), Hex: step.Hex})
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		swatchRow{title: "semantic", colours: data.Semantic},
		swatchRow{title: "dark mode", colours: data.Dark},
	)
	return rows
}

// swatchOrigin is the top-left corner of a swatch.
func swatchOrigin(row, col int) image.Point {
	return image.Point{
		X: sheetMargin + col*(swatchWidth+swatchGutter),
		Y: sheetMargin + sheetHeader + row*(rowTitle+swatchHeight+swatchLabel+swatchGutter) + rowTitle,
	}
}

// Generate renders swatches.png.
func (r *PNGRenderer) Generate(sys *brand.ColorSystem) (map[string][]byte, error) {
	if sys == nil {
		return nil, fmt.Errorf("colour system cannot be nil")
	}

	rows := swatchRows(sys)
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row.colours))
	}

	width := 2*sheetMargin + cols*swatchWidth + (cols-1)*swatchGutter
	height := swatchOrigin(len(rows), 0).Y - rowTitle + sheetMargin - swatchGutter
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	drawText(img, sheetMargin, sheetMargin+labelLineSpace, r.brand+" - "+sys.Mood, sheetInk)

	for i, row := range rows {
		origin := swatchOrigin(i, 0)
		drawText(img, origin.X, origin.Y-5, row.title, sheetMutedInk)

		for j, c := range row.colours {
			o := swatchOrigin(i, j)
			rgb := colour.HexToRGB(c.Hex)
			fill := image.NewUniform(color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
			draw.Draw(img, image.Rect(o.X, o.Y, o.X+swatchWidth, o.Y+swatchHeight), fill, image.Point{}, draw.Src)

			labelY := o.Y + swatchHeight + labelLineSpace
			drawText(img, o.X, labelY, fitLabel(c.Name), sheetInk)
			drawText(img, o.X, labelY+labelLineSpace, rgb.Hex(), sheetMutedInk)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch sheet: %w", err)
	}
	return map[string][]byte{"swatches.png": buf.Bytes()}, nil
}

// fitLabel truncates a label to the swatch width in basicfont glyphs.
func fitLabel(s string) string {
	maxChars := swatchWidth / basicfont.Face7x13.Advance
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars-1] + "."
}

// drawText writes s with its baseline at y.
func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
