package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/san-kum/rulerpick/internal/geometry"
)

// bezier control distance for a quarter circle
const kappa = float32(0.5522847498)

// RasterizeLayout renders the marks over a solid background.
func RasterizeLayout(marks []geometry.Mark, width, height int, markColor, background colorful.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if width <= 0 || height <= 0 {
		return dst
	}
	r := vector.NewRasterizer(width, height)
	cr, cg, cb := markColor.RGB255()

	for _, m := range marks {
		if m.Hidden() {
			continue
		}
		r.Reset(width, height)
		addRoundedRect(r, float32(m.X), float32(m.Y), float32(m.Width), float32(m.Height), float32(m.Radius))
		src := image.NewUniform(color.NRGBA{R: cr, G: cg, B: cb, A: uint8(math.Round(m.Opacity * 255))})
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

// LayoutToPNG encodes a rasterized layout. Colours are hex strings.
func LayoutToPNG(w io.Writer, marks []geometry.Mark, width, height int, markColor, background string) error {
	fg, err := colorful.Hex(markColor)
	if err != nil {
		return err
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return err
	}
	return png.Encode(w, RasterizeLayout(marks, width, height, fg, bg))
}

func addRoundedRect(r *vector.Rasterizer, x, y, w, h, radius float32) {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	if radius <= 0 {
		r.MoveTo(x, y)
		r.LineTo(x+w, y)
		r.LineTo(x+w, y+h)
		r.LineTo(x, y+h)
		r.ClosePath()
		return
	}

	k := kappa * radius
	r.MoveTo(x+radius, y)
	r.LineTo(x+w-radius, y)
	r.CubeTo(x+w-radius+k, y, x+w, y+radius-k, x+w, y+radius)
	r.LineTo(x+w, y+h-radius)
	r.CubeTo(x+w, y+h-radius+k, x+w-radius+k, y+h, x+w-radius, y+h)
	r.LineTo(x+radius, y+h)
	r.CubeTo(x+radius-k, y+h, x, y+h-radius+k, x, y+h-radius)
	r.LineTo(x, y+radius)
	r.CubeTo(x, y+radius-k, x+radius-k, y, x+radius, y)
	r.ClosePath()
}
