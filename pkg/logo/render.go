package logo

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// Palette colors.
var (
	ColorBackground = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
	ColorHemisphere = color.NRGBA{R: 0, G: 200, B: 255, A: 255}
	ColorAccent     = color.NRGBA{R: 100, G: 220, B: 255, A: 255}
	ColorGlow       = color.NRGBA{R: 0, G: 200, B: 255}
)

// Render draws the logo at size×size on a transparent background.
func Render(size int) (*image.NRGBA, error) {
	if err := errors.ValidateSize(size); err != nil {
		return nil, err
	}
	g := NewGeometry(size)

	glow := drawGlow(g)
	body := drawMain(g)

	out := gg.NewContext(size, size)
	out.DrawImage(glow, 0, 0)
	out.DrawImage(body, 0, 0)
	return imaging.Clone(out.Image()), nil
}

// Source adapts Render to the export driver's per-size image source.
type Source struct{}

// Name identifies the source in logs.
func (Source) Name() string { return "logo" }

// Image renders the logo from scratch at size.
func (Source) Image(size int) (image.Image, error) {
	return Render(size)
}

func drawMain(g Geometry) image.Image {
	dc := gg.NewContext(g.Size, g.Size)
	c := g.Center

	dc.SetColor(ColorBackground)
	dc.DrawCircle(float64(c.X), float64(c.Y), g.DiscRadius())
	dc.Fill()

	dc.SetColor(ColorHemisphere)
	r := float64(g.HemiRadius)
	for _, h := range g.Hemispheres {
		dc.DrawEllipse(float64(h.X), float64(h.Y), r, r)
		dc.Fill()
	}

	dc.SetColor(ColorAccent)
	dc.SetLineWidth(foldWidth)
	for _, a := range g.Folds {
		dc.NewSubPath()
		dc.DrawEllipticalArc(float64(a.CX), float64(a.CY), float64(a.RX), float64(a.RY),
			gg.Radians(a.Start), gg.Radians(a.End))
		dc.Stroke()
	}

	for _, d := range g.Dots {
		dc.DrawCircle(float64(d.X), float64(d.Y), dotRadius)
		dc.Fill()
	}

	dc.SetLineWidth(linkWidth)
	for _, l := range g.Links {
		from, to := g.Dots[l.From], g.Dots[l.To]
		dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
		dc.Stroke()
	}

	return dc.Image()
}

// drawGlow paints the rings outermost first. Each ring replaces the pixels
// it covers, so every band keeps its own alpha instead of accumulating.
func drawGlow(g Geometry) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	for _, ring := range g.Glow {
		mask := gg.NewContext(g.Size, g.Size)
		mask.SetColor(color.White)
		mask.DrawCircle(float64(g.Center.X), float64(g.Center.Y), float64(ring.Radius))
		mask.Fill()

		col := ColorGlow
		col.A = ring.Alpha
		draw.DrawMask(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, mask.Image(), image.Point{}, draw.Src)
	}
	return dst
}
