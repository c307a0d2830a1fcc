package logo

import "image"

// Fixed pixel measurements that do not scale with the logo.
const (
	dotRadius     = 3
	foldWidth     = 2
	linkWidth     = 1
	glowRings     = 5
	glowRingStep  = 2
	glowAlphaStep = 20

	foldStartDeg = 30
	foldEndDeg   = 150
)

// Arc is an elliptical arc centered on (CX, CY), angles in degrees measured
// clockwise from the positive x axis (y grows downward).
type Arc struct {
	CX, CY     int
	RX, RY     int
	Start, End float64
}

// Ring is one translucent glow disc.
type Ring struct {
	Radius int
	Alpha  uint8
}

// Link joins Dots[From] and Dots[To].
type Link struct {
	From, To int
}

// Geometry holds every coordinate of the logo at one size.
type Geometry struct {
	Size        int
	Padding     int
	Center      image.Point
	Brain       int
	Hemispheres [2]image.Point
	HemiRadius  int
	Folds       []Arc
	Dots        []image.Point
	Links       []Link
	Glow        []Ring
}

// NewGeometry computes the layout for a size×size logo.
//
// Divisions floor toward negative infinity so that negative offsets land on
// the same pixels as the reference renders.
func NewGeometry(size int) Geometry {
	c := size / 2
	b := size / 3

	g := Geometry{
		Size:       size,
		Padding:    size / 10,
		Center:     image.Pt(c, c),
		Brain:      b,
		HemiRadius: b / 2,
	}
	g.Hemispheres = [2]image.Point{
		image.Pt(c-b/4, c),
		image.Pt(c+b/4, c),
	}

	for i := 0; i < 3; i++ {
		g.Folds = append(g.Folds, Arc{
			CX:    c,
			CY:    c + floorDiv((i-1)*b, 3),
			RX:    b / 2,
			RY:    b / 3,
			Start: foldStartDeg,
			End:   foldEndDeg,
		})
	}

	offsets := []image.Point{
		{floorDiv(-b, 3), floorDiv(-b, 4)},
		{b / 3, floorDiv(-b, 4)},
		{floorDiv(-b, 2), 0},
		{b / 2, 0},
		{floorDiv(-b, 3), b / 4},
		{b / 3, b / 4},
	}
	for _, o := range offsets {
		g.Dots = append(g.Dots, g.Center.Add(o))
	}

	// Neighbors and next-but-one neighbors by index; a fixed pattern.
	for i := range g.Dots {
		for j := i + 1; j < len(g.Dots); j++ {
			if d := j - i; d == 1 || d == 2 {
				g.Links = append(g.Links, Link{From: i, To: j})
			}
		}
	}

	// Outermost ring first; inner rings overwrite it.
	for i := glowRings; i >= 1; i-- {
		g.Glow = append(g.Glow, Ring{
			Radius: b/2 + i*glowRingStep,
			Alpha:  uint8(glowAlphaStep * (glowRings + 1 - i)),
		})
	}
	return g
}

// DiscRadius is the radius of the background disc.
func (g Geometry) DiscRadius() float64 {
	return float64(g.Size-2*g.Padding) / 2
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
