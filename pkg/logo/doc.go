// Package logo draws the placeholder application logo.
//
// The logo is a dark background disc holding two overlapping cyan
// "hemisphere" ellipses, three accent arcs for folds, six accent dots joined
// by straight lines, and a soft glow composited beneath everything. Every
// measurement comes from [NewGeometry], which derives it from the requested
// pixel size alone, so rendering is deterministic and has no state between
// calls.
//
//	img, err := logo.Render(512)
//
// Small sizes are drawn from scratch rather than downscaled, which keeps the
// proportions identical at every size; dots and strokes keep their fixed
// pixel widths.
package logo
