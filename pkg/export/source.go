package export

import (
	"image"

	"github.com/matzehuels/iconforge/pkg/raster"
)

// Source produces a square image at a requested pixel size.
type Source interface {
	// Name identifies the source in logs and hooks.
	Name() string
	// Image returns a size×size image.
	Image(size int) (image.Image, error)
}

// ResampleSource serves every size by resampling one normalized image.
type ResampleSource struct {
	src       *image.NRGBA
	resampler raster.Resampler
}

// NewResampleSource normalizes img to NRGBA and pairs it with r.
// A nil r selects the default Lanczos resampler.
func NewResampleSource(img image.Image, r raster.Resampler) *ResampleSource {
	if r == nil {
		r = raster.MustResampler(raster.DefaultBackend, raster.DefaultFilter)
	}
	return &ResampleSource{src: raster.Normalize(img), resampler: r}
}

// Name returns the resampler name, e.g. "imaging/lanczos".
func (s *ResampleSource) Name() string { return s.resampler.Name() }

// Image resamples the source to size×size.
func (s *ResampleSource) Image(size int) (image.Image, error) {
	return s.resampler.Resample(s.src, size)
}

// Bounds reports the normalized source bounds.
func (s *ResampleSource) Bounds() image.Rectangle { return s.src.Bounds() }
