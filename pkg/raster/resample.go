package raster

import (
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// Backend names accepted by NewResampler.
const (
	BackendImaging = "imaging"
	BackendNfnt    = "nfnt"
	BackendXDraw   = "xdraw"
)

// Filter names accepted by NewResampler.
const (
	FilterLanczos    = "lanczos"
	FilterCatmullRom = "catmullrom"
	FilterLinear     = "linear"
	FilterBox        = "box"
	FilterNearest    = "nearest"
)

// DefaultBackend and DefaultFilter reproduce the original Lanczos resize.
const (
	DefaultBackend = BackendImaging
	DefaultFilter  = FilterLanczos
)

// Resampler produces square resampled copies of a source image.
type Resampler interface {
	// Name identifies the backend and filter, e.g. "imaging/lanczos".
	Name() string
	// Resample returns a size×size copy of src.
	Resample(src image.Image, size int) (*image.NRGBA, error)
}

var (
	imagingFilters = map[string]imaging.ResampleFilter{
		FilterLanczos:    imaging.Lanczos,
		FilterCatmullRom: imaging.CatmullRom,
		FilterLinear:     imaging.Linear,
		FilterBox:        imaging.Box,
		FilterNearest:    imaging.NearestNeighbor,
	}

	nfntFilters = map[string]resize.InterpolationFunction{
		FilterLanczos:    resize.Lanczos3,
		FilterCatmullRom: resize.Bicubic,
		FilterLinear:     resize.Bilinear,
		FilterNearest:    resize.NearestNeighbor,
	}

	xdrawFilters = map[string]draw.Interpolator{
		FilterLanczos:    lanczos3Kernel,
		FilterCatmullRom: draw.CatmullRom,
		FilterLinear:     draw.BiLinear,
		FilterNearest:    draw.NearestNeighbor,
	}
)

// lanczos3Kernel fills the gap x/image/draw leaves between CatmullRom and nothing.
var lanczos3Kernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}}

// Backends lists the backend names in sorted order.
func Backends() []string {
	return []string{BackendImaging, BackendNfnt, BackendXDraw}
}

// Filters lists every filter name in sorted order.
func Filters() []string {
	names := make([]string, 0, len(imagingFilters))
	for name := range imagingFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewResampler returns the resampler for backend and filter. Empty strings
// select the defaults.
func NewResampler(backend, filter string) (Resampler, error) {
	if backend == "" {
		backend = DefaultBackend
	}
	if filter == "" {
		filter = DefaultFilter
	}

	switch backend {
	case BackendImaging:
		f, ok := imagingFilters[filter]
		if !ok {
			return nil, unsupportedFilter(backend, filter)
		}
		return imagingResampler{name: filter, filter: f}, nil
	case BackendNfnt:
		f, ok := nfntFilters[filter]
		if !ok {
			return nil, unsupportedFilter(backend, filter)
		}
		return nfntResampler{name: filter, interp: f}, nil
	case BackendXDraw:
		f, ok := xdrawFilters[filter]
		if !ok {
			return nil, unsupportedFilter(backend, filter)
		}
		return xdrawResampler{name: filter, interp: f}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown resampler %q (must be one of %v)", backend, Backends())
	}
}

// MustResampler is NewResampler for package-level defaults; it panics on bad names.
func MustResampler(backend, filter string) Resampler {
	r, err := NewResampler(backend, filter)
	if err != nil {
		panic(err)
	}
	return r
}

func unsupportedFilter(backend, filter string) error {
	return errors.New(errors.ErrCodeUnsupported, "resampler %q does not support filter %q", backend, filter)
}

type imagingResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func (r imagingResampler) Name() string { return BackendImaging + "/" + r.name }

func (r imagingResampler) Resample(src image.Image, size int) (*image.NRGBA, error) {
	if err := errors.ValidateSize(size); err != nil {
		return nil, err
	}
	return imaging.Resize(src, size, size, r.filter), nil
}

type nfntResampler struct {
	name   string
	interp resize.InterpolationFunction
}

func (r nfntResampler) Name() string { return BackendNfnt + "/" + r.name }

func (r nfntResampler) Resample(src image.Image, size int) (*image.NRGBA, error) {
	if err := errors.ValidateSize(size); err != nil {
		return nil, err
	}
	// nfnt keeps the source's color model; normalize first so the output
	// always carries straight alpha.
	out := resize.Resize(uint(size), uint(size), Normalize(src), r.interp)
	return Normalize(out), nil
}

type xdrawResampler struct {
	name   string
	interp draw.Interpolator
}

func (r xdrawResampler) Name() string { return BackendXDraw + "/" + r.name }

func (r xdrawResampler) Resample(src image.Image, size int) (*image.NRGBA, error) {
	if err := errors.ValidateSize(size); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	r.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
