package raster

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// Decoders beyond the ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// Load opens path and decodes it.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source image %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode %s", path)
	}
	return img, nil
}

// Decode decodes an image from r without EXIF reorientation.
func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Normalize returns img as an *image.NRGBA anchored at the origin.
// Images that already satisfy this are returned unchanged.
func Normalize(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// IsNRGBA reports whether Normalize would return img as-is.
func IsNRGBA(img image.Image) bool {
	n, ok := img.(*image.NRGBA)
	return ok && n.Rect.Min == (image.Point{})
}
