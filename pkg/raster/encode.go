package raster

import (
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// rgbaPNG reports itself as translucent so the PNG encoder always writes
// color type 6 (RGBA). Opaque images would otherwise be stored as RGB.
type rgbaPNG struct{ *image.NRGBA }

func (rgbaPNG) Opaque() bool { return false }

// EncodePNG writes img as an 8-bit RGBA PNG, even when every pixel is opaque.
// The encoding is deterministic for a given image, which keeps repeated
// exports byte-identical.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, rgbaPNG{Normalize(img)}, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode png")
	}
	return nil
}

// PNGBytes is EncodePNG into a fresh buffer.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
