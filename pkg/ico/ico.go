// Package ico reads and writes Windows icon containers with PNG payloads.
//
// A container starts with a 6-byte ICONDIR header followed by one 16-byte
// ICONDIRENTRY per frame, then the frame payloads in directory order. Frames
// are stored as PNG, which every consumer since Windows Vista accepts and
// which keeps the alpha channel intact. A width or height byte of 0 means 256.
//
//	frames := []image.Image{icon16, icon32, icon256}
//	err := ico.Encode(w, frames)
//
// [DecodeAll] only understands PNG payloads, which is everything [Encode]
// produces; legacy BMP frames report an error.
package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/matzehuels/iconforge/pkg/raster"
)

const (
	headerSize = 6
	entrySize  = 16

	typeIcon = 1

	// MaxDimension is the largest side a directory entry can describe.
	MaxDimension = 256
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type dirEntry struct {
	Width        uint8
	Height       uint8
	ColorCount   uint8
	Reserved     uint8
	Planes       uint16
	BitsPerPixel uint16
	Size         uint32
	Offset       uint32
}

// Entry describes one frame as recorded in the container directory.
type Entry struct {
	Width        int
	Height       int
	BitsPerPixel int
	Size         int // payload length in bytes
	Offset       int // payload offset from the start of the file
}

// Encode writes frames into a single container, first frame first.
func Encode(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return fmt.Errorf("ico: no frames")
	}
	if len(frames) > 0xffff {
		return fmt.Errorf("ico: too many frames (%d)", len(frames))
	}

	payloads := make([][]byte, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > MaxDimension || b.Dy() > MaxDimension {
			return fmt.Errorf("ico: frame %d is %dx%d, sides must be 1..%d", i, b.Dx(), b.Dy(), MaxDimension)
		}
		data, err := raster.PNGBytes(f)
		if err != nil {
			return fmt.Errorf("ico: frame %d: %w", i, err)
		}
		payloads[i] = data
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, header{Type: typeIcon, Count: uint16(len(frames))})

	offset := uint32(headerSize + entrySize*len(frames))
	for i, f := range frames {
		b := f.Bounds()
		e := dirEntry{
			Width:        dimByte(b.Dx()),
			Height:       dimByte(b.Dy()),
			Planes:       1,
			BitsPerPixel: 32,
			Size:         uint32(len(payloads[i])),
			Offset:       offset,
		}
		binary.Write(&buf, binary.LittleEndian, e)
		offset += e.Size
	}
	for _, p := range payloads {
		buf.Write(p)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// DecodeConfigAll reads the container directory without decoding payloads.
func DecodeConfigAll(r io.Reader) ([]Entry, error) {
	entries, _, err := readDirectory(r)
	return entries, err
}

// DecodeAll decodes every frame in directory order.
func DecodeAll(r io.Reader) ([]image.Image, error) {
	entries, data, err := readDirectory(r)
	if err != nil {
		return nil, err
	}

	frames := make([]image.Image, len(entries))
	for i, e := range entries {
		if e.Offset+e.Size > len(data) {
			return nil, fmt.Errorf("ico: frame %d payload out of bounds", i)
		}
		payload := data[e.Offset : e.Offset+e.Size]
		if !bytes.HasPrefix(payload, pngMagic) {
			return nil, fmt.Errorf("ico: frame %d is not a PNG payload", i)
		}
		img, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("ico: frame %d: %w", i, err)
		}
		frames[i] = img
	}
	return frames, nil
}

// readDirectory consumes the whole stream and returns the parsed directory
// alongside the raw bytes so payload offsets can be resolved.
func readDirectory(r io.Reader) ([]Entry, []byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < headerSize {
		return nil, nil, fmt.Errorf("ico: short header")
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, nil, err
	}
	if h.Reserved != 0 || h.Type != typeIcon {
		return nil, nil, fmt.Errorf("ico: not an icon file (type %d)", h.Type)
	}
	if h.Count == 0 {
		return nil, nil, fmt.Errorf("ico: empty directory")
	}

	dirEnd := headerSize + entrySize*int(h.Count)
	if len(data) < dirEnd {
		return nil, nil, fmt.Errorf("ico: truncated directory")
	}

	raw := make([]dirEntry, h.Count)
	if err := binary.Read(bytes.NewReader(data[headerSize:dirEnd]), binary.LittleEndian, raw); err != nil {
		return nil, nil, err
	}

	entries := make([]Entry, len(raw))
	for i, e := range raw {
		entries[i] = Entry{
			Width:        byteDim(e.Width),
			Height:       byteDim(e.Height),
			BitsPerPixel: int(e.BitsPerPixel),
			Size:         int(e.Size),
			Offset:       int(e.Offset),
		}
	}
	return entries, data, nil
}

func dimByte(d int) uint8 {
	if d >= MaxDimension {
		return 0
	}
	return uint8(d)
}

func byteDim(b uint8) int {
	if b == 0 {
		return MaxDimension
	}
	return int(b)
}
