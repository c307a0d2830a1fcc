// Package manifest defines the fixed size tables that drive icon export.
//
// A [Sizes] manifest maps output file names to square pixel dimensions and
// produces one PNG per entry. An [ICO] manifest lists the frame dimensions
// bundled into a single multi-resolution icon container, primary frame first.
package manifest

import (
	"strconv"
	"strings"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// Entry is one PNG derivative: the file name and its square dimension.
type Entry struct {
	Name string `toml:"name"`
	Size int    `toml:"size"`
}

// Sizes is an ordered size manifest. Names are unique.
type Sizes []Entry

// ICO is an ordered list of square frame dimensions for the icon container.
type ICO []int

// ICOFileName is the name of the icon container written next to the PNGs.
const ICOFileName = "icon.ico"

// ICNSFileName is the name of the macOS icon bundle written with --icns.
const ICNSFileName = "icon.icns"

// MaxICODimension is the largest frame an ICO directory entry can describe.
const MaxICODimension = 256

// Default manifests. The resize and logo pipelines share both tables.
var (
	DefaultSizes = Sizes{
		{Name: "32x32.png", Size: 32},
		{Name: "128x128.png", Size: 128},
		{Name: "128x128@2x.png", Size: 256},
		{Name: "icon.png", Size: 512},
		{Name: "icon_1024.png", Size: 1024},
	}

	DefaultICO = ICO{16, 32, 48, 64, 128, 256}
)

// Validate checks names and sizes. An empty manifest is valid and exports nothing.
func (s Sizes) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, e := range s {
		if err := errors.ValidateOutputName(e.Name); err != nil {
			return err
		}
		if seen[e.Name] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate output name %q", e.Name)
		}
		seen[e.Name] = true
		if err := errors.ValidateSize(e.Size); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "entry %q", e.Name)
		}
		if e.Name == ICOFileName {
			return errors.New(errors.ErrCodeInvalidManifest, "%q is reserved for the icon container", e.Name)
		}
	}
	return nil
}

// Largest returns the entry with the biggest dimension; ties keep the first.
func (s Sizes) Largest() (Entry, bool) {
	if len(s) == 0 {
		return Entry{}, false
	}
	best := s[0]
	for _, e := range s[1:] {
		if e.Size > best.Size {
			best = e
		}
	}
	return best, true
}

// Clone returns an independent copy.
func (s Sizes) Clone() Sizes {
	return append(Sizes(nil), s...)
}

// Validate checks that the container has at least one frame and that every
// frame fits an ICO directory entry.
func (c ICO) Validate() error {
	if len(c) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "icon container needs at least one frame")
	}
	seen := make(map[int]bool, len(c))
	for _, d := range c {
		if d < 1 || d > MaxICODimension {
			return errors.New(errors.ErrCodeInvalidManifest, "ico frame %d out of range 1..%d", d, MaxICODimension)
		}
		if seen[d] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate ico frame %d", d)
		}
		seen[d] = true
	}
	return nil
}

// Clone returns an independent copy.
func (c ICO) Clone() ICO {
	return append(ICO(nil), c...)
}

// String renders the frame list as "16,32,48".
func (c ICO) String() string {
	parts := make([]string, len(c))
	for i, d := range c {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
