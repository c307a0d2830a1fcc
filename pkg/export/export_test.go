package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/ico"
	"github.com/matzehuels/iconforge/pkg/logo"
	"github.com/matzehuels/iconforge/pkg/manifest"
	"github.com/matzehuels/iconforge/pkg/observability"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// opaque returns an RGB-only source with no alpha channel.
func opaque(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}
	return img
}

func defaultPlan(dir string) Plan {
	return Plan{OutputDir: dir, Sizes: manifest.DefaultSizes, ICO: manifest.DefaultICO}
}

func decodePNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return raster.Normalize(img)
}

func decodeICO(t *testing.T, path string) []image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	frames, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return frames
}

func TestRunResizeOpaqueSource(t *testing.T) {
	dir := t.TempDir()
	src := NewResampleSource(opaque(2000), nil)

	var reported []string
	res, err := NewRunner(nil, WithReporter(func(a Artifact) { reported = append(reported, a.Name) })).
		Run(context.Background(), src, defaultPlan(dir))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	wantNames := []string{"32x32.png", "128x128.png", "128x128@2x.png", "icon.png", "icon_1024.png", "icon.ico"}
	got := res.Names()
	if len(got) != len(wantNames) {
		t.Fatalf("Names() = %v, want %v", got, wantNames)
	}
	for i := range wantNames {
		if got[i] != wantNames[i] || reported[i] != wantNames[i] {
			t.Errorf("file %d = %q (reported %q), want %q", i, got[i], reported[i], wantNames[i])
		}
	}

	for _, e := range manifest.DefaultSizes {
		img := decodePNG(t, filepath.Join(dir, e.Name))
		if b := img.Bounds(); b.Dx() != e.Size || b.Dy() != e.Size {
			t.Errorf("%s is %dx%d, want %dx%d", e.Name, b.Dx(), b.Dy(), e.Size, e.Size)
		}
	}

	small := decodePNG(t, filepath.Join(dir, "32x32.png"))
	for i := 3; i < len(small.Pix); i += 4 {
		if small.Pix[i] == 0 {
			t.Fatalf("32x32.png has zero alpha at pixel %d", i/4)
		}
	}

	frames := decodeICO(t, filepath.Join(dir, manifest.ICOFileName))
	if len(frames) != len(manifest.DefaultICO) {
		t.Fatalf("icon.ico has %d frames, want %d", len(frames), len(manifest.DefaultICO))
	}
	for i, d := range manifest.DefaultICO {
		if b := frames[i].Bounds(); b.Dx() != d || b.Dy() != d {
			t.Errorf("frame %d is %v, want %dx%d", i, b, d, d)
		}
	}

	for _, idx := range []int{0, len(frames) - 1} {
		d := manifest.DefaultICO[idx]
		direct, err := src.Image(d)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(raster.Normalize(frames[idx]).Pix, raster.Normalize(direct).Pix) {
			t.Errorf("ico frame %dx%d differs from a direct resample", d, d)
		}
	}
}

// pngColorType reads the color type byte of a PNG's IHDR chunk.
func pngColorType(t *testing.T, data []byte) byte {
	t.Helper()
	if len(data) < 26 || !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) || string(data[12:16]) != "IHDR" {
		t.Fatalf("not a PNG with a leading IHDR chunk")
	}
	return data[25]
}

func TestRunWritesRGBAForOpaqueSource(t *testing.T) {
	const colorTypeRGBA = 6
	dir := t.TempDir()
	if _, err := NewRunner(nil).Run(context.Background(), NewResampleSource(opaque(300), nil), defaultPlan(dir)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, e := range manifest.DefaultSizes {
		data, err := os.ReadFile(filepath.Join(dir, e.Name))
		if err != nil {
			t.Fatal(err)
		}
		if ct := pngColorType(t, data); ct != colorTypeRGBA {
			t.Errorf("%s color type = %d, want %d", e.Name, ct, colorTypeRGBA)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, manifest.ICOFileName))
	if err != nil {
		t.Fatal(err)
	}
	entries, err := ico.DecodeConfigAll(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(manifest.DefaultICO) {
		t.Fatalf("ico entries = %d, want %d", len(entries), len(manifest.DefaultICO))
	}
	for _, e := range entries {
		payload := data[e.Offset : e.Offset+e.Size]
		if ct := pngColorType(t, payload); ct != colorTypeRGBA {
			t.Errorf("ico %dx%d payload color type = %d, want %d", e.Width, e.Height, ct, colorTypeRGBA)
		}
		if e.BitsPerPixel != 32 {
			t.Errorf("ico %dx%d bpp = %d, want 32", e.Width, e.Height, e.BitsPerPixel)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	tests := []struct {
		name string
		src  func() Source
	}{
		{"resize", func() Source { return NewResampleSource(opaque(300), nil) }},
		{"logo", func() Source { return logo.Source{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan{
				Sizes: manifest.Sizes{{Name: "a.png", Size: 32}, {Name: "b.png", Size: 96}},
				ICO:   manifest.ICO{16, 32},
			}
			first, second := t.TempDir(), t.TempDir()
			for _, dir := range []string{first, second} {
				plan.OutputDir = dir
				if _, err := NewRunner(nil).Run(context.Background(), tt.src(), plan); err != nil {
					t.Fatalf("Run() error: %v", err)
				}
			}
			for _, name := range []string{"a.png", "b.png", manifest.ICOFileName} {
				a, err := os.ReadFile(filepath.Join(first, name))
				if err != nil {
					t.Fatal(err)
				}
				b, err := os.ReadFile(filepath.Join(second, name))
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(a, b) {
					t.Errorf("%s differs between runs", name)
				}
			}
		})
	}
}

func TestRunLogoDefaults(t *testing.T) {
	dir := t.TempDir()
	res, err := NewRunner(nil).Run(context.Background(), logo.Source{}, defaultPlan(dir))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(res.Files) != 6 {
		t.Fatalf("wrote %d files, want 6", len(res.Files))
	}

	big := decodePNG(t, filepath.Join(dir, "icon_1024.png"))
	if big.Bounds().Dx() != 1024 {
		t.Errorf("icon_1024.png width = %d", big.Bounds().Dx())
	}
	if a := big.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("icon_1024.png corner alpha = %d, want 0", a)
	}

	frames := decodeICO(t, filepath.Join(dir, manifest.ICOFileName))
	rendered, err := logo.Render(16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raster.Normalize(frames[0]).Pix, rendered.Pix) {
		t.Error("primary ico frame differs from a direct 16px render")
	}
}

func TestRunICNS(t *testing.T) {
	dir := t.TempDir()
	plan := Plan{
		OutputDir: dir,
		Sizes:     manifest.Sizes{{Name: "icon.png", Size: 512}},
		ICO:       manifest.ICO{16},
		ICNS:      true,
	}
	res, err := NewRunner(nil).Run(context.Background(), logo.Source{}, plan)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	last := res.Files[len(res.Files)-1]
	if last.Name != manifest.ICNSFileName || last.Kind != KindICNS || last.Pixels != 512 {
		t.Errorf("last artifact = %+v", last)
	}
	data, err := os.ReadFile(filepath.Join(dir, manifest.ICNSFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("icns")) {
		t.Errorf("icon.icns magic = %q", data[:4])
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		plan Plan
		src  Source
		code errors.Code
	}{
		{"missing dir", defaultPlan(filepath.Join(dir, "missing")), logo.Source{}, errors.ErrCodeWriteFailed},
		{"dir is a file", defaultPlan(file), logo.Source{}, errors.ErrCodeWriteFailed},
		{"empty dir", Plan{Sizes: manifest.DefaultSizes, ICO: manifest.DefaultICO}, logo.Source{}, errors.ErrCodeInvalidInput},
		{"bad manifest", Plan{OutputDir: dir, Sizes: manifest.Sizes{{Name: "a.png", Size: 0}}, ICO: manifest.DefaultICO}, logo.Source{}, errors.ErrCodeInvalidManifest},
		{"empty ico", Plan{OutputDir: dir, Sizes: manifest.DefaultSizes}, logo.Source{}, errors.ErrCodeInvalidManifest},
		{"source failure", defaultPlan(dir), failingSource{}, errors.ErrCodeInvalidImage},
		{"wrong size", defaultPlan(dir), fixedSource{size: 10}, errors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(nil).Run(context.Background(), tt.src, tt.plan)
			if err == nil {
				t.Fatal("Run() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Run() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewRunner(nil).Run(ctx, logo.Source{}, defaultPlan(dir))
	if err != context.Canceled {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(res.Files) != 0 {
		t.Errorf("canceled run wrote %v", res.Names())
	}
}

func TestRunHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	h := &recordingHooks{}
	observability.SetExportHooks(h)

	plan := Plan{OutputDir: t.TempDir(), Sizes: manifest.Sizes{{Name: "a.png", Size: 32}}, ICO: manifest.ICO{16}}
	if _, err := NewRunner(nil).Run(context.Background(), logo.Source{}, plan); err != nil {
		t.Fatal(err)
	}

	if h.started != 2 || h.completed != 1 || h.err != nil {
		t.Errorf("started=%d completed=%d err=%v", h.started, h.completed, h.err)
	}
	if len(h.written) != 2 || h.written[0] != "a.png" || h.written[1] != manifest.ICOFileName {
		t.Errorf("written = %v", h.written)
	}
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) Image(int) (image.Image, error) {
	return nil, errors.New(errors.ErrCodeInvalidImage, "broken")
}

type fixedSource struct{ size int }

func (fixedSource) Name() string { return "fixed" }
func (s fixedSource) Image(int) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, s.size, s.size)), nil
}

type recordingHooks struct {
	observability.NoopExportHooks
	started   int
	completed int
	err       error
	written   []string
}

func (h *recordingHooks) OnExportStart(_ context.Context, _ string, files int) {
	h.started = files
}

func (h *recordingHooks) OnFileWritten(_ context.Context, name string, _, _ int, _ time.Duration) {
	h.written = append(h.written, name)
}

func (h *recordingHooks) OnExportComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.completed++
	h.err = err
}
