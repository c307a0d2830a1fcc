package export

import (
	"bytes"
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jackmordaunt/icns/v3"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/ico"
	"github.com/matzehuels/iconforge/pkg/manifest"
	"github.com/matzehuels/iconforge/pkg/observability"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// Kinds of artifacts a run writes.
const (
	KindPNG  = "png"
	KindICO  = "ico"
	KindICNS = "icns"
)

// defaultICNSSize is used for the ICNS bundle when the size manifest is empty.
const defaultICNSSize = 1024

// Plan describes one export run.
type Plan struct {
	OutputDir string
	Sizes     manifest.Sizes
	ICO       manifest.ICO
	// ICNS also writes icon.icns from the largest size-manifest image.
	ICNS bool
}

// Validate checks the manifests. It does not touch the filesystem.
func (p Plan) Validate() error {
	if p.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}
	if err := p.Sizes.Validate(); err != nil {
		return err
	}
	return p.ICO.Validate()
}

// Artifact is one file written by a run.
type Artifact struct {
	Name   string // file name inside the output directory
	Path   string // full path
	Kind   string // KindPNG, KindICO or KindICNS
	Pixels int    // square dimension; 0 for multi-frame containers
	Bytes  int
}

// Result lists the files of a completed run in write order.
type Result struct {
	Files    []Artifact
	Duration time.Duration
}

// Names returns the artifact file names in write order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Files))
	for i, f := range r.Files {
		names[i] = f.Name
	}
	return names
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter registers fn to be called after each file is written.
func WithReporter(fn func(Artifact)) Option {
	return func(r *Runner) { r.report = fn }
}

// Runner executes export plans.
type Runner struct {
	logger *log.Logger
	report func(Artifact)
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(logger *log.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{logger: logger, report: func(Artifact) {}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run writes every file in plan using images from src.
func (r *Runner) Run(ctx context.Context, src Source, plan Plan) (res *Result, err error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if err := checkOutputDir(plan.OutputDir); err != nil {
		return nil, err
	}

	hooks := observability.Export()
	start := time.Now()
	res = &Result{}
	hooks.OnExportStart(ctx, src.Name(), r.fileCount(plan))
	defer func() {
		res.Duration = time.Since(start)
		hooks.OnExportComplete(ctx, src.Name(), len(res.Files), res.Duration, err)
	}()

	r.logger.Debug("Starting export", "source", src.Name(), "dir", plan.OutputDir)

	for _, e := range plan.Sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		img, err := squareImage(src, e.Size)
		if err != nil {
			return res, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInternal), err, "produce %s", e.Name)
		}
		data, err := raster.PNGBytes(img)
		if err != nil {
			return res, err
		}
		if err := r.write(ctx, res, plan.OutputDir, e.Name, KindPNG, e.Size, data); err != nil {
			return res, err
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	data, err := r.buildICO(src, plan.ICO)
	if err != nil {
		return res, err
	}
	if err := r.write(ctx, res, plan.OutputDir, manifest.ICOFileName, KindICO, 0, data); err != nil {
		return res, err
	}

	if plan.ICNS {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		size := defaultICNSSize
		if e, ok := plan.Sizes.Largest(); ok {
			size = e.Size
		}
		data, err := buildICNS(src, size)
		if err != nil {
			return res, err
		}
		if err := r.write(ctx, res, plan.OutputDir, manifest.ICNSFileName, KindICNS, size, data); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (r *Runner) fileCount(plan Plan) int {
	n := len(plan.Sizes) + 1
	if plan.ICNS {
		n++
	}
	return n
}

// buildICO produces every frame from src, primary first, and encodes them.
func (r *Runner) buildICO(src Source, dims manifest.ICO) ([]byte, error) {
	frames := make([]image.Image, len(dims))
	for i, d := range dims {
		img, err := squareImage(src, d)
		if err != nil {
			return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInternal), err, "produce %dx%d ico frame", d, d)
		}
		frames[i] = img
	}
	r.logger.Debug("Encoding icon container", "frames", dims.String())

	var buf bytes.Buffer
	if err := ico.Encode(&buf, frames); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s", manifest.ICOFileName)
	}
	return buf.Bytes(), nil
}

func buildICNS(src Source, size int) ([]byte, error) {
	img, err := squareImage(src, size)
	if err != nil {
		return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInternal), err, "produce icns source")
	}
	var buf bytes.Buffer
	if err := icns.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s", manifest.ICNSFileName)
	}
	return buf.Bytes(), nil
}

// squareImage asks src for an image and holds it to the size contract.
func squareImage(src Source, size int) (image.Image, error) {
	img, err := src.Image(size)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return nil, errors.New(errors.ErrCodeInternal, "source %s returned %dx%d for size %d", src.Name(), b.Dx(), b.Dy(), size)
	}
	return img, nil
}

func (r *Runner) write(ctx context.Context, res *Result, dir, name, kind string, pixels int, data []byte) error {
	start := time.Now()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}

	a := Artifact{Name: name, Path: path, Kind: kind, Pixels: pixels, Bytes: len(data)}
	res.Files = append(res.Files, a)
	observability.Export().OnFileWritten(ctx, name, pixels, len(data), time.Since(start))
	r.report(a)
	return nil
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "output directory %s", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeWriteFailed, "output path %s is not a directory", dir)
	}
	return nil
}

