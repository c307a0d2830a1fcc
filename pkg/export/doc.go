// Package export fans one image source out into the icon file set.
//
// A [Runner] walks a [Plan]: one PNG per size-manifest entry, then one
// multi-resolution ICO built from the container manifest, and optionally a
// macOS ICNS bundle. Every image comes from a [Source], asked once per size,
// so a resampling source and a procedural renderer share the same driver.
//
//	src, err := export.NewResampleSource(img, resampler)
//	res, err := export.NewRunner(logger).Run(ctx, src, export.Plan{
//	    OutputDir: dir,
//	    Sizes:     manifest.DefaultSizes,
//	    ICO:       manifest.DefaultICO,
//	})
//
// Runs are sequential and stop at the first failure; files written before the
// failure stay on disk. The output directory must already exist. Given the
// same source, a run produces byte-identical files.
package export
