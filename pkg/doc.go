// Package pkg provides the libraries behind the iconforge icon generator.
//
// # Overview
//
// iconforge turns a single logo into the icon files a desktop application
// bundle expects: a fixed set of square PNGs plus a multi-resolution
// icon.ico. The logo either comes from an existing image that is resampled,
// or is drawn from vector primitives at every target size.
//
// # Architecture
//
// The data flow of one run:
//
//	source PNG ──[raster]──┐
//	                       ├──> [export.Source] ──[export]──> PNGs + icon.ico (+ icon.icns)
//	vector logo ──[logo]───┘                          │
//	                                                  └──[ico]
//
// # Main Packages
//
//   - [manifest]: the ordered PNG size manifest and the ICO frame list
//   - [raster]: loading, RGBA normalization and pluggable resampling backends
//   - [logo]: geometry and rendering of the synthetic brain logo
//   - [ico]: the ICO container writer and reader
//   - [export]: runs a plan against a source and writes the files
//   - [config]: TOML configuration with built-in defaults
//   - [errors]: coded errors shared by all packages
//   - [observability]: hooks fired as files are written
//   - [buildinfo]: version metadata injected at build time
//
// # Quick Start
//
//	img, _ := raster.Load("logo.png")
//	src := export.NewResampleSource(img, nil)
//	res, err := export.NewRunner(nil).Run(ctx, src, export.Plan{
//	    OutputDir: "icons",
//	    Sizes:     manifest.DefaultSizes,
//	    ICO:       manifest.DefaultICO,
//	})
//
// [manifest]: github.com/matzehuels/iconforge/pkg/manifest
// [raster]: github.com/matzehuels/iconforge/pkg/raster
// [logo]: github.com/matzehuels/iconforge/pkg/logo
// [ico]: github.com/matzehuels/iconforge/pkg/ico
// [export]: github.com/matzehuels/iconforge/pkg/export
// [config]: github.com/matzehuels/iconforge/pkg/config
// [errors]: github.com/matzehuels/iconforge/pkg/errors
// [observability]: github.com/matzehuels/iconforge/pkg/observability
// [buildinfo]: github.com/matzehuels/iconforge/pkg/buildinfo
package pkg
