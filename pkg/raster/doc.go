// Package raster loads source images and produces square resampled copies.
//
// # Loading
//
// [Load] decodes PNG, JPEG, GIF, BMP, TIFF and WebP files. A missing file
// reports FILE_NOT_FOUND; anything the codecs reject reports INVALID_IMAGE.
//
// # Normalization
//
// [Normalize] returns an *image.NRGBA view of any image so every exported
// derivative carries an alpha channel. Opaque sources come out with alpha
// 255 everywhere.
//
// # Resampling
//
// A [Resampler] turns a source into a size×size *image.NRGBA. Three backends
// are available through [NewResampler]:
//
//   - "imaging" (default): github.com/disintegration/imaging
//   - "nfnt": github.com/nfnt/resize
//   - "xdraw": golang.org/x/image/draw kernels
//
// Each backend accepts the filter names in [Filters]; "lanczos" is the default
// and matches the original icon pipeline. Not every backend implements every
// filter; unsupported pairs report UNSUPPORTED.
//
//	r, err := raster.NewResampler(raster.BackendImaging, raster.FilterLanczos)
//	icon, err := r.Resample(src, 256)
//
// All backends are deterministic: the same source and size give the same pixels.
package raster
