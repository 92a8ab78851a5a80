// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// newCanvas returns a blank canvas for the image format named by the
// extension of path.
func newCanvas(path string) (vg.CanvasWriterTo, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "png":
		return vgimg.PngCanvas{Canvas: newImage()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: newImage()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: newImage()}, nil
	case "svg":
		return vgsvg.New(width, height), nil
	case "pdf":
		return vgpdf.New(width, height), nil
	}
	return nil, &FormatError{Path: path, Ext: ext}
}

func newImage() *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
}
