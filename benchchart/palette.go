// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import "image/color"

// A Style is the pair of colors used to draw one series: the line
// and marker edge color, and the marker fill color.
type Style struct {
	Line color.Color
	Fill color.Color
}

// palette is the fixed sequence of series styles. Series i is drawn
// with palette[i%len(palette)], so the assignment depends only on the
// position of a group in the collection, never on its key.
//
// Entries 1 and 3 are the same on purpose; charts of the experiment
// suite have always looked this way.
var palette = [...]Style{
	{Line: rgb(0x00, 0x00, 0x8b), Fill: rgb(0x00, 0x00, 0x80)}, // darkblue, navy
	{Line: rgb(0xfa, 0x80, 0x72), Fill: rgb(0xf0, 0x80, 0x80)}, // salmon, lightcoral
	{Line: rgb(0xeb, 0xe2, 0x34), Fill: rgb(0xf5, 0xd5, 0x76)},
	{Line: rgb(0xfa, 0x80, 0x72), Fill: rgb(0xf0, 0x80, 0x80)}, // salmon, lightcoral
	{Line: rgb(0x20, 0xb2, 0xaa), Fill: rgb(0x00, 0xce, 0xd1)}, // lightseagreen, darkturquoise
}

// StyleAt returns the style of the i'th series of a chart.
func StyleAt(i int) Style {
	return palette[i%len(palette)]
}

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{r, g, b, 0xff}
}
