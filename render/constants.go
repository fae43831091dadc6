// SPDX-License-Identifier: MIT
// Package: pentasign/render
//
// constants.go — palette, frame and layer styling.

package render

// Palette is the fixed edge/node palette, indexed by color%PaletteSize.
// Entry 3 (white) is also the node fill.
var Palette = [...]string{"#C69572", "#94B4C6", "#4A6C82", "#F2F4F6", "#888888"}

const (
	// ViewBoxSize is the side of the logical frame.
	ViewBoxSize = 220.0
	// DefaultSize is the output width/height when WithSize is not given.
	DefaultSize = ViewBoxSize

	svgNamespace = "http://www.w3.org/2000/svg"

	backgroundFill = "#050505"

	guideColor  = "#222"
	guideWidth  = 0.5
	guideLength = 100.0

	edgeWidth   = 1.2
	edgeLinecap = "round"

	nodeRadius    = 1.8
	nodeFillIndex = 3

	dotCount  = 3
	dotOrbit  = 12.0
	dotRadius = 1.5
	dotFill   = "#666"
)

// Color returns the palette entry for a color index; negative indices wrap.
func Color(index int) string {
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}
