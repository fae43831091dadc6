// SPDX-License-Identifier: MIT
// Package: pentasign/render
//
// svg.go — SVG document assembly.
//
// Contract:
//   - Layers are emitted in a fixed order; equal inputs ⇒ byte-identical output.
//   - Edge indices are not checked here; run Pattern.Validate on foreign input.

package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/katalvlaran/pentasign/glyph"
)

// Document builds the SVG element tree for p.
// Complexity: O(|nodes| + |edges|).
func Document(p glyph.Pattern, opts ...Option) *etree.Document {
	cfg := newConfig(opts...)
	half := ViewBoxSize / 2

	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", svgNamespace)
	root.CreateAttr("width", num(cfg.size))
	root.CreateAttr("height", num(cfg.size))
	root.CreateAttr("viewBox", strings.Join([]string{num(-half), num(-half), num(ViewBoxSize), num(ViewBoxSize)}, " "))

	// 1. background
	bg := root.CreateElement("path")
	bg.CreateAttr("fill", backgroundFill)
	bg.CreateAttr("d", "M "+num(-half)+" "+num(-half)+
		" L "+num(half)+" "+num(-half)+
		" L "+num(half)+" "+num(half)+
		" L "+num(-half)+" "+num(half)+" z")

	// 2. guides
	for i := 0; i < glyph.PentagonSides; i++ {
		x, y := polar(guideLength, glyph.VertexAngle(i))
		guide := addLine(root, 0, 0, x, y)
		guide.CreateAttr("stroke", guideColor)
		guide.CreateAttr("stroke-width", num(guideWidth))
	}

	// 3. edges
	for _, e := range p.Edges {
		a, b := p.Nodes[e.Start], p.Nodes[e.End]
		line := addLine(root, a.X, a.Y, b.X, b.Y)
		line.CreateAttr("stroke", Color(e.Color))
		line.CreateAttr("stroke-width", num(edgeWidth))
		line.CreateAttr("stroke-linecap", edgeLinecap)
	}

	// 4. nodes
	for _, n := range p.Nodes {
		addCircle(root, n.X, n.Y, nodeRadius, Palette[nodeFillIndex])
	}

	// 5. decorative dots
	for i := 0; i < dotCount; i++ {
		x, y := polar(dotOrbit, float64(i)*360/dotCount)
		addCircle(root, x, y, dotRadius, dotFill)
	}

	if cfg.indent > 0 {
		doc.Indent(cfg.indent)
	}
	return doc
}

// SVG renders p to a markup string.
func SVG(p glyph.Pattern, opts ...Option) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_, _ = Document(p, opts...).WriteTo(&sb)
	return sb.String()
}

// WriteSVG renders p to w.
func WriteSVG(w io.Writer, p glyph.Pattern, opts ...Option) error {
	_, err := Document(p, opts...).WriteTo(w)
	return err
}

func addLine(parent *etree.Element, x1, y1, x2, y2 float64) *etree.Element {
	line := parent.CreateElement("line")
	line.CreateAttr("x1", num(x1))
	line.CreateAttr("y1", num(y1))
	line.CreateAttr("x2", num(x2))
	line.CreateAttr("y2", num(y2))
	return line
}

func addCircle(parent *etree.Element, cx, cy, r float64, fill string) {
	c := parent.CreateElement("circle")
	c.CreateAttr("cx", num(cx))
	c.CreateAttr("cy", num(cy))
	c.CreateAttr("r", num(r))
	c.CreateAttr("fill", fill)
}

// num formats v with the shortest representation that round-trips.
func num(v float64) string {
	if v == 0 {
		// Avoid "-0" from cos/sin of exact multiples.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func polar(r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return r * math.Cos(rad), r * math.Sin(rad)
}
