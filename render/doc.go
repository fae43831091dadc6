// Package render turns a glyph.Pattern into a self-contained SVG document.
//
// The logical frame is fixed at 220×220 centered on the origin
// (viewBox "-110 -110 220 220"); only the width/height attributes follow the
// requested output size. Layers are emitted bottom to top:
//
//  1. a dark background square covering the frame;
//  2. five faint guide lines from the origin to the pentagon vertices;
//  3. one line per edge, stroked with Palette[color%5], in edge order;
//  4. one small white circle per node, in node order;
//  5. three fixed decorative dots at radius 12 and angles 0°, 120°, 240°.
//
// Rendering is pure and deterministic. It performs no validation: edges must
// reference existing nodes (see glyph.Pattern.Validate for untrusted input).
package render
