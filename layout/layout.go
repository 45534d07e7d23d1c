// Package layout places pointy-top hex cells in pixel space for renderers.
package layout

import (
	"github.com/gravitas-015/hexgrid/hex"
)

// Layout maps grid cells to pixels. Size is the hex radius (center to
// corner) in pixels; Origin is the pixel position of axial (0, 0).
type Layout struct {
	Size   float64
	Origin hex.Point
}

// New returns a layout with the given size and origin.
func New(size float64, origin hex.Point) Layout {
	return Layout{Size: size, Origin: origin}
}

// ToPixel returns the pixel center of a.
func (l Layout) ToPixel(a hex.Axial) hex.Point {
	x, y := hex.AxialToPixel(a, l.Size)
	return l.Origin.Add(hex.Point{X: x, Y: y})
}

// Corners returns the six corners of a, starting at 30 degrees and
// proceeding in increasing angle.
func (l Layout) Corners(a hex.Axial) [6]hex.Point {
	center := l.ToPixel(a)
	var out [6]hex.Point
	for i := range out {
		out[i] = hex.Corner(center, l.Size, i)
	}
	return out
}

// FromPixel returns the cell containing p.
func (l Layout) FromPixel(p hex.Point) hex.Axial {
	local := p.Sub(l.Origin)
	return hex.PixelToFrac(local.X, local.Y, l.Size).Round().ToAxial()
}

// Line returns the pixel centers of the cells on the line from one cell
// to another, endpoint included.
func (l Layout) Line(from, to hex.Axial) []hex.Point {
	cells := hex.LineDrawInclusive(from.ToCube(), to.ToCube())
	out := make([]hex.Point, len(cells))
	for i, c := range cells {
		out[i] = l.ToPixel(c.ToAxial())
	}
	return out
}
