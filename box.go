package rtree

import (
	"math"
	"strconv"
)

// A Box is an axis-aligned bounding rectangle described by its minimum
// and maximum corner coordinates. Callers are expected, but not
// required, to keep XMin <= XMax and YMin <= YMax: degenerate and
// inverted boxes are legal inputs to every operation in this package.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty box. It is the identity value for the Expand
// operation: expanding any box by EmptyBox leaves the box unchanged,
// and expanding EmptyBox by any box produces that box. Use it as the
// start value when folding Expand over a list of boxes.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the box width, XMax - XMin.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the box height, YMax - YMin.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

// Area returns the signed area of the box, Width times Height. The
// result is zero for a degenerate box and may be negative for an
// inverted one. It is not clamped.
func (b *Box) Area() float64 {
	return b.Width() * b.Height()
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Overlaps reports whether b and c share interior area. The test uses
// strict inequalities, so two boxes that merely touch along an edge or
// at a corner do not overlap: b.XMin >= c.XMax counts as separation.
func (b *Box) Overlaps(c *Box) bool {
	return !(b.XMin >= c.XMax || b.XMax <= c.XMin ||
		b.YMin >= c.YMax || b.YMax <= c.YMin)
}

// Expand grows b in place to the minimum bounding rectangle of b and
// c. The parameter box is not modified. Repeated expansion is
// commutative and associative in effect: the final union of a set of
// boxes does not depend on the order they are folded in.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b in place to the minimum bounding rectangle of b and
// the point (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// String returns a compact text representation of the box in the form
// [XMin,YMin,XMax,YMax].
func (b Box) String() string {
	s := make([]byte, 0, 64)
	s = append(s, '[')
	s = strconv.AppendFloat(s, b.XMin, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.YMin, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.XMax, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.YMax, 'g', 8, 64)
	s = append(s, ']')
	return string(s)
}

// enlargement returns the increase in area b would suffer if expanded
// to include c.
func enlargement(b, c *Box) float64 {
	u := *b
	u.Expand(c)
	return u.Area() - b.Area()
}
