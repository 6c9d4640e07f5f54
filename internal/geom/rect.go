package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Rect represents an axis-aligned rectangle in its parent's coordinate space.
// X and Y are the top-left corner; Width and Height are dimensions.
// Width and Height may be negative while a frame is being computed.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize returns a Rect at the origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// MidX returns the x-coordinate of the vertical center line.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the y-coordinate of the horizontal center line.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// WithTop moves the rect so its top edge is at y.
func (r Rect) WithTop(y float64) Rect {
	r.Y = y
	return r
}

// WithLeft moves the rect so its left edge is at x.
func (r Rect) WithLeft(x float64) Rect {
	r.X = x
	return r
}

// WithBottom moves the rect so its bottom edge is at y.
func (r Rect) WithBottom(y float64) Rect {
	r.Y = y - r.Height
	return r
}

// WithRight moves the rect so its right edge is at x.
func (r Rect) WithRight(x float64) Rect {
	r.X = x - r.Width
	return r
}

// WithMidX moves the rect so its vertical center line is at x.
func (r Rect) WithMidX(x float64) Rect {
	r.X = x - r.Width/2
	return r
}

// WithMidY moves the rect so its horizontal center line is at y.
func (r Rect) WithMidY(y float64) Rect {
	r.Y = y - r.Height/2
	return r
}

// Anchor returns the coordinates of one of the nine anchor points.
func (r Rect) Anchor(a AnchorPoint) Point {
	return Point{X: r.X + r.Width*a.fx(), Y: r.Y + r.Height*a.fy()}
}

// WithAnchor moves the rect so the given anchor point lands on p.
func (r Rect) WithAnchor(a AnchorPoint, p Point) Rect {
	r.X = p.X - r.Width*a.fx()
	r.Y = p.Y - r.Height*a.fy()
	return r
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns a new Rect inset by the given Insets.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Outset returns a new Rect expanded outward by the given Insets.
func (r Rect) Outset(in Insets) Rect {
	return Rect{
		X:      r.X - in.Left,
		Y:      r.Y - in.Top,
		Width:  r.Width + in.Left + in.Right,
		Height: r.Height + in.Top + in.Bottom,
	}
}

// Union returns the smallest rectangle that contains both rectangles.
// Unlike an intersection, empty rectangles still contribute their position:
// a zero-sized sibling is a valid reference line.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// ClampSize returns the rect with negative dimensions replaced by zero.
func (r Rect) ClampSize() Rect {
	r.Width = math.Max(r.Width, 0)
	r.Height = math.Max(r.Height, 0)
	return r
}

// Round snaps the four edges to the pixel grid of the given display scale
// (2 means half-unit precision), so no edge moves by more than half a pixel.
// A scale <= 0 returns r unchanged.
func (r Rect) Round(scale float64) Rect {
	if scale <= 0 {
		return r
	}
	snap := func(v float64) float64 { return math.Round(v*scale) / scale }
	x, y := snap(r.X), snap(r.Y)
	return Rect{X: x, Y: y, Width: snap(r.Right()) - x, Height: snap(r.Bottom()) - y}
}

// ApproxEqual reports whether every component of r is within tol of other.
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return scalar.EqualWithinAbs(r.X, other.X, tol) &&
		scalar.EqualWithinAbs(r.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(r.Width, other.Width, tol) &&
		scalar.EqualWithinAbs(r.Height, other.Height, tol)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}
