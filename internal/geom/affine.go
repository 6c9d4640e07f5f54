package geom

import "math"

// Affine represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a translation transform.
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a rotation transform around the origin.
func Rotation(radians float64) Affine {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// IsIdentity returns true if the transform leaves every point unchanged.
func (t Affine) IsIdentity() bool {
	return t == Identity()
}

// Apply applies the transform to a point.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns this transform composed with another (this * other).
func (t Affine) Compose(other Affine) Affine {
	return Affine{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// BoundingBox applies the transform to r around its center and returns the
// axis-aligned box enclosing the result. This is the visual frame of a
// transformed item.
func (t Affine) BoundingBox(r Rect) Rect {
	if t.IsIdentity() {
		return r
	}
	c := r.Center()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, a := range []AnchorPoint{TopLeft, TopRight, BottomLeft, BottomRight} {
		p := t.Apply(r.Anchor(a).Sub(c)).Add(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
