// layout.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package pin

import "github.com/grindlemire/go-pin/internal/geom"

// Value is a length that is either absolute or a percentage of the parent.
type Value = geom.Value

// Unit specifies how a Value is interpreted.
type Unit = geom.Unit

const (
	UnitFixed   = geom.UnitFixed
	UnitPercent = geom.UnitPercent
)

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an x/y coordinate.
type Point = geom.Point

// Insets represents spacing on four sides (top, left, bottom, right).
type Insets = geom.Insets

// DirectionalInsets are insets whose horizontal sides follow the layout
// direction.
type DirectionalInsets = geom.DirectionalInsets

// Affine is a 2D affine transform.
type Affine = geom.Affine

// AnchorPoint names one of the nine anchor points of a rectangle.
type AnchorPoint = geom.AnchorPoint

const (
	TopLeftPoint      = geom.TopLeft
	TopCenterPoint    = geom.TopCenter
	TopRightPoint     = geom.TopRight
	CenterLeftPoint   = geom.CenterLeft
	CenterPoint       = geom.Center
	CenterRightPoint  = geom.CenterRight
	BottomLeftPoint   = geom.BottomLeft
	BottomCenterPoint = geom.BottomCenter
	BottomRightPoint  = geom.BottomRight
)

// Fixed creates an absolute Value.
func Fixed(n float64) Value {
	return geom.Fixed(n)
}

// Percent creates a Value relative to the parent's extent on the same axis.
func Percent(p float64) Value {
	return geom.Percent(p)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// Sz creates a Size.
func Sz(width, height float64) Size {
	return geom.Sz(width, height)
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// InsetsAll creates Insets with the same value on every side.
func InsetsAll(v float64) Insets {
	return geom.InsetsAll(v)
}

// Identity returns the identity transform.
func Identity() Affine {
	return geom.Identity()
}
