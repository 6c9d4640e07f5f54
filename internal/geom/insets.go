package geom

// Insets represents values for four sides of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetsAll creates Insets with the same value on all sides.
func InsetsAll(n float64) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetsSymmetric creates Insets with vertical (top/bottom) and horizontal (left/right) values.
func InsetsSymmetric(v, h float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the sum of Left and Right.
func (e Insets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Insets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Insets) IsZero() bool {
	return e.Top == 0 && e.Left == 0 && e.Bottom == 0 && e.Right == 0
}

// DirectionalInsets names its horizontal sides by reading direction
// rather than by screen side.
type DirectionalInsets struct {
	Top, Leading, Bottom, Trailing float64
}

// Resolve maps leading/trailing to left/right for the given direction.
func (d DirectionalInsets) Resolve(rtl bool) Insets {
	if rtl {
		return Insets{Top: d.Top, Left: d.Trailing, Bottom: d.Bottom, Right: d.Leading}
	}
	return Insets{Top: d.Top, Left: d.Leading, Bottom: d.Bottom, Right: d.Trailing}
}
