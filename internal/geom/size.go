package geom

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// AspectRatio returns Width/Height. The second result is false when the
// ratio is undefined or not positive.
func (s Size) AspectRatio() (float64, bool) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, false
	}
	return s.Width / s.Height, true
}
