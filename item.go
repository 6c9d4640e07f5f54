package pin

import "fmt"

// Item is a rectangular element positioned inside a parent coordinate
// space. Implementations must be comparable (usually a pointer) so that
// superview chains can be matched.
type Item interface {
	// Frame returns the item's frame in its superview's coordinate space.
	Frame() Rect

	// Superview returns the containing item, or nil for a root.
	Superview() Item

	// SizeThatFits returns the content-preferred size for a candidate size.
	// An unbounded dimension is passed as math.MaxFloat64.
	SizeThatFits(Size) Size

	// SetFrame writes the resolved frame back. When keepTransform is true
	// any visual transform on the item is preserved, otherwise it is reset.
	SetFrame(frame Rect, keepTransform bool)
}

// ImageSizer is implemented by items that display an image with an
// intrinsic size.
type ImageSizer interface {
	// ImageSize returns the image's size, or false if no image is set.
	ImageSize() (Size, bool)
}

// Namer is implemented by items that carry a name for diagnostics.
type Namer interface {
	Name() string
}

// Direction is the horizontal layout direction.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection parses "ltr" or "rtl".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr", "":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("unknown layout direction %q", s)
}

func describe(it Item) string {
	if it == nil {
		return "<nil>"
	}
	if n, ok := it.(Namer); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", it)
}

// parentRect is the item's superview bounds in the superview's own space.
func parentRect(it Item) (Rect, bool) {
	sv := it.Superview()
	if sv == nil {
		return Rect{}, false
	}
	return Rect{Width: sv.Frame().Width, Height: sv.Frame().Height}, true
}

// rootOffset returns the root item of the tree that space belongs to and the
// offset that converts a point in space's child coordinates into the root's
// child coordinates.
func rootOffset(space Item) (Item, Point) {
	var off Point
	for {
		sv := space.Superview()
		if sv == nil {
			return space, off
		}
		off = off.Add(space.Frame().Origin())
		space = sv
	}
}

// convertFrame returns ref's frame expressed in the coordinate space of
// target's superview. It fails when either item has no superview or the two
// belong to different trees.
func convertFrame(ref, target Item) (Rect, bool) {
	refSpace, dstSpace := ref.Superview(), target.Superview()
	if refSpace == nil || dstSpace == nil {
		return Rect{}, false
	}
	frame := ref.Frame()
	if refSpace == dstSpace {
		return frame, true
	}
	refRoot, refOff := rootOffset(refSpace)
	dstRoot, dstOff := rootOffset(dstSpace)
	if refRoot != dstRoot {
		return Rect{}, false
	}
	d := refOff.Sub(dstOff)
	return frame.Translate(d.X, d.Y), true
}
