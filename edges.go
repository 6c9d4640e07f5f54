package pin

import (
	"github.com/grindlemire/go-pin/internal/geom"
	"github.com/grindlemire/go-pin/internal/resolve"
)

// Coordinate setters. Values are in the superview's coordinate space;
// right and bottom are the coordinates of those edges.

func (l *Layout) setTop(c float64)     { resolve.Set(&l.state.Top, c) }
func (l *Layout) setLeft(c float64)    { resolve.Set(&l.state.Left, c) }
func (l *Layout) setBottom(c float64)  { resolve.Set(&l.state.Bottom, c) }
func (l *Layout) setRight(c float64)   { resolve.Set(&l.state.Right, c) }
func (l *Layout) setHCenter(c float64) { resolve.Set(&l.state.HCenter, c) }
func (l *Layout) setVCenter(c float64) { resolve.Set(&l.state.VCenter, c) }

func (l *Layout) setStart(c float64, rtl bool) {
	if rtl {
		l.setRight(c)
	} else {
		l.setLeft(c)
	}
}

func (l *Layout) setEnd(c float64, rtl bool) {
	if rtl {
		l.setLeft(c)
	} else {
		l.setRight(c)
	}
}

// setAnchor positions the item's own anchor point a at p.
func (l *Layout) setAnchor(a geom.AnchorPoint, p Point) {
	switch a / 3 {
	case 0:
		l.setTop(p.Y)
	case 1:
		l.setVCenter(p.Y)
	default:
		l.setBottom(p.Y)
	}
	switch a % 3 {
	case 0:
		l.setLeft(p.X)
	case 1:
		l.setHCenter(p.X)
	default:
		l.setRight(p.X)
	}
}

func (l *Layout) top(directive string, v Value) {
	if c, ok := l.vValue(directive, v); ok {
		l.setTop(c)
	}
}

func (l *Layout) left(directive string, v Value) {
	if c, ok := l.hValue(directive, v); ok {
		l.setLeft(c)
	}
}

func (l *Layout) bottom(directive string, v Value) {
	if p, ok := l.parent(directive); ok {
		l.setBottom(p.Height - v.Of(p.Height))
	}
}

func (l *Layout) right(directive string, v Value) {
	if p, ok := l.parent(directive); ok {
		l.setRight(p.Width - v.Of(p.Width))
	}
}

// Top sets the distance between the item's top edge and the superview's.
func (l *Layout) Top(v Value) *Layout {
	l.top(call("top", v), v)
	return l
}

// Left sets the distance between the item's left edge and the superview's.
func (l *Layout) Left(v Value) *Layout {
	l.left(call("left", v), v)
	return l
}

// Bottom sets the distance between the item's bottom edge and the
// superview's.
func (l *Layout) Bottom(v Value) *Layout {
	l.bottom(call("bottom", v), v)
	return l
}

// Right sets the distance between the item's right edge and the
// superview's.
func (l *Layout) Right(v Value) *Layout {
	l.right(call("right", v), v)
	return l
}

// Start is Left in LTR and Right in RTL.
func (l *Layout) Start(v Value) *Layout {
	if l.rtl() {
		l.right(call("start", v), v)
	} else {
		l.left(call("start", v), v)
	}
	return l
}

// End is Right in LTR and Left in RTL.
func (l *Layout) End(v Value) *Layout {
	if l.rtl() {
		l.left(call("end", v), v)
	} else {
		l.right(call("end", v), v)
	}
	return l
}

// HCenter places the item's horizontal center v away from the superview's.
func (l *Layout) HCenter(v Value) *Layout {
	if p, ok := l.parent(call("hCenter", v)); ok {
		l.setHCenter(p.Width/2 + v.Of(p.Width))
	}
	return l
}

// VCenter places the item's vertical center v away from the superview's.
func (l *Layout) VCenter(v Value) *Layout {
	if p, ok := l.parent(call("vCenter", v)); ok {
		l.setVCenter(p.Height/2 + v.Of(p.Height))
	}
	return l
}

// TopInsets is Top with the insets' top value.
func (l *Layout) TopInsets(in Insets) *Layout {
	l.setTop(in.Top)
	return l
}

// LeftInsets is Left with the insets' left value.
func (l *Layout) LeftInsets(in Insets) *Layout {
	l.setLeft(in.Left)
	return l
}

// BottomInsets is Bottom with the insets' bottom value.
func (l *Layout) BottomInsets(in Insets) *Layout {
	l.bottom(call("bottom", in), Fixed(in.Bottom))
	return l
}

// RightInsets is Right with the insets' right value.
func (l *Layout) RightInsets(in Insets) *Layout {
	l.right(call("right", in), Fixed(in.Right))
	return l
}

// StartInsets is LeftInsets in LTR and RightInsets in RTL.
func (l *Layout) StartInsets(in Insets) *Layout {
	if l.rtl() {
		l.right(call("start", in), Fixed(in.Right))
	} else {
		l.setLeft(in.Left)
	}
	return l
}

// EndInsets is RightInsets in LTR and LeftInsets in RTL.
func (l *Layout) EndInsets(in Insets) *Layout {
	if l.rtl() {
		l.setLeft(in.Left)
	} else {
		l.right(call("end", in), Fixed(in.Right))
	}
	return l
}

// All pins the four edges v away from the superview's edges.
func (l *Layout) All(v Value) *Layout {
	name := call("all", v)
	l.top(name, v)
	l.bottom(name, v)
	l.left(name, v)
	l.right(name, v)
	return l
}

// AllInsets pins the four edges to the superview inset by in.
func (l *Layout) AllInsets(in Insets) *Layout {
	return l.VerticallyInsets(in).HorizontallyInsets(in)
}

// Horizontally pins the left and right edges v away from the superview's.
func (l *Layout) Horizontally(v Value) *Layout {
	name := call("horizontally", v)
	l.left(name, v)
	l.right(name, v)
	return l
}

// Vertically pins the top and bottom edges v away from the superview's.
func (l *Layout) Vertically(v Value) *Layout {
	name := call("vertically", v)
	l.top(name, v)
	l.bottom(name, v)
	return l
}

// HorizontallyInsets pins the left and right edges inset by in.
func (l *Layout) HorizontallyInsets(in Insets) *Layout {
	l.setLeft(in.Left)
	l.right(call("horizontally", in), Fixed(in.Right))
	return l
}

// VerticallyInsets pins the top and bottom edges inset by in.
func (l *Layout) VerticallyInsets(in Insets) *Layout {
	l.setTop(in.Top)
	l.bottom(call("vertically", in), Fixed(in.Bottom))
	return l
}

// parentAnchor positions the item's anchor a on the superview's anchor a.
// Start and end anchors are mirrored in RTL.
func (l *Layout) parentAnchor(name string, a geom.AnchorPoint, directional bool) *Layout {
	if directional && l.rtl() {
		a = a.Mirror()
	}
	if p, ok := l.parent(name + "()"); ok {
		l.setAnchor(a, p.Anchor(a))
	}
	return l
}

// TopLeft pins the item's top-left corner to the superview's.
func (l *Layout) TopLeft() *Layout { return l.parentAnchor("topLeft", geom.TopLeft, false) }

// TopCenter pins the item's top-center point to the superview's.
func (l *Layout) TopCenter() *Layout { return l.parentAnchor("topCenter", geom.TopCenter, false) }

// TopRight pins the item's top-right corner to the superview's.
func (l *Layout) TopRight() *Layout { return l.parentAnchor("topRight", geom.TopRight, false) }

// TopStart is TopLeft in LTR and TopRight in RTL.
func (l *Layout) TopStart() *Layout { return l.parentAnchor("topStart", geom.TopLeft, true) }

// TopEnd is TopRight in LTR and TopLeft in RTL.
func (l *Layout) TopEnd() *Layout { return l.parentAnchor("topEnd", geom.TopRight, true) }

// CenterLeft pins the item's center-left point to the superview's.
func (l *Layout) CenterLeft() *Layout { return l.parentAnchor("centerLeft", geom.CenterLeft, false) }

// Center centers the item in the superview.
func (l *Layout) Center() *Layout { return l.parentAnchor("center", geom.Center, false) }

// CenterRight pins the item's center-right point to the superview's.
func (l *Layout) CenterRight() *Layout { return l.parentAnchor("centerRight", geom.CenterRight, false) }

// CenterStart is CenterLeft in LTR and CenterRight in RTL.
func (l *Layout) CenterStart() *Layout { return l.parentAnchor("centerStart", geom.CenterLeft, true) }

// CenterEnd is CenterRight in LTR and CenterLeft in RTL.
func (l *Layout) CenterEnd() *Layout { return l.parentAnchor("centerEnd", geom.CenterRight, true) }

// BottomLeft pins the item's bottom-left corner to the superview's.
func (l *Layout) BottomLeft() *Layout { return l.parentAnchor("bottomLeft", geom.BottomLeft, false) }

// BottomCenter pins the item's bottom-center point to the superview's.
func (l *Layout) BottomCenter() *Layout {
	return l.parentAnchor("bottomCenter", geom.BottomCenter, false)
}

// BottomRight pins the item's bottom-right corner to the superview's.
func (l *Layout) BottomRight() *Layout { return l.parentAnchor("bottomRight", geom.BottomRight, false) }

// BottomStart is BottomLeft in LTR and BottomRight in RTL.
func (l *Layout) BottomStart() *Layout { return l.parentAnchor("bottomStart", geom.BottomLeft, true) }

// BottomEnd is BottomRight in LTR and BottomLeft in RTL.
func (l *Layout) BottomEnd() *Layout { return l.parentAnchor("bottomEnd", geom.BottomRight, true) }
