package pin

import (
	"github.com/grindlemire/go-pin/internal/resolve"
)

// HAlign is a horizontal alignment. Start and end follow the layout
// direction.
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignStart
	HAlignEnd
)

var hAlignNames = [...]string{"left", "center", "right", "start", "end"}

func (a HAlign) String() string {
	if int(a) < len(hAlignNames) {
		return hAlignNames[a]
	}
	return "unknown"
}

// resolved maps start and end to left or right.
func (a HAlign) resolved(rtl bool) resolve.HAlign {
	switch a {
	case HAlignCenter:
		return resolve.HAlignCenter
	case HAlignRight:
		return resolve.HAlignRight
	case HAlignStart:
		if rtl {
			return resolve.HAlignRight
		}
	case HAlignEnd:
		if !rtl {
			return resolve.HAlignRight
		}
	}
	return resolve.HAlignLeft
}

// VAlign is a vertical alignment.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

var vAlignNames = [...]string{"top", "center", "bottom"}

func (a VAlign) String() string {
	if int(a) < len(vAlignNames) {
		return vAlignNames[a]
	}
	return "unknown"
}

// Justify places the item horizontally against the siblings of the most
// recent Above or Below. It has no effect without one, or when a horizontal
// position is set explicitly.
func (l *Layout) Justify(a HAlign) *Layout {
	j := a.resolved(l.rtl())
	l.state.Justify = &j
	return l
}

// Align places the item vertically against the siblings of the most recent
// LeftOf, RightOf, Before or After. It has no effect without one, or when a
// vertical position is set explicitly.
func (l *Layout) Align(a VAlign) *Layout {
	v := resolve.VAlign(a)
	l.state.Align = &v
	return l
}

// siblings returns the bounding box of the reference items that could be
// resolved. Items that cannot are reported and skipped.
func (l *Layout) siblings(directive string, of []Item) (Rect, bool) {
	if len(of) == 0 {
		l.warn(ErrUnresolvedReference, directive, "at least one reference item is required")
		return Rect{}, false
	}
	var box Rect
	found := false
	for _, it := range of {
		r, ok := l.refFrame(directive, it)
		if !ok {
			continue
		}
		if !found {
			box, found = r, true
			continue
		}
		box = box.Union(r)
	}
	return box, found
}

func relName(name string, of []Item) string {
	args := make([]any, len(of))
	for i, it := range of {
		args[i] = describe(it)
	}
	return call(name, args...)
}

func (l *Layout) above(name string, of []Item) (Rect, bool) {
	box, ok := l.siblings(relName(name, of), of)
	if ok {
		l.setBottom(box.Top())
		l.state.HRef = &box
	}
	return box, ok
}

func (l *Layout) below(name string, of []Item) (Rect, bool) {
	box, ok := l.siblings(relName(name, of), of)
	if ok {
		l.setTop(box.Bottom())
		l.state.HRef = &box
	}
	return box, ok
}

func (l *Layout) leftOf(name string, of []Item) (Rect, bool) {
	box, ok := l.siblings(relName(name, of), of)
	if ok {
		l.setRight(box.Left())
		l.state.VRef = &box
	}
	return box, ok
}

func (l *Layout) rightOf(name string, of []Item) (Rect, bool) {
	box, ok := l.siblings(relName(name, of), of)
	if ok {
		l.setLeft(box.Right())
		l.state.VRef = &box
	}
	return box, ok
}

func (l *Layout) alignH(box Rect, a HAlign, rtl bool) {
	switch a.resolved(rtl) {
	case resolve.HAlignCenter:
		l.setHCenter(box.MidX())
	case resolve.HAlignRight:
		l.setRight(box.Right())
	default:
		l.setLeft(box.Left())
	}
}

func (l *Layout) alignV(box Rect, a VAlign) {
	switch a {
	case VAlignCenter:
		l.setVCenter(box.MidY())
	case VAlignBottom:
		l.setBottom(box.Bottom())
	default:
		l.setTop(box.Top())
	}
}

// Above places the item's bottom edge on the topmost top edge of of.
func (l *Layout) Above(of ...Item) *Layout {
	l.above("above", of)
	return l
}

// AboveAligned is Above, also aligning the item horizontally with the
// bounding box of of.
func (l *Layout) AboveAligned(a HAlign, of ...Item) *Layout {
	rtl := l.rtl()
	if box, ok := l.above("above", of); ok {
		l.alignH(box, a, rtl)
	}
	return l
}

// Below places the item's top edge on the bottommost bottom edge of of.
func (l *Layout) Below(of ...Item) *Layout {
	l.below("below", of)
	return l
}

// BelowAligned is Below, also aligning the item horizontally with the
// bounding box of of.
func (l *Layout) BelowAligned(a HAlign, of ...Item) *Layout {
	rtl := l.rtl()
	if box, ok := l.below("below", of); ok {
		l.alignH(box, a, rtl)
	}
	return l
}

// LeftOf places the item's right edge on the leftmost left edge of of.
func (l *Layout) LeftOf(of ...Item) *Layout {
	l.leftOf("left", of)
	return l
}

// LeftOfAligned is LeftOf, also aligning the item vertically with the
// bounding box of of.
func (l *Layout) LeftOfAligned(a VAlign, of ...Item) *Layout {
	if box, ok := l.leftOf("left", of); ok {
		l.alignV(box, a)
	}
	return l
}

// RightOf places the item's left edge on the rightmost right edge of of.
func (l *Layout) RightOf(of ...Item) *Layout {
	l.rightOf("right", of)
	return l
}

// RightOfAligned is RightOf, also aligning the item vertically with the
// bounding box of of.
func (l *Layout) RightOfAligned(a VAlign, of ...Item) *Layout {
	if box, ok := l.rightOf("right", of); ok {
		l.alignV(box, a)
	}
	return l
}

// Before is LeftOf in LTR and RightOf in RTL.
func (l *Layout) Before(of ...Item) *Layout {
	if l.rtl() {
		l.rightOf("before", of)
	} else {
		l.leftOf("before", of)
	}
	return l
}

// BeforeAligned is Before with a vertical alignment.
func (l *Layout) BeforeAligned(a VAlign, of ...Item) *Layout {
	var box Rect
	var ok bool
	if l.rtl() {
		box, ok = l.rightOf("before", of)
	} else {
		box, ok = l.leftOf("before", of)
	}
	if ok {
		l.alignV(box, a)
	}
	return l
}

// After is RightOf in LTR and LeftOf in RTL.
func (l *Layout) After(of ...Item) *Layout {
	if l.rtl() {
		l.leftOf("after", of)
	} else {
		l.rightOf("after", of)
	}
	return l
}

// AfterAligned is After with a vertical alignment.
func (l *Layout) AfterAligned(a VAlign, of ...Item) *Layout {
	var box Rect
	var ok bool
	if l.rtl() {
		box, ok = l.leftOf("after", of)
	} else {
		box, ok = l.rightOf("after", of)
	}
	if ok {
		l.alignV(box, a)
	}
	return l
}
