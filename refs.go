package pin

import (
	"fmt"

	"github.com/grindlemire/go-pin/internal/geom"
)

type hEdgeKind uint8

const (
	edgeLeft hEdgeKind = iota
	edgeHCenter
	edgeRight
	edgeStart
	edgeEnd
)

var hEdgeNames = [...]string{"left", "hCenter", "right", "start", "end"}

type vEdgeKind uint8

const (
	edgeTop vEdgeKind = iota
	edgeVCenter
	edgeBottom
)

var vEdgeNames = [...]string{"top", "vCenter", "bottom"}

// HorizontalEdge refers to a vertical line of another item: its left,
// horizontal center or right edge. Start and end edges are mapped to left or
// right when the directive using them executes.
type HorizontalEdge struct {
	item Item
	kind hEdgeKind
}

func (e HorizontalEdge) String() string {
	return fmt.Sprintf("%s.%s", describe(e.item), hEdgeNames[e.kind])
}

// VerticalEdge refers to a horizontal line of another item: its top,
// vertical center or bottom edge.
type VerticalEdge struct {
	item Item
	kind vEdgeKind
}

func (e VerticalEdge) String() string {
	return fmt.Sprintf("%s.%s", describe(e.item), vEdgeNames[e.kind])
}

// Edges lists the edges of one item.
type Edges struct {
	Top, VCenter, Bottom             VerticalEdge
	Left, HCenter, Right, Start, End HorizontalEdge
}

// EdgesOf returns the edges of item for use with the edge directives.
func EdgesOf(item Item) Edges {
	return Edges{
		Top:     VerticalEdge{item, edgeTop},
		VCenter: VerticalEdge{item, edgeVCenter},
		Bottom:  VerticalEdge{item, edgeBottom},
		Left:    HorizontalEdge{item, edgeLeft},
		HCenter: HorizontalEdge{item, edgeHCenter},
		Right:   HorizontalEdge{item, edgeRight},
		Start:   HorizontalEdge{item, edgeStart},
		End:     HorizontalEdge{item, edgeEnd},
	}
}

// Anchor refers to one of the anchor points of another item.
type Anchor struct {
	item        Item
	point       geom.AnchorPoint
	directional bool
}

func (a Anchor) String() string {
	name := a.point.String()
	if a.directional {
		name = directionalNames[a.point]
	}
	return fmt.Sprintf("%s.%s", describe(a.item), name)
}

var directionalNames = map[geom.AnchorPoint]string{
	geom.TopLeft:     "topStart",
	geom.TopRight:    "topEnd",
	geom.CenterLeft:  "centerStart",
	geom.CenterRight: "centerEnd",
	geom.BottomLeft:  "bottomStart",
	geom.BottomRight: "bottomEnd",
}

// Anchors lists the anchor points of one item. The Start and End anchors
// are mirrored in RTL when the directive using them executes.
type Anchors struct {
	TopLeft, TopCenter, TopRight, TopStart, TopEnd                Anchor
	CenterLeft, Center, CenterRight, CenterStart, CenterEnd       Anchor
	BottomLeft, BottomCenter, BottomRight, BottomStart, BottomEnd Anchor
}

// AnchorsOf returns the anchor points of item for use with the anchor
// directives.
func AnchorsOf(item Item) Anchors {
	a := func(p geom.AnchorPoint) Anchor { return Anchor{item: item, point: p} }
	d := func(p geom.AnchorPoint) Anchor { return Anchor{item: item, point: p, directional: true} }
	return Anchors{
		TopLeft:      a(geom.TopLeft),
		TopCenter:    a(geom.TopCenter),
		TopRight:     a(geom.TopRight),
		TopStart:     d(geom.TopLeft),
		TopEnd:       d(geom.TopRight),
		CenterLeft:   a(geom.CenterLeft),
		Center:       a(geom.Center),
		CenterRight:  a(geom.CenterRight),
		CenterStart:  d(geom.CenterLeft),
		CenterEnd:    d(geom.CenterRight),
		BottomLeft:   a(geom.BottomLeft),
		BottomCenter: a(geom.BottomCenter),
		BottomRight:  a(geom.BottomRight),
		BottomStart:  d(geom.BottomLeft),
		BottomEnd:    d(geom.BottomRight),
	}
}

// refFrame returns ref's frame in the item's superview space.
func (l *Layout) refFrame(directive string, ref Item) (Rect, bool) {
	if ref == nil {
		l.warn(ErrUnresolvedReference, directive, "the reference item is nil")
		return Rect{}, false
	}
	if l.item == nil {
		l.warn(ErrUnresolvedReference, directive, "the item is nil")
		return Rect{}, false
	}
	r, ok := convertFrame(ref, l.item)
	if !ok {
		l.warn(ErrUnresolvedReference, directive,
			"the reference %s and the item must both be added to superviews of the same tree",
			describe(ref))
	}
	return r, ok
}

func (l *Layout) hEdge(directive string, e HorizontalEdge, rtl bool) (float64, bool) {
	r, ok := l.refFrame(directive, e.item)
	if !ok {
		return 0, false
	}
	kind := e.kind
	switch {
	case kind == edgeStart && rtl, kind == edgeEnd && !rtl:
		kind = edgeRight
	case kind == edgeStart, kind == edgeEnd:
		kind = edgeLeft
	}
	switch kind {
	case edgeHCenter:
		return r.MidX(), true
	case edgeRight:
		return r.Right(), true
	default:
		return r.Left(), true
	}
}

func (l *Layout) vEdge(directive string, e VerticalEdge) (float64, bool) {
	r, ok := l.refFrame(directive, e.item)
	if !ok {
		return 0, false
	}
	switch e.kind {
	case edgeVCenter:
		return r.MidY(), true
	case edgeBottom:
		return r.Bottom(), true
	default:
		return r.Top(), true
	}
}

// TopTo aligns the item's top edge with e.
func (l *Layout) TopTo(e VerticalEdge) *Layout {
	if c, ok := l.vEdge(call("top", "to: "+e.String()), e); ok {
		l.setTop(c)
	}
	return l
}

// VCenterTo aligns the item's vertical center with e.
func (l *Layout) VCenterTo(e VerticalEdge) *Layout {
	if c, ok := l.vEdge(call("vCenter", "to: "+e.String()), e); ok {
		l.setVCenter(c)
	}
	return l
}

// BottomTo aligns the item's bottom edge with e.
func (l *Layout) BottomTo(e VerticalEdge) *Layout {
	if c, ok := l.vEdge(call("bottom", "to: "+e.String()), e); ok {
		l.setBottom(c)
	}
	return l
}

// LeftTo aligns the item's left edge with e.
func (l *Layout) LeftTo(e HorizontalEdge) *Layout {
	if c, ok := l.hEdge(call("left", "to: "+e.String()), e, l.rtl()); ok {
		l.setLeft(c)
	}
	return l
}

// HCenterTo aligns the item's horizontal center with e.
func (l *Layout) HCenterTo(e HorizontalEdge) *Layout {
	if c, ok := l.hEdge(call("hCenter", "to: "+e.String()), e, l.rtl()); ok {
		l.setHCenter(c)
	}
	return l
}

// RightTo aligns the item's right edge with e.
func (l *Layout) RightTo(e HorizontalEdge) *Layout {
	if c, ok := l.hEdge(call("right", "to: "+e.String()), e, l.rtl()); ok {
		l.setRight(c)
	}
	return l
}

// StartTo aligns the item's start edge with e.
func (l *Layout) StartTo(e HorizontalEdge) *Layout {
	rtl := l.rtl()
	if c, ok := l.hEdge(call("start", "to: "+e.String()), e, rtl); ok {
		l.setStart(c, rtl)
	}
	return l
}

// EndTo aligns the item's end edge with e.
func (l *Layout) EndTo(e HorizontalEdge) *Layout {
	rtl := l.rtl()
	if c, ok := l.hEdge(call("end", "to: "+e.String()), e, rtl); ok {
		l.setEnd(c, rtl)
	}
	return l
}

// anchorTo positions the item's own anchor on ref's anchor point.
func (l *Layout) anchorTo(name string, own geom.AnchorPoint, directional bool, ref Anchor) *Layout {
	rtl := l.rtl()
	if directional && rtl {
		own = own.Mirror()
	}
	r, ok := l.refFrame(call(name, "to: "+ref.String()), ref.item)
	if !ok {
		return l
	}
	point := ref.point
	if ref.directional && rtl {
		point = point.Mirror()
	}
	l.setAnchor(own, r.Anchor(point))
	return l
}

// TopLeftTo pins the item's top-left corner on a.
func (l *Layout) TopLeftTo(a Anchor) *Layout { return l.anchorTo("topLeft", geom.TopLeft, false, a) }

// TopCenterTo pins the item's top-center point on a.
func (l *Layout) TopCenterTo(a Anchor) *Layout {
	return l.anchorTo("topCenter", geom.TopCenter, false, a)
}

// TopRightTo pins the item's top-right corner on a.
func (l *Layout) TopRightTo(a Anchor) *Layout { return l.anchorTo("topRight", geom.TopRight, false, a) }

// TopStartTo pins the item's top-start corner on a.
func (l *Layout) TopStartTo(a Anchor) *Layout { return l.anchorTo("topStart", geom.TopLeft, true, a) }

// TopEndTo pins the item's top-end corner on a.
func (l *Layout) TopEndTo(a Anchor) *Layout { return l.anchorTo("topEnd", geom.TopRight, true, a) }

// CenterLeftTo pins the item's center-left point on a.
func (l *Layout) CenterLeftTo(a Anchor) *Layout {
	return l.anchorTo("centerLeft", geom.CenterLeft, false, a)
}

// CenterTo pins the item's center on a.
func (l *Layout) CenterTo(a Anchor) *Layout { return l.anchorTo("center", geom.Center, false, a) }

// CenterRightTo pins the item's center-right point on a.
func (l *Layout) CenterRightTo(a Anchor) *Layout {
	return l.anchorTo("centerRight", geom.CenterRight, false, a)
}

// CenterStartTo pins the item's center-start point on a.
func (l *Layout) CenterStartTo(a Anchor) *Layout {
	return l.anchorTo("centerStart", geom.CenterLeft, true, a)
}

// CenterEndTo pins the item's center-end point on a.
func (l *Layout) CenterEndTo(a Anchor) *Layout {
	return l.anchorTo("centerEnd", geom.CenterRight, true, a)
}

// BottomLeftTo pins the item's bottom-left corner on a.
func (l *Layout) BottomLeftTo(a Anchor) *Layout {
	return l.anchorTo("bottomLeft", geom.BottomLeft, false, a)
}

// BottomCenterTo pins the item's bottom-center point on a.
func (l *Layout) BottomCenterTo(a Anchor) *Layout {
	return l.anchorTo("bottomCenter", geom.BottomCenter, false, a)
}

// BottomRightTo pins the item's bottom-right corner on a.
func (l *Layout) BottomRightTo(a Anchor) *Layout {
	return l.anchorTo("bottomRight", geom.BottomRight, false, a)
}

// BottomStartTo pins the item's bottom-start corner on a.
func (l *Layout) BottomStartTo(a Anchor) *Layout {
	return l.anchorTo("bottomStart", geom.BottomLeft, true, a)
}

// BottomEndTo pins the item's bottom-end corner on a.
func (l *Layout) BottomEndTo(a Anchor) *Layout {
	return l.anchorTo("bottomEnd", geom.BottomRight, true, a)
}
