package resolve

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-pin/internal/geom"
)

// Unbounded is passed to the content sizer for the dimension that is free.
const Unbounded = math.MaxFloat64

// Env is what the resolver needs to know about the item itself.
type Env struct {
	// Current is the item's frame before this cycle.
	Current geom.Rect

	// Fits returns the item's content-preferred size for a candidate size.
	// Nil means the content prefers the current size.
	Fits func(geom.Size) geom.Size

	// DisplayScale snaps the result to a pixel grid when > 0.
	DisplayScale float64
}

func (e Env) fits(s geom.Size) geom.Size {
	if e.Fits == nil {
		return e.Current.Size()
	}
	return e.Fits(s)
}

// axis is one dimension of the state, so horizontal and vertical resolution
// share a single implementation.
type axis struct {
	name string

	start, end, center *float64
	size, min, max     *float64

	marginStart, marginEnd float64

	ref   *span
	align *int // 0 start, 1 center, 2 end

	curPos, curSize float64
}

type span struct{ lo, hi float64 }

func margin(m *float64) float64 {
	if m == nil {
		return 0
	}
	return *m
}

func horizontal(s *State, cur geom.Rect) axis {
	a := axis{
		name:        "width",
		start:       s.Left,
		end:         s.Right,
		center:      s.HCenter,
		size:        s.Width,
		min:         s.MinWidth,
		max:         s.MaxWidth,
		marginStart: margin(s.MarginLeft),
		marginEnd:   margin(s.MarginRight),
		curPos:      cur.X,
		curSize:     cur.Width,
	}
	if s.HRef != nil && s.Justify != nil {
		a.ref = &span{lo: s.HRef.Left(), hi: s.HRef.Right()}
		j := int(*s.Justify)
		a.align = &j
	}
	return a
}

func vertical(s *State, cur geom.Rect) axis {
	a := axis{
		name:        "height",
		start:       s.Top,
		end:         s.Bottom,
		center:      s.VCenter,
		size:        s.Height,
		min:         s.MinHeight,
		max:         s.MaxHeight,
		marginStart: margin(s.MarginTop),
		marginEnd:   margin(s.MarginBottom),
		curPos:      cur.Y,
		curSize:     cur.Height,
	}
	if s.VRef != nil && s.Align != nil {
		a.ref = &span{lo: s.VRef.Top(), hi: s.VRef.Bottom()}
		al := int(*s.Align)
		a.align = &al
	}
	return a
}

// clamp restricts v to [min, max]. If min > max, min wins.
func (a *axis) clamp(v float64) float64 {
	if a.max != nil && v > *a.max {
		v = *a.max
	}
	if a.min != nil && v < *a.min {
		v = *a.min
	}
	return v
}

// pinEdges turns whatever positions the axis into a start/end pair so
// margins inset the item instead of moving it. An axis with both edges set
// is left alone: an explicit size there still wins and anchors on start.
func (a *axis) pinEdges() {
	if a.start != nil && a.end != nil {
		return
	}
	size := a.curSize
	if a.size != nil {
		size = a.clamp(*a.size)
	}
	var start float64
	switch {
	case a.start != nil:
		start = *a.start
	case a.end != nil:
		start = *a.end - size
	case a.center != nil:
		start = *a.center - size/2
	default:
		start = a.curPos
	}
	end := start + size
	a.start, a.end, a.size = &start, &end, nil
}

// requestedSize is the size the axis asks for before fit or aspect ratio
// are considered. Nil means the size is still open.
func (a *axis) requestedSize(keepCurrent bool) *float64 {
	var v float64
	switch {
	case a.size != nil:
		v = *a.size
	case a.start != nil && a.end != nil:
		v = *a.end - *a.start - a.marginStart - a.marginEnd
	case keepCurrent:
		v = a.curSize
	default:
		return nil
	}
	v = a.clamp(v)
	return &v
}

// position returns the item's start coordinate for the final size.
// A single explicit edge wins over the center, the center over alignment
// against a sibling box, and with nothing pinned the item stays put.
func (a *axis) position(size float64) float64 {
	switch {
	case a.start != nil:
		return *a.start + a.marginStart
	case a.end != nil:
		return *a.end - a.marginEnd - size
	case a.center != nil:
		return *a.center - size/2 + a.marginStart - a.marginEnd
	case a.ref != nil:
		switch *a.align {
		case 1:
			return (a.ref.lo+a.ref.hi)/2 - size/2 + a.marginStart - a.marginEnd
		case 2:
			return a.ref.hi - a.marginEnd - size
		default:
			return a.ref.lo + a.marginStart
		}
	default:
		return a.curPos
	}
}

// Resolve computes the final frame for s. The returned problems are
// InvalidValue errors for sizes that had to be clamped to zero.
func Resolve(s State, env Env) (geom.Rect, []error) {
	h := horizontal(&s, env.Current)
	v := vertical(&s, env.Current)

	if s.PinEdges {
		h.pinEdges()
		v.pinEdges()
	}

	keep := s.keepsCurrentSize()
	width := h.requestedSize(keep)
	height := v.requestedSize(keep)

	switch {
	case s.Fit != FitNone:
		width, height = fit(s.Fit, &h, &v, width, height, env)
	case s.AspectRatio != nil:
		ratio := *s.AspectRatio
		switch {
		case width != nil && height == nil:
			hv := v.clamp(*width / ratio)
			height = &hv
		case height != nil && width == nil:
			wv := h.clamp(*height * ratio)
			width = &wv
		}
	}

	w, ht := env.Current.Width, env.Current.Height
	if width != nil {
		w = *width
	}
	if height != nil {
		ht = *height
	}

	var problems []error
	if w < 0 {
		problems = append(problems, fmt.Errorf("%w: the computed %s (%g) is negative, using zero", ErrInvalidValue, h.name, w))
		w = 0
	}
	if ht < 0 {
		problems = append(problems, fmt.Errorf("%w: the computed %s (%g) is negative, using zero", ErrInvalidValue, v.name, ht))
		ht = 0
	}

	frame := geom.Rect{
		X:      h.position(w),
		Y:      v.position(ht),
		Width:  w,
		Height: ht,
	}
	return frame.Round(env.DisplayScale), problems
}

// fit asks the content for its preferred size against the reference
// dimension and clamps the result. The reference is whatever the rest of the
// state determines for that dimension, or the current size.
func fit(mode FitMode, h, v *axis, width, height *float64, env Env) (*float64, *float64) {
	var w, ht float64
	switch mode {
	case FitWidth, FitWidthFlexible:
		ref := env.Current.Width
		if width != nil {
			ref = *width
		}
		got := env.fits(geom.Size{Width: ref, Height: Unbounded})
		w, ht = got.Width, got.Height
		if mode == FitWidth {
			w = ref
		}
	case FitHeight, FitHeightFlexible:
		ref := env.Current.Height
		if height != nil {
			ref = *height
		}
		got := env.fits(geom.Size{Width: Unbounded, Height: ref})
		w, ht = got.Width, got.Height
		if mode == FitHeight {
			ht = ref
		}
	}
	w, ht = h.clamp(w), v.clamp(ht)
	return &w, &ht
}
