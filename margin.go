package pin

import (
	"github.com/grindlemire/go-pin/internal/resolve"
)

func (l *Layout) hMargin(dst **float64, directive string, v Value) {
	if c, ok := l.hValue(directive, v); ok {
		resolve.Set(dst, c)
	}
}

func (l *Layout) vMargin(dst **float64, directive string, v Value) {
	if c, ok := l.vValue(directive, v); ok {
		resolve.Set(dst, c)
	}
}

// MarginTop sets the top margin.
func (l *Layout) MarginTop(v Value) *Layout {
	l.vMargin(&l.state.MarginTop, call("marginTop", v), v)
	return l
}

// MarginLeft sets the left margin.
func (l *Layout) MarginLeft(v Value) *Layout {
	l.hMargin(&l.state.MarginLeft, call("marginLeft", v), v)
	return l
}

// MarginBottom sets the bottom margin.
func (l *Layout) MarginBottom(v Value) *Layout {
	l.vMargin(&l.state.MarginBottom, call("marginBottom", v), v)
	return l
}

// MarginRight sets the right margin.
func (l *Layout) MarginRight(v Value) *Layout {
	l.hMargin(&l.state.MarginRight, call("marginRight", v), v)
	return l
}

// MarginStart is MarginLeft in LTR and MarginRight in RTL.
func (l *Layout) MarginStart(v Value) *Layout {
	dst := &l.state.MarginLeft
	if l.rtl() {
		dst = &l.state.MarginRight
	}
	l.hMargin(dst, call("marginStart", v), v)
	return l
}

// MarginEnd is MarginRight in LTR and MarginLeft in RTL.
func (l *Layout) MarginEnd(v Value) *Layout {
	dst := &l.state.MarginRight
	if l.rtl() {
		dst = &l.state.MarginLeft
	}
	l.hMargin(dst, call("marginEnd", v), v)
	return l
}

// MarginHorizontal sets the left and right margins.
func (l *Layout) MarginHorizontal(v Value) *Layout {
	name := call("marginHorizontal", v)
	l.hMargin(&l.state.MarginLeft, name, v)
	l.hMargin(&l.state.MarginRight, name, v)
	return l
}

// MarginVertical sets the top and bottom margins.
func (l *Layout) MarginVertical(v Value) *Layout {
	name := call("marginVertical", v)
	l.vMargin(&l.state.MarginTop, name, v)
	l.vMargin(&l.state.MarginBottom, name, v)
	return l
}

// Margin sets all four margins.
func (l *Layout) Margin(v Value) *Layout {
	return l.MarginTLBR(v, v, v, v)
}

// MarginVH sets the vertical and horizontal margins.
func (l *Layout) MarginVH(vertical, horizontal Value) *Layout {
	return l.MarginTLBR(vertical, horizontal, vertical, horizontal)
}

// MarginTHB sets the top, horizontal and bottom margins.
func (l *Layout) MarginTHB(top, horizontal, bottom Value) *Layout {
	return l.MarginTLBR(top, horizontal, bottom, horizontal)
}

// MarginTLBR sets each margin.
func (l *Layout) MarginTLBR(top, left, bottom, right Value) *Layout {
	name := call("margin", top, left, bottom, right)
	l.vMargin(&l.state.MarginTop, name, top)
	l.hMargin(&l.state.MarginLeft, name, left)
	l.vMargin(&l.state.MarginBottom, name, bottom)
	l.hMargin(&l.state.MarginRight, name, right)
	return l
}

// MarginInsets sets the margins from in.
func (l *Layout) MarginInsets(in Insets) *Layout {
	resolve.Set(&l.state.MarginTop, in.Top)
	resolve.Set(&l.state.MarginLeft, in.Left)
	resolve.Set(&l.state.MarginBottom, in.Bottom)
	resolve.Set(&l.state.MarginRight, in.Right)
	return l
}

// MarginDirectional sets the margins from in, mapping leading and trailing
// to left and right by the layout direction.
func (l *Layout) MarginDirectional(in DirectionalInsets) *Layout {
	return l.MarginInsets(in.Resolve(l.rtl()))
}
