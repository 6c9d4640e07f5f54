package pin

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/grindlemire/go-pin/internal/resolve"
)

// Layout accumulates the directives of one layout cycle for one item.
//
// Every directive returns the same *Layout so calls can be chained. A
// directive that cannot be honored is dropped and reported; it never stops
// the chain. Call Layout to resolve and write back the frame, or use
// Engine.Do to have it called for you. A Layout must not be shared between
// goroutines.
type Layout struct {
	engine *Engine
	item   Item
	state  resolve.State
	diags  []*Diagnostic
	done   bool
}

func newLayout(e *Engine, item Item, keepTransform bool) *Layout {
	l := &Layout{engine: e, item: item}
	l.state.KeepTransform = keepTransform
	return l
}

// rtl reads the engine direction. Each directive calls it once.
func (l *Layout) rtl() bool {
	return l.engine.rtl.Load()
}

func (l *Layout) warn(kind error, directive, format string, args ...any) {
	d := &Diagnostic{
		Kind:      kind,
		Directive: directive,
		Item:      describe(l.item),
		Reason:    fmt.Sprintf(format, args...),
	}
	l.diags = append(l.diags, d)
	l.engine.diag.report(d)
}

// reject reports an error returned by a state setter.
func (l *Layout) reject(directive string, err error) {
	kind := ErrInvalidValue
	if errors.Is(err, ErrConflict) {
		kind = ErrConflict
	}
	l.warn(kind, directive, "%s", err.Error())
}

// parent returns the superview bounds the directive needs, reporting an
// unresolved reference when the item is not in a tree.
func (l *Layout) parent(directive string) (Rect, bool) {
	if l.item == nil {
		l.warn(ErrUnresolvedReference, directive, "the item is nil")
		return Rect{}, false
	}
	r, ok := parentRect(l.item)
	if !ok {
		l.warn(ErrUnresolvedReference, directive,
			"the item must be added to a superview before being laid out using this directive")
	}
	return r, ok
}

// hValue resolves v on the horizontal axis. Percentages need the parent.
func (l *Layout) hValue(directive string, v Value) (float64, bool) {
	if !v.IsPercent() {
		return v.Amount, true
	}
	p, ok := l.parent(directive)
	if !ok {
		return 0, false
	}
	return v.Of(p.Width), true
}

// vValue resolves v on the vertical axis. Percentages need the parent.
func (l *Layout) vValue(directive string, v Value) (float64, bool) {
	if !v.IsPercent() {
		return v.Amount, true
	}
	p, ok := l.parent(directive)
	if !ok {
		return 0, false
	}
	return v.Of(p.Height), true
}

func call(name string, args ...any) string {
	s := name + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(a)
	}
	return s + ")"
}

// PinEdges pins every positioned edge before margins are applied, so
// margins inset the item instead of moving it.
func (l *Layout) PinEdges() *Layout {
	l.state.PinEdges = true
	return l
}

// Layout resolves the recorded directives and writes the frame back to the
// item. It runs at most once; later calls do nothing. A layout with no
// directives writes nothing.
func (l *Layout) Layout() {
	if l.done {
		return
	}
	l.done = true
	if l.item == nil || l.state.IsEmpty() {
		return
	}

	frame, problems := resolve.Resolve(l.state, resolve.Env{
		Current:      l.item.Frame(),
		Fits:         l.item.SizeThatFits,
		DisplayScale: l.engine.scale,
	})
	for _, p := range problems {
		l.warn(ErrInvalidValue, "layout()", "%s", p.Error())
	}
	l.item.SetFrame(frame, l.state.KeepTransform)
}

// Err returns every diagnostic recorded by this layout combined into one
// error, or nil. Use multierr.Errors to split it.
func (l *Layout) Err() error {
	var err error
	for _, d := range l.diags {
		err = multierr.Append(err, d)
	}
	return err
}
