package pin

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine carries the configuration shared by layout cycles: the layout
// direction, the diagnostics sink and the display scale.
//
// The direction may be changed between cycles with SetDirection. Each
// directive reads it once when it executes, so it must not change while a
// cycle is in progress.
type Engine struct {
	rtl   atomic.Bool
	diag  *Diagnostics
	scale float64
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithDirection sets the initial layout direction. Default is LTR.
func WithDirection(d Direction) Option {
	return func(e *Engine) error {
		if d != LTR && d != RTL {
			return fmt.Errorf("unknown layout direction %d", d)
		}
		e.rtl.Store(d == RTL)
		return nil
	}
}

// rtlScripts are the scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Hebr": true, "Mand": true, "Mend": true,
	"Nkoo": true, "Rohg": true, "Samr": true, "Syrc": true, "Thaa": true,
}

// WithLocale sets the layout direction from a BCP 47 language tag, using
// the tag's most likely script.
func WithLocale(tag string) Option {
	return func(e *Engine) error {
		t, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("unable to parse locale %q: %w", tag, err)
		}
		script, _ := t.Script()
		e.rtl.Store(rtlScripts[script.String()])
		return nil
	}
}

// WithDiagnostics sets the warning sink. Default discards output.
func WithDiagnostics(d *Diagnostics) Option {
	return func(e *Engine) error {
		if d == nil {
			return fmt.Errorf("diagnostics sink is nil")
		}
		e.diag = d
		return nil
	}
}

// WithLogger creates an enabled diagnostics sink writing to log.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) error {
		e.diag = NewDiagnostics(log)
		return nil
	}
}

// WithDisplayScale snaps written frames to a pixel grid of 1/scale.
// Zero disables rounding.
func WithDisplayScale(scale float64) Option {
	return func(e *Engine) error {
		if scale < 0 {
			return fmt.Errorf("display scale must not be negative")
		}
		e.scale = scale
		return nil
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{diag: NewDiagnostics(nil)}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Direction returns the current layout direction.
func (e *Engine) Direction() Direction {
	if e.rtl.Load() {
		return RTL
	}
	return LTR
}

// SetDirection changes the layout direction for subsequent directives.
func (e *Engine) SetDirection(d Direction) {
	e.rtl.Store(d == RTL)
}

// Diagnostics returns the engine's warning sink.
func (e *Engine) Diagnostics() *Diagnostics {
	return e.diag
}

// DisplayScale returns the pixel grid scale, zero when rounding is off.
func (e *Engine) DisplayScale() float64 {
	return e.scale
}

// Pin starts a layout cycle for item. The item's visual transform is kept
// when the frame is written back.
func (e *Engine) Pin(item Item) *Layout {
	return newLayout(e, item, true)
}

// PinFrame starts a layout cycle for item. The item's visual transform is
// reset when the frame is written back.
func (e *Engine) PinFrame(item Item) *Layout {
	return newLayout(e, item, false)
}

// Do runs fn on a new layout for item and finalizes it when fn returns,
// including when fn panics.
func (e *Engine) Do(item Item, fn func(*Layout)) {
	l := e.Pin(item)
	defer l.Layout()
	fn(l)
}

// DoFrame is Do with the transform reset on write-back.
func (e *Engine) DoFrame(item Item, fn func(*Layout)) {
	l := e.PinFrame(item)
	defer l.Layout()
	fn(l)
}

var defaultEngine, _ = NewEngine()

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Pin starts a layout cycle on the default engine.
func Pin(item Item) *Layout {
	return defaultEngine.Pin(item)
}

// PinFrame starts a layout cycle on the default engine, resetting the
// item's transform on write-back.
func PinFrame(item Item) *Layout {
	return defaultEngine.PinFrame(item)
}

// Do runs a scoped layout cycle on the default engine.
func Do(item Item, fn func(*Layout)) {
	defaultEngine.Do(item, fn)
}

// DoFrame runs a scoped layout cycle on the default engine, resetting the
// item's transform on write-back.
func DoFrame(item Item, fn func(*Layout)) {
	defaultEngine.DoFrame(item, fn)
}
