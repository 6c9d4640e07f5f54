package pin

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/resolve"
)

// Diagnostic kinds. Use errors.Is against a *Diagnostic or the result of
// Layout.Err to tell them apart.
var (
	// ErrConflict: two exclusive directives were requested; the later one
	// was dropped.
	ErrConflict = resolve.ErrConflict
	// ErrUnresolvedReference: the parent, sibling, edge or anchor a
	// directive needs is not available; the directive was dropped.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrInvalidValue: a value was out of range; the directive was dropped
	// or the computed size was clamped to zero.
	ErrInvalidValue = resolve.ErrInvalidValue
)

// Diagnostic describes one directive that could not be fully honored.
type Diagnostic struct {
	Kind      error
	Directive string
	Item      string
	Reason    string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s on %s won't be applied: %s", d.Directive, d.Item, d.Reason)
}

func (d *Diagnostic) Unwrap() error { return d.Kind }

func kindName(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUnresolvedReference):
		return "unresolved-reference"
	case errors.Is(err, ErrInvalidValue):
		return "invalid-value"
	}
	return "unknown"
}

// Diagnostics is the warning sink shared by every layout of an engine.
// It is safe for concurrent use.
type Diagnostics struct {
	log     *zap.Logger
	enabled atomic.Bool
	count   atomic.Int64
}

// NewDiagnostics creates an enabled sink writing to log. A nil logger
// discards output but still counts reports.
func NewDiagnostics(log *zap.Logger) *Diagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Diagnostics{log: log.Named("pin")}
	d.enabled.Store(true)
	return d
}

// SetEnabled switches all output on or off.
func (d *Diagnostics) SetEnabled(on bool) {
	d.enabled.Store(on)
}

// Enabled reports whether the sink emits warnings.
func (d *Diagnostics) Enabled() bool {
	return d.enabled.Load()
}

// Count returns the number of warnings emitted while enabled.
func (d *Diagnostics) Count() int64 {
	return d.count.Load()
}

func (d *Diagnostics) report(diag *Diagnostic) {
	if d == nil || !d.enabled.Load() {
		return
	}
	d.count.Add(1)
	d.log.Warn(diag.Reason,
		zap.String("directive", diag.Directive),
		zap.String("kind", kindName(diag.Kind)),
		zap.String("item", diag.Item),
	)
}
