package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	pin "github.com/grindlemire/go-pin"
)

// Result holds the frames a scene resolved to.
type Result struct {
	frames      map[string]pin.Rect
	Diagnostics []*pin.Diagnostic
}

// Names returns the view names in natural order ("item2" before "item10").
// The root is not included.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.frames))
	for name := range r.frames {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Frame returns the resolved frame of the named view.
func (r *Result) Frame(name string) (pin.Rect, bool) {
	f, ok := r.frames[name]
	return f, ok
}

// Engine builds an engine for the scene. Scene settings are applied after
// opts and so override them.
func (s *Scene) Engine(opts ...pin.Option) (*pin.Engine, error) {
	opts = append([]pin.Option(nil), opts...)
	if s.Locale != "" {
		opts = append(opts, pin.WithLocale(s.Locale))
	}
	if s.Direction != "" {
		d, err := pin.ParseDirection(s.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScene, err)
		}
		opts = append(opts, pin.WithDirection(d))
	}
	if s.DisplayScale != 0 {
		opts = append(opts, pin.WithDisplayScale(s.DisplayScale))
	}
	return pin.NewEngine(opts...)
}

// Run builds the scene and pins every view in document order.
func (s *Scene) Run(log *zap.Logger, opts ...pin.Option) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	engine, err := s.Engine(opts...)
	if err != nil {
		return nil, err
	}
	tree, err := s.Build()
	if err != nil {
		return nil, err
	}

	res := &Result{frames: make(map[string]pin.Rect, len(tree.entries))}
	for _, e := range tree.entries {
		var l *pin.Layout
		if e.frame {
			l = engine.PinFrame(e.view)
		} else {
			l = engine.Pin(e.view)
		}
		if err := Apply(l, e.calls, tree.Lookup); err != nil {
			return nil, fmt.Errorf("view %q: %w", e.view.Name(), err)
		}
		l.Layout()

		for _, err := range multierr.Errors(l.Err()) {
			var d *pin.Diagnostic
			if errors.As(err, &d) {
				res.Diagnostics = append(res.Diagnostics, d)
			}
		}
		res.frames[e.view.Name()] = e.view.Frame()
		log.Debug("Pinned view",
			zap.String("view", e.view.Name()),
			zap.Int("directives", len(e.calls)),
			zap.Stringer("frame", e.view.Frame()),
		)
	}
	return res, nil
}

// Check builds the scene and applies every chain without resolving any
// frame, so unknown directives, malformed arguments and unknown view names
// are found without running the layout.
func (s *Scene) Check() error {
	if _, err := s.Engine(); err != nil {
		return err
	}
	tree, err := s.Build()
	if err != nil {
		return err
	}

	diag := pin.NewDiagnostics(nil)
	diag.SetEnabled(false)
	scratch, err := pin.NewEngine(pin.WithDiagnostics(diag))
	if err != nil {
		return err
	}

	var errs error
	for _, e := range tree.entries {
		if err := Apply(scratch.Pin(e.view), e.calls, tree.Lookup); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("view %q: %w", e.view.Name(), err))
		}
	}
	return errs
}
