// Package pin computes item frames from declarative positioning directives.
//
// A layout cycle starts with [Engine.Pin] (or [Pin] on the default engine),
// records directives on the returned [Layout] and ends with [Layout.Layout],
// which resolves the directives into one frame and writes it back through
// the [Item] interface:
//
//	pin.Do(label, func(l *pin.Layout) {
//		l.Below(header).Horizontally(pin.Fixed(10)).
//			MarginTop(pin.Fixed(8)).SizeToFit(pin.FitWidth)
//	})
//
// Users import this single package for the public API: geometry types,
// the directive builder, edge and anchor references, and diagnostics.
// Misused directives never fail the layout. They are dropped and reported
// through the engine's [Diagnostics] sink.
package pin
