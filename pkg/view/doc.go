// Package view is an in-memory host tree for the pin layout engine.
//
// A [View] stores its geometry the way retained-mode toolkits do: a bounds
// size, a center in the superview's space and an affine transform. Its
// Frame is the untransformed rectangle; TransformedFrame is what would be
// drawn. Views satisfy pin.Item, so they can be laid out directly, and are
// used by the scene runner and by tests.
package view
