// Package resolve turns an accumulated set of positioning directives into one
// frame.
//
// A [State] records what the caller asked for: edge and center coordinates
// already converted into the parent's coordinate space, sizes, min/max
// clamps, aspect ratio or fit mode, margins and alignment. [Resolve] is a pure
// function of that state and an [Env] describing the item's current frame and
// content. It never fails; anything it cannot honor is reported as an
// [ErrInvalidValue] error next to a best-effort frame.
package resolve
