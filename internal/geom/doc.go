// Package geom provides the value types the frame resolver works with.
//
// Everything here is a plain value: [Point], [Size], [Rect], [Insets],
// [DirectionalInsets], [Affine] and the relative [Value] unit. Rect edge and
// anchor setters move the rectangle while holding its size fixed. Types are
// re-exported through the root pin package for public consumption.
package geom
