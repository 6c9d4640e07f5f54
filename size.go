package pin

import (
	"github.com/grindlemire/go-pin/internal/resolve"
)

// FitMode selects how the item's content-preferred size drives its frame.
type FitMode = resolve.FitMode

const (
	// FitWidth keeps the reference width and takes the content height.
	FitWidth = resolve.FitWidth
	// FitHeight keeps the reference height and takes the content width.
	FitHeight = resolve.FitHeight
	// FitWidthFlexible takes the content size for the reference width.
	FitWidthFlexible = resolve.FitWidthFlexible
	// FitHeightFlexible takes the content size for the reference height.
	FitHeightFlexible = resolve.FitHeightFlexible
)

func (l *Layout) dimension(dst **float64, name string, directive string, c float64) {
	if err := resolve.SetDimension(dst, name, c); err != nil {
		l.reject(directive, err)
	}
}

func (l *Layout) hDimension(dst **float64, name string, v Value) {
	directive := call(name, v)
	if c, ok := l.hValue(directive, v); ok {
		l.dimension(dst, name, directive, c)
	}
}

func (l *Layout) vDimension(dst **float64, name string, v Value) {
	directive := call(name, v)
	if c, ok := l.vValue(directive, v); ok {
		l.dimension(dst, name, directive, c)
	}
}

// Width sets the item's width.
func (l *Layout) Width(v Value) *Layout {
	l.hDimension(&l.state.Width, "width", v)
	return l
}

// MinWidth sets a lower bound on the item's width.
func (l *Layout) MinWidth(v Value) *Layout {
	l.hDimension(&l.state.MinWidth, "minWidth", v)
	return l
}

// MaxWidth sets an upper bound on the item's width.
func (l *Layout) MaxWidth(v Value) *Layout {
	l.hDimension(&l.state.MaxWidth, "maxWidth", v)
	return l
}

// Height sets the item's height.
func (l *Layout) Height(v Value) *Layout {
	l.vDimension(&l.state.Height, "height", v)
	return l
}

// MinHeight sets a lower bound on the item's height.
func (l *Layout) MinHeight(v Value) *Layout {
	l.vDimension(&l.state.MinHeight, "minHeight", v)
	return l
}

// MaxHeight sets an upper bound on the item's height.
func (l *Layout) MaxHeight(v Value) *Layout {
	l.vDimension(&l.state.MaxHeight, "maxHeight", v)
	return l
}

// WidthOf sets the item's width to the width of another item.
func (l *Layout) WidthOf(other Item) *Layout {
	directive := call("width", "of: "+describe(other))
	if other == nil {
		l.warn(ErrUnresolvedReference, directive, "the reference item is nil")
		return l
	}
	l.dimension(&l.state.Width, "width", directive, other.Frame().Width)
	return l
}

// HeightOf sets the item's height to the height of another item.
func (l *Layout) HeightOf(other Item) *Layout {
	directive := call("height", "of: "+describe(other))
	if other == nil {
		l.warn(ErrUnresolvedReference, directive, "the reference item is nil")
		return l
	}
	l.dimension(&l.state.Height, "height", directive, other.Frame().Height)
	return l
}

// SizeOf sets the item's size to the size of another item.
func (l *Layout) SizeOf(other Item) *Layout {
	directive := call("size", "of: "+describe(other))
	if other == nil {
		l.warn(ErrUnresolvedReference, directive, "the reference item is nil")
		return l
	}
	f := other.Frame()
	l.dimension(&l.state.Width, "width", directive, f.Width)
	l.dimension(&l.state.Height, "height", directive, f.Height)
	return l
}

// Size sets the item's width and height.
func (l *Layout) Size(s Size) *Layout {
	directive := call("size", s)
	l.dimension(&l.state.Width, "width", directive, s.Width)
	l.dimension(&l.state.Height, "height", directive, s.Height)
	return l
}

// SizeSide sets both dimensions from v. A percentage applies to each
// dimension of the superview separately.
func (l *Layout) SizeSide(v Value) *Layout {
	directive := call("size", v)
	w, ok := l.hValue(directive, v)
	if !ok {
		return l
	}
	h, _ := l.vValue(directive, v)
	l.dimension(&l.state.Width, "width", directive, w)
	l.dimension(&l.state.Height, "height", directive, h)
	return l
}

// AspectRatio sets width / height. It conflicts with SizeToFit.
func (l *Layout) AspectRatio(ratio float64) *Layout {
	if err := l.state.SetAspectRatio(ratio); err != nil {
		l.reject(call("aspectRatio", ratio), err)
	}
	return l
}

// AspectRatioOf uses the aspect ratio of another item's frame.
func (l *Layout) AspectRatioOf(other Item) *Layout {
	directive := call("aspectRatio", "of: "+describe(other))
	if other == nil {
		l.warn(ErrUnresolvedReference, directive, "the reference item is nil")
		return l
	}
	ratio, ok := other.Frame().Size().AspectRatio()
	if !ok {
		l.warn(ErrInvalidValue, directive, "the reference item %s has an empty size", describe(other))
		return l
	}
	if err := l.state.SetAspectRatio(ratio); err != nil {
		l.reject(directive, err)
	}
	return l
}

// AspectRatioFromContent uses the aspect ratio of the item's image. The
// item must implement ImageSizer.
func (l *Layout) AspectRatioFromContent() *Layout {
	const directive = "aspectRatio()"
	is, ok := l.item.(ImageSizer)
	if !ok {
		l.warn(ErrUnresolvedReference, directive, "the item must display an image to use this directive")
		return l
	}
	size, ok := is.ImageSize()
	if !ok {
		l.warn(ErrUnresolvedReference, directive, "the item's image hasn't been set")
		return l
	}
	ratio, ok := size.AspectRatio()
	if !ok {
		l.warn(ErrInvalidValue, directive, "the item's image has an empty size")
		return l
	}
	if err := l.state.SetAspectRatio(ratio); err != nil {
		l.reject(directive, err)
	}
	return l
}

// SizeToFit sizes the item from its content. It conflicts with AspectRatio
// and with a different fit mode.
func (l *Layout) SizeToFit(mode FitMode) *Layout {
	if mode == resolve.FitNone {
		return l
	}
	if err := l.state.SetFit(mode); err != nil {
		l.reject(call("sizeToFit", mode), err)
	}
	return l
}
