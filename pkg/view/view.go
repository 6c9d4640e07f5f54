package view

import (
	"slices"

	pin "github.com/grindlemire/go-pin"
)

// View is a named rectangle in a tree of views.
type View struct {
	name      string
	size      pin.Size
	center    pin.Point
	transform pin.Affine

	parent   *View
	subviews []*View

	content Content
	image   *pin.Size
}

// Option configures a View.
type Option func(*View)

// WithContent sets the content that answers SizeThatFits.
func WithContent(c Content) Option {
	return func(v *View) {
		v.content = c
	}
}

// WithImage gives the view an image of the given size.
func WithImage(size pin.Size) Option {
	return func(v *View) {
		v.image = &size
	}
}

// WithTransform sets the view's visual transform.
func WithTransform(t pin.Affine) Option {
	return func(v *View) {
		v.transform = t
	}
}

// New creates a detached view with the given frame.
func New(name string, frame pin.Rect, opts ...Option) *View {
	v := &View{
		name:      name,
		size:      frame.Size(),
		center:    frame.Center(),
		transform: pin.Identity(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name returns the view's name.
func (v *View) Name() string {
	return v.name
}

// AddSubview appends children to this view, detaching them from any
// previous superview first.
func (v *View) AddSubview(children ...*View) {
	for _, child := range children {
		child.RemoveFromSuperview()
		child.parent = v
		v.subviews = append(v.subviews, child)
	}
}

// RemoveFromSuperview detaches the view. It keeps the order of the
// remaining siblings.
func (v *View) RemoveFromSuperview() {
	p := v.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.subviews, v); i >= 0 {
		p.subviews = slices.Delete(p.subviews, i, i+1)
	}
	v.parent = nil
}

// Subviews returns the child views in insertion order.
func (v *View) Subviews() []*View {
	return v.subviews
}

// Parent returns the superview, or nil if this is a root.
func (v *View) Parent() *View {
	return v.parent
}

// Superview implements pin.Item.
func (v *View) Superview() pin.Item {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// Frame returns the untransformed frame in the superview's space.
func (v *View) Frame() pin.Rect {
	return pin.NewRect(v.center.X-v.size.Width/2, v.center.Y-v.size.Height/2, v.size.Width, v.size.Height)
}

// Bounds returns the view's own coordinate space.
func (v *View) Bounds() pin.Rect {
	return pin.NewRect(0, 0, v.size.Width, v.size.Height)
}

// Transform returns the view's visual transform.
func (v *View) Transform() pin.Affine {
	return v.transform
}

// SetTransform replaces the view's visual transform.
func (v *View) SetTransform(t pin.Affine) {
	v.transform = t
}

// TransformedFrame returns the bounding box of the view as drawn, with the
// transform applied about its center.
func (v *View) TransformedFrame() pin.Rect {
	return v.transform.BoundingBox(v.Frame())
}

// SetFrame implements pin.Item. The frame is stored as size and center, so
// a kept transform still applies about the new center.
func (v *View) SetFrame(r pin.Rect, keepTransform bool) {
	v.size = r.Size()
	v.center = r.Center()
	if !keepTransform {
		v.transform = pin.Identity()
	}
}

// SizeThatFits implements pin.Item. Without content the view prefers its
// current size.
func (v *View) SizeThatFits(proposed pin.Size) pin.Size {
	if v.content == nil {
		return v.size
	}
	return v.content.SizeThatFits(proposed)
}

// ImageSize implements pin.ImageSizer.
func (v *View) ImageSize() (pin.Size, bool) {
	if v.image == nil {
		return pin.Size{}, false
	}
	return *v.image, true
}

// Find returns the first descendant named name, depth first, including v
// itself.
func (v *View) Find(name string) *View {
	if v.name == name {
		return v
	}
	for _, child := range v.subviews {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for v and every descendant in document order: a view
// before its subviews, earlier siblings before later ones.
func (v *View) Walk(fn func(*View)) {
	fn(v)
	for _, child := range v.subviews {
		child.Walk(fn)
	}
}
