// Package fynepin lays out fyne canvas objects with pin directives.
//
// [Wrap] adapts a single fyne.CanvasObject to pin.Item. [Layout] is a
// fyne.Layout that runs one pin rule per container object every time the
// container is resized:
//
//	content := container.New(fynepin.New(engine, fyne.NewSize(320, 240),
//		func(l *pin.Layout, _ []*fynepin.Item) { l.Top(pin.Fixed(0)).Horizontally(pin.Fixed(0)).Height(pin.Fixed(40)) },
//		func(l *pin.Layout, it []*fynepin.Item) { l.Below(it[0]).All(pin.Fixed(0)) },
//	), toolbar, body)
package fynepin

import (
	"fmt"

	"fyne.io/fyne/v2"

	pin "github.com/grindlemire/go-pin"
)

// Item adapts a fyne.CanvasObject to pin.Item. Fyne positions are relative
// to the containing object, which the adapter models as the superview.
type Item struct {
	obj    fyne.CanvasObject
	parent pin.Item
	name   string
}

// Wrap adapts obj. parent is the item standing in for obj's container and
// may be nil for a top-level object.
func Wrap(obj fyne.CanvasObject, parent pin.Item, name string) *Item {
	return &Item{obj: obj, parent: parent, name: name}
}

// Object returns the wrapped canvas object.
func (i *Item) Object() fyne.CanvasObject {
	return i.obj
}

// Name implements pin.Namer.
func (i *Item) Name() string {
	return i.name
}

// Frame implements pin.Item.
func (i *Item) Frame() pin.Rect {
	p, s := i.obj.Position(), i.obj.Size()
	return pin.NewRect(float64(p.X), float64(p.Y), float64(s.Width), float64(s.Height))
}

// Superview implements pin.Item.
func (i *Item) Superview() pin.Item {
	return i.parent
}

// SizeThatFits implements pin.Item with the object's minimum size. Fyne
// objects do not report a size for a proposed width.
func (i *Item) SizeThatFits(pin.Size) pin.Size {
	m := i.obj.MinSize()
	return pin.Sz(float64(m.Width), float64(m.Height))
}

// SetFrame implements pin.Item. Fyne objects carry no transform, so
// keepTransform has no effect.
func (i *Item) SetFrame(r pin.Rect, _ bool) {
	i.obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	i.obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

// container stands in for the fyne container during one layout pass.
type container struct {
	size fyne.Size
}

func (c *container) Name() string { return "container" }

func (c *container) Frame() pin.Rect {
	return pin.NewRect(0, 0, float64(c.size.Width), float64(c.size.Height))
}

func (c *container) Superview() pin.Item            { return nil }
func (c *container) SizeThatFits(pin.Size) pin.Size { return c.Frame().Size() }
func (c *container) SetFrame(pin.Rect, bool)        {}

// Rule records the directives for one object. items holds every object of
// the container, in order, so rules can reference earlier siblings.
type Rule func(l *pin.Layout, items []*Item)

// Layout is a fyne.Layout driven by pin rules. Rule i applies to object i;
// objects without a rule, or hidden, are left alone.
type Layout struct {
	engine *pin.Engine
	min    fyne.Size
	rules  []Rule
}

var _ fyne.Layout = (*Layout)(nil)

// New creates a layout that reports min as the container's minimum size.
// A nil engine uses pin.Default().
func New(engine *pin.Engine, min fyne.Size, rules ...Rule) *Layout {
	if engine == nil {
		engine = pin.Default()
	}
	return &Layout{engine: engine, min: min, rules: rules}
}

// Layout implements fyne.Layout. Rules run in object order, so a rule may
// only reference objects that come before it.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	root := &container{size: size}
	items := make([]*Item, len(objects))
	for i, obj := range objects {
		items[i] = Wrap(obj, root, fmt.Sprintf("object[%d]", i))
	}
	for i, it := range items {
		if i >= len(l.rules) || l.rules[i] == nil || !it.obj.Visible() {
			continue
		}
		rule := l.rules[i]
		l.engine.Do(it, func(pl *pin.Layout) { rule(pl, items) })
	}
}

// MinSize implements fyne.Layout.
func (l *Layout) MinSize([]fyne.CanvasObject) fyne.Size {
	return l.min
}
