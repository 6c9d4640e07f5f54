package fynepin

import (
	"testing"

	"fyne.io/fyne/v2"

	pin "github.com/grindlemire/go-pin"
)

// object is a bare fyne.CanvasObject.
type object struct {
	pos    fyne.Position
	size   fyne.Size
	min    fyne.Size
	hidden bool
}

func (o *object) MinSize() fyne.Size      { return o.min }
func (o *object) Move(p fyne.Position)    { o.pos = p }
func (o *object) Position() fyne.Position { return o.pos }
func (o *object) Resize(s fyne.Size)      { o.size = s }
func (o *object) Size() fyne.Size         { return o.size }
func (o *object) Hide()                   { o.hidden = true }
func (o *object) Visible() bool           { return !o.hidden }
func (o *object) Show()                   { o.hidden = false }
func (o *object) Refresh()                {}

func TestItem(t *testing.T) {
	obj := &object{pos: fyne.NewPos(1, 2), size: fyne.NewSize(30, 40), min: fyne.NewSize(5, 6)}
	it := Wrap(obj, nil, "obj")

	if got := it.Frame(); got != pin.NewRect(1, 2, 30, 40) {
		t.Errorf("Frame() = %+v", got)
	}
	if it.Superview() != nil {
		t.Errorf("Superview() = %v, want nil", it.Superview())
	}
	if got := it.SizeThatFits(pin.Sz(100, 100)); got != pin.Sz(5, 6) {
		t.Errorf("SizeThatFits() = %+v, want min size", got)
	}
	it.SetFrame(pin.NewRect(10.5, 20, 50, 60), true)
	if obj.pos != fyne.NewPos(10.5, 20) || obj.size != fyne.NewSize(50, 60) {
		t.Errorf("SetFrame() moved to %+v size %+v", obj.pos, obj.size)
	}
	if it.Object() != fyne.CanvasObject(obj) || it.Name() != "obj" {
		t.Errorf("Object()/Name() mismatch")
	}
}

func TestLayout(t *testing.T) {
	e, err := pin.NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	toolbar := &object{}
	body := &object{}
	status := &object{min: fyne.NewSize(80, 12)}
	ignored := &object{pos: fyne.NewPos(3, 3), size: fyne.NewSize(3, 3)}

	lay := New(e, fyne.NewSize(200, 100),
		func(l *pin.Layout, _ []*Item) {
			l.Top(pin.Fixed(0)).Horizontally(pin.Fixed(0)).Height(pin.Fixed(40))
		},
		func(l *pin.Layout, it []*Item) {
			l.Below(it[0]).Horizontally(pin.Fixed(0)).Bottom(pin.Fixed(20))
		},
		func(l *pin.Layout, _ []*Item) {
			l.BottomEnd().SizeToFit(pin.FitHeightFlexible).MarginEnd(pin.Fixed(4))
		},
	)
	lay.Layout([]fyne.CanvasObject{toolbar, body, status, ignored}, fyne.NewSize(400, 300))

	type tc struct {
		obj      *object
		wantPos  fyne.Position
		wantSize fyne.Size
	}

	tests := map[string]tc{
		"toolbar": {obj: toolbar, wantPos: fyne.NewPos(0, 0), wantSize: fyne.NewSize(400, 40)},
		"body":    {obj: body, wantPos: fyne.NewPos(0, 40), wantSize: fyne.NewSize(400, 240)},
		"status":  {obj: status, wantPos: fyne.NewPos(316, 288), wantSize: fyne.NewSize(80, 12)},
		"no rule": {obj: ignored, wantPos: fyne.NewPos(3, 3), wantSize: fyne.NewSize(3, 3)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.obj.pos != tt.wantPos {
				t.Errorf("Position() = %+v, want %+v", tt.obj.pos, tt.wantPos)
			}
			if tt.obj.size != tt.wantSize {
				t.Errorf("Size() = %+v, want %+v", tt.obj.size, tt.wantSize)
			}
		})
	}

	if got := lay.MinSize(nil); got != fyne.NewSize(200, 100) {
		t.Errorf("MinSize() = %+v", got)
	}
}

func TestLayout_SkipsHidden(t *testing.T) {
	hidden := &object{hidden: true, pos: fyne.NewPos(9, 9)}
	lay := New(nil, fyne.Size{}, func(l *pin.Layout, _ []*Item) { l.TopLeft() })
	lay.Layout([]fyne.CanvasObject{hidden}, fyne.NewSize(10, 10))

	if hidden.pos != fyne.NewPos(9, 9) {
		t.Errorf("hidden object moved to %+v", hidden.pos)
	}
}
