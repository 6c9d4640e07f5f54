package pin

import "testing"

// testItem is a minimal Item backed by a frame and a superview pointer.
type testItem struct {
	name      string
	frame     Rect
	parent    *testItem
	fits      func(Size) Size
	writes    int
	keptXform bool
}

func newItem(name string, parent *testItem, frame Rect) *testItem {
	return &testItem{name: name, parent: parent, frame: frame}
}

func (it *testItem) Name() string { return it.name }
func (it *testItem) Frame() Rect  { return it.frame }

func (it *testItem) Superview() Item {
	if it.parent == nil {
		return nil
	}
	return it.parent
}

func (it *testItem) SizeThatFits(s Size) Size {
	if it.fits == nil {
		return it.frame.Size()
	}
	return it.fits(s)
}

func (it *testItem) SetFrame(r Rect, keepTransform bool) {
	it.frame = r
	it.writes++
	it.keptXform = keepTransform
}

type imageItem struct {
	*testItem
	size *Size
}

func (it imageItem) ImageSize() (Size, bool) {
	if it.size == nil {
		return Size{}, false
	}
	return *it.size, true
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestConvertFrame(t *testing.T) {
	root := newItem("root", nil, NewRect(0, 0, 400, 300))
	panel := newItem("panel", root, NewRect(100, 50, 200, 200))
	inner := newItem("inner", panel, NewRect(10, 20, 100, 100))
	leaf := newItem("leaf", inner, NewRect(5, 5, 10, 10))
	sibling := newItem("sibling", root, NewRect(20, 30, 40, 50))
	other := newItem("other", newItem("otherRoot", nil, NewRect(0, 0, 10, 10)), NewRect(0, 0, 1, 1))
	orphan := newItem("orphan", nil, NewRect(0, 0, 1, 1))

	type tc struct {
		ref, target Item
		want        Rect
		ok          bool
	}

	tests := map[string]tc{
		"same superview": {
			ref:    sibling,
			target: panel,
			want:   NewRect(20, 30, 40, 50),
			ok:     true,
		},
		"reference nested deeper": {
			ref:    leaf,
			target: sibling,
			want:   NewRect(115, 75, 10, 10),
			ok:     true,
		},
		"target nested deeper": {
			ref:    sibling,
			target: leaf,
			want:   NewRect(-90, -40, 40, 50),
			ok:     true,
		},
		"different trees": {
			ref:    other,
			target: panel,
		},
		"reference without superview": {
			ref:    orphan,
			target: panel,
		},
		"target without superview": {
			ref:    panel,
			target: root,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := convertFrame(tt.ref, tt.target)
			if ok != tt.ok {
				t.Fatalf("convertFrame() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("convertFrame() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	type tc struct {
		in      string
		want    Direction
		wantErr bool
	}

	tests := map[string]tc{
		"empty is ltr": {in: "", want: LTR},
		"ltr":          {in: "ltr", want: LTR},
		"rtl":          {in: "rtl", want: RTL},
		"unknown":      {in: "up", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
