package geom

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %v, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %v, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %v, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %v, want 15", r.Height)
	}
}

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect                     Rect
		top, left, bottom, right float64
		midX, midY               float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect: NewRect(5, 10, 20, 15),
			top:  10, left: 5, bottom: 25, right: 25,
			midX: 15, midY: 17.5,
		},
		"negative position": {
			rect: NewRect(-5, -5, 10, 10),
			top:  -5, left: -5, bottom: 5, right: 5,
			midX: 0, midY: 0,
		},
		"zero size": {
			rect: NewRect(5, 5, 0, 0),
			top:  5, left: 5, bottom: 5, right: 5,
			midX: 5, midY: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := tt.rect
			if r.Top() != tt.top || r.Left() != tt.left || r.Bottom() != tt.bottom || r.Right() != tt.right {
				t.Errorf("edges = (t%v l%v b%v r%v), want (t%v l%v b%v r%v)",
					r.Top(), r.Left(), r.Bottom(), r.Right(), tt.top, tt.left, tt.bottom, tt.right)
			}
			if r.MidX() != tt.midX || r.MidY() != tt.midY {
				t.Errorf("mid = (%v, %v), want (%v, %v)", r.MidX(), r.MidY(), tt.midX, tt.midY)
			}
		})
	}
}

func TestRect_EdgeSettersKeepSize(t *testing.T) {
	base := NewRect(10, 10, 40, 20)

	type tc struct {
		got  Rect
		want Rect
	}

	tests := map[string]tc{
		"WithTop":    {got: base.WithTop(0), want: NewRect(10, 0, 40, 20)},
		"WithLeft":   {got: base.WithLeft(3), want: NewRect(3, 10, 40, 20)},
		"WithBottom": {got: base.WithBottom(100), want: NewRect(10, 80, 40, 20)},
		"WithRight":  {got: base.WithRight(100), want: NewRect(60, 10, 40, 20)},
		"WithMidX":   {got: base.WithMidX(50), want: NewRect(30, 10, 40, 20)},
		"WithMidY":   {got: base.WithMidY(50), want: NewRect(10, 40, 40, 20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %+v, want %+v", name, tt.got, tt.want)
			}
		})
	}
}

func TestRect_Anchors(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	type tc struct {
		anchor AnchorPoint
		want   Point
	}

	tests := map[string]tc{
		"topLeft":      {anchor: TopLeft, want: Pt(0, 0)},
		"topCenter":    {anchor: TopCenter, want: Pt(50, 0)},
		"topRight":     {anchor: TopRight, want: Pt(100, 0)},
		"centerLeft":   {anchor: CenterLeft, want: Pt(0, 25)},
		"center":       {anchor: Center, want: Pt(50, 25)},
		"centerRight":  {anchor: CenterRight, want: Pt(100, 25)},
		"bottomLeft":   {anchor: BottomLeft, want: Pt(0, 50)},
		"bottomCenter": {anchor: BottomCenter, want: Pt(50, 50)},
		"bottomRight":  {anchor: BottomRight, want: Pt(100, 50)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Anchor(tt.anchor); got != tt.want {
				t.Errorf("Anchor(%s) = %+v, want %+v", tt.anchor, got, tt.want)
			}
			moved := r.WithAnchor(tt.anchor, Pt(200, 200))
			if got := moved.Anchor(tt.anchor); got != Pt(200, 200) {
				t.Errorf("WithAnchor(%s) then Anchor = %+v, want (200, 200)", tt.anchor, got)
			}
			if moved.Size() != r.Size() {
				t.Errorf("WithAnchor(%s) changed size to %+v", tt.anchor, moved.Size())
			}
		})
	}
}

func TestAnchorPoint_Mirror(t *testing.T) {
	tests := map[string]struct {
		in, want AnchorPoint
	}{
		"topLeft":      {in: TopLeft, want: TopRight},
		"topCenter":    {in: TopCenter, want: TopCenter},
		"centerRight":  {in: CenterRight, want: CenterLeft},
		"bottomLeft":   {in: BottomLeft, want: BottomRight},
		"bottomRight":  {in: BottomRight, want: BottomLeft},
		"bottomCenter": {in: BottomCenter, want: BottomCenter},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.in.Mirror(); got != tt.want {
				t.Errorf("Mirror(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect   Rect
		insets Insets
		want   Rect
	}

	tests := map[string]tc{
		"uniform positive inset": {
			rect:   NewRect(10, 10, 100, 100),
			insets: InsetsAll(5),
			want:   NewRect(15, 15, 90, 90),
		},
		"different insets": {
			rect:   NewRect(0, 0, 100, 100),
			insets: Insets{Top: 10, Right: 20, Bottom: 30, Left: 40},
			want:   NewRect(40, 10, 40, 60),
		},
		"negative insets (expand)": {
			rect:   NewRect(10, 10, 50, 50),
			insets: InsetsAll(-5),
			want:   NewRect(5, 5, 60, 60),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.insets); got != tt.want {
				t.Errorf("Inset() = %+v, want %+v", got, tt.want)
			}
			if got := tt.rect.Inset(tt.insets).Outset(tt.insets); got != tt.rect {
				t.Errorf("Inset().Outset() = %+v, want %+v", got, tt.rect)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"disjoint": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 30, 10, 10),
			want: NewRect(0, 0, 30, 40),
		},
		"contained": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(10, 10, 5, 5),
			want: NewRect(0, 0, 100, 100),
		},
		"zero sized still counts": {
			a:    NewRect(10, 10, 10, 10),
			b:    NewRect(50, 0, 0, 0),
			want: NewRect(10, 0, 40, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_ClampSizeAndRound(t *testing.T) {
	r := NewRect(1, 2, -3, 4).ClampSize()
	if r != NewRect(1, 2, 0, 4) {
		t.Errorf("ClampSize() = %+v, want {1 2 0 4}", r)
	}

	type tc struct {
		rect  Rect
		scale float64
		want  Rect
	}

	tests := map[string]tc{
		"scale 1": {
			rect:  NewRect(0.4, 0.6, 10.49, 10.5),
			scale: 1,
			want:  NewRect(0, 1, 11, 10),
		},
		"fractional edges snap independently": {
			rect:  NewRect(0.5, 2.5, 9.9, 7.9),
			scale: 1,
			want:  NewRect(1, 3, 9, 7),
		},
		"scale 2": {
			rect:  NewRect(0.3, 0.8, 10.2, 10.74),
			scale: 2,
			want:  NewRect(0.5, 1, 10, 10.5),
		},
		"scale 0 disables": {
			rect:  NewRect(0.3, 0.8, 10.2, 10.74),
			scale: 0,
			want:  NewRect(0.3, 0.8, 10.2, 10.74),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Round(tt.scale); got != tt.want {
				t.Errorf("Round(%v) = %+v, want %+v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestDirectionalInsets_Resolve(t *testing.T) {
	d := DirectionalInsets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}

	if got := d.Resolve(false); got != (Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}) {
		t.Errorf("Resolve(ltr) = %+v", got)
	}
	if got := d.Resolve(true); got != (Insets{Top: 1, Left: 4, Bottom: 3, Right: 2}) {
		t.Errorf("Resolve(rtl) = %+v", got)
	}
}

func TestAffine_BoundingBox(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	if got := Identity().BoundingBox(r); got != r {
		t.Errorf("identity BoundingBox() = %+v, want %+v", got, r)
	}

	got := Scale(2, 2).BoundingBox(r)
	if !got.ApproxEqual(NewRect(-50, -25, 200, 100), 1e-9) {
		t.Errorf("scale(2) BoundingBox() = %+v", got)
	}

	got = Rotation(math.Pi / 2).BoundingBox(r)
	if !got.ApproxEqual(NewRect(25, -25, 50, 100), 1e-9) {
		t.Errorf("rotation(90deg) BoundingBox() = %+v", got)
	}
}
