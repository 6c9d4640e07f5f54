package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	pin "github.com/grindlemire/go-pin"
	"github.com/grindlemire/go-pin/internal/geom"
	"github.com/grindlemire/go-pin/pkg/view"
)

// RootName is the name of the implicit root view holding the scene's
// top-level views.
const RootName = "root"

var (
	ErrScene     = errors.New("invalid scene")
	ErrDuplicate = errors.New("duplicate view name")
)

// Scene is the YAML document.
type Scene struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Direction    string  `yaml:"direction,omitempty"`
	Locale       string  `yaml:"locale,omitempty"`
	DisplayScale float64 `yaml:"display_scale,omitempty"`
	Views        []Node  `yaml:"views"`
}

// Node is a single view of the scene.
type Node struct {
	Name      string     `yaml:"name"`
	Rect      []float64  `yaml:"rect,omitempty"`
	Content   []float64  `yaml:"content,omitempty"`
	Text      string     `yaml:"text,omitempty"`
	Image     []float64  `yaml:"image,omitempty"`
	Transform *Transform `yaml:"transform,omitempty"`
	// Frame requests PinFrame, which resets the view's transform.
	Frame bool   `yaml:"frame,omitempty"`
	Pin   string `yaml:"pin,omitempty"`
	Views []Node `yaml:"views,omitempty"`
}

// Transform is applied as scale, then rotation, then translation.
type Transform struct {
	Rotate    float64   `yaml:"rotate,omitempty"` // degrees
	Scale     []float64 `yaml:"scale,omitempty"`
	Translate []float64 `yaml:"translate,omitempty"`
}

func (t *Transform) affine() (pin.Affine, error) {
	a := geom.Identity()
	if t == nil {
		return a, nil
	}
	if len(t.Scale) != 0 {
		if len(t.Scale) != 2 {
			return a, fmt.Errorf("%w: scale needs 2 values, got %d", ErrScene, len(t.Scale))
		}
		a = geom.Scale(t.Scale[0], t.Scale[1])
	}
	if t.Rotate != 0 {
		a = geom.Rotation(t.Rotate * math.Pi / 180).Compose(a)
	}
	if len(t.Translate) != 0 {
		if len(t.Translate) != 2 {
			return a, fmt.Errorf("%w: translate needs 2 values, got %d", ErrScene, len(t.Translate))
		}
		a = geom.Translation(t.Translate[0], t.Translate[1]).Compose(a)
	}
	return a, nil
}

// Load decodes a scene, rejecting unknown fields.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrScene)
		}
		return nil, fmt.Errorf("unable to decode scene: %w", err)
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("%w: negative root size %vx%v", ErrScene, s.Width, s.Height)
	}
	return &s, nil
}

// LoadFile reads and decodes a scene file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open scene: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// entry is a built view with its parsed chain, in document order.
type entry struct {
	view  *view.View
	calls []Call
	frame bool
}

// Tree is a scene's view hierarchy ready to be pinned.
type Tree struct {
	Root    *view.View
	entries []entry
	byName  map[string]*view.View
}

// Lookup finds a view by name. The root is reachable as RootName.
func (t *Tree) Lookup(name string) (pin.Item, bool) {
	v, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return v, true
}

// View returns the named view.
func (t *Tree) View(name string) *view.View {
	return t.byName[name]
}

// Build creates the view tree and parses every directive chain.
func (s *Scene) Build() (*Tree, error) {
	t := &Tree{
		Root:   view.New(RootName, geom.NewRect(0, 0, s.Width, s.Height)),
		byName: map[string]*view.View{},
	}
	t.byName[RootName] = t.Root
	if err := t.add(t.Root, s.Views); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) add(parent *view.View, nodes []Node) error {
	for _, n := range nodes {
		v, err := n.build()
		if err != nil {
			return err
		}
		if _, ok := t.byName[n.Name]; ok {
			return fmt.Errorf("%w %q", ErrDuplicate, n.Name)
		}
		calls, err := Parse(n.Pin)
		if err != nil {
			return fmt.Errorf("view %q: %w", n.Name, err)
		}
		parent.AddSubview(v)
		t.byName[n.Name] = v
		t.entries = append(t.entries, entry{view: v, calls: calls, frame: n.Frame})

		if err := t.add(v, n.Views); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) build() (*view.View, error) {
	if n.Name == "" {
		return nil, fmt.Errorf("%w: view without a name", ErrScene)
	}
	fail := func(field string, want, got int) error {
		return fmt.Errorf("%w: view %q: %s needs %d values, got %d", ErrScene, n.Name, field, want, got)
	}

	var frame pin.Rect
	if len(n.Rect) != 0 {
		if len(n.Rect) != 4 {
			return nil, fail("rect", 4, len(n.Rect))
		}
		frame = geom.NewRect(n.Rect[0], n.Rect[1], n.Rect[2], n.Rect[3])
	}

	var opts []view.Option
	switch {
	case n.Text != "" && len(n.Content) != 0:
		return nil, fmt.Errorf("%w: view %q: text and content are exclusive", ErrScene, n.Name)
	case n.Text != "":
		opts = append(opts, view.WithContent(view.Text(n.Text)))
	case len(n.Content) != 0:
		if len(n.Content) != 2 {
			return nil, fail("content", 2, len(n.Content))
		}
		opts = append(opts, view.WithContent(view.FixedContent(geom.Sz(n.Content[0], n.Content[1]))))
	}
	if len(n.Image) != 0 {
		if len(n.Image) != 2 {
			return nil, fail("image", 2, len(n.Image))
		}
		opts = append(opts, view.WithImage(geom.Sz(n.Image[0], n.Image[1])))
	}
	if n.Transform != nil {
		a, err := n.Transform.affine()
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", n.Name, err)
		}
		opts = append(opts, view.WithTransform(a))
	}
	return view.New(n.Name, frame, opts...), nil
}
