package scene

import (
	"errors"
	"fmt"

	pin "github.com/grindlemire/go-pin"
)

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrArgs             = errors.New("bad arguments")
	ErrUnknownView      = errors.New("unknown view")
)

// Lookup finds a view by name.
type Lookup func(name string) (pin.Item, bool)

type applyFunc func(l *pin.Layout, c Call, find Lookup) error

// Apply runs calls on l in order. It stops at the first call that cannot be
// applied; directives the engine drops are not errors here.
func Apply(l *pin.Layout, calls []Call, find Lookup) error {
	for _, c := range calls {
		fn, ok := directives[c.Name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownDirective, c.Name)
		}
		if err := fn(l, c, find); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}
	return nil
}

func argCount(c Call, allowed ...int) error {
	for _, n := range allowed {
		if len(c.Args) == n {
			return nil
		}
	}
	return fmt.Errorf("%w: %s takes %v arguments, got %d", ErrArgs, c.Name, allowed, len(c.Args))
}

func value(a Arg) (pin.Value, error) {
	switch a.Kind {
	case ArgNumber:
		return pin.Fixed(a.Num), nil
	case ArgPercent:
		return pin.Percent(a.Num), nil
	}
	return pin.Value{}, fmt.Errorf("%w: %s is not a number or a percentage", ErrArgs, a)
}

func values(args []Arg) ([]pin.Value, error) {
	out := make([]pin.Value, len(args))
	for i, a := range args {
		v, err := value(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func findView(find Lookup, name string) (pin.Item, error) {
	it, ok := find(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownView, name)
	}
	return it, nil
}

func vEdge(find Lookup, a Arg) (pin.VerticalEdge, error) {
	it, err := findView(find, a.Ident)
	if err != nil {
		return pin.VerticalEdge{}, err
	}
	e := pin.EdgesOf(it)
	switch a.Member {
	case "top":
		return e.Top, nil
	case "vCenter":
		return e.VCenter, nil
	case "bottom":
		return e.Bottom, nil
	}
	return pin.VerticalEdge{}, fmt.Errorf("%w: %q is not a vertical edge", ErrArgs, a.Member)
}

func hEdge(find Lookup, a Arg) (pin.HorizontalEdge, error) {
	it, err := findView(find, a.Ident)
	if err != nil {
		return pin.HorizontalEdge{}, err
	}
	e := pin.EdgesOf(it)
	switch a.Member {
	case "left":
		return e.Left, nil
	case "hCenter":
		return e.HCenter, nil
	case "right":
		return e.Right, nil
	case "start":
		return e.Start, nil
	case "end":
		return e.End, nil
	}
	return pin.HorizontalEdge{}, fmt.Errorf("%w: %q is not a horizontal edge", ErrArgs, a.Member)
}

func anchor(find Lookup, a Arg) (pin.Anchor, error) {
	if a.Kind != ArgMember {
		return pin.Anchor{}, fmt.Errorf("%w: %s is not an anchor reference", ErrArgs, a)
	}
	it, err := findView(find, a.Ident)
	if err != nil {
		return pin.Anchor{}, err
	}
	as := pin.AnchorsOf(it)
	byName := map[string]pin.Anchor{
		"topLeft": as.TopLeft, "topCenter": as.TopCenter, "topRight": as.TopRight,
		"topStart": as.TopStart, "topEnd": as.TopEnd,
		"centerLeft": as.CenterLeft, "center": as.Center, "centerRight": as.CenterRight,
		"centerStart": as.CenterStart, "centerEnd": as.CenterEnd,
		"bottomLeft": as.BottomLeft, "bottomCenter": as.BottomCenter, "bottomRight": as.BottomRight,
		"bottomStart": as.BottomStart, "bottomEnd": as.BottomEnd,
	}
	an, ok := byName[a.Member]
	if !ok {
		return pin.Anchor{}, fmt.Errorf("%w: %q is not an anchor", ErrArgs, a.Member)
	}
	return an, nil
}

type (
	valueMethod  func(*pin.Layout, pin.Value) *pin.Layout
	vEdgeMethod  func(*pin.Layout, pin.VerticalEdge) *pin.Layout
	hEdgeMethod  func(*pin.Layout, pin.HorizontalEdge) *pin.Layout
	plainMethod  func(*pin.Layout) *pin.Layout
	anchorMethod func(*pin.Layout, pin.Anchor) *pin.Layout
)

// edgeV handles top(), top(10), top(5%) and top(header.bottom).
func edgeV(abs valueMethod, to vEdgeMethod) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		if err := argCount(c, 0, 1); err != nil {
			return err
		}
		if len(c.Args) == 0 {
			abs(l, pin.Fixed(0))
			return nil
		}
		if c.Args[0].Kind == ArgMember {
			e, err := vEdge(find, c.Args[0])
			if err != nil {
				return err
			}
			to(l, e)
			return nil
		}
		v, err := value(c.Args[0])
		if err != nil {
			return err
		}
		abs(l, v)
		return nil
	}
}

// edgeH handles left(), left(10), left(5%) and left(header.right).
func edgeH(abs valueMethod, to hEdgeMethod) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		if err := argCount(c, 0, 1); err != nil {
			return err
		}
		if len(c.Args) == 0 {
			abs(l, pin.Fixed(0))
			return nil
		}
		if c.Args[0].Kind == ArgMember {
			e, err := hEdge(find, c.Args[0])
			if err != nil {
				return err
			}
			to(l, e)
			return nil
		}
		v, err := value(c.Args[0])
		if err != nil {
			return err
		}
		abs(l, v)
		return nil
	}
}

// single handles directives taking one value, defaulting to zero.
func single(fn valueMethod) applyFunc {
	return func(l *pin.Layout, c Call, _ Lookup) error {
		if err := argCount(c, 0, 1); err != nil {
			return err
		}
		v := pin.Fixed(0)
		if len(c.Args) == 1 {
			var err error
			if v, err = value(c.Args[0]); err != nil {
				return err
			}
		}
		fn(l, v)
		return nil
	}
}

// anchorTo handles topLeft() and topLeft(header.bottomLeft).
func anchorTo(parent plainMethod, to anchorMethod) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		if err := argCount(c, 0, 1); err != nil {
			return err
		}
		if len(c.Args) == 0 {
			parent(l)
			return nil
		}
		a, err := anchor(find, c.Args[0])
		if err != nil {
			return err
		}
		to(l, a)
		return nil
	}
}

var hAligns = map[string]pin.HAlign{
	"left": pin.HAlignLeft, "center": pin.HAlignCenter, "right": pin.HAlignRight,
	"start": pin.HAlignStart, "end": pin.HAlignEnd,
}

var vAligns = map[string]pin.VAlign{
	"top": pin.VAlignTop, "center": pin.VAlignCenter, "bottom": pin.VAlignBottom,
}

// relatives splits relative placement arguments into views and the
// optional "aligned:" keyword.
func relatives(c Call, find Lookup) ([]pin.Item, string, error) {
	var items []pin.Item
	aligned := ""
	for _, a := range c.Args {
		switch {
		case a.Key == "aligned" && a.Kind == ArgIdent:
			aligned = a.Ident
		case a.Key != "" && a.Key != "of":
			return nil, "", fmt.Errorf("%w: unknown argument %q", ErrArgs, a.Key)
		case a.Kind != ArgIdent:
			return nil, "", fmt.Errorf("%w: %s is not a view name", ErrArgs, a)
		default:
			it, err := findView(find, a.Ident)
			if err != nil {
				return nil, "", err
			}
			items = append(items, it)
		}
	}
	return items, aligned, nil
}

type (
	relMethod  func(*pin.Layout, ...pin.Item) *pin.Layout
	relHMethod func(*pin.Layout, pin.HAlign, ...pin.Item) *pin.Layout
	relVMethod func(*pin.Layout, pin.VAlign, ...pin.Item) *pin.Layout
)

// vertical handles above(a, b, aligned: left).
func vertical(plain relMethod, aligned relHMethod) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		items, al, err := relatives(c, find)
		if err != nil {
			return err
		}
		if al == "" {
			plain(l, items...)
			return nil
		}
		a, ok := hAligns[al]
		if !ok {
			return fmt.Errorf("%w: %q is not a horizontal alignment", ErrArgs, al)
		}
		aligned(l, a, items...)
		return nil
	}
}

// horizontal handles leftOf(a, b, aligned: top).
func horizontal(plain relMethod, aligned relVMethod) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		items, al, err := relatives(c, find)
		if err != nil {
			return err
		}
		if al == "" {
			plain(l, items...)
			return nil
		}
		a, ok := vAligns[al]
		if !ok {
			return fmt.Errorf("%w: %q is not a vertical alignment", ErrArgs, al)
		}
		aligned(l, a, items...)
		return nil
	}
}

// dimension handles width(100), width(50%) and width(of: header).
func dimension(abs valueMethod, of func(*pin.Layout, pin.Item) *pin.Layout) applyFunc {
	return func(l *pin.Layout, c Call, find Lookup) error {
		if err := argCount(c, 1); err != nil {
			return err
		}
		a := c.Args[0]
		if a.Kind == ArgIdent && of != nil {
			it, err := findView(find, a.Ident)
			if err != nil {
				return err
			}
			of(l, it)
			return nil
		}
		v, err := value(a)
		if err != nil {
			return err
		}
		abs(l, v)
		return nil
	}
}

func ident(c Call) (string, error) {
	if err := argCount(c, 1); err != nil {
		return "", err
	}
	if c.Args[0].Kind != ArgIdent {
		return "", fmt.Errorf("%w: %s is not a keyword", ErrArgs, c.Args[0])
	}
	return c.Args[0].Ident, nil
}

var fitModes = map[string]pin.FitMode{
	"width":          pin.FitWidth,
	"height":         pin.FitHeight,
	"widthFlexible":  pin.FitWidthFlexible,
	"heightFlexible": pin.FitHeightFlexible,
}

func applySize(l *pin.Layout, c Call, find Lookup) error {
	if err := argCount(c, 1, 2); err != nil {
		return err
	}
	if len(c.Args) == 2 {
		if c.Args[0].Kind != ArgNumber || c.Args[1].Kind != ArgNumber {
			return fmt.Errorf("%w: size(width, height) takes two numbers", ErrArgs)
		}
		l.Size(pin.Sz(c.Args[0].Num, c.Args[1].Num))
		return nil
	}
	return dimension((*pin.Layout).SizeSide, (*pin.Layout).SizeOf)(l, c, find)
}

func applyAspectRatio(l *pin.Layout, c Call, find Lookup) error {
	if err := argCount(c, 0, 1); err != nil {
		return err
	}
	if len(c.Args) == 0 {
		l.AspectRatioFromContent()
		return nil
	}
	switch a := c.Args[0]; a.Kind {
	case ArgNumber:
		l.AspectRatio(a.Num)
	case ArgIdent:
		it, err := findView(find, a.Ident)
		if err != nil {
			return err
		}
		l.AspectRatioOf(it)
	default:
		return fmt.Errorf("%w: %s is not a ratio or a view name", ErrArgs, a)
	}
	return nil
}

func applySizeToFit(l *pin.Layout, c Call, _ Lookup) error {
	name, err := ident(c)
	if err != nil {
		return err
	}
	mode, ok := fitModes[name]
	if !ok {
		return fmt.Errorf("%w: %q is not a fit mode", ErrArgs, name)
	}
	l.SizeToFit(mode)
	return nil
}

func applyJustify(l *pin.Layout, c Call, _ Lookup) error {
	name, err := ident(c)
	if err != nil {
		return err
	}
	a, ok := hAligns[name]
	if !ok {
		return fmt.Errorf("%w: %q is not a horizontal alignment", ErrArgs, name)
	}
	l.Justify(a)
	return nil
}

func applyAlign(l *pin.Layout, c Call, _ Lookup) error {
	name, err := ident(c)
	if err != nil {
		return err
	}
	a, ok := vAligns[name]
	if !ok {
		return fmt.Errorf("%w: %q is not a vertical alignment", ErrArgs, name)
	}
	l.Align(a)
	return nil
}

// applyMargin follows the CSS shorthand: 1 value for all sides, 2 for
// vertical and horizontal, 3 for top, horizontal and bottom, 4 for top,
// left, bottom and right.
func applyMargin(l *pin.Layout, c Call, _ Lookup) error {
	if err := argCount(c, 1, 2, 3, 4); err != nil {
		return err
	}
	v, err := values(c.Args)
	if err != nil {
		return err
	}
	switch len(v) {
	case 1:
		l.Margin(v[0])
	case 2:
		l.MarginVH(v[0], v[1])
	case 3:
		l.MarginTHB(v[0], v[1], v[2])
	default:
		l.MarginTLBR(v[0], v[1], v[2], v[3])
	}
	return nil
}

func applyPinEdges(l *pin.Layout, c Call, _ Lookup) error {
	if err := argCount(c, 0); err != nil {
		return err
	}
	l.PinEdges()
	return nil
}

// directives maps a chain call name to its handler.
var directives = map[string]applyFunc{
	"top":     edgeV((*pin.Layout).Top, (*pin.Layout).TopTo),
	"vCenter": edgeV((*pin.Layout).VCenter, (*pin.Layout).VCenterTo),
	"bottom":  edgeV((*pin.Layout).Bottom, (*pin.Layout).BottomTo),
	"left":    edgeH((*pin.Layout).Left, (*pin.Layout).LeftTo),
	"hCenter": edgeH((*pin.Layout).HCenter, (*pin.Layout).HCenterTo),
	"right":   edgeH((*pin.Layout).Right, (*pin.Layout).RightTo),
	"start":   edgeH((*pin.Layout).Start, (*pin.Layout).StartTo),
	"end":     edgeH((*pin.Layout).End, (*pin.Layout).EndTo),

	"all":          single((*pin.Layout).All),
	"horizontally": single((*pin.Layout).Horizontally),
	"vertically":   single((*pin.Layout).Vertically),

	"topLeft":      anchorTo((*pin.Layout).TopLeft, (*pin.Layout).TopLeftTo),
	"topCenter":    anchorTo((*pin.Layout).TopCenter, (*pin.Layout).TopCenterTo),
	"topRight":     anchorTo((*pin.Layout).TopRight, (*pin.Layout).TopRightTo),
	"topStart":     anchorTo((*pin.Layout).TopStart, (*pin.Layout).TopStartTo),
	"topEnd":       anchorTo((*pin.Layout).TopEnd, (*pin.Layout).TopEndTo),
	"centerLeft":   anchorTo((*pin.Layout).CenterLeft, (*pin.Layout).CenterLeftTo),
	"center":       anchorTo((*pin.Layout).Center, (*pin.Layout).CenterTo),
	"centerRight":  anchorTo((*pin.Layout).CenterRight, (*pin.Layout).CenterRightTo),
	"centerStart":  anchorTo((*pin.Layout).CenterStart, (*pin.Layout).CenterStartTo),
	"centerEnd":    anchorTo((*pin.Layout).CenterEnd, (*pin.Layout).CenterEndTo),
	"bottomLeft":   anchorTo((*pin.Layout).BottomLeft, (*pin.Layout).BottomLeftTo),
	"bottomCenter": anchorTo((*pin.Layout).BottomCenter, (*pin.Layout).BottomCenterTo),
	"bottomRight":  anchorTo((*pin.Layout).BottomRight, (*pin.Layout).BottomRightTo),
	"bottomStart":  anchorTo((*pin.Layout).BottomStart, (*pin.Layout).BottomStartTo),
	"bottomEnd":    anchorTo((*pin.Layout).BottomEnd, (*pin.Layout).BottomEndTo),

	"above":   vertical((*pin.Layout).Above, (*pin.Layout).AboveAligned),
	"below":   vertical((*pin.Layout).Below, (*pin.Layout).BelowAligned),
	"leftOf":  horizontal((*pin.Layout).LeftOf, (*pin.Layout).LeftOfAligned),
	"rightOf": horizontal((*pin.Layout).RightOf, (*pin.Layout).RightOfAligned),
	"before":  horizontal((*pin.Layout).Before, (*pin.Layout).BeforeAligned),
	"after":   horizontal((*pin.Layout).After, (*pin.Layout).AfterAligned),
	"justify": applyJustify,
	"align":   applyAlign,

	"width":       dimension((*pin.Layout).Width, (*pin.Layout).WidthOf),
	"height":      dimension((*pin.Layout).Height, (*pin.Layout).HeightOf),
	"minWidth":    dimension((*pin.Layout).MinWidth, nil),
	"maxWidth":    dimension((*pin.Layout).MaxWidth, nil),
	"minHeight":   dimension((*pin.Layout).MinHeight, nil),
	"maxHeight":   dimension((*pin.Layout).MaxHeight, nil),
	"size":        applySize,
	"aspectRatio": applyAspectRatio,
	"sizeToFit":   applySizeToFit,

	"marginTop":        single((*pin.Layout).MarginTop),
	"marginLeft":       single((*pin.Layout).MarginLeft),
	"marginBottom":     single((*pin.Layout).MarginBottom),
	"marginRight":      single((*pin.Layout).MarginRight),
	"marginStart":      single((*pin.Layout).MarginStart),
	"marginEnd":        single((*pin.Layout).MarginEnd),
	"marginHorizontal": single((*pin.Layout).MarginHorizontal),
	"marginVertical":   single((*pin.Layout).MarginVertical),
	"margin":           applyMargin,
	"pinEdges":         applyPinEdges,
}
