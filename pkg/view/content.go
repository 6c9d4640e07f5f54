package view

import (
	"math"
	"strings"

	"golang.org/x/text/width"

	pin "github.com/grindlemire/go-pin"
)

// Content reports a preferred size for a proposed size. Unbounded
// dimensions are passed as math.MaxFloat64.
type Content interface {
	SizeThatFits(proposed pin.Size) pin.Size
}

// FixedContent always prefers the same size.
type FixedContent pin.Size

// SizeThatFits returns the fixed size.
func (c FixedContent) SizeThatFits(pin.Size) pin.Size {
	return pin.Size(c)
}

// TextContent is word-wrapped text measured in cells. East Asian wide and
// fullwidth runes take two cells.
type TextContent struct {
	Text       string
	CellWidth  float64
	LineHeight float64
}

// Text creates TextContent with one unit per cell and line.
func Text(s string) TextContent {
	return TextContent{Text: s, CellWidth: 1, LineHeight: 1}
}

// cells returns the display width of s in cells.
func cells(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// SizeThatFits wraps the text greedily at word boundaries to fit the
// proposed width and returns the widest line and the total height. A word
// longer than the width gets a line of its own. Explicit newlines always
// break.
func (c TextContent) SizeThatFits(proposed pin.Size) pin.Size {
	cw, lh := c.CellWidth, c.LineHeight
	if cw <= 0 {
		cw = 1
	}
	if lh <= 0 {
		lh = 1
	}
	limit := math.MaxInt
	if proposed.Width < math.MaxFloat64 {
		limit = max(int(math.Floor(proposed.Width/cw)), 1)
	}

	lines, widest := 0, 0
	for _, para := range strings.Split(c.Text, "\n") {
		cur := 0
		lines++
		for _, word := range strings.Fields(para) {
			w := cells(word)
			switch {
			case cur == 0:
				cur = w
			case cur+1+w <= limit:
				cur += 1 + w
			default:
				widest = max(widest, cur)
				lines++
				cur = w
			}
		}
		widest = max(widest, cur)
	}
	return pin.Sz(float64(widest)*cw, float64(lines)*lh)
}
