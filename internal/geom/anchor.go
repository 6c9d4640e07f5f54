package geom

// AnchorPoint names one of the nine fixed points of a rectangle.
type AnchorPoint uint8

const (
	TopLeft AnchorPoint = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "topLeft",
	TopCenter:    "topCenter",
	TopRight:     "topRight",
	CenterLeft:   "centerLeft",
	Center:       "center",
	CenterRight:  "centerRight",
	BottomLeft:   "bottomLeft",
	BottomCenter: "bottomCenter",
	BottomRight:  "bottomRight",
}

func (a AnchorPoint) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "unknown"
}

// fx is the anchor's horizontal position as a fraction of the width.
func (a AnchorPoint) fx() float64 {
	return float64(a%3) / 2
}

// fy is the anchor's vertical position as a fraction of the height.
func (a AnchorPoint) fy() float64 {
	return float64(a/3) / 2
}

// Mirror swaps left and right, keeping the vertical position.
func (a AnchorPoint) Mirror() AnchorPoint {
	switch a % 3 {
	case 0:
		return a + 2
	case 2:
		return a - 2
	}
	return a
}
