package resolve

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-pin/internal/geom"
)

// FitMode selects how content-preferred size drives the frame.
type FitMode uint8

const (
	FitNone           FitMode = iota
	FitWidth                  // Height from content, width matches the reference width
	FitHeight                 // Width from content, height matches the reference height
	FitWidthFlexible          // Content size for the reference width, taken verbatim
	FitHeightFlexible         // Content size for the reference height, taken verbatim
)

var fitNames = [...]string{
	FitNone:           "none",
	FitWidth:          "width",
	FitHeight:         "height",
	FitWidthFlexible:  "widthFlexible",
	FitHeightFlexible: "heightFlexible",
}

func (m FitMode) String() string {
	if int(m) < len(fitNames) {
		return fitNames[m]
	}
	return "unknown"
}

// HAlign is a resolved horizontal alignment. Start/end are mapped to
// left/right by the caller before they reach the state.
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign is a vertical alignment.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// Errors returned by State setters when a directive is rejected.
var (
	ErrConflict     = errors.New("conflicting directive")
	ErrInvalidValue = errors.New("invalid value")
)

// State is the accumulated directive state for one item and one resolution
// cycle. All coordinates are in the parent's coordinate space: Right and
// Bottom are the coordinates of those edges, not distances from the parent's
// far side.
type State struct {
	Top, Left, Bottom, Right *float64
	HCenter, VCenter         *float64

	Width, Height        *float64
	MinWidth, MaxWidth   *float64
	MinHeight, MaxHeight *float64

	AspectRatio *float64
	Fit         FitMode

	MarginTop, MarginLeft, MarginBottom, MarginRight *float64

	Justify *HAlign
	Align   *VAlign

	// HRef and VRef are the sibling bounding boxes recorded by the most
	// recent vertical (above/below) and horizontal (left/right of) relative
	// placements. Justify and Align place the item against them.
	HRef, VRef *geom.Rect

	PinEdges      bool
	KeepTransform bool
}

func ptr(v float64) *float64 { return &v }

// SetAspectRatio records ratio unless a fit mode is already active or the
// ratio is not positive. The state is unchanged on error.
func (s *State) SetAspectRatio(ratio float64) error {
	if s.Fit != FitNone {
		return fmt.Errorf("%w: sizeToFit(%s) is already set", ErrConflict, s.Fit)
	}
	if ratio <= 0 {
		return fmt.Errorf("%w: the aspect ratio (%g) must be greater than zero", ErrInvalidValue, ratio)
	}
	s.AspectRatio = ptr(ratio)
	return nil
}

// SetFit records mode unless an aspect ratio or a different fit mode is
// already active. The state is unchanged on error.
func (s *State) SetFit(mode FitMode) error {
	if s.AspectRatio != nil {
		return fmt.Errorf("%w: aspectRatio(%g) is already set", ErrConflict, *s.AspectRatio)
	}
	if s.Fit != FitNone && s.Fit != mode {
		return fmt.Errorf("%w: sizeToFit(%s) is already set", ErrConflict, s.Fit)
	}
	s.Fit = mode
	return nil
}

// SetDimension stores v into dst after rejecting negative sizes.
func SetDimension(dst **float64, name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: the %s (%g) must be greater than or equal to zero", ErrInvalidValue, name, v)
	}
	*dst = ptr(v)
	return nil
}

// Set stores v into dst.
func Set(dst **float64, v float64) {
	*dst = ptr(v)
}

// IsEmpty returns true if no directive has touched the state.
func (s *State) IsEmpty() bool {
	return *s == State{KeepTransform: s.KeepTransform}
}

func (s *State) keepsCurrentSize() bool {
	return s.Fit == FitNone && s.AspectRatio == nil
}
