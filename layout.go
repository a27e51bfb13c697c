// layout.go re-exports layout types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package anchorui

import "github.com/grindlemire/go-anchorui/pkg/layout"

// Rect represents an axis-aligned rectangle in canvas pixels.
type Rect = layout.Rect

// Dimension represents one anchor dimension: absolute pixels or a ratio
// of the parent's size.
type Dimension = layout.Dimension

// AnchorValue is a declarative positioning spec of up to six optional
// dimensions.
type AnchorValue = layout.AnchorValue

// ElementBounds is the computed result for one element.
type ElementBounds = layout.ElementBounds

// NodeID is the stable identity handle for an element.
type NodeID = layout.NodeID

// Mode controls how an element arranges its children.
type Mode = layout.Mode

const (
	ModeNone            = layout.ModeNone
	ModeTop             = layout.ModeTop
	ModeLeft            = layout.ModeLeft
	ModeRight           = layout.ModeRight
	ModeBottom          = layout.ModeBottom
	ModeTopScrolling    = layout.ModeTopScrolling
	ModeBottomScrolling = layout.ModeBottomScrolling
	ModeLeftScrolling   = layout.ModeLeftScrolling
	ModeMiddle          = layout.ModeMiddle
	ModeCenter          = layout.ModeCenter
	ModeCenterMiddle    = layout.ModeCenterMiddle
	ModeFull            = layout.ModeFull
	ModeLeftCenterWrap  = layout.ModeLeftCenterWrap
)

// Padding represents inset values for the four sides of a rectangle.
type Padding = layout.Padding

// Property names the layout engine reads.
const (
	PropAnchor     = layout.PropAnchor
	PropLayoutMode = layout.PropLayoutMode
	PropPadding    = layout.PropPadding
	PropSpacing    = layout.PropSpacing
	PropFlexWeight = layout.PropFlexWeight
	PropMinWidth   = layout.PropMinWidth
	PropMaxWidth   = layout.PropMaxWidth
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// ScreenRect returns the nominal design canvas: 1920x1080 at the origin.
func ScreenRect() Rect {
	return layout.ScreenRect()
}

// Absolute returns a Dimension representing raw pixels.
func Absolute(px float64) Dimension {
	return layout.Absolute(px)
}

// Relative returns a Dimension representing a ratio of the parent's size.
func Relative(ratio float64) Dimension {
	return layout.Relative(ratio)
}

// CalculateBounds resolves an anchor against a parent rectangle.
func CalculateBounds(a AnchorValue, parent Rect) Rect {
	return layout.CalculateBounds(a, parent)
}

// AnchorForBounds derives the absolute anchor that reproduces a
// rectangle inside a different parent.
func AnchorForBounds(r, newParent Rect) AnchorValue {
	return layout.AnchorForBounds(r, newParent)
}

// ParseMode resolves a layout mode name.
func ParseMode(name string) Mode {
	return layout.ParseMode(name)
}

// Calculate computes absolute bounds for every element in the subtree
// rooted at root, placed within parent.
func Calculate(root *Element, parent Rect) map[NodeID]ElementBounds {
	if root == nil {
		return map[NodeID]ElementBounds{}
	}
	return layout.Calculate(root, parent)
}

// CalculateScreen computes layout against the nominal design canvas.
func CalculateScreen(root *Element) map[NodeID]ElementBounds {
	return Calculate(root, layout.ScreenRect())
}

// BoundsAt returns the topmost visible element containing a point.
func BoundsAt(root *Element, result map[NodeID]ElementBounds, px, py float64) (ElementBounds, bool) {
	if root == nil {
		return ElementBounds{}, false
	}
	return layout.BoundsAt(root, result, px, py)
}
