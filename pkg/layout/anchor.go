package layout

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitAbsolute Unit = iota // Raw canvas pixels
	UnitRelative             // Ratio of the parent's corresponding size
)

// Dimension represents one anchor dimension: a pixel offset/size or a
// ratio of the parent's size.
type Dimension struct {
	Amount float64
	Unit   Unit
}

// Absolute returns a Dimension representing raw pixels.
func Absolute(px float64) Dimension {
	return Dimension{Amount: px, Unit: UnitAbsolute}
}

// Relative returns a Dimension representing a ratio of the parent's size.
// The ratio is on a 0-1 scale (0.5 = half the parent).
func Relative(ratio float64) Dimension {
	return Dimension{Amount: ratio, Unit: UnitRelative}
}

// IsRelative returns true if the dimension scales with the parent.
func (d Dimension) IsRelative() bool {
	return d.Unit == UnitRelative
}

// Size resolves the dimension as a size against the parent's extent.
func (d Dimension) Size(parentSize float64) float64 {
	if d.Unit == UnitRelative {
		return d.Amount * parentSize
	}
	return d.Amount
}

// FromStart resolves the dimension as a position measured from the
// parent's near edge.
func (d Dimension) FromStart(parentStart, parentSize float64) float64 {
	return parentStart + d.Size(parentSize)
}

// FromEnd resolves the dimension as a position measured back from the
// parent's far edge. This is what makes right/bottom anchors track the
// opposite edge as the parent resizes.
func (d Dimension) FromEnd(parentStart, parentSize float64) float64 {
	return parentStart + parentSize - d.Size(parentSize)
}

// offsetWithin resolves the dimension as an edge offset when the
// element's size along the axis is already known. Absolute offsets are
// raw pixels; relative offsets are a ratio of the space left over after
// the size, so ratio 0 sits flush with the near edge and ratio 1 flush
// with the far edge.
func (d Dimension) offsetWithin(parentSize, size float64) float64 {
	if d.Unit == UnitRelative {
		return d.Amount * (parentSize - size)
	}
	return d.Amount
}

// AnchorValue is a declarative positioning spec: up to six optional
// dimensions describing how an element sits inside its parent. Any subset
// may be set; CalculateBounds defines the precedence when several are
// present and the defaults when none are.
type AnchorValue struct {
	Left   *Dimension
	Top    *Dimension
	Right  *Dimension
	Bottom *Dimension
	Width  *Dimension
	Height *Dimension
}

// IsZero returns true if no dimension is set.
func (a AnchorValue) IsZero() bool {
	return a.Left == nil && a.Top == nil && a.Right == nil &&
		a.Bottom == nil && a.Width == nil && a.Height == nil
}

// CalculateBounds resolves an anchor against a parent rectangle.
// Each axis resolves independently, so an element can mix strategies
// across axes. Every combination of present/absent dimensions produces a
// defined rectangle; there is no failure mode.
func CalculateBounds(a AnchorValue, parent Rect) Rect {
	x, width := resolveAxis(a.Left, a.Right, a.Width, parent.X, parent.Width)
	y, height := resolveAxis(a.Top, a.Bottom, a.Height, parent.Y, parent.Height)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// resolveAxis resolves one axis of an anchor. Precedence:
//
//  1. start+size: explicit size, positioned by the start offset. A
//     relative start measures against the leftover space after the size
//     (ratio 1 lands flush with the far edge), not the full parent.
//  2. start+end: stretch between the two edges (size may go negative
//     for contradictory edges; not clamped here)
//  3. end+size: explicit size, positioned back from the end edge; a
//     relative end measures against the leftover space, mirroring 1
//  4. size only: center within the parent
//  5. start only: fill from start to the parent's far edge
//  6. end only: fill from the parent's near edge to the end position
//  7. none: fill the parent
func resolveAxis(start, end, size *Dimension, parentStart, parentSize float64) (pos, extent float64) {
	switch {
	case start != nil && size != nil:
		extent = size.Size(parentSize)
		pos = parentStart + start.offsetWithin(parentSize, extent)
	case start != nil && end != nil:
		pos = start.FromStart(parentStart, parentSize)
		extent = end.FromEnd(parentStart, parentSize) - pos
	case end != nil && size != nil:
		extent = size.Size(parentSize)
		pos = parentStart + parentSize - end.offsetWithin(parentSize, extent) - extent
	case size != nil:
		extent = size.Size(parentSize)
		pos = parentStart + (parentSize-extent)/2
	case start != nil:
		pos = start.FromStart(parentStart, parentSize)
		extent = parentSize - (pos - parentStart)
	case end != nil:
		pos = parentStart
		extent = end.FromEnd(parentStart, parentSize) - parentStart
	default:
		pos = parentStart
		extent = parentSize
	}
	return pos, extent
}

// AnchorForBounds derives the anchor that reproduces an element's current
// absolute rectangle inside a different parent. Used when re-parenting an
// element so it keeps its visual position. The result uses Absolute
// left/top/width/height only; relative and stretch semantics of the old
// anchor are not preserved, only literal position and size.
func AnchorForBounds(r Rect, newParent Rect) AnchorValue {
	left := Absolute(r.X - newParent.X)
	top := Absolute(r.Y - newParent.Y)
	width := Absolute(r.Width)
	height := Absolute(r.Height)
	return AnchorValue{Left: &left, Top: &top, Width: &width, Height: &height}
}
