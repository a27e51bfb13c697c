package layout

// Padding represents inset values for the four sides of a rectangle.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// PaddingAll creates a Padding with the same value on all sides.
func PaddingAll(n float64) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PaddingSymmetric creates a Padding with vertical (top/bottom) and
// horizontal (left/right) values.
func PaddingSymmetric(v, h float64) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of Left and Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the sum of Top and Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// IsZero returns true if all sides are zero.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

// Inset returns the content rect: r reduced by the padding on each side.
// Width and height are clamped to a minimum of zero, never negative.
func (p Padding) Inset(r Rect) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(0, r.Width-p.Horizontal()),
		Height: max(0, r.Height-p.Vertical()),
	}
}

// paddingFor extracts a node's padding from its Padding tuple (falling
// back to the style tuple). The tuple may specify Full (all four sides),
// Horizontal/Vertical (side pairs), or explicit Left/Right/Top/Bottom.
// Precedence per side: explicit side > shorthand axis > Full > zero.
func paddingFor(n Node) Padding {
	tuple, ok := nodeTuple(n, PropPadding)
	if !ok {
		return Padding{}
	}
	return paddingFromTuple(tuple)
}

func paddingFromTuple(t PropertySource) Padding {
	var p Padding
	if full, ok := t.Number(PadFull); ok {
		p = PaddingAll(full)
	}
	if h, ok := t.Number(PadHorizontal); ok {
		p.Left, p.Right = h, h
	}
	if v, ok := t.Number(PadVertical); ok {
		p.Top, p.Bottom = v, v
	}
	if left, ok := t.Number(PadLeft); ok {
		p.Left = left
	}
	if right, ok := t.Number(PadRight); ok {
		p.Right = right
	}
	if top, ok := t.Number(PadTop); ok {
		p.Top = top
	}
	if bottom, ok := t.Number(PadBottom); ok {
		p.Bottom = bottom
	}
	return p
}
