package anchorui

// Option configures an Element.
type Option func(*Element)

// WithType sets the element's type tag.
func WithType(kind string) Option {
	return func(e *Element) {
		e.kind = kind
	}
}

// WithVisible sets the element's visibility flag.
func WithVisible(visible bool) Option {
	return func(e *Element) {
		e.visible = visible
	}
}

// WithProperty sets an arbitrary property value.
func WithProperty(name string, v Value) Option {
	return func(e *Element) {
		e.SetProperty(name, v)
	}
}

// WithChildren appends children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}

// WithStyle sets the element's resolved style tuple.
func WithStyle(style Tuple) Option {
	return func(e *Element) {
		e.style = style
	}
}

// --- Anchor options ---

// WithAnchor sets the element's anchor specification.
func WithAnchor(a AnchorValue) Option {
	return func(e *Element) {
		e.props[PropAnchor] = Anchor(a)
	}
}

// WithAnchorRect anchors the element at a fixed position and size via
// absolute left/top/width/height dimensions.
func WithAnchorRect(x, y, width, height float64) Option {
	left, top := Absolute(x), Absolute(y)
	w, h := Absolute(width), Absolute(height)
	return WithAnchor(AnchorValue{Left: &left, Top: &top, Width: &w, Height: &h})
}

// --- Layout mode options ---

// WithLayoutMode sets how the element arranges its children.
func WithLayoutMode(m Mode) Option {
	return func(e *Element) {
		e.props[PropLayoutMode] = Text(m.String())
	}
}

// WithSpacing sets the space between stacked children.
func WithSpacing(px float64) Option {
	return func(e *Element) {
		e.props[PropSpacing] = Number(px)
	}
}

// WithFlexWeight sets the element's share of remaining stack space.
func WithFlexWeight(weight float64) Option {
	return func(e *Element) {
		e.props[PropFlexWeight] = Number(weight)
	}
}

// --- Padding options ---

// WithPadding sets uniform padding on all four sides.
func WithPadding(px float64) Option {
	return func(e *Element) {
		e.props[PropPadding] = Tuple{"Full": Number(px)}
	}
}

// WithPaddingTuple sets the full padding tuple (Full, Horizontal,
// Vertical, Left, Right, Top, Bottom entries as needed).
func WithPaddingTuple(padding Tuple) Option {
	return func(e *Element) {
		e.props[PropPadding] = padding
	}
}

// --- Size constraint options ---

// WithMinWidth sets the minimum width clamp.
func WithMinWidth(px float64) Option {
	return func(e *Element) {
		e.props[PropMinWidth] = Number(px)
	}
}

// WithMaxWidth sets the maximum width clamp.
func WithMaxWidth(px float64) Option {
	return func(e *Element) {
		e.props[PropMaxWidth] = Number(px)
	}
}
