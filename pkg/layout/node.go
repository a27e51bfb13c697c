package layout

// Property names the engine reads from nodes.
const (
	PropAnchor     = "Anchor"
	PropLayoutMode = "LayoutMode"
	PropPadding    = "Padding"
	PropSpacing    = "Spacing"
	PropFlexWeight = "FlexWeight"
	PropMinWidth   = "MinWidth"
	PropMaxWidth   = "MaxWidth"
)

// Padding tuple keys.
const (
	PadFull       = "Full"
	PadHorizontal = "Horizontal"
	PadVertical   = "Vertical"
	PadLeft       = "Left"
	PadRight      = "Right"
	PadTop        = "Top"
	PadBottom     = "Bottom"
)

// PropertySource is the typed property lookup surface the engine consumes.
// Each lookup returns the value and whether the property was present with
// that type; absent or differently-typed properties report false.
type PropertySource interface {
	Number(name string) (float64, bool)
	Text(name string) (string, bool)
	Bool(name string) (bool, bool)
	Tuple(name string) (PropertySource, bool)
	Anchor(name string) (AnchorValue, bool)
}

// Node is the interface the layout engine walks. The element package
// implements it; the engine itself never mutates a node.
type Node interface {
	PropertySource

	// ID returns the node's stable identity handle.
	ID() NodeID

	// Visible returns the node's visibility flag. Invisible nodes are
	// still laid out; only hit-testing and rendering skip them.
	Visible() bool

	// LayoutChildren returns the node's children in document order.
	LayoutChildren() []Node

	// Style returns the node's resolved style tuple, if any. Layout
	// properties absent on the node fall back to it (one level, never
	// a chain).
	Style() (PropertySource, bool)
}

// nodeNumber reads a numeric property from the node, falling back to its
// resolved style tuple.
func nodeNumber(n Node, name string) (float64, bool) {
	if v, ok := n.Number(name); ok {
		return v, true
	}
	if style, ok := n.Style(); ok {
		return style.Number(name)
	}
	return 0, false
}

// nodeText reads a text property from the node, falling back to its
// resolved style tuple.
func nodeText(n Node, name string) (string, bool) {
	if v, ok := n.Text(name); ok {
		return v, true
	}
	if style, ok := n.Style(); ok {
		return style.Text(name)
	}
	return "", false
}

// nodeTuple reads a tuple property from the node, falling back to its
// resolved style tuple.
func nodeTuple(n Node, name string) (PropertySource, bool) {
	if v, ok := n.Tuple(name); ok {
		return v, true
	}
	if style, ok := n.Style(); ok {
		return style.Tuple(name)
	}
	return nil, false
}
