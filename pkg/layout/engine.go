package layout

// Calculate computes the absolute rectangle of every element in the
// subtree rooted at root, placed within parent. It returns a fresh map
// keyed by node identity; nothing on the tree is mutated. The tree is
// assumed acyclic (parents exclusively own children) and must not be
// mutated concurrently during the call.
//
// Every element gets an entry, including invisible ones: visibility gates
// hit-testing and rendering, not computation.
func Calculate(root Node, parent Rect) map[NodeID]ElementBounds {
	result := make(map[NodeID]ElementBounds)
	if root == nil {
		return result
	}
	calculateNode(root, parent, result)
	return result
}

// CalculateScreen computes layout against the nominal design canvas.
func CalculateScreen(root Node) map[NodeID]ElementBounds {
	return Calculate(root, ScreenRect())
}

// calculateNode resolves a node's own rectangle against its parent rect,
// then places its subtree.
func calculateNode(n Node, parent Rect, result map[NodeID]ElementBounds) {
	placeNode(n, ownBounds(n, parent), result)
}

// placeNode records a node's bounds and lays out its children inside the
// padded content rect. Stack and wrap containers impose child rectangles
// directly; everything else lets children resolve their own anchors
// against the content rect (padding applies even without a layout mode).
func placeNode(n Node, rect Rect, result map[NodeID]ElementBounds) {
	result[n.ID()] = ElementBounds{ID: n.ID(), Rect: rect, Visible: n.Visible()}

	children := n.LayoutChildren()
	if len(children) == 0 {
		return
	}

	content := paddingFor(n).Inset(rect)
	mode := effectiveMode(n)
	switch {
	case mode.IsStack():
		layoutStack(n, mode, content, children, result)
	case mode == ModeLeftCenterWrap:
		layoutWrap(content, children, result)
	default:
		// Full, the centering modes, and no mode all behave the same
		// here: an anchored child resolves against the content rect
		// (a size-only anchor centers itself), an unanchored child
		// fills it.
		for _, child := range children {
			calculateNode(child, content, result)
		}
	}
}

// ownBounds resolves a node's rectangle against its parent rect: by
// anchor if one is present, filling the parent otherwise. MinWidth and
// MaxWidth clamp the resolved width; there is no height counterpart.
func ownBounds(n Node, parent Rect) Rect {
	rect := parent
	if anchor, ok := n.Anchor(PropAnchor); ok {
		rect = CalculateBounds(anchor, parent)
	}
	return clampWidth(n, rect)
}

// clampWidth applies the node's MinWidth/MaxWidth constraints, either of
// which may be absent. When both are present and contradictory, MinWidth
// wins. Only width is clamped; height deliberately has no analog.
func clampWidth(n Node, rect Rect) Rect {
	if maxW, ok := nodeNumber(n, PropMaxWidth); ok && rect.Width > maxW {
		rect.Width = maxW
	}
	if minW, ok := nodeNumber(n, PropMinWidth); ok && rect.Width < minW {
		rect.Width = minW
	}
	return rect
}

// effectiveMode reads the node's layout mode, falling back to its
// resolved style tuple. Unrecognized names act as no mode.
func effectiveMode(n Node) Mode {
	name, ok := nodeText(n, PropLayoutMode)
	if !ok {
		return ModeNone
	}
	return ParseMode(name)
}

// BoundsAt returns the topmost visible element containing the point
// (px, py): the last match in depth-first order, so children win over
// their parents and later siblings win over earlier ones. Used by the
// editor for click-to-select.
func BoundsAt(root Node, result map[NodeID]ElementBounds, px, py float64) (ElementBounds, bool) {
	var hit ElementBounds
	found := false
	var walk func(n Node)
	walk = func(n Node) {
		if b, ok := result[n.ID()]; ok && b.Contains(px, py) {
			hit = b
			found = true
		}
		for _, child := range n.LayoutChildren() {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return hit, found
}
