package layout

// stackItem holds intermediate calculation state for one child.
// Stack-allocated per layout call, never stored on nodes.
type stackItem struct {
	node   Node
	size   float64
	weight float64
}

// layoutStack arranges children sequentially along the stack axis of a
// container. Two passes: the first measures fixed sizes and flex weights,
// the second distributes the remaining space by weight and positions
// children from the starting edge (or from the far edge backward for
// Bottom/Right/BottomScrolling). Children always fill the cross axis.
func layoutStack(n Node, mode Mode, content Rect, children []Node, result map[NodeID]ElementBounds) {
	vertical := mode.Vertical()
	total := content.Width
	if vertical {
		total = content.Height
	}
	spacing, _ := nodeNumber(n, PropSpacing)

	// Pass 1: fixed sizes and flex weights. A weighted child's size is
	// deferred; an unweighted child takes its anchor's along-axis size
	// dimension, or zero when absent.
	items := make([]stackItem, len(children))
	totalFixed := 0.0
	totalWeight := 0.0
	for i, child := range children {
		item := &items[i]
		item.node = child
		if weight, ok := nodeNumber(child, PropFlexWeight); ok && weight > 0 {
			item.weight = weight
			totalWeight += weight
			continue
		}
		item.size = anchorAxisSize(child, vertical, total)
		totalFixed += item.size
	}

	totalSpacing := 0.0
	if len(children) > 1 {
		totalSpacing = spacing * float64(len(children)-1)
	}
	remaining := max(0, total-totalFixed-totalSpacing)

	// Pass 2: distribute remaining space and position sequentially.
	if totalWeight > 0 {
		for i := range items {
			if items[i].weight > 0 {
				items[i].size = remaining * items[i].weight / totalWeight
			}
		}
	}

	if mode.Reversed() {
		cursor := content.Y + content.Height
		if !vertical {
			cursor = content.X + content.Width
		}
		for i := range items {
			cursor -= items[i].size
			placeNode(items[i].node, stackSlot(content, vertical, cursor, items[i].size), result)
			cursor -= spacing
		}
		return
	}

	cursor := content.Y
	if !vertical {
		cursor = content.X
	}
	for i := range items {
		placeNode(items[i].node, stackSlot(content, vertical, cursor, items[i].size), result)
		cursor += items[i].size + spacing
	}
}

// stackSlot builds a child rectangle at the given main-axis position and
// size; the cross axis spans the full content rect.
func stackSlot(content Rect, vertical bool, pos, size float64) Rect {
	if vertical {
		return Rect{X: content.X, Y: pos, Width: content.Width, Height: size}
	}
	return Rect{X: pos, Y: content.Y, Width: size, Height: content.Height}
}

// anchorAxisSize measures a child's anchor size dimension along one axis
// against the content extent. Absent anchors or dimensions measure zero.
func anchorAxisSize(n Node, vertical bool, extent float64) float64 {
	anchor, ok := n.Anchor(PropAnchor)
	if !ok {
		return 0
	}
	dim := anchor.Width
	if vertical {
		dim = anchor.Height
	}
	if dim == nil {
		return 0
	}
	return dim.Size(extent)
}
