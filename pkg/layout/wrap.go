package layout

// wrapItem holds one measured child during row packing.
type wrapItem struct {
	node          Node
	width, height float64
}

// layoutWrap packs children left-to-right into rows, wrapping whenever
// the next child would exceed the content width and the current row is
// non-empty (a single over-wide child still gets its own row). Children
// are vertically centered within their row, whose height is the tallest
// child in it; rows stack top-to-bottom with no inter-row gap.
func layoutWrap(content Rect, children []Node, result map[NodeID]ElementBounds) {
	items := make([]wrapItem, len(children))
	for i, child := range children {
		items[i] = wrapItem{
			node:   child,
			width:  anchorAxisSize(child, false, content.Width),
			height: anchorAxisSize(child, true, content.Height),
		}
	}

	y := content.Y
	start := 0
	for start < len(items) {
		// Greedily extend the row while the next child fits.
		rowWidth := items[start].width
		rowHeight := items[start].height
		end := start + 1
		for end < len(items) && rowWidth+items[end].width <= content.Width {
			rowWidth += items[end].width
			rowHeight = max(rowHeight, items[end].height)
			end++
		}

		x := content.X
		for i := start; i < end; i++ {
			slot := Rect{
				X:      x,
				Y:      y + (rowHeight-items[i].height)/2,
				Width:  items[i].width,
				Height: items[i].height,
			}
			placeNode(items[i].node, slot, result)
			x += items[i].width
		}

		y += rowHeight
		start = end
	}
}
