package layout

// NodeID is a stable integer handle identifying one element. The result
// map is keyed by NodeID rather than by element value because two nodes
// can be structurally identical; identity must never merge them.
type NodeID int64

// ElementBounds is the computed result for one element: its absolute
// rectangle and whether it is visible. A fresh value is produced on every
// layout pass.
type ElementBounds struct {
	ID      NodeID
	Rect    Rect
	Visible bool
}

// Contains reports whether the point (px, py) hits this element.
// Invisible elements never participate in hit-testing even though their
// rectangle is still computed and stored.
func (b ElementBounds) Contains(px, py float64) bool {
	return b.Visible && b.Rect.Contains(px, py)
}
