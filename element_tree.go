package anchorui

// --- Tree structure API ---

// AddChild appends children to this Element. The parent owns its
// children exclusively; adding a child that already has a parent moves
// it.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// RemoveChild removes a child from this Element, preserving the order of
// the remaining children. Returns true if the child was found and
// removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Reparent moves this element under a new parent, substituting an anchor
// that preserves its current absolute position. current must be the
// element's rectangle from the latest layout pass and newParentRect the
// new parent's content rectangle. The derived anchor is absolute
// left/top/width/height only; relative and stretch semantics of the old
// anchor are not carried over.
func (e *Element) Reparent(newParent *Element, current, newParentRect Rect) {
	e.SetProperty(PropAnchor, Anchor(AnchorForBounds(current, newParentRect)))
	newParent.AddChild(e)
}

// Children returns the child elements in document order. Callers must
// not mutate the returned slice.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk visits this element and all descendants depth-first, in document
// order. Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of elements in the subtree rooted here.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element) bool {
		n++
		return true
	})
	return n
}
