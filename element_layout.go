package anchorui

import "github.com/grindlemire/go-anchorui/pkg/layout"

// --- Implement layout.Node ---

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []layout.Node {
	result := make([]layout.Node, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// Style returns the resolved style tuple as the engine's fallback
// property source.
func (e *Element) Style() (layout.PropertySource, bool) {
	if e.style == nil {
		return nil, false
	}
	return e.style, true
}
