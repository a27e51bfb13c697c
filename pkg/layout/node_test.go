package layout

// Test fixture: a minimal Node implementation backed by maps, so engine
// tests don't depend on the element package.

type testProps struct {
	nums    map[string]float64
	texts   map[string]string
	bools   map[string]bool
	tuples  map[string]*testProps
	anchors map[string]AnchorValue
}

func (p *testProps) Number(name string) (float64, bool) {
	v, ok := p.nums[name]
	return v, ok
}

func (p *testProps) Text(name string) (string, bool) {
	v, ok := p.texts[name]
	return v, ok
}

func (p *testProps) Bool(name string) (bool, bool) {
	v, ok := p.bools[name]
	return v, ok
}

func (p *testProps) Tuple(name string) (PropertySource, bool) {
	v, ok := p.tuples[name]
	if !ok {
		return nil, false
	}
	return v, true
}

func (p *testProps) Anchor(name string) (AnchorValue, bool) {
	v, ok := p.anchors[name]
	return v, ok
}

type testNode struct {
	testProps
	id       NodeID
	visible  bool
	style    *testProps
	children []*testNode
}

var testIDs NodeID

func newTestNode(children ...*testNode) *testNode {
	testIDs++
	return &testNode{id: testIDs, visible: true, children: children}
}

func (n *testNode) ID() NodeID    { return n.id }
func (n *testNode) Visible() bool { return n.visible }

func (n *testNode) LayoutChildren() []Node {
	result := make([]Node, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

func (n *testNode) Style() (PropertySource, bool) {
	if n.style == nil {
		return nil, false
	}
	return n.style, true
}

// Chainable setters keep table-test declarations compact.

func (n *testNode) withAnchor(a AnchorValue) *testNode {
	if n.anchors == nil {
		n.anchors = map[string]AnchorValue{}
	}
	n.anchors[PropAnchor] = a
	return n
}

func (n *testNode) withMode(name string) *testNode {
	if n.texts == nil {
		n.texts = map[string]string{}
	}
	n.texts[PropLayoutMode] = name
	return n
}

func (n *testNode) withNum(name string, v float64) *testNode {
	if n.nums == nil {
		n.nums = map[string]float64{}
	}
	n.nums[name] = v
	return n
}

func (n *testNode) withPadding(sides map[string]float64) *testNode {
	if n.tuples == nil {
		n.tuples = map[string]*testProps{}
	}
	n.tuples[PropPadding] = &testProps{nums: sides}
	return n
}

func (n *testNode) withStyle(style *testProps) *testNode {
	n.style = style
	return n
}

func (n *testNode) invisible() *testNode {
	n.visible = false
	return n
}

// dim is shorthand for taking the address of a Dimension in literals.
func dim(d Dimension) *Dimension {
	return &d
}
