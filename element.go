package anchorui

import (
	"sync/atomic"

	"github.com/grindlemire/go-anchorui/pkg/layout"
)

// nextID hands out element identity handles. Monotonic and never reused,
// so two structurally identical elements can never collide in a layout
// result.
var nextID atomic.Int64

// Element is a node in the editor's UI tree: a type tag, an ordered set
// of children owned exclusively by this element, a visibility flag, and
// a mapping from property name to typed value. The layout engine reads
// elements and writes nothing back.
type Element struct {
	id       layout.NodeID
	kind     string
	parent   *Element
	children []*Element

	visible bool
	props   map[string]Value

	// style is the resolved style tuple, already de-referenced from any
	// named style by the upstream resolver. Layout properties missing on
	// the element fall back to it, one level only.
	style Tuple
}

// Compile-time check that Element implements the engine's node interface.
var _ layout.Node = (*Element)(nil)

// New creates a new Element with the given options.
// Elements are visible by default and carry no properties.
func New(opts ...Option) *Element {
	e := &Element{
		id:      layout.NodeID(nextID.Add(1)),
		visible: true,
		props:   map[string]Value{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's stable identity handle.
func (e *Element) ID() layout.NodeID {
	return e.id
}

// Type returns the element's type tag.
func (e *Element) Type() string {
	return e.kind
}

// SetType sets the element's type tag.
func (e *Element) SetType(kind string) {
	e.kind = kind
}

// Visible returns the element's visibility flag.
func (e *Element) Visible() bool {
	return e.visible
}

// SetVisible sets the element's visibility flag. Invisible elements are
// still laid out but never hit-tested or rendered.
func (e *Element) SetVisible(visible bool) {
	e.visible = visible
}

// Property returns the raw value of a property, if present.
func (e *Element) Property(name string) (Value, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetProperty stores a property value. Passing nil deletes the property.
// An element's anchor is never mutated in place: editing substitutes a
// new value.
func (e *Element) SetProperty(name string, v Value) {
	if v == nil {
		delete(e.props, name)
		return
	}
	e.props[name] = v
}

// StyleTuple returns the element's resolved style tuple, if set.
func (e *Element) StyleTuple() (Tuple, bool) {
	if e.style == nil {
		return nil, false
	}
	return e.style, true
}

// SetStyleTuple replaces the element's resolved style tuple.
func (e *Element) SetStyleTuple(style Tuple) {
	e.style = style
}

// --- Typed property accessors (the engine's lookup surface) ---

// Number returns the named property if it is a Number.
func (e *Element) Number(name string) (float64, bool) {
	if v, ok := e.props[name].(Number); ok {
		return float64(v), true
	}
	return 0, false
}

// Text returns the named property if it is a Text.
func (e *Element) Text(name string) (string, bool) {
	if v, ok := e.props[name].(Text); ok {
		return string(v), true
	}
	return "", false
}

// Bool returns the named property if it is a Boolean.
func (e *Element) Bool(name string) (bool, bool) {
	if v, ok := e.props[name].(Boolean); ok {
		return bool(v), true
	}
	return false, false
}

// Tuple returns the named property if it is a Tuple.
func (e *Element) Tuple(name string) (layout.PropertySource, bool) {
	if v, ok := e.props[name].(Tuple); ok {
		return v, true
	}
	return nil, false
}

// Anchor returns the named property if it is an Anchor.
func (e *Element) Anchor(name string) (layout.AnchorValue, bool) {
	if v, ok := e.props[name].(Anchor); ok {
		return layout.AnchorValue(v), true
	}
	return layout.AnchorValue{}, false
}
