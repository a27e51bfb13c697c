package anchorui

import "github.com/grindlemire/go-anchorui/pkg/layout"

// Kind identifies the type of a property value.
type Kind uint8

const (
	KindNumber Kind = iota
	KindText
	KindBoolean
	KindTuple
	KindAnchor
)

// Value is a typed property value stored on an element. One of Number,
// Text, Boolean, Tuple, or Anchor.
type Value interface {
	Kind() Kind
}

// Number is a numeric property value.
type Number float64

// Text is a string property value.
type Text string

// Boolean is a boolean property value.
type Boolean bool

// Tuple is a named collection of property values. Styles are tuples, as
// are structured properties like Padding. A Tuple offers the same typed
// lookup surface the layout engine uses for elements.
type Tuple map[string]Value

// Anchor is an anchor specification property value.
type Anchor layout.AnchorValue

func (Number) Kind() Kind  { return KindNumber }
func (Text) Kind() Kind    { return KindText }
func (Boolean) Kind() Kind { return KindBoolean }
func (Tuple) Kind() Kind   { return KindTuple }
func (Anchor) Kind() Kind  { return KindAnchor }

// Compile-time check that Tuple satisfies the engine's lookup surface.
var _ layout.PropertySource = Tuple(nil)

// Number returns the named entry if it is a Number.
func (t Tuple) Number(name string) (float64, bool) {
	if v, ok := t[name].(Number); ok {
		return float64(v), true
	}
	return 0, false
}

// Text returns the named entry if it is a Text.
func (t Tuple) Text(name string) (string, bool) {
	if v, ok := t[name].(Text); ok {
		return string(v), true
	}
	return "", false
}

// Bool returns the named entry if it is a Boolean.
func (t Tuple) Bool(name string) (bool, bool) {
	if v, ok := t[name].(Boolean); ok {
		return bool(v), true
	}
	return false, false
}

// Tuple returns the named entry if it is a Tuple.
func (t Tuple) Tuple(name string) (layout.PropertySource, bool) {
	if v, ok := t[name].(Tuple); ok {
		return v, true
	}
	return nil, false
}

// Anchor returns the named entry if it is an Anchor.
func (t Tuple) Anchor(name string) (layout.AnchorValue, bool) {
	if v, ok := t[name].(Anchor); ok {
		return layout.AnchorValue(v), true
	}
	return layout.AnchorValue{}, false
}
