package layout

import (
	"math"
	"testing"
)

func TestDimension_Resolve(t *testing.T) {
	type tc struct {
		dim       Dimension
		start     float64
		size      float64
		fromStart float64
		fromEnd   float64
		asSize    float64
	}

	tests := map[string]tc{
		"absolute": {
			dim:   Absolute(30),
			start: 10, size: 100,
			fromStart: 40, fromEnd: 80, asSize: 30,
		},
		"relative": {
			dim:   Relative(0.25),
			start: 10, size: 100,
			fromStart: 35, fromEnd: 85, asSize: 25,
		},
		"relative full": {
			dim:   Relative(1),
			start: 0, size: 200,
			fromStart: 200, fromEnd: 0, asSize: 200,
		},
		"absolute negative offset": {
			dim:   Absolute(-10),
			start: 50, size: 100,
			fromStart: 40, fromEnd: 160, asSize: -10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.dim.FromStart(tt.start, tt.size); got != tt.fromStart {
				t.Errorf("FromStart() = %v, want %v", got, tt.fromStart)
			}
			if got := tt.dim.FromEnd(tt.start, tt.size); got != tt.fromEnd {
				t.Errorf("FromEnd() = %v, want %v", got, tt.fromEnd)
			}
			if got := tt.dim.Size(tt.size); got != tt.asSize {
				t.Errorf("Size() = %v, want %v", got, tt.asSize)
			}
		})
	}
}

func TestCalculateBounds_HorizontalPrecedence(t *testing.T) {
	type tc struct {
		anchor AnchorValue
		parent Rect
		want   Rect
	}

	parent := NewRect(100, 200, 400, 300)

	tests := map[string]tc{
		"left and width": {
			anchor: AnchorValue{Left: dim(Absolute(20)), Width: dim(Absolute(50))},
			parent: parent,
			want:   NewRect(120, 200, 50, 300),
		},
		"left and right stretch": {
			anchor: AnchorValue{Left: dim(Absolute(20)), Right: dim(Absolute(30))},
			parent: parent,
			want:   NewRect(120, 200, 350, 300),
		},
		"right and width": {
			anchor: AnchorValue{Right: dim(Absolute(30)), Width: dim(Absolute(50))},
			parent: parent,
			want:   NewRect(420, 200, 50, 300),
		},
		"width only centers": {
			anchor: AnchorValue{Width: dim(Absolute(100))},
			parent: parent,
			want:   NewRect(250, 200, 100, 300),
		},
		"left only fills remainder": {
			anchor: AnchorValue{Left: dim(Absolute(150))},
			parent: parent,
			want:   NewRect(250, 200, 250, 300),
		},
		"right only fills from near edge": {
			anchor: AnchorValue{Right: dim(Absolute(50))},
			parent: parent,
			want:   NewRect(100, 200, 350, 300),
		},
		"no anchor fills parent": {
			anchor: AnchorValue{},
			parent: parent,
			want:   parent,
		},
		// Width+left takes precedence over a contradicting right.
		"left width right: left+width wins": {
			anchor: AnchorValue{
				Left:  dim(Absolute(10)),
				Width: dim(Absolute(50)),
				Right: dim(Absolute(10)),
			},
			parent: parent,
			want:   NewRect(110, 200, 50, 300),
		},
		"contradictory edges produce negative width": {
			anchor: AnchorValue{Left: dim(Absolute(300)), Right: dim(Absolute(300))},
			parent: parent,
			want:   NewRect(400, 200, -200, 300),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CalculateBounds(tt.anchor, tt.parent); got != tt.want {
				t.Errorf("CalculateBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateBounds_RelativeDimensions(t *testing.T) {
	type tc struct {
		anchor AnchorValue
		parent Rect
		want   Rect
	}

	tests := map[string]tc{
		"relative left, absolute width": {
			anchor: AnchorValue{
				Left:   dim(Relative(0.5)),
				Width:  dim(Absolute(50)),
				Top:    dim(Absolute(10)),
				Height: dim(Absolute(20)),
			},
			parent: NewRect(0, 0, 200, 100),
			want:   NewRect(75, 10, 50, 20),
		},
		"relative size on both axes": {
			anchor: AnchorValue{
				Width:  dim(Relative(0.5)),
				Height: dim(Relative(0.5)),
			},
			parent: NewRect(0, 0, 400, 200),
			want:   NewRect(100, 50, 200, 100),
		},
		// 0.1 of the 460 leftover after the 40 width, back from the far
		// edge: end at 454, so x = 414.
		"relative right spans leftover space": {
			anchor: AnchorValue{
				Right: dim(Relative(0.1)),
				Width: dim(Absolute(40)),
			},
			parent: NewRect(0, 0, 500, 100),
			want:   NewRect(414, 0, 40, 100),
		},
		"relative top, absolute height": {
			anchor: AnchorValue{
				Top:    dim(Relative(0.5)),
				Height: dim(Absolute(20)),
			},
			parent: NewRect(0, 0, 100, 100),
			want:   NewRect(0, 40, 100, 20),
		},
		"relative left of 1 lands flush with far edge": {
			anchor: AnchorValue{
				Left:  dim(Relative(1)),
				Width: dim(Absolute(50)),
			},
			parent: NewRect(0, 0, 200, 100),
			want:   NewRect(150, 0, 50, 100),
		},
		"relative right of 1 lands flush with near edge": {
			anchor: AnchorValue{
				Right: dim(Relative(1)),
				Width: dim(Absolute(50)),
			},
			parent: NewRect(0, 0, 200, 100),
			want:   NewRect(0, 0, 50, 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CalculateBounds(tt.anchor, tt.parent); got != tt.want {
				t.Errorf("CalculateBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateBounds_EndOnlyBothAxes(t *testing.T) {
	// right: 10, bottom: 10 against (0,0,100,100) fills from the origin
	// to (90, 90).
	anchor := AnchorValue{Right: dim(Absolute(10)), Bottom: dim(Absolute(10))}
	got := CalculateBounds(anchor, NewRect(0, 0, 100, 100))
	want := NewRect(0, 0, 90, 90)
	if got != want {
		t.Errorf("CalculateBounds() = %+v, want %+v", got, want)
	}
}

func TestCalculateBounds_MixedAxes(t *testing.T) {
	// Axes resolve independently: horizontal uses stretch, vertical
	// uses end+size.
	anchor := AnchorValue{
		Left:   dim(Absolute(10)),
		Right:  dim(Absolute(10)),
		Bottom: dim(Absolute(20)),
		Height: dim(Absolute(30)),
	}
	got := CalculateBounds(anchor, NewRect(0, 0, 200, 100))
	want := NewRect(10, 50, 180, 30)
	if got != want {
		t.Errorf("CalculateBounds() = %+v, want %+v", got, want)
	}
}

func TestCalculateBounds_AbsoluteIndependentOfParentSize(t *testing.T) {
	// left+width absolute anchors must not move when the parent resizes.
	anchor := AnchorValue{
		Left:   dim(Absolute(15)),
		Width:  dim(Absolute(60)),
		Top:    dim(Absolute(5)),
		Height: dim(Absolute(40)),
	}

	small := CalculateBounds(anchor, NewRect(0, 0, 100, 100))
	large := CalculateBounds(anchor, NewRect(0, 0, 1000, 1000))

	if small != large {
		t.Errorf("absolute anchor moved with parent size: %+v vs %+v", small, large)
	}
	if small != NewRect(15, 5, 60, 40) {
		t.Errorf("CalculateBounds() = %+v, want (15, 5, 60, 40)", small)
	}
}

func TestCalculateBounds_RelativeLinearity(t *testing.T) {
	// Scaling the parent's size by k scales every relative-derived
	// component by the same k.
	anchor := AnchorValue{
		Left:   dim(Relative(0.2)),
		Width:  dim(Relative(0.3)),
		Top:    dim(Relative(0.1)),
		Height: dim(Relative(0.5)),
	}

	base := CalculateBounds(anchor, NewRect(0, 0, 100, 100))
	for _, k := range []float64{0.5, 2, 3.25, 10} {
		scaled := CalculateBounds(anchor, NewRect(0, 0, 100*k, 100*k))
		if math.Abs(scaled.X-base.X*k) > 1e-9 ||
			math.Abs(scaled.Y-base.Y*k) > 1e-9 ||
			math.Abs(scaled.Width-base.Width*k) > 1e-9 ||
			math.Abs(scaled.Height-base.Height*k) > 1e-9 {
			t.Errorf("k=%v: scaled = %+v, want %+v scaled by k", k, scaled, base)
		}
	}
}

func TestAnchorForBounds_RoundTrip(t *testing.T) {
	type tc struct {
		rect      Rect
		newParent Rect
	}

	tests := map[string]tc{
		"child inside parent": {
			rect:      NewRect(150, 80, 60, 40),
			newParent: NewRect(100, 50, 300, 200),
		},
		"child outside parent": {
			rect:      NewRect(-20, -30, 10, 10),
			newParent: NewRect(100, 100, 50, 50),
		},
		"parent at origin": {
			rect:      NewRect(75, 10, 50, 20),
			newParent: NewRect(0, 0, 200, 100),
		},
		"zero-size rect": {
			rect:      NewRect(5, 5, 0, 0),
			newParent: NewRect(0, 0, 100, 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			anchor := AnchorForBounds(tt.rect, tt.newParent)

			// Only absolute left/top/width/height are produced.
			if anchor.Right != nil || anchor.Bottom != nil {
				t.Error("AnchorForBounds() must not set Right or Bottom")
			}
			for _, d := range []*Dimension{anchor.Left, anchor.Top, anchor.Width, anchor.Height} {
				if d == nil {
					t.Fatal("AnchorForBounds() left a dimension unset")
				}
				if d.IsRelative() {
					t.Error("AnchorForBounds() must not produce relative dimensions")
				}
			}

			if got := CalculateBounds(anchor, tt.newParent); got != tt.rect {
				t.Errorf("round trip = %+v, want %+v", got, tt.rect)
			}
		})
	}
}

func TestAnchorValue_IsZero(t *testing.T) {
	if !(AnchorValue{}).IsZero() {
		t.Error("empty anchor should be zero")
	}
	if (AnchorValue{Left: dim(Absolute(0))}).IsZero() {
		t.Error("anchor with a set dimension should not be zero")
	}
}
