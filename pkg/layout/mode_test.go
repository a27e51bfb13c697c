package layout

import "testing"

func TestParseMode(t *testing.T) {
	type tc struct {
		name string
		want Mode
	}

	tests := map[string]tc{
		"top":              {name: "Top", want: ModeTop},
		"bottom scrolling": {name: "BottomScrolling", want: ModeBottomScrolling},
		"center middle":    {name: "CenterMiddle", want: ModeCenterMiddle},
		"wrap":             {name: "LeftCenterWrap", want: ModeLeftCenterWrap},
		"full":             {name: "Full", want: ModeFull},
		"unknown":          {name: "Diagonal", want: ModeNone},
		"empty":            {name: "", want: ModeNone},
		"case sensitive":   {name: "top", want: ModeNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseMode(tt.name); got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMode_StringRoundTrip(t *testing.T) {
	for mode, name := range modeNames {
		if name == "" {
			continue
		}
		if got := ParseMode(mode.String()); got != mode {
			t.Errorf("ParseMode(%q) = %v, want %v", name, got, mode)
		}
	}
}

func TestMode_Classification(t *testing.T) {
	type tc struct {
		mode     Mode
		stack    bool
		vertical bool
		reversed bool
	}

	tests := map[string]tc{
		"Top":             {mode: ModeTop, stack: true, vertical: true},
		"Bottom":          {mode: ModeBottom, stack: true, vertical: true, reversed: true},
		"Left":            {mode: ModeLeft, stack: true},
		"Right":           {mode: ModeRight, stack: true, reversed: true},
		"TopScrolling":    {mode: ModeTopScrolling, stack: true, vertical: true},
		"BottomScrolling": {mode: ModeBottomScrolling, stack: true, vertical: true, reversed: true},
		"LeftScrolling":   {mode: ModeLeftScrolling, stack: true},
		"Middle":          {mode: ModeMiddle},
		"Full":            {mode: ModeFull},
		"LeftCenterWrap":  {mode: ModeLeftCenterWrap},
		"None":            {mode: ModeNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mode.IsStack(); got != tt.stack {
				t.Errorf("IsStack() = %v, want %v", got, tt.stack)
			}
			if got := tt.mode.Vertical(); got != tt.vertical {
				t.Errorf("Vertical() = %v, want %v", got, tt.vertical)
			}
			if got := tt.mode.Reversed(); got != tt.reversed {
				t.Errorf("Reversed() = %v, want %v", got, tt.reversed)
			}
		})
	}
}
