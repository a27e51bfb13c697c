package layout

// Mode is a container-level setting controlling how an element arranges
// its children. The element's own rectangle is always anchor-resolved
// against its parent; the mode only governs child placement (with the
// exception that Full and LeftCenterWrap elements without an anchor
// default to filling the parent).
type Mode uint8

const (
	ModeNone Mode = iota

	// Stack modes: children placed sequentially along one axis.
	ModeTop
	ModeLeft
	ModeRight
	ModeBottom
	ModeTopScrolling
	ModeBottomScrolling
	ModeLeftScrolling

	// Centering modes: anchored children resolve against the content
	// rect; unanchored children fill it.
	ModeMiddle
	ModeCenter
	ModeCenterMiddle

	// Full: children resolve by their own anchors against the content rect.
	ModeFull

	// LeftCenterWrap: children pack into rows, wrapping on content width.
	ModeLeftCenterWrap
)

var modeNames = map[Mode]string{
	ModeNone:            "",
	ModeTop:             "Top",
	ModeLeft:            "Left",
	ModeRight:           "Right",
	ModeBottom:          "Bottom",
	ModeTopScrolling:    "TopScrolling",
	ModeBottomScrolling: "BottomScrolling",
	ModeLeftScrolling:   "LeftScrolling",
	ModeMiddle:          "Middle",
	ModeCenter:          "Center",
	ModeCenterMiddle:    "CenterMiddle",
	ModeFull:            "Full",
	ModeLeftCenterWrap:  "LeftCenterWrap",
}

var modesByName = func() map[string]Mode {
	m := make(map[string]Mode, len(modeNames))
	for mode, name := range modeNames {
		if name != "" {
			m[name] = mode
		}
	}
	return m
}()

// String returns the canonical name of the mode.
func (m Mode) String() string {
	return modeNames[m]
}

// ParseMode resolves a mode name to its Mode. Unrecognized names parse as
// ModeNone: an unknown mode behaves like no mode at all.
func ParseMode(name string) Mode {
	return modesByName[name]
}

// IsStack returns true for stack modes.
func (m Mode) IsStack() bool {
	switch m {
	case ModeTop, ModeLeft, ModeRight, ModeBottom,
		ModeTopScrolling, ModeBottomScrolling, ModeLeftScrolling:
		return true
	}
	return false
}

// Vertical returns true if a stack mode lays children out along the
// vertical axis.
func (m Mode) Vertical() bool {
	switch m {
	case ModeTop, ModeBottom, ModeTopScrolling, ModeBottomScrolling:
		return true
	}
	return false
}

// Reversed returns true if a stack mode lays children out from the far
// edge backward.
func (m Mode) Reversed() bool {
	return m == ModeBottom || m == ModeRight || m == ModeBottomScrolling
}
