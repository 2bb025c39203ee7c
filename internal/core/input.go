package core

// Control is a symbolic name of an on-screen control.
// The input layer reports presses against these names; a touch that hits no
// control is reported as a tap with ControlNone.
type Control string

const (
	ControlNone   Control = ""
	ControlUp     Control = "up"
	ControlDown   Control = "down"
	ControlLeft   Control = "left"
	ControlRight  Control = "right"
	ControlReplay Control = "replay"
)

// IsDirection reports whether the control moves the player.
func (c Control) IsDirection() bool {
	switch c {
	case ControlUp, ControlDown, ControlLeft, ControlRight:
		return true
	}
	return false
}

// String returns the control name, or "tap" for ControlNone.
func (c Control) String() string {
	if c == ControlNone {
		return "tap"
	}
	return string(c)
}

// InputKind distinguishes press, release and generic tap events.
type InputKind int

const (
	InputPress InputKind = iota
	InputRelease
	InputTap
)

// String returns a human-readable name for the kind.
func (k InputKind) String() string {
	switch k {
	case InputPress:
		return "Press"
	case InputRelease:
		return "Release"
	case InputTap:
		return "Tap"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete user input.
type InputEvent struct {
	Kind    InputKind
	Control Control
}

// Press returns a press event for the control.
func Press(c Control) InputEvent {
	return InputEvent{Kind: InputPress, Control: c}
}

// Release returns a release event for the control.
func Release(c Control) InputEvent {
	return InputEvent{Kind: InputRelease, Control: c}
}

// Tap returns a generic tap that hit no control.
func Tap() InputEvent {
	return InputEvent{Kind: InputTap}
}
