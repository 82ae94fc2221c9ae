package world

import "strings"

// Action is a logical input, independent of which key produced it.
type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionConfirm
	ActionCancel
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "none",
	ActionForward:   "forward",
	ActionBackward:  "backward",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionConfirm:   "confirm",
	ActionCancel:    "cancel",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a config name such as "turn_left" to its Action.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a := ActionForward; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionForward; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// InputState is the latest-value snapshot of input. Held is level state used for
// movement; Pressed is an edge raised on an up->down transition that stays set until
// consumed, so confirm/cancel fire once per press no matter how long the key is held.
type InputState struct {
	held    [actionCount]bool
	pressed [actionCount]bool
}

// Set records the current up/down state of an action. Repeated downs (key auto-repeat)
// do not raise a new edge.
func (s *InputState) Set(a Action, down bool) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	if down && !s.held[a] {
		s.pressed[a] = true
	}
	s.held[a] = down
}

// Press marks a as down.
func (s *InputState) Press(a Action) { s.Set(a, true) }

// Release marks a as up. A pending edge survives the release until consumed.
func (s *InputState) Release(a Action) { s.Set(a, false) }

// Held reports whether a is currently down.
func (s *InputState) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s.held[a]
}

// Pressed reports whether an unconsumed edge is pending for a.
func (s *InputState) Pressed(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s.pressed[a]
}

// Consume reports and clears the pending edge for a.
func (s *InputState) Consume(a Action) bool {
	if !s.Pressed(a) {
		return false
	}
	s.pressed[a] = false
	return true
}

// ReleaseAll clears held state and pending edges (e.g. when the window loses focus).
func (s *InputState) ReleaseAll() {
	*s = InputState{}
}
