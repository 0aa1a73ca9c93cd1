package camera

import (
	"fmt"
	"strings"
)

// Action is a logical camera input, independent of the key or button bound
// to it.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Up
	Down
	RollLeft
	RollRight
	Zoom
	ResetPose
	ResetDistance
	Toggle3D
	ToggleFreeLook
	ToggleFreeMove
	ToggleInvertYaw
	ToggleInvertPitch
	ToggleInvertForward
	ToggleInvertVertical
	TogglePrintInfo

	actionCount
)

var actionNames = [actionCount]string{
	Forward:              "forward",
	Backward:             "backward",
	Left:                 "left",
	Right:                "right",
	Up:                   "up",
	Down:                 "down",
	RollLeft:             "roll_left",
	RollRight:            "roll_right",
	Zoom:                 "zoom",
	ResetPose:            "reset_pose",
	ResetDistance:        "reset_distance",
	Toggle3D:             "toggle_3d",
	ToggleFreeLook:       "toggle_free_look",
	ToggleFreeMove:       "toggle_free_move",
	ToggleInvertYaw:      "toggle_invert_yaw",
	ToggleInvertPitch:    "toggle_invert_pitch",
	ToggleInvertForward:  "toggle_invert_forward",
	ToggleInvertVertical: "toggle_invert_vertical",
	TogglePrintInfo:      "toggle_print_info",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by its config name (case-insensitive).
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown camera action %q", name)
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ActionSet is a bit set of actions.
type ActionSet uint32

// NewActionSet returns a set holding the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return a >= 0 && a < actionCount && s&(1<<uint(a)) != 0
}

// With returns the set plus a.
func (s ActionSet) With(a Action) ActionSet {
	if a < 0 || a >= actionCount {
		return s
	}
	return s | 1<<uint(a)
}

// Without returns the set minus a.
func (s ActionSet) Without(a Action) ActionSet {
	if a < 0 || a >= actionCount {
		return s
	}
	return s &^ (1 << uint(a))
}
