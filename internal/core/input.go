package core

// Action is a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left - shift piece left
	ActionRight              // D, Right - shift piece right
	ActionRotateLeft         // Z - rotate counter-clockwise
	ActionRotateRight        // E, X, Up - rotate clockwise
	ActionSoftDrop           // S, Down - fast fall while held
	ActionHardDrop           // Space - drop and lock immediately
	ActionHold               // Tab, C - swap with held piece
	ActionConfirm            // Enter - start a game
	ActionRestart            // R - restart after game over
	ActionPause              // P, Esc - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit
	ActionLevelUp            // = (debug)
	ActionLevelDown          // - (debug)
	ActionNudgeUp            // W (debug) - lift the piece one row
	ActionSkip               // Delete (debug) - discard the current piece
	ActionCycleNext          // ] (debug) - step the next-piece kind forward
	ActionCyclePrev          // [ (debug) - step the next-piece kind backward
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionHold:        "Hold",
	ActionConfirm:     "Confirm",
	ActionRestart:     "Restart",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
	ActionLevelUp:     "LevelUp",
	ActionLevelDown:   "LevelDown",
	ActionNudgeUp:     "NudgeUp",
	ActionSkip:        "Skip",
	ActionCycleNext:   "CycleNext",
	ActionCyclePrev:   "CyclePrev",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the keyboard input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
