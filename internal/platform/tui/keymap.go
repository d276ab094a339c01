package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	SoftDrop    key.Binding
	HardDrop    key.Binding
	Hold        key.Binding
	Confirm     key.Binding
	Restart     key.Binding
	Pause       key.Binding
	Quit        key.Binding
	Help        key.Binding
	Screenshot  key.Binding

	// Debug bindings, enabled only for debug sessions.
	LevelUp   key.Binding
	LevelDown key.Binding
	NudgeUp   key.Binding
	Skip      key.Binding
	CycleNext key.Binding
	CyclePrev key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateRight, k.SoftDrop, k.HardDrop, k.Hold, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RotateLeft, k.RotateRight},
		{k.SoftDrop, k.HardDrop, k.Hold},
		{k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
		{k.LevelUp, k.LevelDown, k.NudgeUp, k.Skip, k.CycleNext, k.CyclePrev},
	}
}

// DefaultKeyMap returns the default bindings. Debug bindings are disabled
// unless debug is set.
func DefaultKeyMap(debug bool) KeyMap {
	k := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("up", "x", "e"),
			key.WithHelp("↑/x", "rotate"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "tab"),
			key.WithHelp("c/tab", "hold"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("=", "level up"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "level down"),
		),
		NudgeUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "nudge up"),
		),
		Skip: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "skip piece"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next kind"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev kind"),
		),
	}
	for _, b := range []*key.Binding{&k.LevelUp, &k.LevelDown, &k.NudgeUp, &k.Skip, &k.CycleNext, &k.CyclePrev} {
		b.SetEnabled(debug)
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.bindings = []actionBinding{
		{&k.Quit, core.ActionQuit},
		{&k.Pause, core.ActionPause},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.RotateLeft, core.ActionRotateLeft},
		{&k.RotateRight, core.ActionRotateRight},
		{&k.SoftDrop, core.ActionSoftDrop},
		{&k.HardDrop, core.ActionHardDrop},
		{&k.Hold, core.ActionHold},
		{&k.Confirm, core.ActionConfirm},
		{&k.Restart, core.ActionRestart},
		{&k.LevelUp, core.ActionLevelUp},
		{&k.LevelDown, core.ActionLevelDown},
		{&k.NudgeUp, core.ActionNudgeUp},
		{&k.Skip, core.ActionSkip},
		{&k.CycleNext, core.ActionCycleNext},
		{&k.CyclePrev, core.ActionCyclePrev},
	}
	return km
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, ab := range km.bindings {
		if key.Matches(msg, *ab.binding) {
			return ab.action, ab.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
