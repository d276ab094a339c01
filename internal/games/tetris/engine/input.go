package engine

// FastDrop is the keyboard fast-fall request for one tick.
type FastDrop int8

const (
	FastDropUnchanged FastDrop = iota
	FastDropOn
	FastDropOff
)

// Commands is the keyboard command vector for one tick.
// Move and Rotate are signed step counts: positive is right / clockwise.
type Commands struct {
	Start       bool
	Move        int
	Rotate      int
	Hold        bool
	InstantDrop bool
	FastDrop    FastDrop

	// Debug commands, ignored unless Options.Debug is set.
	LevelDelta int
	NudgeUp    bool
	Skip       bool
	CycleNext  int
}

// Any reports whether the vector carries at least one command.
func (c Commands) Any() bool {
	return c.Start || c.Move != 0 || c.Rotate != 0 || c.Hold || c.InstantDrop ||
		c.FastDrop != FastDropUnchanged || c.LevelDelta != 0 || c.NudgeUp ||
		c.Skip || c.CycleNext != 0
}

// touchesPiece reports whether the vector may have moved the active piece
// into a resting position.
func (c Commands) touchesPiece() bool {
	return c.Move != 0 || c.Rotate != 0 || c.Hold || c.NudgeUp || c.Skip || c.CycleNext != 0
}

// Animation is a feedback effect the controller can play.
type Animation uint8

const (
	AnimationLevelUp Animation = iota
	AnimationFlatline
)

// String returns the string representation of an animation.
func (a Animation) String() string {
	switch a {
	case AnimationLevelUp:
		return "LevelUp"
	case AnimationFlatline:
		return "Flatline"
	default:
		return "Unknown"
	}
}

// ControllerState is the polled button snapshot of an external controller,
// valid for one tick.
type ControllerState struct {
	MoveLeft    bool
	MoveRight   bool
	RotateLeft  bool
	RotateRight bool
	InstantDrop bool // Edge-triggered
	FastDrop    bool // Level-triggered
	Select      bool // Hold, edge-triggered
	Start       bool
}

// Controller is the external controller driver.
type Controller interface {
	// Poll returns the current button snapshot. Called at most once per tick.
	Poll() ControllerState
	// PlayAnimation fires a feedback effect.
	PlayAnimation(Animation)
}

// NopController has no buttons and ignores animations.
type NopController struct{}

func (NopController) Poll() ControllerState   { return ControllerState{} }
func (NopController) PlayAnimation(Animation) {}

// padFrame is the normalized controller vector compared across ticks.
type padFrame struct {
	move        int
	rotate      int
	instantDrop bool
	fastDrop    bool
	hold        bool
}

// PadEdges holds the changes detected between two consecutive polls.
type PadEdges struct {
	Hold            bool // Rising edge
	Move            int
	MoveChanged     bool
	Rotate          int
	RotateChanged   bool
	FastDrop        bool
	FastDropChanged bool
	InstantDrop     bool // Rising edge
}

// PadInput keeps the previous controller frame so each poll can be turned
// into edges.
type PadInput struct {
	cur, prev padFrame
}

// Update records a new poll and returns the edges against the previous one.
func (p *PadInput) Update(s ControllerState) PadEdges {
	p.prev = p.cur
	p.cur = padFrame{
		move:        boolInt(s.MoveRight) - boolInt(s.MoveLeft),
		rotate:      boolInt(s.RotateRight) - boolInt(s.RotateLeft),
		instantDrop: s.InstantDrop,
		fastDrop:    s.FastDrop,
		hold:        s.Select,
	}
	return PadEdges{
		Hold:            p.cur.hold && !p.prev.hold,
		Move:            p.cur.move,
		MoveChanged:     p.cur.move != p.prev.move,
		Rotate:          p.cur.rotate,
		RotateChanged:   p.cur.rotate != p.prev.rotate,
		FastDrop:        p.cur.fastDrop,
		FastDropChanged: p.cur.fastDrop != p.prev.fastDrop,
		InstantDrop:     p.cur.instantDrop && !p.prev.instantDrop,
	}
}

// Reset forgets the retained frames.
func (p *PadInput) Reset() {
	*p = PadInput{}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
