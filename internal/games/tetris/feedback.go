package tetris

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/games/tetris/engine"
)

const bannerDuration = 1500 * time.Millisecond

// feedbackController stands in for the hardware controller in a terminal:
// it has no buttons and shows animations as a banner over the board.
type feedbackController struct {
	log   *log.Logger
	level func() int

	banner      string
	bannerTicks int
	duration    int
}

func newFeedbackController(l *log.Logger, frame time.Duration) *feedbackController {
	return &feedbackController{
		log:      l,
		duration: ticksFor(bannerDuration, frame),
	}
}

func (f *feedbackController) Poll() engine.ControllerState {
	return engine.ControllerState{}
}

func (f *feedbackController) PlayAnimation(a engine.Animation) {
	switch a {
	case engine.AnimationLevelUp:
		f.banner = "LEVEL UP"
		if f.level != nil {
			f.banner = fmt.Sprintf("LEVEL %d", f.level())
		}
	case engine.AnimationFlatline:
		f.banner = "GAME OVER"
	default:
		return
	}
	f.bannerTicks = f.duration
	f.log.Debug("animation", "kind", a, "banner", f.banner)
}

// step ages the banner by one tick.
func (f *feedbackController) step() {
	if f.bannerTicks == 0 {
		return
	}
	f.bannerTicks--
	if f.bannerTicks == 0 {
		f.banner = ""
	}
}

// Banner returns the banner to show, or "" when none is active.
func (f *feedbackController) Banner() string {
	return f.banner
}
