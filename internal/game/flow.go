package game

import (
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/diegok/cometpong/internal/config"
	"github.com/diegok/cometpong/internal/protocol"
)

// Flow sequences Start -> Round -> Game Over -> Start for as long as the
// process runs
type Flow struct {
	Screen protocol.Screen
	Title  *Ball
	Round  *Round

	cfg       *config.Config
	rng       *rand.Rand
	court     Court
	overSince time.Time
	rounds    int
}

// TitleBall describes the decorative ball of the start screen. It never dies.
func TitleBall(cfg *config.Config) BallSpec {
	return BallSpec{
		Speed:       cfg.TitleBallSpeed,
		Radius:      cfg.TitleBallRadius,
		TrailLength: cfg.TrailLength,
		AlphaStep:   cfg.TrailAlphaStep,
		AlphaMax:    cfg.TrailAlphaMax,
		Cheat:       true,
		Color:       protocol.Navy,
	}
}

func NewFlow(cfg *config.Config, rng *rand.Rand) *Flow {
	f := &Flow{
		cfg:   cfg,
		rng:   rng,
		court: NewCourt(cfg),
	}
	f.showStart()
	return f
}

func (f *Flow) showStart() {
	f.Screen = protocol.ScreenStart
	f.Title = SpawnBall(f.court, TitleBall(f.cfg), f.rng)
	f.Round = nil
	log.Printf("screen: %s", f.Screen)
}

func (f *Flow) startRound() {
	f.Screen = protocol.ScreenRound
	f.Title = nil
	f.Round = NewRound(f.cfg, f.rng)
	f.rounds++
	log.Printf("screen: %s #%d (%s)", f.Screen, f.rounds, f.Round.ID)
}

func (f *Flow) showGameOver(now time.Time) {
	f.Screen = protocol.ScreenGameOver
	f.overSince = now
	log.Printf("screen: %s", f.Screen)
}

// Rounds returns how many rounds have started
func (f *Flow) Rounds() int {
	return f.rounds
}

// Step advances whichever screen is showing by one tick. It returns false
// once a terminate event arrives, from any screen.
func (f *Flow) Step(now time.Time, events []protocol.Event) (protocol.Frame, bool) {
	if protocol.HasTerminate(events) {
		log.Printf("terminate requested on %s screen", f.Screen)
		return f.Frame(now), false
	}

	switch f.Screen {
	case protocol.ScreenStart:
		if protocol.HasAdvance(events) {
			f.startRound()
			break
		}
		f.Title.Step(now, nil, nil, 0)

	case protocol.ScreenRound:
		f.Round.Step(now, events)
		if f.Round.Ended() {
			f.showGameOver(now)
		}

	case protocol.ScreenGameOver:
		if f.overPhase(now) == protocol.OverPrompt && protocol.HasAdvance(events) {
			f.showStart()
		}
	}

	return f.Frame(now), true
}

func (f *Flow) overPhase(now time.Time) protocol.GameOverPhase {
	elapsed := now.Sub(f.overSince)
	switch {
	case elapsed < f.cfg.GameOverDelay:
		return protocol.OverMessage
	case elapsed < f.cfg.GameOverDelay+f.cfg.GameOverBlank:
		return protocol.OverBlank
	default:
		return protocol.OverPrompt
	}
}

// Frame returns the render snapshot of the current screen
func (f *Flow) Frame(now time.Time) protocol.Frame {
	frame := protocol.Frame{
		Screen:     f.Screen,
		Width:      f.court.Width,
		Height:     f.court.Height,
		Background: protocol.Navy,
	}

	switch f.Screen {
	case protocol.ScreenStart:
		frame.Background = protocol.Gold
		frame.Title = f.Title.State()
	case protocol.ScreenRound:
		frame.Round = f.Round.State()
	case protocol.ScreenGameOver:
		frame.Over = f.overPhase(now)
	}

	return frame
}
