package game

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/diegok/cometpong/internal/config"
	"github.com/diegok/cometpong/internal/protocol"
)

// Modes holds the physics toggles of a round. They reset with every new round.
type Modes struct {
	Gravity float64 // 0 is off
	Motion  MotionModel
}

// Round runs one ball's life: Active until the ball dies, Dying for the
// death delay, then Ended
type Round struct {
	ID    string
	Ball  *Ball
	Left  *Paddle
	Right *Paddle
	Modes Modes
	Phase protocol.RoundPhase
	Tick  int

	cfg *config.Config
}

// GameBall describes the ball played with during a round
func GameBall(cfg *config.Config) BallSpec {
	return BallSpec{
		Speed:       cfg.BallSpeed,
		Radius:      cfg.BallRadius,
		TrailLength: cfg.TrailLength,
		AlphaStep:   cfg.TrailAlphaStep,
		AlphaMax:    cfg.TrailAlphaMax,
		Color:       protocol.Gold,
	}
}

// NewRound sets up a fresh ball and paddles
func NewRound(cfg *config.Config, rng *rand.Rand) *Round {
	court := NewCourt(cfg)
	return newRound(cfg, SpawnBall(court, GameBall(cfg), rng))
}

func newRound(cfg *config.Config, ball *Ball) *Round {
	court := NewCourt(cfg)

	motion := MotionDirect
	if cfg.StartInertia {
		motion = MotionInertia
	}

	return &Round{
		ID:    uuid.NewString(),
		Ball:  ball,
		Left:  NewPaddle(protocol.SideLeft, court, cfg),
		Right: NewPaddle(protocol.SideRight, court, cfg),
		Modes: Modes{Motion: motion},
		Phase: protocol.PhaseActive,
		cfg:   cfg,
	}
}

// ProcessInput applies one tick's batch of events. Every event is handled on
// its own so both players' keys in the same tick register.
func (r *Round) ProcessInput(events []protocol.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case protocol.EventPress:
			r.press(ev.Key)
		case protocol.EventRelease:
			r.release(ev.Key)
		}
	}
}

func (r *Round) press(key protocol.Key) {
	switch key {
	case protocol.KeyLeftUp:
		r.Left.SetDirection(protocol.DirUp)
	case protocol.KeyLeftDown:
		r.Left.SetDirection(protocol.DirDown)
	case protocol.KeyRightUp:
		r.Right.SetDirection(protocol.DirUp)
	case protocol.KeyRightDown:
		r.Right.SetDirection(protocol.DirDown)
	case protocol.KeyCheat:
		r.Ball.CheatMode = !r.Ball.CheatMode
		log.Printf("round %s: cheat mode %v", r.ID, r.Ball.CheatMode)
	case protocol.KeyInertia:
		r.ToggleInertia()
	case protocol.KeyGravity:
		r.ToggleGravity()
	}
}

// release of either key of a paddle clears its intent
func (r *Round) release(key protocol.Key) {
	switch key {
	case protocol.KeyLeftUp, protocol.KeyLeftDown:
		r.Left.SetDirection(protocol.DirNone)
	case protocol.KeyRightUp, protocol.KeyRightDown:
		r.Right.SetDirection(protocol.DirNone)
	}
}

func (r *Round) ToggleInertia() {
	if r.Modes.Motion == MotionInertia {
		r.Modes.Motion = MotionDirect
	} else {
		r.Modes.Motion = MotionInertia
	}
	log.Printf("round %s: paddle motion %s", r.ID, r.Modes.Motion)
}

// ToggleGravity switches gravity; turning it on also turns inertia on
func (r *Round) ToggleGravity() {
	if r.Modes.Gravity != 0 {
		r.Modes.Gravity = 0
	} else {
		r.Modes.Gravity = r.cfg.GravityStrength
		r.Modes.Motion = MotionInertia
	}
	log.Printf("round %s: gravity %g, paddle motion %s", r.ID, r.Modes.Gravity, r.Modes.Motion)
}

// Step runs one tick: input, ball physics, death detection, paddle motion
func (r *Round) Step(now time.Time, events []protocol.Event) protocol.RoundState {
	if r.Phase == protocol.PhaseEnded {
		return r.State()
	}

	r.ProcessInput(events)
	r.Ball.Step(now, r.Left, r.Right, r.Modes.Gravity)
	r.Tick++

	if !r.Ball.Alive && r.Phase == protocol.PhaseActive {
		r.Phase = protocol.PhaseDying
		r.Ball.Color = protocol.Black
		log.Printf("round %s: ball died after %d ticks", r.ID, r.Tick)
	}

	if r.Phase == protocol.PhaseDying && r.Ball.DeadFor(now) >= r.cfg.DeathDelay {
		r.Phase = protocol.PhaseEnded
		log.Printf("round %s: ended", r.ID)
		return r.State()
	}

	r.Left.Move(r.Modes.Motion, r.Modes.Gravity)
	r.Right.Move(r.Modes.Motion, r.Modes.Gravity)

	return r.State()
}

// Ended reports whether the round has finished
func (r *Round) Ended() bool {
	return r.Phase == protocol.PhaseEnded
}

// State returns the render snapshot
func (r *Round) State() protocol.RoundState {
	return protocol.RoundState{
		ID:      r.ID,
		Tick:    r.Tick,
		Phase:   r.Phase,
		Ball:    r.Ball.State(),
		Paddles: [2]protocol.PaddleState{r.Left.State(), r.Right.State()},
		Cheat:   r.Ball.CheatMode,
		Inertia: r.Modes.Motion == MotionInertia,
		Gravity: r.Modes.Gravity,
	}
}
