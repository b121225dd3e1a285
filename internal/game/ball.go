package game

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/diegok/cometpong/internal/geom"
	"github.com/diegok/cometpong/internal/protocol"
)

// BallSpec describes a ball to spawn
type BallSpec struct {
	Speed       float64 // Pixels per second
	Radius      float64
	TrailLength int
	AlphaStep   float64
	AlphaMax    float64
	Cheat       bool
	Color       protocol.Color
}

type Ball struct {
	Pos       geom.Vec2
	Vel       geom.Vec2 // Pixels per tick
	Radius    float64
	Speed     float64 // Pixels per second, constant for the ball's life
	Alive     bool
	CheatMode bool
	Color     protocol.Color
	Trail     []geom.Vec2 // Oldest first
	LastAlive time.Time   // Time of the latest live tick, which is the death time once dead

	court     Court
	trailCap  int
	alphaStep float64
	alphaMax  float64
}

// SpawnBall places a ball at the court center heading in a random direction
func SpawnBall(court Court, spec BallSpec, rng *rand.Rand) *Ball {
	return SpawnBallAt(court, spec, geom.RandomAngle(rng))
}

// SpawnBallAt places a ball at the court center heading at angle theta
func SpawnBallAt(court Court, spec BallSpec, theta float64) *Ball {
	return &Ball{
		Pos:       court.Center(),
		Vel:       geom.FromAngle(theta, spec.Speed/court.TickRate),
		Radius:    spec.Radius,
		Speed:     spec.Speed,
		Alive:     true,
		CheatMode: spec.Cheat,
		Color:     spec.Color,
		Trail:     make([]geom.Vec2, 0, spec.TrailLength+1),
		court:     court,
		trailCap:  spec.TrailLength,
		alphaStep: spec.AlphaStep,
		alphaMax:  spec.AlphaMax,
	}
}

// Step advances the ball one tick. Paddles are nil for the decorative title ball.
func (b *Ball) Step(now time.Time, left, right *Paddle, gravity float64) {
	b.pushTrail(b.Pos)

	if !b.Alive {
		return
	}
	b.LastAlive = now

	bouncing := b.BounceWalls()
	if left != nil && right != nil {
		b.BouncePaddles(left, right)
	}

	// Gravity would distort a wall bounce, so it skips bounce ticks
	if !bouncing {
		b.Vel.Y += gravity / b.court.TickRate
	}

	b.Pos = b.Pos.Add(b.Vel)
}

func (b *Ball) pushTrail(p geom.Vec2) {
	b.Trail = append(b.Trail, p)
	if len(b.Trail) > b.trailCap {
		n := copy(b.Trail, b.Trail[1:])
		b.Trail = b.Trail[:n]
	}
}

// BounceWalls applies the wall rules and reports whether the ball bounced.
// Side walls kill the ball unless cheat mode is on; top and bottom always reflect.
func (b *Ball) BounceWalls() bool {
	bouncing := false
	hitRight := b.Pos.X+b.Radius >= b.court.Width
	hitLeft := b.Pos.X-b.Radius <= 0

	if b.CheatMode {
		if hitRight {
			bouncing = true
			b.Vel.X = -math.Abs(b.Vel.X)
		} else if hitLeft {
			bouncing = true
			b.Vel.X = math.Abs(b.Vel.X)
		}
	} else if hitRight || hitLeft {
		b.Alive = false
	}

	if b.Pos.Y+b.Radius >= b.court.Height {
		bouncing = true
		b.Vel.Y = -math.Abs(b.Vel.Y)
	} else if b.Pos.Y-b.Radius <= 0 {
		bouncing = true
		b.Vel.Y = math.Abs(b.Vel.Y)
	}

	return bouncing
}

// BouncePaddles redirects the ball off whichever paddle it touches, left first
func (b *Ball) BouncePaddles(left, right *Paddle) bool {
	for _, p := range [2]*Paddle{left, right} {
		if b.Touches(p) {
			b.Vel = geom.FromAngle(b.BounceAngle(p), b.Speed/b.court.TickRate)
			return true
		}
	}
	return false
}

// Touches reports whether the ball's leading edge has reached the paddle's
// facing edge while level with it
func (b *Ball) Touches(p *Paddle) bool {
	if math.Abs(b.Pos.Y-p.Rect.CenterY()) > p.Rect.H/2+b.Radius/2 {
		return false
	}
	if p.Side == protocol.SideLeft {
		return b.Pos.X-b.Radius <= p.Rect.Right()
	}
	return b.Pos.X+b.Radius >= p.Rect.Left()
}

// BounceAngle maps where the ball meets a paddle onto a 90° arc facing away
// from it. Hitting above center sends the ball upward on either side.
func (b *Ball) BounceAngle(p *Paddle) float64 {
	h := (b.Pos.Y - p.Rect.CenterY()) / p.Rect.H // -0.5 top .. 0.5 bottom
	if p.Side == protocol.SideLeft {
		return h * math.Pi / 2
	}
	return -h*math.Pi/2 + math.Pi
}

// DeadFor returns how long the ball has been dead, zero while alive
func (b *Ball) DeadFor(now time.Time) time.Duration {
	if b.Alive {
		return 0
	}
	return now.Sub(b.LastAlive)
}

// State returns the render snapshot, with the trail growing from half the
// ball radius at the oldest entry to the full radius at the newest
func (b *Ball) State() protocol.BallState {
	trail := make([]protocol.TrailPoint, len(b.Trail))
	if len(b.Trail) > 0 {
		radius := math.Floor(b.Radius / 2)
		increment := (b.Radius - radius) / float64(len(b.Trail))
		alpha := 0.0
		for i, p := range b.Trail {
			alpha = math.Min(alpha+b.alphaStep, b.alphaMax)
			trail[i] = protocol.TrailPoint{X: p.X, Y: p.Y, Radius: radius, Alpha: alpha}
			radius += increment
		}
	}

	return protocol.BallState{
		X:      b.Pos.X,
		Y:      b.Pos.Y,
		Radius: b.Radius,
		Color:  b.Color,
		Alive:  b.Alive,
		Trail:  trail,
	}
}
