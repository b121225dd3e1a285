package game

import (
	"math"

	"github.com/diegok/cometpong/internal/config"
	"github.com/diegok/cometpong/internal/geom"
	"github.com/diegok/cometpong/internal/protocol"
)

// MotionModel selects how paddles respond to intent
type MotionModel int

const (
	MotionDirect  MotionModel = iota // Fixed speed while a key is held
	MotionInertia                    // Acceleration, friction and lossy wall bounces
)

func (m MotionModel) String() string {
	if m == MotionInertia {
		return "inertia"
	}
	return "direct"
}

type Paddle struct {
	Side      protocol.Side
	Rect      geom.Rect
	Color     protocol.Color
	Direction protocol.Direction
	Velocity  float64 // Inertia model only, pixels per second
	TopSpeed  float64 // Direct model, pixels per second
	Gap       float64 // Minimum distance to the top and bottom edges
	Border    float64

	court        Court
	friction     float64
	acceleration float64
	elasticity   float64
}

// NewPaddle creates a paddle centered vertically against its side's edge
func NewPaddle(side protocol.Side, court Court, cfg *config.Config) *Paddle {
	rect := geom.Rect{W: cfg.PaddleWidth, H: cfg.PaddleHeight}.WithCenterY(court.Height / 2)
	color := protocol.Red
	if side == protocol.SideLeft {
		rect.X = cfg.PaddleGap
	} else {
		rect.X = court.Width - cfg.PaddleGap - cfg.PaddleWidth
		color = protocol.Green
	}

	return &Paddle{
		Side:         side,
		Rect:         rect,
		Color:        color,
		Direction:    protocol.DirNone,
		TopSpeed:     cfg.PaddleTopSpeed,
		Gap:          cfg.PaddleGap,
		Border:       cfg.PaddleBorder,
		court:        court,
		friction:     cfg.Friction,
		acceleration: cfg.Acceleration,
		elasticity:   cfg.Elasticity,
	}
}

func (p *Paddle) SetDirection(dir protocol.Direction) {
	p.Direction = dir
}

// minY and maxY bound the paddle's top edge
func (p *Paddle) minY() float64 {
	return p.Gap
}

func (p *Paddle) maxY() float64 {
	return p.court.Height - p.Gap - p.Rect.H
}

// Move advances the paddle one tick under the given model
func (p *Paddle) Move(model MotionModel, gravity float64) {
	switch model {
	case MotionDirect:
		p.MoveDirect()
	case MotionInertia:
		p.MoveInertia(gravity)
	}
}

// MoveDirect moves at top speed toward the intent, stopping at the gaps
func (p *Paddle) MoveDirect() {
	step := p.TopSpeed / p.court.TickRate

	switch p.Direction {
	case protocol.DirUp:
		p.Rect.Y = math.Max(p.Rect.Y-step, p.minY())
	case protocol.DirDown:
		p.Rect.Y = math.Min(p.Rect.Y+step, p.maxY())
	}
}

// MoveInertia accelerates toward the intent, falls under gravity or coasts
// down under friction, and bounces off the gaps losing energy
func (p *Paddle) MoveInertia(gravity float64) {
	switch {
	case p.Direction == protocol.DirUp:
		p.Velocity -= p.acceleration
	case p.Direction == protocol.DirDown:
		p.Velocity += p.acceleration
	case gravity != 0:
		p.Velocity += gravity
	case p.Velocity < 0:
		p.Velocity = math.Min(p.Velocity+p.friction, 0)
	case p.Velocity > 0:
		p.Velocity = math.Max(p.Velocity-p.friction, 0)
	}

	if p.Rect.Top() <= p.minY() && p.Velocity < 0 {
		p.Velocity = math.Abs(p.Velocity) * p.elasticity
	} else if p.Rect.Top() >= p.maxY() && p.Velocity > 0 {
		p.Velocity = -math.Abs(p.Velocity) * p.elasticity
	}

	p.Rect.Y = geom.Clamp(p.Rect.Y+p.Velocity/p.court.TickRate, p.minY(), p.maxY())
}

func (p *Paddle) CenterY() float64 {
	return p.Rect.CenterY()
}

func (p *Paddle) TopY() float64 {
	return p.Rect.Top()
}

func (p *Paddle) BottomY() float64 {
	return p.Rect.Bottom()
}

// State returns the render snapshot
func (p *Paddle) State() protocol.PaddleState {
	return protocol.PaddleState{
		Side:   p.Side,
		X:      p.Rect.X,
		Y:      p.Rect.Y,
		Width:  p.Rect.W,
		Height: p.Rect.H,
		Color:  p.Color,
		Border: p.Border,
	}
}
