package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultWidth    = 800
	DefaultHeight   = 700
	DefaultTickRate = 72
)

// Config holds the application configuration and every physics tuning constant
type Config struct {
	// Ambient
	Debug bool

	// Playfield
	Width    float64
	Height   float64
	TickRate float64 // Ticks per second

	// Ball (speeds are pixels per second)
	BallSpeed       float64
	BallRadius      float64
	TitleBallSpeed  float64
	TitleBallRadius float64
	TrailLength     int
	TrailAlphaStep  float64 // Alpha added per trail entry, 0-255 scale
	TrailAlphaMax   float64

	// Paddles
	PaddleWidth    float64
	PaddleHeight   float64
	PaddleGap      float64
	PaddleTopSpeed float64 // Direct model, pixels per second
	PaddleBorder   float64
	Friction       float64 // Inertia model, velocity units per tick
	Acceleration   float64
	Elasticity     float64

	// Modes
	GravityStrength float64 // Value gravity takes when toggled on
	StartInertia    bool

	// Screen timing
	DeathDelay    time.Duration
	GameOverDelay time.Duration
	GameOverBlank time.Duration
}

// Default returns the tuned values the game is balanced against
func Default() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TickRate: DefaultTickRate,

		BallSpeed:       300,
		BallRadius:      10,
		TitleBallSpeed:  150,
		TitleBallRadius: 100,
		TrailLength:     100,
		TrailAlphaStep:  0.5,
		TrailAlphaMax:   100,

		PaddleWidth:    25,
		PaddleHeight:   200,
		PaddleGap:      10,
		PaddleTopSpeed: 200,
		PaddleBorder:   5,
		Friction:       10,
		Acceleration:   50,
		Elasticity:     0.3,

		GravityStrength: 5,
		StartInertia:    true,

		DeathDelay:    2 * time.Second,
		GameOverDelay: time.Second,
		GameOverBlank: 500 * time.Millisecond,
	}
}

// TickDuration is the wall-clock length of one simulation tick
func (c *Config) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("playfield must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return errors.Errorf("tick rate must be positive, got %g", c.TickRate)
	}
	if c.BallRadius <= 0 || c.TitleBallRadius <= 0 {
		return errors.Errorf("ball radius must be positive, got %g and %g", c.BallRadius, c.TitleBallRadius)
	}
	if c.BallSpeed <= 0 || c.TitleBallSpeed <= 0 {
		return errors.Errorf("ball speed must be positive, got %g and %g", c.BallSpeed, c.TitleBallSpeed)
	}
	if c.TrailLength < 1 {
		return errors.Errorf("trail length must be at least 1, got %d", c.TrailLength)
	}
	if c.TrailAlphaStep < 0 || c.TrailAlphaMax < 0 || c.TrailAlphaMax > 255 {
		return errors.New("trail alpha must be within 0-255")
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return errors.Errorf("paddle size must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	}
	if c.PaddleGap < 0 || c.PaddleHeight+2*c.PaddleGap > c.Height {
		return errors.Errorf("paddle of height %g with gap %g does not fit a playfield of height %g",
			c.PaddleHeight, c.PaddleGap, c.Height)
	}
	if c.PaddleBorder < 0 || 2*c.PaddleBorder > c.PaddleWidth {
		return errors.Errorf("paddle border %g too thick for width %g", c.PaddleBorder, c.PaddleWidth)
	}
	if c.PaddleTopSpeed < 0 || c.Friction < 0 || c.Acceleration < 0 {
		return errors.New("paddle speed, friction and acceleration must not be negative")
	}
	if c.Elasticity < 0 || c.Elasticity >= 1 {
		return errors.Errorf("elasticity must be within [0, 1), got %g", c.Elasticity)
	}
	if c.GravityStrength <= 0 {
		return errors.Errorf("gravity strength must be positive, got %g", c.GravityStrength)
	}
	if c.DeathDelay <= 0 || c.GameOverDelay <= 0 || c.GameOverBlank < 0 {
		return errors.New("screen delays must be positive")
	}
	return nil
}

// ParseArgs parses command line arguments and returns a validated Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("cometpong", flag.ContinueOnError)

	debug := fs.Bool("debug", false, "write a debug log to logs/")
	direct := fs.Bool("direct", false, "start rounds with direct paddle control instead of inertia")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()
	cfg.Debug = *debug
	cfg.StartInertia = !*direct

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}
