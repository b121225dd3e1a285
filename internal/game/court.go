package game

import (
	"fmt"

	"github.com/diegok/cometpong/internal/config"
	"github.com/diegok/cometpong/internal/geom"
)

// Court is the playfield entities move in, sized in pixels
type Court struct {
	Width    float64
	Height   float64
	TickRate float64 // Ticks per second
}

// NewCourt builds the court from a config. A non-positive tick rate is a
// programming error since every velocity is divided by it.
func NewCourt(cfg *config.Config) Court {
	if cfg.TickRate <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		panic(fmt.Sprintf("game: invalid court %gx%g at %g ticks/s", cfg.Width, cfg.Height, cfg.TickRate))
	}
	return Court{Width: cfg.Width, Height: cfg.Height, TickRate: cfg.TickRate}
}

func (c Court) Center() geom.Vec2 {
	return geom.Vec2{X: c.Width / 2, Y: c.Height / 2}
}
