package app

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/diegok/cometpong/internal/config"
	"github.com/diegok/cometpong/internal/game"
	"github.com/diegok/cometpong/internal/protocol"
	"github.com/diegok/cometpong/internal/ui"
)

// App is the main application controller that drives the screen flow from
// terminal input at a fixed tick rate.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	flow     *game.Flow
	keys     *ui.KeyTracker

	// Events received since the last tick
	pending []protocol.Event

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		keys: ui.NewKeyTracker(),
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the game loop.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			log.Printf("received %s, shutting down", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	w, h := screen.Size()
	log.Printf("starting on a %dx%d terminal, %g ticks/s", w, h, a.cfg.TickRate)

	// Restore the terminal before a crash report reaches it
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			panic(r)
		}
	}()

	runErr := a.mainLoop()
	a.cleanup()

	return runErr
}

func (a *App) attach(screen *ui.Screen, rng *rand.Rand) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.flow = game.NewFlow(a.cfg, rng)
}

// mainLoop collects input between ticks and advances the flow on each tick.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			a.handleEvent(ev, time.Now())

		case now := <-ticker.C:
			if !a.tick(now) {
				a.stop()
				return nil
			}
		}
	}
}

// handleEvent queues the game events of one terminal event for the next tick.
func (a *App) handleEvent(ev tcell.Event, now time.Time) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return
	}
	a.pending = append(a.pending, a.keys.Translate(ev, now)...)
}

// tick runs one simulation step and draws the result. It returns false when
// the application should exit.
func (a *App) tick(now time.Time) bool {
	batch := append(a.pending, a.keys.Expire(now)...)
	a.pending = nil

	frame, running := a.flow.Step(now, batch)
	if !running {
		return false
	}
	a.renderer.Render(frame)
	return true
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
	log.Printf("exiting after %d rounds", a.flow.Rounds())
}
