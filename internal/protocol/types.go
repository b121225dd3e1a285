package protocol

// Direction represents a paddle's movement intent
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Side represents which edge of the playfield a paddle guards
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Screen identifies which screen of the flow is showing
type Screen int

const (
	ScreenStart Screen = iota
	ScreenRound
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenRound:
		return "round"
	case ScreenGameOver:
		return "game-over"
	}
	return "unknown"
}

// RoundPhase is the state of the round state machine
type RoundPhase int

const (
	PhaseActive RoundPhase = iota
	PhaseDying
	PhaseEnded
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseDying:
		return "dying"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// GameOverPhase is the step of the game over screen currently shown
type GameOverPhase int

const (
	OverMessage GameOverPhase = iota // "Game Over"
	OverBlank                        // empty screen
	OverPrompt                       // waiting for any key
)

// Color is an opaque RGB color
type Color struct {
	R, G, B uint8
}

// Palette
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
	Green = Color{20, 200, 20}
	Gold  = Color{230, 170, 30}
	Navy  = Color{30, 70, 80}
	Red   = Color{200, 60, 40}
)

// TrailPoint is one past ball position as it should be drawn.
// Alpha is on the 0-255 scale.
type TrailPoint struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// BallState is the render snapshot of a ball
type BallState struct {
	X, Y   float64
	Radius float64
	Color  Color
	Alive  bool
	Trail  []TrailPoint // Oldest first
}

// PaddleState is the render snapshot of a paddle
type PaddleState struct {
	Side          Side
	X, Y          float64 // Top-left corner
	Width, Height float64
	Color         Color
	Border        float64
}

// RoundState is the render snapshot of a round after a physics step
type RoundState struct {
	ID      string
	Tick    int
	Phase   RoundPhase
	Ball    BallState
	Paddles [2]PaddleState
	Cheat   bool
	Inertia bool
	Gravity float64
}

// Frame is everything the renderer needs to draw one tick
type Frame struct {
	Screen     Screen
	Width      float64
	Height     float64
	Background Color
	Title      BallState     // ScreenStart
	Round      RoundState    // ScreenRound
	Over       GameOverPhase // ScreenGameOver
}
