package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/cometpong/internal/protocol"
)

const PaddleChar = '\u2588' // █

// Start screen copy
var instructions = []string{
	"Control the left and right paddles with W, S, Up Arrow, and Down Arrow.",
	"There are 3 other letters on the keyboard that do fun things. Can you find them?",
	"Press any key to begin. Good luck!",
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// viewport maps world pixels onto terminal cells
type viewport struct {
	scaleX, scaleY float64
}

func (r *Renderer) viewport(frame protocol.Frame) viewport {
	screenW, screenH := r.screen.Size()
	return viewport{
		scaleX: float64(screenW) / frame.Width,
		scaleY: float64(screenH) / frame.Height,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.scaleX)), int(math.Floor(y * v.scaleY))
}

// world returns the world position of a cell's center
func (v viewport) world(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / v.scaleX, (float64(cy) + 0.5) / v.scaleY
}

// Render draws whichever screen the frame describes
func (r *Renderer) Render(frame protocol.Frame) {
	r.screen.Clear()

	switch frame.Screen {
	case protocol.ScreenStart:
		r.renderStart(frame)
	case protocol.ScreenRound:
		r.renderRound(frame)
	case protocol.ScreenGameOver:
		r.renderGameOver(frame)
	}

	r.screen.Show()
}

func (r *Renderer) renderStart(frame protocol.Frame) {
	r.screen.Fill(frame.Background)
	v := r.viewport(frame)
	ball := frame.Title

	r.drawTrail(v, ball, frame.Background)
	r.drawBall(v, ball)

	// P O over N G, meeting at the ball center
	cx, cy := v.cell(ball.X, ball.Y)
	bg := TermColor(ball.Color)
	red := tcell.StyleDefault.Background(bg).Foreground(TermColor(protocol.Red)).Bold(true)
	green := tcell.StyleDefault.Background(bg).Foreground(TermColor(protocol.Green)).Bold(true)
	r.screen.SetCell(cx-1, cy-1, red, 'P')
	r.screen.SetCell(cx, cy-1, green, 'O')
	r.screen.SetCell(cx-1, cy, green, 'N')
	r.screen.SetCell(cx, cy, red, 'G')

	_, screenH := r.screen.Size()
	textStyle := tcell.StyleDefault.Background(TermColor(frame.Background)).Foreground(TermColor(protocol.Navy))
	for i, line := range instructions {
		r.screen.DrawCenteredText(screenH/2-1+i, line, textStyle)
	}
}

func (r *Renderer) renderRound(frame protocol.Frame) {
	r.screen.Fill(frame.Background)
	v := r.viewport(frame)

	r.drawTrail(v, frame.Round.Ball, frame.Background)
	r.drawBall(v, frame.Round.Ball)
	for _, p := range frame.Round.Paddles {
		r.drawPaddle(v, p, frame.Background)
	}
}

func (r *Renderer) renderGameOver(frame protocol.Frame) {
	r.screen.Fill(frame.Background)
	_, screenH := r.screen.Size()
	bg := TermColor(frame.Background)

	switch frame.Over {
	case protocol.OverMessage:
		style := tcell.StyleDefault.Background(bg).Foreground(TermColor(protocol.White)).Bold(true)
		r.screen.DrawCenteredText(screenH/2, "Game Over", style)
	case protocol.OverPrompt:
		style := tcell.StyleDefault.Background(bg).Foreground(TermColor(protocol.Gold))
		r.screen.DrawCenteredText(screenH/2, "Press any key to play again", style)
	}
}

func (r *Renderer) drawBall(v viewport, ball protocol.BallState) {
	r.drawDisk(v, ball.X, ball.Y, ball.Radius, TermColor(ball.Color))
}

// drawTrail draws oldest first so newer, more opaque points land on top
func (r *Renderer) drawTrail(v viewport, ball protocol.BallState, bg protocol.Color) {
	for _, p := range ball.Trail {
		r.drawDisk(v, p.X, p.Y, p.Radius, Blend(ball.Color, bg, p.Alpha))
	}
}

// drawDisk fills every cell whose center lies in the circle, and always the
// cell holding the center itself
func (r *Renderer) drawDisk(v viewport, x, y, radius float64, color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	x0, y0 := v.cell(x-radius, y-radius)
	x1, y1 := v.cell(x+radius, y+radius)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := v.world(cx, cy)
			if math.Hypot(wx-x, wy-y) <= radius {
				r.screen.SetCell(cx, cy, style, ' ')
			}
		}
	}

	cx, cy := v.cell(x, y)
	r.screen.SetCell(cx, cy, style, ' ')
}

// drawPaddle draws a hollow rectangle with the paddle's border thickness,
// at least one cell wide
func (r *Renderer) drawPaddle(v viewport, p protocol.PaddleState, bg protocol.Color) {
	x0, y0 := v.cell(p.X, p.Y)
	x1 := max(int(math.Ceil((p.X+p.Width)*v.scaleX))-1, x0)
	y1 := max(int(math.Ceil((p.Y+p.Height)*v.scaleY))-1, y0)
	bx := max(int(math.Round(p.Border*v.scaleX)), 1)
	by := max(int(math.Round(p.Border*v.scaleY)), 1)

	border := tcell.StyleDefault.Foreground(TermColor(p.Color)).Background(TermColor(bg))
	inside := tcell.StyleDefault.Background(TermColor(bg))

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if cx < x0+bx || cx > x1-bx || cy < y0+by || cy > y1-by {
				r.screen.SetCell(cx, cy, border, PaddleChar)
			} else {
				r.screen.SetCell(cx, cy, inside, ' ')
			}
		}
	}
}

// Blend composites fg over bg with an alpha on the 0-255 scale
func Blend(fg, bg protocol.Color, alpha float64) tcell.Color {
	a := math.Max(0, math.Min(alpha/255, 1))
	c := toColorful(bg).BlendRgb(toColorful(fg), a)
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

func toColorful(c protocol.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
