package game

import (
	"math"
	"testing"

	"github.com/diegok/cometpong/internal/protocol"
)

func newTestPaddle(t *testing.T, side protocol.Side) *Paddle {
	t.Helper()
	cfg, court := testCourt(t)
	return NewPaddle(side, court, cfg)
}

func TestNewPaddle(t *testing.T) {
	left := newTestPaddle(t, protocol.SideLeft)
	right := newTestPaddle(t, protocol.SideRight)

	if left.Rect.X != 10 {
		t.Errorf("expected left paddle at X=10, got %f", left.Rect.X)
	}
	if right.Rect.Right() != 790 {
		t.Errorf("expected right paddle to end at X=790, got %f", right.Rect.Right())
	}
	for _, p := range []*Paddle{left, right} {
		if p.CenterY() != 350 {
			t.Errorf("%s: expected center Y=350, got %f", p.Side, p.CenterY())
		}
		if p.Direction != protocol.DirNone {
			t.Errorf("%s: expected Direction=DirNone, got %v", p.Side, p.Direction)
		}
		if p.Velocity != 0 {
			t.Errorf("%s: expected zero velocity, got %f", p.Side, p.Velocity)
		}
	}
	if left.Color != protocol.Red || right.Color != protocol.Green {
		t.Errorf("unexpected paddle colors %v %v", left.Color, right.Color)
	}
}

func TestPaddle_MoveDirectUp(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	paddle.SetDirection(protocol.DirUp)

	paddle.MoveDirect()

	want := 350 - 200.0/72.0
	if math.Abs(paddle.CenterY()-want) > epsilon {
		t.Errorf("expected center Y=%f, got %f", want, paddle.CenterY())
	}
}

func TestPaddle_MoveDirectDown(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideRight)
	paddle.SetDirection(protocol.DirDown)

	paddle.MoveDirect()

	want := 350 + 200.0/72.0
	if math.Abs(paddle.CenterY()-want) > epsilon {
		t.Errorf("expected center Y=%f, got %f", want, paddle.CenterY())
	}
}

func TestPaddle_MoveDirectNone(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	initialY := paddle.CenterY()

	paddle.MoveDirect()

	if paddle.CenterY() != initialY {
		t.Errorf("expected Y to remain unchanged with DirNone, was %f, now %f", initialY, paddle.CenterY())
	}
}

func TestPaddle_DirectStaysInBounds(t *testing.T) {
	tests := []struct {
		name string
		dir  protocol.Direction
	}{
		{"top", protocol.DirUp},
		{"bottom", protocol.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := newTestPaddle(t, protocol.SideLeft)
			paddle.SetDirection(tt.dir)

			for i := 0; i < 200; i++ {
				paddle.MoveDirect()
				if paddle.TopY() < paddle.Gap {
					t.Fatalf("tick %d: top edge %f above gap %f", i, paddle.TopY(), paddle.Gap)
				}
				if paddle.BottomY() > 700-paddle.Gap {
					t.Fatalf("tick %d: bottom edge %f below %f", i, paddle.BottomY(), 700-paddle.Gap)
				}
			}

			if tt.dir == protocol.DirUp && paddle.TopY() != paddle.Gap {
				t.Errorf("expected paddle to rest at the top gap, got %f", paddle.TopY())
			}
			if tt.dir == protocol.DirDown && paddle.BottomY() != 700-paddle.Gap {
				t.Errorf("expected paddle to rest at the bottom gap, got %f", paddle.BottomY())
			}
		})
	}
}

func TestPaddle_InertiaAccelerates(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	paddle.SetDirection(protocol.DirUp)

	paddle.MoveInertia(0)
	if paddle.Velocity != -50 {
		t.Errorf("expected velocity -50, got %f", paddle.Velocity)
	}
	want := 350 - 50.0/72.0
	if math.Abs(paddle.CenterY()-want) > epsilon {
		t.Errorf("expected center Y=%f, got %f", want, paddle.CenterY())
	}

	paddle.SetDirection(protocol.DirDown)
	paddle.MoveInertia(0)
	paddle.MoveInertia(0)
	if paddle.Velocity != 50 {
		t.Errorf("expected velocity 50, got %f", paddle.Velocity)
	}
}

func TestPaddle_InertiaFrictionStopsAtZero(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  []float64
	}{
		{"moving up", -25, []float64{-15, -5, 0, 0}},
		{"moving down", 25, []float64{15, 5, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := newTestPaddle(t, protocol.SideLeft)
			paddle.Velocity = tt.start

			for i, want := range tt.want {
				paddle.MoveInertia(0)
				if paddle.Velocity != want {
					t.Errorf("tick %d: expected velocity %f, got %f", i, want, paddle.Velocity)
				}
			}
		})
	}
}

func TestPaddle_InertiaGravityReplacesFriction(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	paddle.Velocity = -20

	paddle.MoveInertia(5)

	if paddle.Velocity != -15 {
		t.Errorf("expected gravity to add 5, got velocity %f", paddle.Velocity)
	}
}

func TestPaddle_InertiaBouncesOffTop(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	paddle.Rect.Y = paddle.Gap
	paddle.Velocity = -100

	paddle.MoveInertia(0)

	// Friction first (-90), then the lossy reflection
	if math.Abs(paddle.Velocity-27) > epsilon {
		t.Errorf("expected velocity 27 after bounce, got %f", paddle.Velocity)
	}
	if math.Abs(paddle.TopY()-(paddle.Gap+27.0/72.0)) > epsilon {
		t.Errorf("expected paddle to move away from the top, got top %f", paddle.TopY())
	}
}

func TestPaddle_InertiaBouncesOffBottom(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideRight)
	paddle.Rect.Y = 700 - paddle.Gap - paddle.Rect.H
	paddle.SetDirection(protocol.DirDown)
	paddle.Velocity = 100

	paddle.MoveInertia(0)

	// Acceleration first (150), then the lossy reflection
	if math.Abs(paddle.Velocity+45) > epsilon {
		t.Errorf("expected velocity -45 after bounce, got %f", paddle.Velocity)
	}
	if paddle.BottomY() >= 700-paddle.Gap {
		t.Errorf("expected paddle to move away from the bottom, got bottom %f", paddle.BottomY())
	}
}

func TestPaddle_InertiaBounceLosesEnergy(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideLeft)
	paddle.SetDirection(protocol.DirUp)

	sawBounce := false
	for i := 0; i < 500; i++ {
		before := paddle.Velocity
		paddle.MoveInertia(0)

		if paddle.TopY() < paddle.Gap || paddle.BottomY() > 700-paddle.Gap {
			t.Fatalf("tick %d: paddle left the playfield (%f-%f)", i, paddle.TopY(), paddle.BottomY())
		}
		if before < 0 && paddle.Velocity > 0 {
			sawBounce = true
			if paddle.Velocity >= math.Abs(before-50) {
				t.Errorf("tick %d: bounce did not lose energy: %f -> %f", i, before-50, paddle.Velocity)
			}
		}
	}

	if !sawBounce {
		t.Error("expected the paddle to bounce off the top while held up")
	}
}

func TestPaddle_MoveDispatch(t *testing.T) {
	direct := newTestPaddle(t, protocol.SideLeft)
	inertia := newTestPaddle(t, protocol.SideLeft)
	direct.SetDirection(protocol.DirDown)
	inertia.SetDirection(protocol.DirDown)

	direct.Move(MotionDirect, 5)
	inertia.Move(MotionInertia, 5)

	if direct.Velocity != 0 {
		t.Errorf("direct model should not build velocity, got %f", direct.Velocity)
	}
	if inertia.Velocity != 50 {
		t.Errorf("expected inertia velocity 50, got %f", inertia.Velocity)
	}
	if direct.CenterY() == inertia.CenterY() {
		t.Error("expected the two models to move differently")
	}
}

func TestMotionModel_String(t *testing.T) {
	if MotionDirect.String() != "direct" || MotionInertia.String() != "inertia" {
		t.Errorf("unexpected names %q %q", MotionDirect, MotionInertia)
	}
}

func TestPaddle_State(t *testing.T) {
	paddle := newTestPaddle(t, protocol.SideRight)
	state := paddle.State()

	if state.Side != protocol.SideRight || state.X != 765 || state.Y != 250 {
		t.Errorf("unexpected state %+v", state)
	}
	if state.Width != 25 || state.Height != 200 || state.Border != 5 {
		t.Errorf("unexpected size %+v", state)
	}
}
