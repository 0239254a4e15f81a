package game

import (
	"math"
	"testing"
)

func TestInputVectorNormalizesDiagonals(t *testing.T) {
	cases := []struct {
		in   InputState
		x, y float64
	}{
		{InputState{}, 0, 0},
		{InputState{Right: true}, 1, 0},
		{InputState{Left: true}, -1, 0},
		{InputState{Up: true}, 0, -1},
		{InputState{Down: true}, 0, 1},
		{InputState{Left: true, Right: true}, 0, 0},
		{InputState{Up: true, Down: true}, 0, 0},
		{InputState{Right: true, Down: true}, 1 / math.Sqrt2, 1 / math.Sqrt2},
		{InputState{Left: true, Up: true}, -1 / math.Sqrt2, -1 / math.Sqrt2},
	}
	for _, c := range cases {
		x, y := c.in.vector()
		if math.Abs(x-c.x) > 1e-12 || math.Abs(y-c.y) > 1e-12 {
			t.Errorf("%+v.vector() = (%g,%g), want (%g,%g)", c.in, x, y, c.x, c.y)
		}
	}

	// Diagonal speed must not exceed axis-aligned speed.
	x, y := InputState{Right: true, Down: true}.vector()
	if mag := math.Hypot(x, y); math.Abs(mag-1) > 1e-12 {
		t.Errorf("diagonal magnitude %g, want 1", mag)
	}
}

func TestMovementAcceleratesAndClamps(t *testing.T) {
	ts := startInProgress(t, 1, WithHeldInput(0, InputState{Right: true}))
	s := ts.State
	p := s.Players[0]
	x0 := p.X

	ts.RunTicks(3)
	if p.VX <= 0 {
		t.Fatalf("vx = %g after holding right, want > 0", p.VX)
	}
	if p.X <= x0 {
		t.Fatalf("x did not advance: %g → %g", x0, p.X)
	}

	// Long enough to exceed max speed were there no clamp.
	ts.RunTicks(TickRate)
	if speed := math.Hypot(p.VX, p.VY); speed > ts.Cfg.PlayerMaxSpeed+1e-9 {
		t.Fatalf("speed %g exceeds clamp %g", speed, ts.Cfg.PlayerMaxSpeed)
	}
}

func TestMovementDeceleratesToRest(t *testing.T) {
	held := true
	ts := startInProgress(t, 1, WithScript(0, func(int) InputState {
		return InputState{Right: held}
	}))
	p := ts.State.Players[0]

	ts.RunTicks(10)
	held = false

	// decel 1000 px/s² wipes max speed 240 px/s in a quarter second.
	ts.RunTicks(TickRate / 2)
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("velocity (%g,%g) after release, want rest", p.VX, p.VY)
	}
}

func TestWalkingOffTheBoardEliminatesOnce(t *testing.T) {
	// Player 1 starts at (3,0), three cells from the east rim. Holding
	// right marches them over the edge.
	ts := startInProgress(t, 1, WithHeldInput(1, InputState{Right: true}))
	ts.Match.FallManager().Stop()
	s := ts.State
	p := s.Players[1]

	events := 0
	s.Events.OnPlayerEliminated(func(PlayerEliminatedEvent) { events++ })

	// Rim is ~2.5 cells away; at 240 px/s with 34px hexes that is
	// under two seconds of travel.
	ts.RunTicks(4 * TickRate)
	if p.Alive {
		t.Fatal("player 1 still alive after walking off the board")
	}
	if events != 1 {
		t.Fatalf("playerEliminated fired %d times, want 1", events)
	}
	if !s.StandableAt(s.Players[0].X, s.Players[0].Y) {
		t.Fatal("player 0 should still be standing")
	}

	// The fatal candidate position is never committed: the player died
	// on the board, not past the rim.
	if !ts.Cfg.withinBoard(s, p.X, p.Y) {
		t.Fatalf("eliminated player rests off-board at (%g,%g)", p.X, p.Y)
	}

	// Dead players ignore input and never move again.
	x, y := p.X, p.Y
	ts.RunTicks(TickRate)
	if p.X != x || p.Y != y {
		t.Fatalf("eliminated player moved (%g,%g) → (%g,%g)", x, y, p.X, p.Y)
	}
}

func TestStandingOnRemovedTileEliminates(t *testing.T) {
	ts := startInProgress(t, 2)
	s := ts.State
	p := s.Players[0]

	s.RemoveTile(startKey(ts.Cfg.PlayerStarts[0]))
	ts.RunTicks(1)
	if p.Alive {
		t.Fatal("player survived standing on a shattering tile")
	}
	if !p.Falling {
		t.Fatal("eliminated player is not falling")
	}
}

// withinBoard reports whether a pixel position projects to a generated
// cell. Test helper on Config to keep call sites short.
func (c Config) withinBoard(s *State, x, y float64) bool {
	return s.Board[s.Layout().FromPixel(x, y).Key()] != nil
}
