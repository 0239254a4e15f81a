package main

import (
	"testing"

	"github.com/aakshayy/single-cell-survival-game/internal/game"
)

func TestFirstTick(t *testing.T) {
	entries := []game.MatchLogEntry{
		{Tick: 10, Category: "phase", Key: "change"},
		{Tick: 42, Category: "tile", Key: "warning"},
		{Tick: 50, Category: "tile", Key: "warning"},
		{Tick: 61, Category: "tile", Key: "fallen"},
	}

	if got := firstTick(entries, "tile", "warning"); got != 42 {
		t.Errorf("firstTick(tile, warning) = %d, want 42", got)
	}
	if got := firstTick(entries, "tile", "fallen"); got != 61 {
		t.Errorf("firstTick(tile, fallen) = %d, want 61", got)
	}
	if got := firstTick(entries, "player", "eliminated"); got != -1 {
		t.Errorf("firstTick(player, eliminated) = %d, want -1", got)
	}
}

func TestWanderScriptIsDeterministic(t *testing.T) {
	a := wanderScript(7)
	b := wanderScript(7)
	for tick := 0; tick < 300; tick++ {
		if a(tick) != b(tick) {
			t.Fatalf("wanderScript diverged at tick %d", tick)
		}
	}
}

func TestIdleMatchResolvesEventually(t *testing.T) {
	// With nobody moving, the occupied-tile bias must still find the
	// players sooner or later and the match must resolve.
	ts := game.NewTestSim(1)
	ts.StartMatch()
	if !ts.RunUntilPhase(game.PhaseGameOver, 18000) {
		t.Fatalf("idle match did not resolve within 18000 ticks (phase=%s)", ts.State.Phase())
	}
}
