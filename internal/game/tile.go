package game

import (
	"time"

	"github.com/aakshayy/single-cell-survival-game/internal/hex"
)

// TileState is a tile's position in its lifecycle. Transitions only
// move forward; a Gone tile stays gone until a full board reset.
type TileState int

const (
	TileSpawning   TileState = iota // rising in during board setup
	TileIdle                        // solid, standable
	TileWarning                     // flagged, will fall when the warning expires
	TileShattering                  // break-apart animation, no longer standable
	TileGone                        // removed, terminal
)

func (ts TileState) String() string {
	switch ts {
	case TileSpawning:
		return "spawning"
	case TileIdle:
		return "idle"
	case TileWarning:
		return "warning"
	case TileShattering:
		return "shattering"
	case TileGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Tile is one board cell. Created at board init, mutated only by the
// owning State and the per-tick animation pass.
type Tile struct {
	Coord hex.Axial
	State TileState

	// SpawnDelay staggers the ripple-out board intro: distance from the
	// origin times the ring delay, plus bounded random jitter.
	SpawnDelay   time.Duration
	SpawnElapsed time.Duration

	WarnStart      time.Duration // simulation time the warning began
	WarnElapsed    time.Duration
	ShatterElapsed time.Duration
}

// Standable reports whether a player can stand on the tile. A warning
// tile is still solid; it only stops carrying players once it shatters.
func (t *Tile) Standable() bool {
	return t.State == TileIdle || t.State == TileWarning
}

// SpawnProgress returns 0..1 through the spawn animation, 0 while the
// stagger delay is still counting down.
func (t *Tile) SpawnProgress(spawnDur time.Duration) float64 {
	if t.State != TileSpawning {
		return 1
	}
	if t.SpawnElapsed <= t.SpawnDelay || spawnDur <= 0 {
		return 0
	}
	p := float64(t.SpawnElapsed-t.SpawnDelay) / float64(spawnDur)
	if p > 1 {
		p = 1
	}
	return p
}

// ShatterProgress returns 0..1 through the break-apart animation.
func (t *Tile) ShatterProgress(shatterDur time.Duration) float64 {
	if shatterDur <= 0 {
		return 1
	}
	p := float64(t.ShatterElapsed) / float64(shatterDur)
	if p > 1 {
		p = 1
	}
	return p
}
