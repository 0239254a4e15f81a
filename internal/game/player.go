package game

import "time"

// Player is one participant in the match. Position and velocity are
// continuous pixel values; the containing hex is always derived from
// them, never stored.
type Player struct {
	Index int
	Start StartHex

	X, Y   float64 // pixel position
	VX, VY float64 // pixels per second

	Alive   bool
	Falling bool

	SpawnElapsed time.Duration // spawn pop-in animation
	FallElapsed  time.Duration // fall-out animation after elimination
	Survived     time.Duration // match time survived, recorded at elimination
}

// SpawnProgress returns 0..1 through the spawn animation.
func (p *Player) SpawnProgress(spawnDur time.Duration) float64 {
	if spawnDur <= 0 {
		return 1
	}
	v := float64(p.SpawnElapsed) / float64(spawnDur)
	if v > 1 {
		v = 1
	}
	return v
}

// FallProgress returns 0..1 through the fall-out animation.
func (p *Player) FallProgress(fallDur time.Duration) float64 {
	if !p.Falling || fallDur <= 0 {
		return 0
	}
	v := float64(p.FallElapsed) / float64(fallDur)
	if v > 1 {
		v = 1
	}
	return v
}
