package game

import (
	"fmt"
	"math"
)

// InputState is one player's held directions for a tick. The core does
// not care how keys map to these booleans.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// vector returns the unit input direction. Diagonals are scaled by
// 1/√2 so diagonal speed never exceeds axis-aligned speed. Opposing
// keys cancel.
func (in InputState) vector() (x, y float64) {
	if in.Left {
		x -= 1
	}
	if in.Right {
		x += 1
	}
	if in.Up {
		y -= 1
	}
	if in.Down {
		y += 1
	}
	if x != 0 && y != 0 {
		const diag = 1 / math.Sqrt2
		x *= diag
		y *= diag
	}
	return x, y
}

// StepMovement advances every alive, non-falling player by dt seconds
// of the momentum model: accelerate toward held input, decelerate
// toward rest otherwise, clamp speed, integrate. A candidate position
// over a shattered or out-of-bounds cell is never committed — the
// player falls where they were, through the same elimination path the
// scheduler uses.
func (s *State) StepMovement(dt float64, inputs []InputState) {
	for i, p := range s.Players {
		if !p.Alive || p.Falling {
			continue
		}

		var in InputState
		if i < len(inputs) {
			in = inputs[i]
		}
		ix, iy := in.vector()

		if ix != 0 || iy != 0 {
			p.VX += ix * s.cfg.PlayerAccel * dt
			p.VY += iy * s.cfg.PlayerAccel * dt
		} else {
			speed := math.Hypot(p.VX, p.VY)
			if speed > 0 {
				drop := s.cfg.PlayerDecel * dt
				if drop >= speed {
					p.VX, p.VY = 0, 0
				} else {
					scale := (speed - drop) / speed
					p.VX *= scale
					p.VY *= scale
				}
			}
		}

		if speed := math.Hypot(p.VX, p.VY); speed > s.cfg.PlayerMaxSpeed {
			scale := s.cfg.PlayerMaxSpeed / speed
			p.VX *= scale
			p.VY *= scale
		}

		nx := p.X + p.VX*dt
		ny := p.Y + p.VY*dt

		if !s.StandableAt(nx, ny) {
			s.EliminatePlayer(p)
			continue
		}
		p.X = nx
		p.Y = ny
		s.Log.AddVerbose(s.tick, "player", "position",
			fmt.Sprintf("%s (%.1f,%.1f)", playerLabel(p), nx, ny), math.Hypot(p.VX, p.VY))
	}
}
