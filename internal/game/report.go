package game

import (
	"fmt"
	"strings"
	"time"
)

// MatchReport summarizes a finished (or in-flight) match for the
// headless reporter and the debug report.
type MatchReport struct {
	Phase         MatchPhase
	Ticks         int
	Elapsed       time.Duration
	WinnerIndex   int // -1 = draw or unresolved
	TilesFallen   int
	Eliminations  int
	FinalInterval time.Duration   // scheduler interval when the match ended
	Survival      []time.Duration // per player, zero while still alive
}

// Report builds a summary from the current match state.
func (m *Match) Report() MatchReport {
	s := m.state
	r := MatchReport{
		Phase:         s.phase,
		Ticks:         s.tick,
		Elapsed:       s.now,
		WinnerIndex:   -1,
		TilesFallen:   s.TilesFallen,
		FinalInterval: m.fall.Interval(),
	}
	for _, p := range s.Players {
		r.Survival = append(r.Survival, p.Survived)
		if !p.Alive {
			r.Eliminations++
		}
	}
	if s.phase == PhaseGameOver {
		if w := s.soleSurvivor(); w != nil {
			r.WinnerIndex = w.Index
		}
	}
	return r
}

// Format renders the report as a fixed-width text block.
func (r MatchReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "phase=%s ticks=%d elapsed=%.1fs\n", r.Phase, r.Ticks, r.Elapsed.Seconds())
	switch {
	case r.Phase != PhaseGameOver:
		b.WriteString("result: (unresolved)\n")
	case r.WinnerIndex >= 0:
		fmt.Fprintf(&b, "result: P%d wins\n", r.WinnerIndex)
	default:
		b.WriteString("result: draw\n")
	}
	fmt.Fprintf(&b, "tiles_fallen=%d eliminations=%d final_interval=%dms\n",
		r.TilesFallen, r.Eliminations, r.FinalInterval.Milliseconds())
	for i, d := range r.Survival {
		if d > 0 {
			fmt.Fprintf(&b, "  P%d survived %.2fs\n", i, d.Seconds())
		} else {
			fmt.Fprintf(&b, "  P%d survived to the end\n", i)
		}
	}
	return b.String()
}
