package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// reportLogTail is how many trailing log entries the debug report
// includes.
const reportLogTail = 120

// debugReport builds a plain-text snapshot of the match: tuning,
// summary, per-player state, and the tail of the structured log.
// Meant for pasting into a bug report.
func (g *Game) debugReport() string {
	s := g.state
	var b strings.Builder

	b.WriteString("--- single-cell-survival debug report ---\n")
	fmt.Fprintf(&b, "radius=%d hex=%.0fpx interval=%d..%dms step=%dms warn=%dms bias=%.2f\n",
		g.cfg.GridRadius, g.cfg.HexSize,
		g.cfg.FallIntervalStartMs, g.cfg.FallIntervalFloorMs,
		g.cfg.FallIntervalStepMs, g.cfg.WarnMs, g.cfg.OccupiedBias)
	b.WriteString(g.match.Report().Format())

	b.WriteString("\nplayers:\n")
	for _, p := range s.Players {
		cell := s.Layout().FromPixel(p.X, p.Y)
		fmt.Fprintf(&b, "  %s pos=(%.1f,%.1f) vel=(%.1f,%.1f) cell=%s alive=%v falling=%v\n",
			playerLabel(p), p.X, p.Y, p.VX, p.VY, cell.Key(), p.Alive, p.Falling)
	}

	b.WriteString("\nlog tail:\n")
	b.WriteString(s.Log.Tail(reportLogTail))
	return b.String()
}

// copyDebugReport puts the report on the system clipboard and flashes
// the outcome on the HUD.
func (g *Game) copyDebugReport() {
	if err := clipboard.WriteAll(g.debugReport()); err != nil {
		g.setStatus("clipboard copy failed: " + err.Error())
		return
	}
	g.setStatus("debug report copied to clipboard")
}
