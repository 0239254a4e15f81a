package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/aakshayy/single-cell-survival-game/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	report         game.MatchReport
	resolved       bool
	firstWarnTick  int
	firstFallTick  int
	firstDeathTick int
	warnings       int
	falls          int
}

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64
	var policy string

	flag.IntVar(&runs, "runs", 10, "number of headless matches")
	flag.IntVar(&maxTicks, "ticks", 18000, "tick cap per match (18000 = 5 minutes)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policy, "policy", "wander", "bot input policy: wander or idle")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if policy != "wander" && policy != "idle" {
		fmt.Printf("error: unsupported policy %q (supported: wander, idle)\n", policy)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("policy=%s runs=%d max_ticks=%d seed_base=%d seed_step=%d\n\n",
		policy, runs, maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, maxTicks, policy)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// wanderScript drives a bot that holds a random direction for roughly
// half a second at a time. Dumb on purpose: the report cares about the
// falling-tile engine, not bot skill.
func wanderScript(seed int64) func(tick int) game.InputState {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- bot policy
	var held game.InputState
	nextChange := 0
	return func(tick int) game.InputState {
		if tick >= nextChange {
			held = game.InputState{
				Up:    rng.Intn(3) == 0,
				Down:  rng.Intn(3) == 0,
				Left:  rng.Intn(3) == 0,
				Right: rng.Intn(3) == 0,
			}
			nextChange = tick + 15 + rng.Intn(30)
		}
		return held
	}
}

func runMatch(runIndex int, seed int64, maxTicks int, policy string) runStats {
	opts := []game.SimOption{}
	if policy == "wander" {
		opts = append(opts,
			game.WithScript(0, wanderScript(seed*2+1)),
			game.WithScript(1, wanderScript(seed*2+2)),
		)
	}
	ts := game.NewTestSim(seed, opts...)
	ts.StartMatch()
	resolved := ts.RunUntilPhase(game.PhaseGameOver, maxTicks)

	entries := ts.Log.Entries()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		report:         ts.Match.Report(),
		resolved:       resolved,
		firstWarnTick:  firstTick(entries, "tile", "warning"),
		firstFallTick:  firstTick(entries, "tile", "fallen"),
		firstDeathTick: firstTick(entries, "player", "eliminated"),
		warnings:       len(ts.Log.Filter("tile", "warning")),
		falls:          len(ts.Log.Filter("tile", "fallen")),
	}
}

func firstTick(entries []game.MatchLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if !rs.resolved {
		fmt.Println("unresolved: tick cap reached before game over")
	}
	fmt.Printf("markers: first_warning=%d first_fall=%d first_elimination=%d\n",
		rs.firstWarnTick, rs.firstFallTick, rs.firstDeathTick)
	fmt.Printf("totals: warnings=%d falls=%d\n", rs.warnings, rs.falls)
	fmt.Print(rs.report.Format())
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := map[int]int{}
	draws := 0
	unresolved := 0
	totalTicks := 0
	totalFalls := 0
	for _, rs := range all {
		if !rs.resolved {
			unresolved++
			continue
		}
		if rs.report.WinnerIndex >= 0 {
			wins[rs.report.WinnerIndex]++
		} else {
			draws++
		}
		totalTicks += rs.report.Ticks
		totalFalls += rs.report.TilesFallen
	}

	fmt.Println("=== Aggregate ===")
	resolved := len(all) - unresolved
	fmt.Printf("resolved=%d/%d draws=%d", resolved, len(all), draws)
	for i := 0; i < 2; i++ {
		fmt.Printf(" p%d_wins=%d", i, wins[i])
	}
	fmt.Println()
	if resolved > 0 {
		avgTicks := totalTicks / resolved
		fmt.Printf("avg_match: ticks=%d (%.1fs) tiles_fallen=%d\n",
			avgTicks, float64(avgTicks)/float64(game.TickRate), totalFalls/resolved)
	}
}
