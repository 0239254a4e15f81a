package game

// TestSim is a headless match harness used by tests and the headless
// reporter. It mirrors the windowed game's update loop but has no
// ebiten dependency: scripts stand in for the keyboard, and the match
// log stands in for the screen.
type TestSim struct {
	Cfg   Config
	Match *Match
	State *State
	Log   *MatchLog

	// scripts[i] produces player i's input for a given tick. Missing
	// scripts hold still.
	scripts map[int]func(tick int) InputState
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // tweak Config — applied before the match exists
	simOptSetup                       // wire the constructed sim — applied after
)

// SimOption is a builder function applied to a TestSim during
// construction.
type SimOption struct {
	kind simOptionKind
	cfg  func(*Config)
	fn   func(*TestSim)
}

// WithConfig replaces the whole config.
func WithConfig(cfg Config) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { *c = cfg }}
}

// WithGridRadius overrides the board radius.
func WithGridRadius(radius int) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.GridRadius = radius }}
}

// WithPlayerStarts overrides the player roster's starting cells.
func WithPlayerStarts(starts ...StartHex) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.PlayerStarts = starts }}
}

// WithVerbose enables per-tick position logging.
func WithVerbose() SimOption {
	return SimOption{kind: simOptSetup, fn: func(ts *TestSim) {
		ts.Log = NewMatchLog(true)
		ts.State.Log = ts.Log
	}}
}

// WithScript assigns player an input script, called once per tick.
func WithScript(player int, script func(tick int) InputState) SimOption {
	return SimOption{kind: simOptSetup, fn: func(ts *TestSim) {
		ts.scripts[player] = script
	}}
}

// WithHeldInput assigns player a constant held-direction input.
func WithHeldInput(player int, in InputState) SimOption {
	return WithScript(player, func(int) InputState { return in })
}

// NewTestSim builds a deterministic headless match. Config options are
// applied to the defaults first, then the match is constructed with
// the given seed, then setup options run.
func NewTestSim(seed int64, opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.cfg(&cfg)
		}
	}

	ts := &TestSim{
		Cfg:     cfg,
		Log:     NewMatchLog(false),
		scripts: map[int]func(int) InputState{},
	}
	// Center the board at the origin; the harness has no screen.
	ts.Match = NewMatch(cfg, 0, 0, seed)
	ts.State = ts.Match.State()
	ts.State.Log = ts.Log

	for _, o := range opts {
		if o.kind == simOptSetup {
			o.fn(ts)
		}
	}
	return ts
}

// StartMatch triggers the waiting → spawning transition.
func (ts *TestSim) StartMatch() {
	ts.Match.Start()
}

// inputs gathers this tick's scripted inputs.
func (ts *TestSim) inputs() []InputState {
	out := make([]InputState, len(ts.Cfg.PlayerStarts))
	for i := range out {
		if script, ok := ts.scripts[i]; ok {
			out[i] = script(ts.State.tick)
		}
	}
	return out
}

// RunTicks advances the simulation n fixed ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Match.Tick(ts.inputs())
	}
}

// RunUntilPhase ticks until the match reaches phase or maxTicks
// elapse. Reports whether the phase was reached.
func (ts *TestSim) RunUntilPhase(phase MatchPhase, maxTicks int) bool {
	for i := 0; i < maxTicks; i++ {
		if ts.State.Phase() == phase {
			return true
		}
		ts.Match.Tick(ts.inputs())
	}
	return ts.State.Phase() == phase
}

// TicksFor converts a config millisecond count to whole ticks, rounded
// up — handy for "run past this animation" arithmetic in tests.
func TicksFor(ms int) int {
	d := msec(ms)
	ticks := int(d / TickDuration)
	if d%TickDuration != 0 {
		ticks++
	}
	return ticks
}
