package game

import "time"

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 60

// TickDuration is the simulation time added per tick.
const TickDuration = time.Second / TickRate

// Match coordinates one game: phase transitions, spawn completion, and
// the per-tick ordering of timers, animation, and movement. All
// mutation happens inside Tick, so the two logical time sources (the
// frame loop and the fall scheduler's timer queue) are serialized by
// construction.
type Match struct {
	state *State
	fall  *TileFallManager

	centerX float64
	centerY float64

	// attach re-registers external listeners (audio, logging) after
	// every reset, since Reset drops all registrations.
	attach func(*Events)
}

// NewMatch creates a match in the waiting phase. The board will be
// centered on (centerX, centerY) when a start is triggered.
func NewMatch(cfg Config, centerX, centerY float64, seed int64) *Match {
	m := &Match{
		state:   NewState(cfg, seed),
		centerX: centerX,
		centerY: centerY,
	}
	m.fall = NewTileFallManager(m.state)
	m.wire()
	return m
}

// State exposes the owned state for rendering and tests.
func (m *Match) State() *State { return m.state }

// FallManager exposes the tile-fall scheduler for tests and reports.
func (m *Match) FallManager() *TileFallManager { return m.fall }

// Attach registers a listener-wiring function that is applied now and
// re-applied after every restart.
func (m *Match) Attach(fn func(*Events)) {
	m.attach = fn
	fn(&m.state.Events)
}

func (m *Match) wire() {
	m.state.Events.OnGameOver(func(GameOverEvent) {
		m.fall.Stop()
	})
	if m.attach != nil {
		m.attach(&m.state.Events)
	}
}

// Start triggers board generation: waiting → spawning. Any other phase
// ignores the trigger.
func (m *Match) Start() {
	if m.state.phase != PhaseWaiting {
		return
	}
	m.state.InitBoard(m.centerX, m.centerY)
	m.state.setPhase(PhaseSpawning)
}

// Restart wipes the finished match back to the waiting phase. Only
// valid from game over; mid-match the trigger is ignored.
func (m *Match) Restart() {
	if m.state.phase != PhaseGameOver {
		return
	}
	m.fall.Stop()
	m.state.Reset()
	m.wire()
}

// Tick advances the simulation by one fixed step. inputs[i] is player
// i's held directions for this tick; missing entries read as no input.
func (m *Match) Tick(inputs []InputState) {
	s := m.state
	s.tick++
	s.now += TickDuration

	switch s.phase {
	case PhaseWaiting:
		// Nothing exists yet.

	case PhaseSpawning:
		m.advanceSpawning(TickDuration)

	case PhaseInProgress:
		// Timer queue first: due tile warnings, falls, and the delayed
		// game-over recheck all run here, before movement reads the
		// board.
		s.timers.advance(s.now)
		m.animateTiles(TickDuration)
		m.animatePlayers(TickDuration)
		if s.phase == PhaseInProgress {
			s.StepMovement(TickDuration.Seconds(), inputs)
		}

	case PhaseGameOver:
		// Let the last shatter and fall animations finish.
		m.animateTiles(TickDuration)
		m.animatePlayers(TickDuration)
	}
}

// advanceSpawning runs the staggered board intro, then the player
// intro. Each animation decrements its completion counter exactly once
// as it finishes; reaching zero triggers the next stage immediately,
// with no polling.
func (m *Match) advanceSpawning(step time.Duration) {
	s := m.state

	if s.tilesSpawning > 0 {
		spawnDur := msec(s.cfg.TileSpawnMs)
		for _, t := range s.Board {
			if t.State != TileSpawning {
				continue
			}
			t.SpawnElapsed += step
			if t.SpawnElapsed >= t.SpawnDelay+spawnDur {
				t.State = TileIdle
				s.tilesSpawning--
				if s.tilesSpawning == 0 {
					s.InitPlayers()
					if s.playersSpawning == 0 {
						m.beginPlay()
					}
				}
			}
		}
		return
	}

	playerDur := msec(s.cfg.PlayerSpawnMs)
	for _, p := range s.Players {
		if p.SpawnElapsed >= playerDur {
			continue
		}
		p.SpawnElapsed += step
		if p.SpawnElapsed >= playerDur {
			s.playersSpawning--
			if s.playersSpawning == 0 {
				m.beginPlay()
			}
		}
	}
}

// beginPlay records the match start and opens live play.
func (m *Match) beginPlay() {
	s := m.state
	s.matchStart = s.now
	s.setPhase(PhaseInProgress)
	m.fall.Start()
}

// animateTiles advances incidental tile animation: the warning pulse
// and the shatter fade. A shattered tile becomes gone — terminal —
// when its animation completes.
func (m *Match) animateTiles(step time.Duration) {
	shatterDur := msec(m.state.cfg.ShatterMs)
	for _, t := range m.state.Board {
		switch t.State {
		case TileWarning:
			t.WarnElapsed += step
		case TileShattering:
			t.ShatterElapsed += step
			if t.ShatterElapsed >= shatterDur {
				t.State = TileGone
			}
		}
	}
}

// animatePlayers advances the fall-out animation of eliminated
// players.
func (m *Match) animatePlayers(step time.Duration) {
	for _, p := range m.state.Players {
		if p.Falling {
			p.FallElapsed += step
		}
	}
}
