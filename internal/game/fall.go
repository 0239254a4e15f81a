package game

import (
	"sort"
	"time"
)

// TileFallManager drives the difficulty curve: every interval it picks
// one standing tile, warns it, and drops it when the warning expires.
// The interval shrinks by a fixed step each cycle down to a floor and
// never grows back.
//
// It runs entirely on the state's timer queue, so it has no timers of
// its own to leak: Stop cancels the pending selection and every
// outstanding warning, and a Reset clears the queue wholesale.
type TileFallManager struct {
	state *State

	interval time.Duration
	running  bool

	selectTimer timerID
	pending     map[string]timerID // tile key → warning-expiry timer
}

// NewTileFallManager creates a stopped manager bound to s.
func NewTileFallManager(s *State) *TileFallManager {
	return &TileFallManager{
		state:   s,
		pending: map[string]timerID{},
	}
}

// Interval returns the current selection interval.
func (m *TileFallManager) Interval() time.Duration { return m.interval }

// Running reports whether the manager is live.
func (m *TileFallManager) Running() bool { return m.running }

// Start resets the interval to its base value and begins the selection
// loop. Starting an already-running manager is a no-op.
func (m *TileFallManager) Start() {
	if m.running {
		return
	}
	m.running = true
	m.interval = msec(m.state.cfg.FallIntervalStartMs)
	m.scheduleNext()
}

// Stop cancels the pending selection and every outstanding warning
// timer. Idempotent; after Stop no manager callback can fire.
func (m *TileFallManager) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.state.timers.cancel(m.selectTimer)
	m.selectTimer = 0
	for _, id := range m.pending {
		m.state.timers.cancel(id)
	}
	m.pending = map[string]timerID{}
}

func (m *TileFallManager) scheduleNext() {
	m.selectTimer = m.state.timers.schedule(m.state.now+m.interval, m.step)
}

// step runs one selection cycle, accelerates, and reschedules.
func (m *TileFallManager) step() {
	if !m.running {
		return
	}
	m.selectOne()

	floor := msec(m.state.cfg.FallIntervalFloorMs)
	m.interval -= msec(m.state.cfg.FallIntervalStepMs)
	if m.interval < floor {
		m.interval = floor
	}
	m.scheduleNext()
}

// selectOne picks the next tile to warn. Candidates are standing tiles
// not already warned. With the configured bias an occupied candidate
// is preferred; otherwise — or when nobody stands anywhere — the pick
// is uniform over all candidates. No candidates means the cycle is
// skipped silently.
func (m *TileFallManager) selectOne() {
	s := m.state

	var candidates []string
	for key, t := range s.Board {
		if t.State == TileIdle {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return
	}
	// Map iteration order is random; sort so a seeded match replays
	// identically.
	sort.Strings(candidates)

	var occupied []string
	for _, key := range candidates {
		if len(s.PlayersOnTile(key)) > 0 {
			occupied = append(occupied, key)
		}
	}

	pool := candidates
	if len(occupied) > 0 && s.rng.Float64() < s.cfg.OccupiedBias {
		pool = occupied
	}
	key := pool[s.rng.Intn(len(pool))]

	s.MarkTileWarning(key)
	s.Log.AddVerbose(s.tick, "fall", "selected", key, float64(len(occupied)))
	m.pending[key] = s.timers.schedule(s.now+msec(s.cfg.WarnMs), func() {
		m.executeFall(key)
	})
}

// executeFall drops a warned tile: everyone standing on it falls with
// it, then the tile shatters.
func (m *TileFallManager) executeFall(key string) {
	delete(m.pending, key)
	s := m.state
	for _, p := range s.PlayersOnTile(key) {
		s.EliminatePlayer(p)
	}
	s.RemoveTile(key)
}
