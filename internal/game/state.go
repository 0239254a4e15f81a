package game

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/aakshayy/single-cell-survival-game/internal/hex"
)

// MatchPhase is the match's position in its lifecycle. Strictly
// forward-progressing; the only way back is an explicit restart, which
// wipes the whole state.
type MatchPhase int

const (
	PhaseWaiting    MatchPhase = iota // board and players not yet created
	PhaseSpawning                     // board then players animating in
	PhaseInProgress                   // live play
	PhaseGameOver                     // resolved, awaiting restart
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseSpawning:
		return "spawning"
	case PhaseInProgress:
		return "in_progress"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State owns the board, the player roster, the match phase, and the
// timer queue. Everything else holds a non-owning reference and
// mutates through it. All failures are silent no-ops: the simulation
// has no fatal errors, only operations on things that no longer exist.
type State struct {
	cfg    Config
	layout hex.Layout
	rng    *rand.Rand

	Board   map[string]*Tile
	Players []*Player

	phase      MatchPhase
	now        time.Duration // single authoritative simulation clock
	matchStart time.Duration
	tick       int

	// Spawn completion counters — decremented as each spawn animation
	// finishes, so phase transitions trigger the moment the last one
	// completes instead of being polled.
	tilesSpawning   int
	playersSpawning int

	Events Events
	timers *timerQueue
	Log    *MatchLog

	TilesFallen int
}

// NewState creates an empty state in the waiting phase. The seed
// drives spawn jitter and tile targeting, making whole matches
// reproducible.
func NewState(cfg Config, seed int64) *State {
	return &State{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay randomness
		timers: newTimerQueue(),
	}
}

// Phase returns the current match phase.
func (s *State) Phase() MatchPhase { return s.phase }

// Now returns the current simulation time.
func (s *State) Now() time.Duration { return s.now }

// Tick returns the current simulation tick.
func (s *State) Tick() int { return s.tick }

// Layout returns the board's pixel projection.
func (s *State) Layout() hex.Layout { return s.layout }

func (s *State) setPhase(p MatchPhase) {
	if s.phase == p {
		return
	}
	s.Log.Add(s.tick, "phase", "change", s.phase.String()+" → "+p.String(), 0)
	s.phase = p
}

// InitBoard clears the board and generates one tile per cell of the
// hex region, centered on (centerX, centerY). Each tile gets a
// staggered spawn delay: its ring distance times the per-ring delay,
// plus bounded random jitter — a ripple-out intro that is
// deterministic by ring and stochastic within a ring.
func (s *State) InitBoard(centerX, centerY float64) {
	s.layout = hex.Layout{Size: s.cfg.HexSize, CenterX: centerX, CenterY: centerY}
	s.Board = make(map[string]*Tile)

	origin := hex.Axial{}
	for _, a := range hex.Disk(s.cfg.GridRadius) {
		delay := time.Duration(hex.Distance(origin, a)) * msec(s.cfg.TileSpawnRingDelayMs)
		if s.cfg.TileSpawnJitterMs > 0 {
			delay += time.Duration(s.rng.Int63n(int64(msec(s.cfg.TileSpawnJitterMs))))
		}
		s.Board[a.Key()] = &Tile{
			Coord:      a,
			State:      TileSpawning,
			SpawnDelay: delay,
		}
	}
	s.tilesSpawning = len(s.Board)
	s.TilesFallen = 0
	s.Log.Add(s.tick, "phase", "board_init", "", float64(len(s.Board)))
}

// InitPlayers places each configured player on its starting hex,
// converted to pixel coordinates. All players start alive, mid spawn
// animation.
func (s *State) InitPlayers() {
	s.Players = s.Players[:0]
	for i, st := range s.cfg.PlayerStarts {
		x, y := s.layout.ToPixel(hex.Axial{Q: st.Q, R: st.R})
		s.Players = append(s.Players, &Player{
			Index: i,
			Start: st,
			X:     x,
			Y:     y,
			Alive: true,
		})
	}
	s.playersSpawning = len(s.Players)
	s.Log.Add(s.tick, "phase", "players_init", "", float64(len(s.Players)))
}

// PlayerTile projects a player's continuous position to its containing
// hex and resolves the owning tile, or nil when off the board.
func (s *State) PlayerTile(p *Player) *Tile {
	a := s.layout.FromPixel(p.X, p.Y)
	if !hex.InRange(a, s.cfg.GridRadius) {
		return nil
	}
	return s.Board[a.Key()]
}

// StandableAt reports whether the pixel position lies over a tile a
// player can stand on.
func (s *State) StandableAt(x, y float64) bool {
	a := s.layout.FromPixel(x, y)
	if !hex.InRange(a, s.cfg.GridRadius) {
		return false
	}
	t := s.Board[a.Key()]
	return t != nil && t.Standable()
}

// MarkTileWarning transitions an idle tile into its warning state and
// emits the tileWarning notification. Missing, spawning, already
// warned, or removed tiles are left alone.
func (s *State) MarkTileWarning(key string) {
	t := s.Board[key]
	if t == nil || t.State != TileIdle {
		return
	}
	t.State = TileWarning
	t.WarnStart = s.now
	t.WarnElapsed = 0
	s.Log.Add(s.tick, "tile", "warning", key, 0)
	s.Events.emitTileWarning(TileWarningEvent{Key: key})
}

// RemoveTile starts a standing tile's shatter sequence and emits the
// tileFallen notification. No-op for missing or already-removed tiles.
func (s *State) RemoveTile(key string) {
	t := s.Board[key]
	if t == nil || !t.Standable() {
		return
	}
	t.State = TileShattering
	t.ShatterElapsed = 0
	s.TilesFallen++
	s.Log.Add(s.tick, "tile", "fallen", key, float64(s.TilesFallen))
	s.Events.emitTileFallen(TileFallenEvent{Key: key})
}

// PlayersOnTile returns every alive player whose current projected hex
// matches key.
func (s *State) PlayersOnTile(key string) []*Player {
	var out []*Player
	for _, p := range s.Players {
		if !p.Alive {
			continue
		}
		if s.layout.FromPixel(p.X, p.Y).Key() == key {
			out = append(out, p)
		}
	}
	return out
}

// AliveCount returns the size of the alive roster.
func (s *State) AliveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

// soleSurvivor returns the last alive player, or nil when none remain.
func (s *State) soleSurvivor() *Player {
	var winner *Player
	for _, p := range s.Players {
		if p.Alive {
			if winner != nil {
				return nil // more than one alive — no winner yet
			}
			winner = p
		}
	}
	return winner
}

// EliminatePlayer marks a player as falling out of the match and
// records their survival time. Idempotent: the scheduler and the
// movement pass can both reach this in the same tick, and the second
// call must change nothing.
//
// When the alive roster drops to one or zero, the game-over decision
// is deferred by the fall animation duration and re-validated at fire
// time — declaring the result mid-animation, or against a board that
// was restarted in between, would be wrong in both directions.
func (s *State) EliminatePlayer(p *Player) {
	if p == nil || !p.Alive {
		return
	}
	p.Alive = false
	p.Falling = true
	p.FallElapsed = 0
	p.Survived = s.now - s.matchStart
	s.Log.Add(s.tick, "player", "eliminated", playerLabel(p), p.Survived.Seconds())
	s.Events.emitPlayerEliminated(PlayerEliminatedEvent{Player: p})

	if s.phase != PhaseInProgress || s.AliveCount() > 1 {
		return
	}
	s.timers.schedule(s.now+msec(s.cfg.PlayerFallMs), func() {
		if s.phase != PhaseInProgress || s.AliveCount() > 1 {
			return
		}
		winner := s.soleSurvivor()
		s.setPhase(PhaseGameOver)
		s.Log.Add(s.tick, "phase", "game_over", playerLabel(winner), 0)
		s.Events.emitGameOver(GameOverEvent{Winner: winner})
	})
}

// Reset wipes the whole state for a new match: board, roster, phase,
// clock, pending timers, and listener registrations.
func (s *State) Reset() {
	s.Board = nil
	s.Players = nil
	s.phase = PhaseWaiting
	s.now = 0
	s.matchStart = 0
	s.tick = 0
	s.tilesSpawning = 0
	s.playersSpawning = 0
	s.TilesFallen = 0
	s.timers.clear()
	s.Events.Reset()
}

// playerLabel names a player for logs: "P0", "P1", or "--" for none.
func playerLabel(p *Player) string {
	if p == nil {
		return "--"
	}
	return "P" + strconv.Itoa(p.Index)
}
