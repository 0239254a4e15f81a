package game

// Typed notification payloads. Subscribers are fire-and-forget: they
// run synchronously on the simulation tick and must not mutate state.

// TileWarningEvent fires when a tile enters its warning phase.
type TileWarningEvent struct {
	Key string
}

// TileFallenEvent fires when a warned tile actually falls.
type TileFallenEvent struct {
	Key string
}

// PlayerEliminatedEvent fires once per player, at the moment of
// elimination.
type PlayerEliminatedEvent struct {
	Player *Player
}

// GameOverEvent fires when the match resolves. Winner is nil for a
// draw (no survivors).
type GameOverEvent struct {
	Winner *Player
}

// Events is the registration table for cross-cutting listeners (audio,
// logging). Components subscribe to the notifications they care about;
// the core emits without knowing who listens. Reset drops every
// registration, so collaborators must re-attach after a match reset.
type Events struct {
	tileWarning      []func(TileWarningEvent)
	tileFallen       []func(TileFallenEvent)
	playerEliminated []func(PlayerEliminatedEvent)
	gameOver         []func(GameOverEvent)
}

func (e *Events) OnTileWarning(fn func(TileWarningEvent)) {
	e.tileWarning = append(e.tileWarning, fn)
}

func (e *Events) OnTileFallen(fn func(TileFallenEvent)) {
	e.tileFallen = append(e.tileFallen, fn)
}

func (e *Events) OnPlayerEliminated(fn func(PlayerEliminatedEvent)) {
	e.playerEliminated = append(e.playerEliminated, fn)
}

func (e *Events) OnGameOver(fn func(GameOverEvent)) {
	e.gameOver = append(e.gameOver, fn)
}

// Reset drops all registrations.
func (e *Events) Reset() {
	*e = Events{}
}

func (e *Events) emitTileWarning(ev TileWarningEvent) {
	for _, fn := range e.tileWarning {
		fn(ev)
	}
}

func (e *Events) emitTileFallen(ev TileFallenEvent) {
	for _, fn := range e.tileFallen {
		fn(ev)
	}
}

func (e *Events) emitPlayerEliminated(ev PlayerEliminatedEvent) {
	for _, fn := range e.playerEliminated {
		fn(ev)
	}
}

func (e *Events) emitGameOver(ev GameOverEvent) {
	for _, fn := range e.gameOver {
		fn(ev)
	}
}
