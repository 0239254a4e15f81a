package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 48

// statusTicks is how long a transient status line (e.g. "report
// copied") stays on the HUD.
const statusTicks = 3 * TickRate

// Game is the windowed front end: it samples the keyboard, ticks the
// match, and draws a read-only snapshot of the state every frame. All
// simulation logic lives in Match and State.
type Game struct {
	cfg   Config
	match *Match
	state *State

	sounds *Sounds

	width  int
	height int

	hudBuf   *ebiten.Image
	prevKeys map[ebiten.Key]bool

	status     string // transient HUD message
	statusLeft int
}

// New creates the windowed game. seed drives all match randomness.
func New(cfg Config, seed int64) *Game {
	w, h := boardWindowSize(cfg)
	g := &Game{
		cfg:      cfg,
		width:    w,
		height:   h,
		prevKeys: map[ebiten.Key]bool{},
	}
	g.match = NewMatch(cfg, float64(w)/2, float64(h)/2, seed)
	g.state = g.match.State()
	g.state.Log = NewMatchLog(false)
	g.sounds = NewSounds()
	g.match.Attach(func(ev *Events) {
		g.sounds.Attach(ev)
	})
	return g
}

// boardWindowSize computes a window that fits the full board plus a
// border. Pointy-top: the widest row spans (2r+1)·√3·size pixels and
// the grid is (3r+2)·size tall.
func boardWindowSize(cfg Config) (w, h int) {
	r := float64(cfg.GridRadius)
	boardW := (2*r + 1) * math.Sqrt(3) * cfg.HexSize
	boardH := (3*r + 2) * cfg.HexSize
	return int(boardW) + 2*borderWidth, int(boardH) + 2*borderWidth
}

// Size returns the window dimensions.
func (g *Game) Size() (w, h int) {
	return g.width, g.height
}

// Update runs one fixed simulation tick. Ebiten calls this at the
// tick rate, so frame time and simulation time advance together.
func (g *Game) Update() error {
	g.handleTriggers()
	g.match.Tick(readInputs(len(g.cfg.PlayerStarts)))
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	return nil
}

// handleTriggers processes the edge-triggered lifecycle keys: SPACE to
// start, R to restart after game over, F1 to copy a debug report.
func (g *Game) handleTriggers() {
	if g.keyJustPressed(ebiten.KeySpace) {
		g.match.Start()
	}
	if g.keyJustPressed(ebiten.KeyR) {
		g.match.Restart()
	}
	if g.keyJustPressed(ebiten.KeyF1) {
		g.copyDebugReport()
	}
	g.rememberKeys()
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
