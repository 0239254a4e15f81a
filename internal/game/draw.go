package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// hudScale is the integer upscale factor applied to all HUD text.
const hudScale = 2

// warnPulseHz is the flash rate of a warned tile.
const warnPulseHz = 4.0

var (
	backgroundColor = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	tileIdleColor   = color.RGBA{R: 72, G: 104, B: 150, A: 255}
	tileWarnColor   = color.RGBA{R: 225, G: 70, B: 50, A: 255}
	tileEdgeColor   = color.RGBA{R: 28, G: 36, B: 52, A: 255}
	hudTextColor    = color.RGBA{R: 230, G: 232, B: 240, A: 255}

	playerColors = []color.RGBA{
		{R: 235, G: 90, B: 70, A: 255},  // P0 red
		{R: 80, G: 150, B: 235, A: 255}, // P1 blue
		{R: 110, G: 200, B: 110, A: 255},
		{R: 220, G: 190, B: 80, A: 255},
	}
)

// Draw renders a read-only snapshot of the match. Nothing here feeds
// back into the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawBoard(screen)
	g.drawPlayers(screen)
	g.drawHUD(screen)
}

// appendHexPath appends a pointy-top hexagon centered on (cx, cy).
// Corners sit at 60°·i − 30°, which puts a vertex straight up.
func appendHexPath(path *vector.Path, cx, cy, size float32) {
	for i := 0; i < 6; i++ {
		a := math.Pi / 180 * (60*float64(i) - 30)
		x := cx + size*float32(math.Cos(a))
		y := cy + size*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
}

func fillHex(dst *ebiten.Image, cx, cy, size float32, col color.Color) {
	var path vector.Path
	appendHexPath(&path, cx, cy, size)
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}

func strokeHex(dst *ebiten.Image, cx, cy, size float32, width float32, col color.Color) {
	var path vector.Path
	appendHexPath(&path, cx, cy, size)
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.StrokePath(dst, &path, &vector.StrokeOptions{Width: width}, op)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	layout := g.state.Layout()
	spawnDur := msec(g.cfg.TileSpawnMs)
	shatterDur := msec(g.cfg.ShatterMs)

	// A small gap between tiles keeps the grid readable.
	size := float32(g.cfg.HexSize) - 2

	for _, t := range g.state.Board {
		cxf, cyf := layout.ToPixel(t.Coord)
		cx, cy := float32(cxf), float32(cyf)

		switch t.State {
		case TileSpawning:
			p := t.SpawnProgress(spawnDur)
			if p <= 0 {
				continue
			}
			fillHex(screen, cx, cy, size*float32(p), fadeColor(tileIdleColor, p))

		case TileIdle:
			fillHex(screen, cx, cy, size, tileIdleColor)
			strokeHex(screen, cx, cy, size, 1.5, tileEdgeColor)

		case TileWarning:
			pulse := 0.5 + 0.5*math.Sin(2*math.Pi*warnPulseHz*t.WarnElapsed.Seconds())
			fillHex(screen, cx, cy, size, lerpColor(tileIdleColor, tileWarnColor, pulse))
			strokeHex(screen, cx, cy, size, 1.5, tileEdgeColor)

		case TileShattering:
			p := t.ShatterProgress(shatterDur)
			fillHex(screen, cx, cy, size*float32(1-0.4*p), fadeColor(tileWarnColor, 1-p))

		case TileGone:
			// Nothing left to draw.
		}
	}
}

func (g *Game) drawPlayers(screen *ebiten.Image) {
	spawnDur := msec(g.cfg.PlayerSpawnMs)
	fallDur := msec(g.cfg.PlayerFallMs)

	for _, p := range g.state.Players {
		col := playerColors[p.Index%len(playerColors)]
		x, y := float32(p.X), float32(p.Y)
		radius := float32(g.cfg.PlayerRadius)

		switch {
		case p.Falling:
			fp := p.FallProgress(fallDur)
			if fp >= 1 {
				continue
			}
			// Shrink and dim while falling through the gap.
			vector.FillCircle(screen, x, y, radius*float32(1-fp), fadeColor(col, 1-fp), true)

		default:
			sp := p.SpawnProgress(spawnDur)
			vector.FillCircle(screen, x, y, radius*float32(sp), col, true)
			if sp >= 1 {
				vector.StrokeCircle(screen, x, y, radius, 2, color.White, true)
			}
		}
	}
}

// drawHUD renders phase-appropriate text at 1x into a buffer and blits
// it upscaled, so the stock debug font stays readable.
func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.hudBuf == nil {
		g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	}
	g.hudBuf.Clear()

	var lines []string
	switch g.state.Phase() {
	case PhaseWaiting:
		lines = []string{
			"SINGLE CELL SURVIVAL",
			"P1: WASD   P2: arrow keys",
			"last player standing wins",
			"",
			"press SPACE to start",
		}
	case PhaseSpawning:
		lines = []string{"spawning..."}
	case PhaseInProgress:
		lines = []string{fmt.Sprintf(
			"alive: %d   tiles fallen: %d   fall interval: %dms",
			g.state.AliveCount(), g.state.TilesFallen,
			g.match.FallManager().Interval().Milliseconds(),
		)}
	case PhaseGameOver:
		lines = []string{"press R for a rematch"}
		g.drawBanner(g.hudBuf)
	}
	if g.statusLeft > 0 {
		lines = append(lines, "", g.status)
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, 8, 6+i*14)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, op)
}

// drawBanner centers the match result in the buffer.
func (g *Game) drawBanner(buf *ebiten.Image) {
	msg := "DRAW - nobody survived"
	r := g.match.Report()
	if r.WinnerIndex >= 0 {
		msg = fmt.Sprintf("PLAYER %d WINS", r.WinnerIndex+1)
	}

	face := basicfont.Face7x13
	w := font.MeasureString(face, msg).Ceil()
	x := (buf.Bounds().Dx() - w) / 2
	y := buf.Bounds().Dy() / 2
	text.Draw(buf, msg, face, x, y, hudTextColor)
}

// fadeColor scales a color's alpha (and premultiplied channels) by p.
func fadeColor(c color.RGBA, p float64) color.RGBA {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * p),
		G: uint8(float64(c.G) * p),
		B: uint8(float64(c.B) * p),
		A: uint8(float64(c.A) * p),
	}
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
