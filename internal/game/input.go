package game

import "github.com/hajimehoshi/ebiten/v2"

// keyBindings maps one player's four held directions to keys. The
// simulation core only ever sees the resulting InputState.
type keyBindings struct {
	up    ebiten.Key
	down  ebiten.Key
	left  ebiten.Key
	right ebiten.Key
}

// playerBindings assigns WASD to player 0 and the arrow keys to
// player 1. Extra configured players beyond the bindings get no keys
// and stand still.
var playerBindings = []keyBindings{
	{up: ebiten.KeyW, down: ebiten.KeyS, left: ebiten.KeyA, right: ebiten.KeyD},
	{up: ebiten.KeyArrowUp, down: ebiten.KeyArrowDown, left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight},
}

// readInputs samples the keyboard into per-player input states, once
// per tick.
func readInputs(players int) []InputState {
	out := make([]InputState, players)
	for i := 0; i < players && i < len(playerBindings); i++ {
		b := playerBindings[i]
		out[i] = InputState{
			Up:    ebiten.IsKeyPressed(b.up),
			Down:  ebiten.IsKeyPressed(b.down),
			Left:  ebiten.IsKeyPressed(b.left),
			Right: ebiten.IsKeyPressed(b.right),
		}
	}
	return out
}

// keyJustPressed is edge-triggered key detection against the previous
// frame's snapshot.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

// rememberKeys snapshots the trigger keys for next frame's edge
// detection.
func (g *Game) rememberKeys() {
	for _, k := range triggerKeys {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
}

// triggerKeys are the edge-triggered control keys.
var triggerKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyR, ebiten.KeyF1}
