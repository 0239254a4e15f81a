package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aakshayy/single-cell-survival-game/internal/game"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
	flag.Int64Var(&seed, "seed", 0, "match RNG seed (0 = time-based)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = game.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(cfg, seed)
	w, h := g.Size()
	ebiten.SetWindowTitle("Single Cell Survival")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
