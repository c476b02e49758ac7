package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and state text")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "manor.yaml", "level name in levels/ (basename, .yaml optional)")
	seed := flag.Int64("seed", 0, "random seed for ghost wandering (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefab tuning and reward scripts when they change on disk")
	scale := flag.Float64("scale", 48, "pixels per world unit")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("ghostvac")

	game, err := NewGame(Config{
		Level:         *levelName,
		Seed:          *seed,
		Watch:         *watch,
		Debug:         *debug,
		PixelsPerUnit: *scale,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
