package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravshift/assets"
	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/system"
)

const appName = "gravshift"

func main() {
	debug := flag.Bool("debug", false, "enable debug mode: physics overlay and config hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .tmx optional)")
	seed := flag.Uint64("seed", 1, "seed for enemy loot drops")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 to 1")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := config.LoadTuning()
	if err != nil {
		log.Printf("main: %v, using defaults", err)
		tuning = config.DefaultTuning()
	}
	bindings, err := config.LoadBindings(config.BindingsFile)
	if err != nil {
		log.Fatal(err)
	}
	store, err := system.OpenProgressStore(appName)
	if err != nil {
		log.Printf("main: %v, progress will not be saved", err)
		store = system.NewProgressStore(nil)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(appName)

	game := NewGame(gameOptions{
		Level:    *levelName,
		Debug:    *debug,
		Seed:     *seed,
		Tuning:   tuning,
		Bindings: bindings,
		Store:    store,
		Sounds:   assets.NewSounds(*volume),
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
