package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	widthFlag      = flag.Int("width", 1280, "Window width in pixels.")
	heightFlag     = flag.Int("height", 720, "Window height in pixels.")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start fullscreen.")
	muteFlag       = flag.Bool("mute", false, "Disable the click sound.")
)

func main() {
	flag.Parse()

	manager, err := gdata.Open(gdata.Config{AppName: "grek"})
	if err != nil {
		log.Printf("settings: storage unavailable: %v (settings will not persist)", err)
		manager = nil
	}
	store := NewSettingsStore(manager)
	if err := store.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	if *muteFlag {
		store.Settings().Sound = false
	}

	var pop *popPlayer
	if store.Settings().Sound {
		pop = newPopPlayer()
	}

	field := NewField(*widthFlag, *heightFlag, store, pop)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(field); err != nil {
		log.Fatal(err)
	}
}
