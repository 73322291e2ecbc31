// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/metrics"
	"go-zombie-survival/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout keeps the canvas the size of the window.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	envFile := flag.String("env", ".env", "environment file to load")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based (overrides SURVIVAL_SEED)")
	debugAddr := flag.String("debug", "", "debug server address (overrides SURVIVAL_DEBUG_ADDR)")
	flag.Parse()

	settings := config.LoadSettings(*envFile)
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *debugAddr != "" {
		settings.DebugAddr = *debugAddr
	}

	dispatcher := event.NewDispatcher()
	m := metrics.New()
	m.Subscribe(dispatcher)
	metrics.StartDebugServer(settings.DebugAddr, m)

	survival, err := state.NewSurvivalState(settings, dispatcher)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Starting run with seed %d", survival.Game().Rng.Seed())

	sm := state.NewStateMachine()
	sm.SetState(survival)
	app := &AppGame{stateMachine: sm}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Zombie Survival")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
