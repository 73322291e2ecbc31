// cmd/tty/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-zombie-survival/internal/app"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/engine"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/metrics"
	"go-zombie-survival/internal/utils"
	"go-zombie-survival/pkg/render"
)

// Pixels a terminal cell stands for.
const (
	cellWidth  = 10
	cellHeight = 20
)

type host struct {
	screen tcell.Screen
	term   *render.TermSurface
	in     *input.State
	keys   *keyHold
	frames *engine.FrameQueue
	game   *app.Game
}

func newHost(settings config.Settings, d *event.Dispatcher) (*host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := &host{
		screen: screen,
		term:   render.NewTermSurface(screen, cols, rows, cellWidth, cellHeight),
		keys:   newKeyHold(),
		frames: engine.NewFrameQueue(engine.WallClock(time.Now())),
	}
	h.term.Background = config.BackgroundColor
	h.term.Clear()
	h.in = input.NewState(h.term.CanvasSize())

	h.game, err = app.NewGame(app.Config{
		Surface:         h.term,
		Scheduler:       h.frames,
		Input:           h.in,
		Rng:             utils.NewPRNGService(settings.Seed),
		EventDispatcher: d,
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return h, nil
}

// handleEvent applies one terminal event. It returns false on quit.
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		k, ok := mapKey(ev)
		if !ok {
			return true
		}
		if h.keys.Press(k, ev.When()) {
			app.RestartOnKey(h.game, k)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		h.in.MoveTo(h.term.ToCanvas(col, row))

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.term.Resize(cols, rows)
		h.in.Resize(h.term.CanvasSize())
		h.screen.Sync()
	}
	return true
}

func (h *host) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	h.game.Start()
	defer h.game.Stop()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.keys.Apply(h.in, now)
			h.frames.FireNow()
			h.term.Present()
		}
	}
}

func main() {
	envFile := flag.String("env", ".env", "environment file to load")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based (overrides SURVIVAL_SEED)")
	debugAddr := flag.String("debug", "", "debug server address (overrides SURVIVAL_DEBUG_ADDR)")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

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

	h, err := newHost(settings, dispatcher)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer h.screen.Fini()

	log.Printf("Starting run with seed %d", h.game.Rng.Seed())
	h.run(settings.TPS)
}
