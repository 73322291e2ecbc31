// internal/state/survival_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-zombie-survival/internal/app"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/engine"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/utils"
	"go-zombie-survival/pkg/render"
	"go-zombie-survival/pkg/render/ebitensurface"
)

// KeyBindings maps ebiten keys to game keys.
var KeyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyR:          input.KeyR,
}

// SurvivalState runs a survival game inside ebiten. Each ebiten update fires
// one frame of the game loop; the frame's draw commands are recorded and
// replayed onto the screen in Draw.
type SurvivalState struct {
	game   *app.Game
	frames *engine.FrameQueue
	rec    *render.Recorder
	in     *input.State
	faces  *render.FaceCache
}

// NewSurvivalState builds the game for the given settings. d receives the
// game's events and may be nil.
func NewSurvivalState(s config.Settings, d *event.Dispatcher) (*SurvivalState, error) {
	faces, err := render.NewFaceCache()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	st := &SurvivalState{
		frames: engine.NewFrameQueue(engine.WallClock(time.Now())),
		rec:    render.NewRecorder(),
		in:     input.NewState(float64(s.Width), float64(s.Height)),
		faces:  faces,
	}
	st.game, err = app.NewGame(app.Config{
		Surface:         st.rec,
		Scheduler:       st.frames,
		Input:           st.in,
		Rng:             utils.NewPRNGService(s.Seed),
		EventDispatcher: d,
	})
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return st, nil
}

// Game returns the running game.
func (st *SurvivalState) Game() *app.Game { return st.game }

func (st *SurvivalState) Enter() { st.game.Start() }

func (st *SurvivalState) Exit() { st.game.Stop() }

func (st *SurvivalState) Update() {
	for ek, k := range KeyBindings {
		st.in.SetKey(k, ebiten.IsKeyPressed(ek))
		if inpututil.IsKeyJustPressed(ek) {
			app.RestartOnKey(st.game, k)
		}
	}
	x, y := ebiten.CursorPosition()
	st.in.MoveTo(float64(x), float64(y))

	st.frames.FireNow()
}

func (st *SurvivalState) Draw(screen *ebiten.Image) {
	surface := ebitensurface.New(screen, st.faces)
	surface.Background = config.BackgroundColor
	st.rec.Replay(surface)
}

func (st *SurvivalState) Resize(width, height int) {
	st.in.Resize(float64(width), float64(height))
}
