// internal/app/game.go
package app

import (
	"errors"
	"log"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/engine"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/system"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/ui"
	"go-zombie-survival/internal/utils"
	"go-zombie-survival/pkg/render"
)

var (
	ErrNoSurface   = errors.New("app: no render surface")
	ErrNoInput     = errors.New("app: no input source")
	ErrNoScheduler = errors.New("app: no frame scheduler")
)

var (
	_ interfaces.Lifecycle = (*Game)(nil)
	_ engine.Frame         = (*Game)(nil)
)

// Config wires a Game to its host. Rng and EventDispatcher are optional.
type Config struct {
	Surface         render.Surface
	Scheduler       engine.Scheduler
	Input           input.Source
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
}

// Game holds one survival run: the player, the live enemies, the wave and
// score counters, and the loop that drives them.
type Game struct {
	WaveSystem      *system.WaveSystem
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	player  *entity.Player
	enemies []*entity.Enemy
	score   int
	phase   component.Phase
	nextID  types.EntityID

	surface render.Surface
	input   input.Source
	loop    *engine.Loop
	width   float64
	height  float64
}

// NewGame creates a game in the Playing state with the player at the center
// of the canvas. It fails if any required collaborator is missing.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Surface == nil {
		return nil, ErrNoSurface
	}
	if cfg.Input == nil {
		return nil, ErrNoInput
	}
	if cfg.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if cfg.Rng == nil {
		cfg.Rng = utils.NewPRNGService(0)
	}
	if cfg.EventDispatcher == nil {
		cfg.EventDispatcher = event.NewDispatcher()
	}

	g := &Game{
		WaveSystem:      system.NewWaveSystem(cfg.Rng),
		CombatSystem:    system.NewCombatSystem(cfg.EventDispatcher),
		EventDispatcher: cfg.EventDispatcher,
		Rng:             cfg.Rng,
		surface:         cfg.Surface,
		input:           cfg.Input,
		nextID:          1,
	}
	g.loop = engine.NewLoop(g, cfg.Scheduler)
	g.reset()
	return g, nil
}

func (g *Game) reset() {
	snap := g.input.Snapshot()
	g.width, g.height = snap.Width, snap.Height
	g.player = entity.NewPlayer(g.width/2, g.height/2)
	g.enemies = nil
	g.score = 0
	g.phase = component.Playing
	g.WaveSystem.Reset()
}

// Start begins driving ticks.
func (g *Game) Start() { g.loop.Start() }

// Stop halts ticking after the current tick.
func (g *Game) Stop() { g.loop.Stop() }

// Restart resets the run. It does not resume a stopped loop; call Start.
func (g *Game) Restart() {
	g.reset()
	log.Println("Game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (g *Game) IsGameOver() bool { return g.phase == component.GameOver }

// Update advances the simulation by deltaTime seconds. It does nothing once
// the game is over.
func (g *Game) Update(deltaTime float64) {
	if g.phase == component.GameOver {
		return
	}

	snap := g.input.Snapshot()
	g.width, g.height = snap.Width, snap.Height

	g.player.Update(deltaTime, snap.Keys, snap.PointerX, snap.PointerY)
	g.updateEnemies(deltaTime)
	g.checkCollisions()
	g.spawnEnemies(deltaTime)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.Ticked,
		Data: event.TickedData{
			Wave:    g.WaveSystem.Wave,
			Score:   g.score,
			Enemies: len(g.enemies),
			Health:  g.player.Health.Value,
		},
	})
}

func (g *Game) updateEnemies(deltaTime float64) {
	target := g.player.Position
	for _, e := range g.enemies {
		e.Update(deltaTime, target)
	}

	alive, dead := g.CombatSystem.Cull(g.enemies)
	g.enemies = alive
	for _, e := range dead {
		g.score += config.KillScore
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{ID: e.ID, Score: g.score},
		})
	}
}

func (g *Game) checkCollisions() {
	if g.CombatSystem.ResolveContacts(g.player, g.enemies) == 0 {
		return
	}
	if g.player.IsDead() && g.phase == component.Playing {
		g.phase = component.GameOver
		log.Printf("Game over: score %d, wave %d", g.score, g.WaveSystem.Wave)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{Score: g.score, Wave: g.WaveSystem.Wave},
		})
	}
}

func (g *Game) spawnEnemies(deltaTime float64) {
	batch := g.WaveSystem.Tick(deltaTime)
	if batch == 0 {
		return
	}
	for i := 0; i < batch; i++ {
		p := g.WaveSystem.SpawnPoint(g.width, g.height)
		g.spawnEnemy(p.X, p.Y)
	}

	if g.WaveSystem.Advance(g.score) {
		log.Printf("Wave %d, spawn interval %.0fms", g.WaveSystem.Wave, g.WaveSystem.SpawnInterval)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.WaveAdvanced,
			Data: event.WaveAdvancedData{Wave: g.WaveSystem.Wave, SpawnInterval: g.WaveSystem.SpawnInterval},
		})
	}
}

func (g *Game) spawnEnemy(x, y float64) *entity.Enemy {
	id := g.nextID
	g.nextID++
	e := entity.NewEnemy(id, x, y, g.player.Position)
	g.enemies = append(g.enemies, e)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{ID: id, X: x, Y: y},
	})
	return e
}

// Render draws enemies, then the player, then the overlay.
func (g *Game) Render() {
	g.surface.Clear()
	for _, e := range g.enemies {
		e.Render(g.surface)
	}
	g.player.Render(g.surface)
	ui.DrawHUD(g.surface, ui.HUDState{
		Wave:     g.WaveSystem.Wave,
		Score:    g.score,
		GameOver: g.IsGameOver(),
		Width:    g.width,
		Height:   g.height,
	})
}

// Player returns the current player.
func (g *Game) Player() *entity.Player { return g.player }

// Enemies returns the live enemies. The slice is only valid until the next
// tick.
func (g *Game) Enemies() []*entity.Enemy { return g.enemies }

func (g *Game) Score() int { return g.score }

func (g *Game) Wave() int { return g.WaveSystem.Wave }

func (g *Game) Phase() component.Phase { return g.phase }

// Ticks returns how many ticks the loop has driven.
func (g *Game) Ticks() uint64 { return g.loop.Ticks() }
