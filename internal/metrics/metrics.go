// Package metrics exposes game events as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-zombie-survival/internal/event"
)

// Metrics holds the collectors for one game.
type Metrics struct {
	Registry *prometheus.Registry

	ticks        prometheus.Counter
	enemySpawned prometheus.Counter
	enemyKilled  prometheus.Counter
	playerDamage prometheus.Counter
	restarts     prometheus.Counter
	wave         prometheus.Gauge
	score        prometheus.Gauge
	enemiesAlive prometheus.Gauge
	playerHealth prometheus.Gauge
	gameOver     prometheus.Gauge
}

// New registers the game collectors, plus the Go and process collectors, on
// a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "game_ticks_total",
			Help: "Simulation ticks run while playing",
		}),
		enemySpawned: f.NewCounter(prometheus.CounterOpts{
			Name: "game_enemies_spawned_total",
			Help: "Enemies spawned",
		}),
		enemyKilled: f.NewCounter(prometheus.CounterOpts{
			Name: "game_enemies_killed_total",
			Help: "Enemies removed at zero health",
		}),
		playerDamage: f.NewCounter(prometheus.CounterOpts{
			Name: "game_player_damage_total",
			Help: "Contact damage dealt to the player",
		}),
		restarts: f.NewCounter(prometheus.CounterOpts{
			Name: "game_restarts_total",
			Help: "Runs restarted",
		}),
		wave: f.NewGauge(prometheus.GaugeOpts{
			Name: "game_wave",
			Help: "Current wave",
		}),
		score: f.NewGauge(prometheus.GaugeOpts{
			Name: "game_score",
			Help: "Current score",
		}),
		enemiesAlive: f.NewGauge(prometheus.GaugeOpts{
			Name: "game_enemies_alive",
			Help: "Live enemies",
		}),
		playerHealth: f.NewGauge(prometheus.GaugeOpts{
			Name: "game_player_health",
			Help: "Player health",
		}),
		gameOver: f.NewGauge(prometheus.GaugeOpts{
			Name: "game_over",
			Help: "1 while the run is over",
		}),
	}
}

// Subscribe attaches m to every event the game emits.
func (m *Metrics) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(m,
		event.EnemySpawned, event.EnemyKilled, event.PlayerDamaged,
		event.WaveAdvanced, event.GameOver, event.GameRestarted, event.Ticked)
}

func (m *Metrics) OnEvent(e event.Event) {
	switch e.Type {
	case event.Ticked:
		d := e.Data.(event.TickedData)
		m.ticks.Inc()
		m.wave.Set(float64(d.Wave))
		m.score.Set(float64(d.Score))
		m.enemiesAlive.Set(float64(d.Enemies))
		m.playerHealth.Set(d.Health)
	case event.EnemySpawned:
		m.enemySpawned.Inc()
	case event.EnemyKilled:
		m.enemyKilled.Inc()
		m.score.Set(float64(e.Data.(event.EnemyKilledData).Score))
	case event.PlayerDamaged:
		d := e.Data.(event.PlayerDamagedData)
		m.playerDamage.Add(d.Amount)
		m.playerHealth.Set(d.Health)
	case event.WaveAdvanced:
		m.wave.Set(float64(e.Data.(event.WaveAdvancedData).Wave))
	case event.GameOver:
		m.gameOver.Set(1)
	case event.GameRestarted:
		m.restarts.Inc()
		m.gameOver.Set(0)
		m.score.Set(0)
		m.wave.Set(1)
		m.enemiesAlive.Set(0)
	}
}
