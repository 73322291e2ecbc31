package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"go-zombie-survival/internal/event"
)

func TestMetricsFollowEvents(t *testing.T) {
	m := New()
	d := event.NewDispatcher()
	m.Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: 1}})
	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: 2}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 1, Score: 10}})
	d.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: 5, Health: 95}})
	d.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: 5, Health: 90}})
	d.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveAdvancedData{Wave: 2, SpawnInterval: 1800}})
	d.Dispatch(event.Event{Type: event.Ticked, Data: event.TickedData{Wave: 2, Score: 10, Enemies: 1, Health: 90}})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"spawned", testutil.ToFloat64(m.enemySpawned), 2},
		{"killed", testutil.ToFloat64(m.enemyKilled), 1},
		{"damage", testutil.ToFloat64(m.playerDamage), 10},
		{"ticks", testutil.ToFloat64(m.ticks), 1},
		{"wave", testutil.ToFloat64(m.wave), 2},
		{"score", testutil.ToFloat64(m.score), 10},
		{"alive", testutil.ToFloat64(m.enemiesAlive), 1},
		{"health", testutil.ToFloat64(m.playerHealth), 90},
		{"over", testutil.ToFloat64(m.gameOver), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestGameOverAndRestart(t *testing.T) {
	m := New()
	d := event.NewDispatcher()
	m.Subscribe(d)

	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Score: 30, Wave: 1}})
	if got := testutil.ToFloat64(m.gameOver); got != 1 {
		t.Errorf("Expected game_over 1, got %v", got)
	}

	d.Dispatch(event.Event{Type: event.GameRestarted})
	if got := testutil.ToFloat64(m.gameOver); got != 0 {
		t.Errorf("Expected game_over 0 after restart, got %v", got)
	}
	if got := testutil.ToFloat64(m.restarts); got != 1 {
		t.Errorf("Expected 1 restart, got %v", got)
	}
	if got := testutil.ToFloat64(m.wave); got != 1 {
		t.Errorf("Expected wave 1 after restart, got %v", got)
	}
}

func TestRouter(t *testing.T) {
	m := New()
	m.enemySpawned.Add(3)
	srv := httptest.NewServer(NewRouter(m))
	defer srv.Close()

	tests := []struct {
		path     string
		contains string
	}{
		{"/metrics", "game_enemies_spawned_total 3"},
		{"/health", "OK"},
		{"/debug/pprof/", "goroutine"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected 200, got %d", resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("Expected body to contain %q", tt.contains)
			}
		})
	}
}

func TestStartDebugServerDisabled(t *testing.T) {
	if srv := StartDebugServer("", New()); srv != nil {
		t.Errorf("Expected nil server for empty addr")
	}
}
