package system

import (
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/utils"
)

func TestBatchSize(t *testing.T) {
	tests := []struct {
		wave, want int
	}{
		{1, 3}, {2, 4}, {3, 4}, {5, 5}, {13, 9}, {14, 10}, {20, 10}, {100, 10},
	}
	for _, tt := range tests {
		if got := BatchSize(tt.wave); got != tt.want {
			t.Errorf("BatchSize(%d): expected %d, got %d", tt.wave, tt.want, got)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		wave int
		want float64
	}{
		{2, 1800}, {5, 1500}, {15, 500}, {16, 500}, {40, 500},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.wave); got != tt.want {
			t.Errorf("SpawnInterval(%d): expected %v, got %v", tt.wave, tt.want, got)
		}
	}
}

func TestWaveSystemTick(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(1))
	if ws.Wave != 1 || ws.SpawnInterval != config.InitialSpawnInterval {
		t.Fatalf("Unexpected initial state %+v", ws)
	}

	if n := ws.Tick(1.5); n != 0 {
		t.Errorf("Expected no batch at 1500ms, got %d", n)
	}
	if n := ws.Tick(0.5); n != 3 {
		t.Errorf("Expected batch of 3 at 2000ms, got %d", n)
	}
	if ws.SpawnTimer != 0 {
		t.Errorf("Expected timer reset, got %v", ws.SpawnTimer)
	}
}

func TestWaveSystemSingleBatchPerTick(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(1))
	if n := ws.Tick(10); n != 3 {
		t.Errorf("Expected one batch of 3 for a 10s tick, got %d", n)
	}
	if ws.SpawnTimer != 0 {
		t.Errorf("Expected timer reset to 0 not carried over, got %v", ws.SpawnTimer)
	}
}

func TestWaveSystemAdvance(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(1))

	if ws.Advance(100) {
		t.Error("Score equal to the threshold must not advance")
	}
	if !ws.Advance(101) {
		t.Fatal("Expected advance at 101")
	}
	if ws.Wave != 2 || ws.SpawnInterval != 1800 {
		t.Errorf("Expected wave 2 / 1800ms, got %d / %v", ws.Wave, ws.SpawnInterval)
	}
	if ws.Advance(150) {
		t.Error("Expected no advance below 200 at wave 2")
	}
	// one wave per evaluation even when far past the threshold
	if !ws.Advance(10000) || ws.Wave != 3 {
		t.Errorf("Expected single step to wave 3, got %d", ws.Wave)
	}

	ws.Reset()
	if ws.Wave != 1 || ws.SpawnInterval != 2000 || ws.SpawnTimer != 0 {
		t.Errorf("Expected reset state, got %+v", ws)
	}
}

func TestEdgePoint(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		edge       Edge
		t          float64
		wantX, wantY float64
	}{
		{EdgeTop, 0.5, 400, -30},
		{EdgeRight, 0.25, 830, 150},
		{EdgeBottom, 0, 0, 630},
		{EdgeLeft, 0.5, -30, 300},
	}
	for _, tt := range tests {
		p := EdgePoint(tt.edge, tt.t, w, h)
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("edge %d: expected (%v,%v), got %v", tt.edge, tt.wantX, tt.wantY, p)
		}
	}
}

func TestSpawnPointOutsideCanvas(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(99))
	const w, h = 800, 600
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		p := ws.SpawnPoint(w, h)
		switch {
		case p.Y == -30 && p.X >= 0 && p.X < w:
			seen["top"] = true
		case p.X == w+30 && p.Y >= 0 && p.Y < h:
			seen["right"] = true
		case p.Y == h+30 && p.X >= 0 && p.X < w:
			seen["bottom"] = true
		case p.X == -30 && p.Y >= 0 && p.Y < h:
			seen["left"] = true
		default:
			t.Fatalf("Spawn point %v is not on an offset edge", p)
		}
	}
	if len(seen) != 4 {
		t.Errorf("Expected all four edges used, got %v", seen)
	}
}
