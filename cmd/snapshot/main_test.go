package main

import (
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/pkg/render"
)

func TestParseKeys(t *testing.T) {
	set, err := parseKeys("w, d")
	if err != nil {
		t.Fatalf("parseKeys: %v", err)
	}
	if !set.Has(input.KeyW) || !set.Has(input.KeyD) || set.Has(input.KeyA) {
		t.Errorf("Expected {w,d}, got %b", set)
	}
	if _, err := parseKeys("w,jump"); err == nil {
		t.Errorf("Expected error for unknown key")
	}
	if set, err := parseKeys(""); err != nil || set != 0 {
		t.Errorf("Expected empty set, got %b %v", set, err)
	}
}

func TestSimulate(t *testing.T) {
	settings := config.DefaultSettings()
	g, rec, err := simulate(settings, options{seconds: 1, fps: 60, keys: "d", seed: 7})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if g.Ticks() != 60 {
		t.Errorf("Expected 60 ticks, got %d", g.Ticks())
	}
	want := float64(settings.Width)/2 + config.PlayerSpeed
	if got := g.Player().Position.X; got < want-0.01 || got > want+0.01 {
		t.Errorf("Expected x %v after 1s, got %v", want, got)
	}
	if rec.Count(render.OpClear) != 1 {
		t.Errorf("Expected one recorded frame")
	}
}

func TestSimulateSpawns(t *testing.T) {
	g, _, err := simulate(config.DefaultSettings(), options{seconds: 2.5, fps: 60, seed: 7})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(g.Enemies()) != config.BaseBatchSize {
		t.Errorf("Expected %d enemies after 2.5s, got %d", config.BaseBatchSize, len(g.Enemies()))
	}
}

func TestSimulateRejectsBadFPS(t *testing.T) {
	if _, _, err := simulate(config.DefaultSettings(), options{seconds: 1, fps: 0}); err == nil {
		t.Errorf("Expected error for zero fps")
	}
}
