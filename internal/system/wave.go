// internal/system/wave.go
package system

import (
	"math"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/utils"
)

// Edge is a side of the canvas enemies enter from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// WaveSystem owns the spawn clock and the wave counter.
type WaveSystem struct {
	rng           *utils.PRNGService
	Wave          int
	SpawnTimer    float64 // ms since the last batch
	SpawnInterval float64 // ms
}

func NewWaveSystem(rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{rng: rng}
	ws.Reset()
	return ws
}

// Reset returns the system to wave 1 with an empty spawn clock.
func (s *WaveSystem) Reset() {
	s.Wave = 1
	s.SpawnTimer = 0
	s.SpawnInterval = config.InitialSpawnInterval
}

// Tick advances the spawn clock and returns the size of the batch due this
// tick, or 0. At most one batch fires per tick however large deltaTime is.
func (s *WaveSystem) Tick(deltaTime float64) int {
	s.SpawnTimer += deltaTime * 1000
	if s.SpawnTimer < s.SpawnInterval {
		return 0
	}
	s.SpawnTimer = 0
	return BatchSize(s.Wave)
}

// Advance moves to the next wave if score has passed the current wave's
// threshold. It is evaluated once per spawned batch.
func (s *WaveSystem) Advance(score int) bool {
	if score <= s.Wave*config.WaveScoreStep {
		return false
	}
	s.Wave++
	s.SpawnInterval = SpawnInterval(s.Wave)
	return true
}

// SpawnPoint picks a uniformly random point just outside one of the four
// canvas edges, the edge itself chosen uniformly.
func (s *WaveSystem) SpawnPoint(width, height float64) component.Position {
	edge := Edge(s.rng.Intn(4))
	return EdgePoint(edge, s.rng.Float64(), width, height)
}

// EdgePoint maps t in [0,1) to a point along edge, offset outside the canvas.
func EdgePoint(edge Edge, t, width, height float64) component.Position {
	switch edge {
	case EdgeTop:
		return component.Position{X: t * width, Y: -config.SpawnEdgeOffset}
	case EdgeRight:
		return component.Position{X: width + config.SpawnEdgeOffset, Y: t * height}
	case EdgeBottom:
		return component.Position{X: t * width, Y: height + config.SpawnEdgeOffset}
	default:
		return component.Position{X: -config.SpawnEdgeOffset, Y: t * height}
	}
}

// BatchSize is the number of enemies spawned per batch during wave.
func BatchSize(wave int) int {
	return min(config.BaseBatchSize+wave/2, config.MaxBatchSize)
}

// SpawnInterval is the delay between batches, in ms, once wave is reached.
func SpawnInterval(wave int) float64 {
	return math.Max(config.MinSpawnInterval, config.InitialSpawnInterval-float64(wave*config.SpawnIntervalDecrement))
}
