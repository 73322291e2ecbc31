// internal/event/types.go
package event

import "go-zombie-survival/internal/types"

const (
	EnemySpawned  EventType = "EnemySpawned"  // EnemySpawnedData
	EnemyKilled   EventType = "EnemyKilled"   // EnemyKilledData
	PlayerDamaged EventType = "PlayerDamaged" // PlayerDamagedData
	WaveAdvanced  EventType = "WaveAdvanced"  // WaveAdvancedData
	GameOver      EventType = "GameOver"      // GameOverData
	GameRestarted EventType = "GameRestarted" // no payload
	Ticked        EventType = "Ticked"        // TickedData
)

type EnemySpawnedData struct {
	ID   types.EntityID
	X, Y float64
}

type EnemyKilledData struct {
	ID    types.EntityID
	Score int // score after crediting the kill
}

type PlayerDamagedData struct {
	Amount float64
	Health float64 // player health after the hit
}

type WaveAdvancedData struct {
	Wave          int
	SpawnInterval float64 // ms
}

type GameOverData struct {
	Score int
	Wave  int
}

// TickedData summarizes the state at the end of a tick.
type TickedData struct {
	Wave    int
	Score   int
	Enemies int
	Health  float64
}
