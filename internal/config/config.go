// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TicksPerSec  = 60

	PlayerSpeed     = 200.0 // pixels per second
	PlayerRadius    = 20.0
	PlayerMaxHealth = 100.0
	PlayerAimLength = 10.0 // how far the facing line reaches past the body

	// PlayerCollisionRadius is used for contact checks only. It is kept apart
	// from PlayerRadius on purpose; do not merge the two.
	PlayerCollisionRadius = 20.0

	EnemySpeed   = 100.0 // pixels per second
	EnemyRadius  = 15.0
	EnemyHealth  = 50.0
	EnemyDamage  = 10.0
	ContactScale = 0.5 // fraction of EnemyDamage applied per contact per tick

	KillScore = 10

	InitialSpawnInterval   = 2000 // ms
	MinSpawnInterval       = 500  // ms
	SpawnIntervalDecrement = 100  // ms per wave
	BaseBatchSize          = 3
	MaxBatchSize           = 10
	WaveScoreStep          = 100 // wave advances once score > wave*WaveScoreStep
	SpawnEdgeOffset        = 30.0

	PlayerBarWidth  = 40.0
	PlayerBarHeight = 5.0
	PlayerBarOffset = 10.0
	EnemyBarWidth   = 30.0
	EnemyBarHeight  = 4.0
	EnemyBarOffset  = 8.0
	AimLineWidth    = 3.0

	HUDFontSize      = 24.0
	BannerFontSize   = 48.0
	HUDMarginX       = 20.0
	HUDWaveY         = 40.0
	HUDScoreY        = 70.0
	BannerSummaryGap = 50.0
	BannerHintGap    = 90.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PlayerColor     = color.RGBA{0x4C, 0xAF, 0x50, 255}
	PlayerAimColor  = color.RGBA{0x2E, 0x7D, 0x32, 255}
	EnemyColor      = color.RGBA{0xF4, 0x43, 0x36, 255}
	BarBackColor    = color.RGBA{255, 0, 0, 255}
	BarFrontColor   = color.RGBA{0, 255, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.NRGBA{0, 0, 0, 178} // black at 0.7 alpha
)
