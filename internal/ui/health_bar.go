package ui

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/pkg/render"
)

// HealthBar is the two-layer bar drawn above an entity body.
type HealthBar struct {
	Width, Height float64
	Offset        float64 // gap between the body top and the bar top
}

var (
	PlayerHealthBar = HealthBar{Width: config.PlayerBarWidth, Height: config.PlayerBarHeight, Offset: config.PlayerBarOffset}
	EnemyHealthBar  = HealthBar{Width: config.EnemyBarWidth, Height: config.EnemyBarHeight, Offset: config.EnemyBarOffset}
)

// Draw renders the bar for a body of radius r centered at (x, y). fraction is
// not clamped above 1, so a value past full shows a bar wider than its
// background. A non-positive fraction draws the background only.
func (b HealthBar) Draw(s render.Surface, x, y, r, fraction float64) {
	left := x - b.Width/2
	top := y - r - b.Offset
	s.FillRect(left, top, b.Width, b.Height, config.BarBackColor)
	if w := fraction * b.Width; w > 0 {
		s.FillRect(left, top, w, b.Height, config.BarFrontColor)
	}
}
