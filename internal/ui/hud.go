package ui

import (
	"fmt"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/pkg/render"
)

// HUDState is what the overlay shows.
type HUDState struct {
	Wave, Score   int
	GameOver      bool
	Width, Height float64 // canvas size
}

// DrawHUD renders wave and score, plus the game over banner when the run has
// ended.
func DrawHUD(s render.Surface, st HUDState) {
	s.Text(fmt.Sprintf("Wave: %d", st.Wave), config.HUDMarginX, config.HUDWaveY, config.HUDFontSize, render.AlignLeft, config.TextLightColor)
	s.Text(fmt.Sprintf("Score: %d", st.Score), config.HUDMarginX, config.HUDScoreY, config.HUDFontSize, render.AlignLeft, config.TextLightColor)

	if !st.GameOver {
		return
	}

	s.FillRect(0, 0, st.Width, st.Height, config.OverlayColor)

	cx, cy := st.Width/2, st.Height/2
	s.Text("GAME OVER", cx, cy, config.BannerFontSize, render.AlignCenter, config.TextLightColor)
	s.Text(fmt.Sprintf("Final Score: %d - Wave: %d", st.Score, st.Wave), cx, cy+config.BannerSummaryGap, config.HUDFontSize, render.AlignCenter, config.TextLightColor)
	s.Text("Press R to Restart", cx, cy+config.BannerHintGap, config.HUDFontSize, render.AlignCenter, config.TextLightColor)
}
