// Package ebitensurface implements render.Surface on ebiten. It is kept out of
// package render so headless builds do not link the window backend.
package ebitensurface

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-zombie-survival/pkg/render"
)

// Surface draws onto an ebiten image. It is cheap to create, so hosts
// wrap the screen passed to Draw every frame.
type Surface struct {
	dst        *ebiten.Image
	faces      *render.FaceCache
	Background color.Color
}

var _ render.Surface = (*Surface)(nil)

func New(dst *ebiten.Image, faces *render.FaceCache) *Surface {
	return &Surface{dst: dst, faces: faces, Background: color.Black}
}

func (s *Surface) Clear() {
	s.dst.Fill(s.Background)
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s *Surface) Text(str string, x, y, size float64, align render.Align, c color.Color) {
	face, err := s.faces.Face(size)
	if err != nil {
		log.Printf("text skipped: %v", err)
		return
	}
	text.Draw(s.dst, str, face, int(render.TextStart(face, str, x, align)), int(y), c)
}
