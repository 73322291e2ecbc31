package render

import (
	"image"
	"image/color"
	"log"

	"github.com/fogleman/gg"
)

// GGSurface rasterizes into an in-memory image. Used for headless rendering.
type GGSurface struct {
	dc         *gg.Context
	faces      *FaceCache
	Background color.Color
}

func NewGGSurface(width, height int, faces *FaceCache) *GGSurface {
	return &GGSurface{dc: gg.NewContext(width, height), faces: faces, Background: color.Black}
}

func (s *GGSurface) Clear() {
	s.dc.SetColor(s.Background)
	s.dc.Clear()
}

func (s *GGSurface) FillCircle(x, y, r float64, c color.Color) {
	s.dc.DrawCircle(x, y, r)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *GGSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *GGSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.SetColor(c)
	s.dc.Stroke()
}

func (s *GGSurface) Text(str string, x, y, size float64, align Align, c color.Color) {
	face, err := s.faces.Face(size)
	if err != nil {
		log.Printf("text skipped: %v", err)
		return
	}
	ax := 0.0
	if align == AlignCenter {
		ax = 0.5
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, 0)
}

// Image returns the rendered frame. Hosts save with SavePNG; tests read
// pixels through Image.
func (s *GGSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered frame to path.
func (s *GGSurface) SavePNG(path string) error { return s.dc.SavePNG(path) }
