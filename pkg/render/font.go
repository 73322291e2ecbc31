package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceCache builds font faces of the embedded Go Regular font on demand, one
// per pixel size.
type FaceCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func NewFaceCache() (*FaceCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FaceCache{font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for size, creating it on first use.
func (c *FaceCache) Face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpx face: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

// TextStart returns the pen start for s drawn with face at anchor x.
func TextStart(face font.Face, s string, x float64, align Align) float64 {
	if align == AlignCenter {
		return x - float64(font.MeasureString(face, s).Ceil())/2
	}
	return x
}
