package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TermSurface rasterizes pixel-space draw calls onto terminal cells. Each
// cell covers CellW x CellH canvas pixels. Drawing happens in an internal
// buffer; Present pushes it to the screen.
type TermSurface struct {
	screen       tcell.Screen
	cols, rows   int
	cellW, cellH float64
	runes        []rune
	fg, bg       []color.RGBA
	Background   color.RGBA
}

// NewTermSurface creates a surface for screen. A nil screen keeps the
// buffer only, which is what tests use.
func NewTermSurface(screen tcell.Screen, cols, rows int, cellW, cellH float64) *TermSurface {
	s := &TermSurface{
		screen:     screen,
		cellW:      cellW,
		cellH:      cellH,
		Background: color.RGBA{0, 0, 0, 255},
	}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid and clears it.
func (s *TermSurface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	n := cols * rows
	s.runes = make([]rune, n)
	s.fg = make([]color.RGBA, n)
	s.bg = make([]color.RGBA, n)
	s.Clear()
}

// CanvasSize returns the pixel size the cell grid represents.
func (s *TermSurface) CanvasSize() (float64, float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// ToCanvas converts a cell position to the pixel at the cell's center.
func (s *TermSurface) ToCanvas(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// Cell returns the buffered content of a cell. Present is what hosts call;
// Cell lets tests read the buffer without a screen.
func (s *TermSurface) Cell(col, row int) (rune, color.RGBA, color.RGBA, bool) {
	i, ok := s.index(col, row)
	if !ok {
		return 0, color.RGBA{}, color.RGBA{}, false
	}
	return s.runes[i], s.fg[i], s.bg[i], true
}

func (s *TermSurface) index(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, false
	}
	return row*s.cols + col, true
}

func (s *TermSurface) Clear() {
	for i := range s.runes {
		s.runes[i] = ' '
		s.fg[i] = s.Background
		s.bg[i] = s.Background
	}
}

func (s *TermSurface) FillCircle(x, y, r float64, c color.Color) {
	c0 := int(math.Floor((x - r) / s.cellW))
	c1 := int(math.Floor((x + r) / s.cellW))
	r0 := int(math.Floor((y - r) / s.cellH))
	r1 := int(math.Floor((y + r) / s.cellH))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := s.ToCanvas(col, row)
			if math.Hypot(cx-x, cy-y) <= r {
				s.paint(col, row, c)
			}
		}
	}
	// small bodies still occupy the cell they sit in
	s.paint(int(math.Floor(x/s.cellW)), int(math.Floor(y/s.cellH)), c)
}

func (s *TermSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0 := int(math.Floor(x / s.cellW))
	c1 := int(math.Ceil((x+w)/s.cellW)) - 1
	r0 := int(math.Floor(y / s.cellH))
	r1 := int(math.Ceil((y+h)/s.cellH)) - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if i, ok := s.index(col, row); ok {
				s.bg[i] = Blend(s.bg[i], c)
				s.fg[i] = Blend(s.fg[i], c)
			}
		}
	}
}

func (s *TermSurface) paint(col, row int, c color.Color) {
	if i, ok := s.index(col, row); ok {
		s.bg[i] = Blend(s.bg[i], c)
		s.runes[i] = ' '
	}
}

func (s *TermSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	step := math.Min(s.cellW, s.cellH) / 2
	n := int(math.Hypot(x2-x1, y2-y1)/step) + 1
	for k := 0; k <= n; k++ {
		t := float64(k) / float64(n)
		col := int(math.Floor((x1 + (x2-x1)*t) / s.cellW))
		row := int(math.Floor((y1 + (y2-y1)*t) / s.cellH))
		if i, ok := s.index(col, row); ok {
			s.runes[i] = '•'
			s.fg[i] = Blend(s.bg[i], c)
		}
	}
}

// Text ignores size; terminal glyphs are one cell each.
func (s *TermSurface) Text(str string, x, y, size float64, align Align, c color.Color) {
	runes := []rune(str)
	col := int(math.Floor(x / s.cellW))
	if align == AlignCenter {
		col -= len(runes) / 2
	}
	row := int(math.Floor((y - 1) / s.cellH))
	for k, r := range runes {
		if i, ok := s.index(col+k, row); ok {
			s.runes[i] = r
			s.fg[i] = Blend(s.bg[i], c)
		}
	}
}

// Present copies the buffer to the screen and shows it.
func (s *TermSurface) Present() {
	if s.screen == nil {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			i := row*s.cols + col
			style := tcell.StyleDefault.
				Foreground(toTcell(s.fg[i])).
				Background(toTcell(s.bg[i]))
			s.screen.SetContent(col, row, s.runes[i], nil, style)
		}
	}
	s.screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
