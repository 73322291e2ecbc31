// Package render defines the drawing surface the game issues commands to and
// the backends that implement it.
package render

import "image/color"

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface receives primitive draw calls in device pixel coordinates.
// Callers never read anything back from it.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	// Text draws s with its baseline at y.
	Text(s string, x, y, size float64, align Align, c color.Color)
}
