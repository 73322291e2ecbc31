// component/movement.go
package component

import "math"

// Position is a point or a displacement on the canvas, in pixels.
type Position struct {
	X, Y float64
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Position) Scale(k float64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p.
func (p Position) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Position) DistanceTo(o Position) float64 {
	return o.Sub(p).Len()
}

// Angle returns the direction of p in radians, as atan2(y, x).
func (p Position) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Velocity is movement speed in pixels per second.
type Velocity struct {
	Speed float64
}
