// component/render.go
package component

import "image/color"

// Renderable says how an entity body is drawn.
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
