// pkg/render/color.go
package render

import "image/color"

// Blend composites src over an opaque dst and returns an opaque color.
func Blend(dst color.RGBA, src color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	a := float64(n.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.RGBA{
		R: mix(dst.R, n.R),
		G: mix(dst.G, n.G),
		B: mix(dst.B, n.B),
		A: 255,
	}
}
