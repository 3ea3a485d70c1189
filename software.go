package limelight

import (
	"image"
	"math"
)

// Shade evaluates the overlay's per-pixel alpha factor at the normalized
// screen position p, mirroring the cutout shader's numeric policy exactly.
// The horizontal offset is scaled by the aspect ratio so the hole is a true
// circle on non-square viewports. Returns 0 inside the hole, 1 on the
// opaque overlay, and a smoothstep blend across the fade ring. The final
// pixel alpha is this factor times the tint and texture alphas.
func Shade(p Vec2, params ShadingParams) float64 {
	dx := (p.X - params.Center.X) * params.Aspect
	dy := p.Y - params.Center.Y
	d := math.Hypot(dx, dy)
	inner := params.Radius - params.Fade
	return smoothstep(inner, params.Radius, d)
}

// RenderSoftware rasterizes the overlay on the CPU into a premultiplied
// RGBA image of the given pixel size. The texture, if any, is ignored; the
// software path renders the solid tint. Intended for headless environments
// and for validating a custom Backend against the reference shading.
func RenderSoftware(params ShadingParams, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	tint := params.Tint
	for y := 0; y < h; y++ {
		py := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			px := (float64(x) + 0.5) / float64(w)
			cut := Shade(Vec2{X: px, Y: py}, params)
			c := tint
			c.A = tint.A * cut
			img.SetRGBA(x, y, c.toRGBA())
		}
	}
	return img
}
