package limelight

import "testing"

func centeredParams(radius, fade, aspect float64) ShadingParams {
	return ShadingParams{
		Center: Vec2{X: 0.5, Y: 0.5},
		Radius: radius,
		Aspect: aspect,
		Fade:   fade,
		Tint:   Color{0, 0, 0, 0.8},
	}
}

func TestShadeAspectCorrection(t *testing.T) {
	// On a 2:1 viewport, a horizontal offset of 0.1 and a vertical offset
	// of 0.2 are the same corrected distance (0.2) from center, so the hole
	// renders round.
	p := centeredParams(0.3, 0.1, 2.0)
	horizontal := Shade(Vec2{X: 0.6, Y: 0.5}, p)
	vertical := Shade(Vec2{X: 0.5, Y: 0.7}, p)
	if !approxEqual(horizontal, vertical, epsilon) {
		t.Errorf("aspect-corrected alphas differ: %f vs %f", horizontal, vertical)
	}
}

func TestShadeInsideHoleTransparent(t *testing.T) {
	p := centeredParams(0.3, 0.1, 1.0)
	// Distance 0.1 is inside innerRadius (0.2): fully transparent.
	if got := Shade(Vec2{X: 0.6, Y: 0.5}, p); got != 0 {
		t.Errorf("alpha inside hole = %f, want 0", got)
	}
}

func TestShadeOutsideRadiusOpaque(t *testing.T) {
	p := centeredParams(0.3, 0.1, 1.0)
	// Distance 0.4 is beyond the radius: fully opaque overlay.
	if got := Shade(Vec2{X: 0.9, Y: 0.5}, p); got != 1 {
		t.Errorf("alpha outside radius = %f, want 1", got)
	}
}

func TestShadeFadeBandBlends(t *testing.T) {
	p := centeredParams(0.3, 0.1, 1.0)
	// Distance 0.25 sits mid-band between inner (0.2) and outer (0.3).
	got := Shade(Vec2{X: 0.75, Y: 0.5}, p)
	if got <= 0 || got >= 1 {
		t.Errorf("alpha in fade band = %f, want strictly inside (0,1)", got)
	}
	if !approxEqual(got, 0.5, epsilon) {
		t.Errorf("alpha at band middle = %f, want 0.5", got)
	}
}

func TestShadeZeroFadeHardEdge(t *testing.T) {
	p := centeredParams(0.3, 0, 1.0)
	if got := Shade(Vec2{X: 0.79, Y: 0.5}, p); got != 0 {
		t.Errorf("alpha just inside hard edge = %f, want 0", got)
	}
	if got := Shade(Vec2{X: 0.81, Y: 0.5}, p); got != 1 {
		t.Errorf("alpha just outside hard edge = %f, want 1", got)
	}
}

func TestRenderSoftware(t *testing.T) {
	p := centeredParams(0.25, 0, 1.0)
	img := RenderSoftware(p, 64, 64)

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", img.Bounds())
	}
	if a := img.RGBAAt(32, 32).A; a != 0 {
		t.Errorf("center alpha = %d, want 0 (inside hole)", a)
	}
	// Corner is far outside the radius: full tint opacity (0.8 * 255).
	if a := img.RGBAAt(0, 0).A; a != 204 {
		t.Errorf("corner alpha = %d, want 204", a)
	}
}
