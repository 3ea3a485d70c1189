package limelight

import "math"

// Project converts a world-space anchor and radius into the overlay's
// normalized shading coordinates for a (w x h) pixel viewport.
//
// The center is the anchor's projection normalized per-axis (x/width,
// y/height); it is deliberately unclamped, so an off-screen anchor yields an
// off-screen hole rather than an error. The radius is measured by projecting
// a second point offset from the anchor by worldRadius along the camera's
// right axis and dividing the projected pixel distance by the viewport
// width. Measuring a projected displacement is the only robust way to turn a
// world radius into a screen radius: projection is generally non-uniform, so
// a fixed pixels-per-unit constant would be wrong under zoom or distortion.
func Project(anchor Vec3, worldRadius float64, cam Camera, w, h float64) (center Vec2, radiusUV, aspect float64) {
	cx, cy := cam.WorldToScreen(anchor)
	center = Vec2{X: cx / w, Y: cy / h}

	ex, ey := cam.WorldToScreen(anchor.Add(cam.Right().Scale(worldRadius)))
	radiusUV = math.Hypot(ex-cx, ey-cy) / w

	aspect = w / h
	return
}

// worldExtent returns the world-space radius that covers half of the smaller
// viewport dimension at the anchor's depth. Animated show transitions begin
// from this outer bound (and hide transitions end at it) so the fade reads
// as the overlay closing in on the target rather than growing from a point.
//
// Reports false when the projection is degenerate (zero pixel displacement
// for a unit world offset, or a non-finite result); callers fall back to
// whatever radius preserves continuity.
func worldExtent(cam Camera, anchor Vec3, w, h float64) (float64, bool) {
	cx, cy := cam.WorldToScreen(anchor)
	ex, ey := cam.WorldToScreen(anchor.Add(cam.Right()))
	pixelsPerUnit := math.Hypot(ex-cx, ey-cy)
	if pixelsPerUnit <= 0 || math.IsNaN(pixelsPerUnit) || math.IsInf(pixelsPerUnit, 0) {
		return 0, false
	}
	extent := math.Min(w, h) / 2 / pixelsPerUnit
	return extent, true
}
