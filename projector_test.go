package limelight

import (
	"math"
	"testing"
)

// gridCam is a stub camera with uniform pixels-per-unit scaling.
type gridCam struct {
	scale float64
}

func (c gridCam) WorldToScreen(p Vec3) (float64, float64) {
	return p.X * c.scale, p.Y * c.scale
}

func (c gridCam) Right() Vec3 { return Vec3{X: 1} }

func TestProjectCenterNormalization(t *testing.T) {
	center, _, _ := Project(Vec3{X: 100, Y: 150}, 1, gridCam{scale: 1}, 800, 600)
	if !approxEqual(center.X, 0.125, epsilon) {
		t.Errorf("center.X = %f, want 0.125", center.X)
	}
	if !approxEqual(center.Y, 0.25, epsilon) {
		t.Errorf("center.Y = %f, want 0.25", center.Y)
	}
}

func TestProjectOffscreenCenterAllowed(t *testing.T) {
	center, _, _ := Project(Vec3{X: 1200, Y: -90}, 1, gridCam{scale: 1}, 800, 600)
	if center.X <= 1 {
		t.Errorf("center.X = %f, want > 1 (off-screen, unclamped)", center.X)
	}
	if center.Y >= 0 {
		t.Errorf("center.Y = %f, want < 0 (off-screen, unclamped)", center.Y)
	}
}

func TestProjectRadiusScalesWithCamera(t *testing.T) {
	// The two-point projection must pick up the camera's pixels-per-unit
	// scale: worldRadius 3 at 2 px/unit over an 800-wide viewport.
	_, radiusUV, _ := Project(Vec3{}, 3, gridCam{scale: 2}, 800, 600)
	if !approxEqual(radiusUV, 6.0/800, epsilon) {
		t.Errorf("radiusUV = %f, want %f", radiusUV, 6.0/800)
	}
}

func TestProjectZeroRadius(t *testing.T) {
	_, radiusUV, _ := Project(Vec3{}, 0, gridCam{scale: 2}, 800, 600)
	if radiusUV != 0 {
		t.Errorf("radiusUV = %f, want 0", radiusUV)
	}
}

func TestProjectAspect(t *testing.T) {
	_, _, aspect := Project(Vec3{}, 1, gridCam{scale: 1}, 800, 400)
	if !approxEqual(aspect, 2.0, epsilon) {
		t.Errorf("aspect = %f, want 2.0", aspect)
	}
}

func TestProjectRadiusInvariantUnderRotation(t *testing.T) {
	// A world radius projects to the same screen radius whichever way the
	// camera's right axis points.
	cam := NewCamera2D(Rect{Width: 800, Height: 600})
	_, base, _ := Project(Vec3{}, 5, cam, 800, 600)
	for _, rot := range []float64{0.5, math.Pi / 3, 2.4} {
		cam.Rotation = rot
		cam.MarkDirty()
		_, r, _ := Project(Vec3{}, 5, cam, 800, 600)
		if !approxEqual(r, base, 1e-9) {
			t.Errorf("rotation %f: radiusUV = %f, want %f", rot, r, base)
		}
	}
}

func TestProjectThroughCamera2DZoom(t *testing.T) {
	cam := NewCamera2D(Rect{Width: 800, Height: 600})
	cam.Zoom = 2
	cam.MarkDirty()
	_, radiusUV, _ := Project(Vec3{}, 3, cam, 800, 600)
	if !approxEqual(radiusUV, 6.0/800, 1e-9) {
		t.Errorf("radiusUV under zoom 2 = %f, want %f", radiusUV, 6.0/800)
	}
}

func TestWorldExtent(t *testing.T) {
	ext, ok := worldExtent(gridCam{scale: 1}, Vec3{}, 800, 600)
	if !ok {
		t.Fatal("worldExtent reported degenerate for a valid camera")
	}
	// Half the smaller dimension (600/2) at 1 px/unit.
	if !approxEqual(ext, 300, epsilon) {
		t.Errorf("extent = %f, want 300", ext)
	}

	ext, ok = worldExtent(gridCam{scale: 2}, Vec3{}, 800, 600)
	if !ok || !approxEqual(ext, 150, epsilon) {
		t.Errorf("extent at 2 px/unit = %f, want 150", ext)
	}
}

func TestWorldExtentDegenerate(t *testing.T) {
	if _, ok := worldExtent(gridCam{scale: 0}, Vec3{}, 800, 600); ok {
		t.Error("worldExtent accepted a zero-scale projection")
	}
	if _, ok := worldExtent(gridCam{scale: math.NaN()}, Vec3{}, 800, 600); ok {
		t.Error("worldExtent accepted a NaN projection")
	}
}
