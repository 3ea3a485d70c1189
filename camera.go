package limelight

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera2D is the built-in camera: an affine view over a 2D world with
// position, zoom, and rotation. It implements both Camera and Viewport, so
// a single Camera2D can serve as the controller's projection and canvas
// provider. Z components of world points are ignored.
type Camera2D struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera2D creates a camera with default values and the given viewport.
func NewCamera2D(viewport Rect) *Camera2D {
	return &Camera2D{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera2D) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Update advances any in-flight scroll animation by dt seconds.
func (c *Camera2D) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera2D) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts a world point to viewport pixel coordinates.
func (c *Camera2D) WorldToScreen(p Vec3) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, p.X, p.Y)
	return
}

// ScreenToWorld converts viewport pixel coordinates to a world point.
func (c *Camera2D) ScreenToWorld(sx, sy float64) Vec3 {
	c.computeViewMatrix()
	wx, wy := transformPoint(c.invViewMatrix, sx, sy)
	return Vec3{X: wx, Y: wy}
}

// Right returns the world-space unit vector that projects onto the screen's
// +X direction under the current rotation. The view matrix applies
// Rotate(-rotation), so the preimage of screen +X is (cos r, sin r).
func (c *Camera2D) Right() Vec3 {
	sin, cos := math.Sincos(c.Rotation)
	return Vec3{X: cos, Y: sin}
}

// Size returns the viewport dimensions in pixels, satisfying Viewport.
func (c *Camera2D) Size() (w, h float64) {
	return c.Viewport.Width, c.Viewport.Height
}

// MarkDirty forces a recomputation of the view matrix. Call after mutating
// X, Y, Zoom, or Rotation directly.
func (c *Camera2D) MarkDirty() {
	c.dirty = true
}
