package limelight

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default overlay tint.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts to a premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for normalized screen positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for world-space anchor positions and axes.
// 2D cameras ignore Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Target is an opaque handle to a point of interest in world space. The
// controller holds a non-owning reference and resolves the position every
// frame, so moving targets are tracked automatically.
type Target interface {
	Position() Vec3
}

// FixedTarget is a Target pinned to a constant world position.
type FixedTarget Vec3

// Position returns the fixed world position.
func (t FixedTarget) Position() Vec3 { return Vec3(t) }

// Camera projects world-space points to viewport pixel coordinates. Points
// may project off-screen; that is not an error. Projection of points behind
// the camera may be undefined, which degrades to an off-screen hole.
type Camera interface {
	// WorldToScreen converts a world point to viewport pixel coordinates.
	WorldToScreen(p Vec3) (x, y float64)
	// Right returns the camera's local right axis as a world-space unit
	// vector. Used to measure how a world-space radius projects to pixels.
	Right() Vec3
}

// Viewport reports the size of the canvas the overlay covers, in pixels.
// A zero or negative dimension marks the viewport as momentarily invalid
// and the controller skips that frame.
type Viewport interface {
	Size() (w, h float64)
}

// Backend consumes the per-frame shading parameters and rasterizes the
// overlay. Overlay is the built-in Ebitengine implementation.
type Backend interface {
	Submit(p ShadingParams)
}

// ShadingParams is the per-frame snapshot handed to the rendering backend.
// It is recomputed every frame and never mutated by the backend.
type ShadingParams struct {
	// Center is the hole center in normalized screen coordinates
	// (x/width, y/height). Unclamped; may lie outside [0, 1].
	Center Vec2
	// Radius is the hole radius normalized by viewport width.
	Radius float64
	// Aspect is viewport width / height, used so the hole renders as a
	// circle rather than an ellipse on non-square viewports.
	Aspect float64
	// Fade is the width of the smoothly blended ring between the fully
	// transparent hole and the fully opaque overlay, normalized.
	Fade float64
	// Tint is the overlay color; Tint.A carries the current opacity.
	Tint Color
	// Texture optionally patterns the overlay. Nil means a solid tint.
	Texture *ebiten.Image
}

// --- Scalar helpers ---

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep is the cubic Hermite ease shared by the shader's distance fade
// and the controller's time-based easing. a == b degenerates to a step so a
// zero-width fade band yields a hard edge instead of a division by zero.
func smoothstep(a, b, x float64) float64 {
	if a == b {
		if x < a {
			return 0
		}
		return 1
	}
	u := clamp01((x - a) / (b - a))
	return u * u * (3 - 2*u)
}
