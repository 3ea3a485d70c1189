package limelight

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
)

// armState tracks whether WithAnimation has armed the next transitions.
// An explicit enum rather than a bool: arming is a one-shot contract, set by
// WithAnimation and cleared when a hide transition completes.
type armState uint8

const (
	notArmed armState = iota
	armedForNext
)

// transition is an in-flight interpolation of radius and opacity, advanced
// once per frame from Controller.Update. Both tweens use the smoothstep
// ease, the same curve the shader applies to the spatial fade.
type transition struct {
	radius  *gween.Tween
	opacity *gween.Tween
	doneR   bool
	doneO   bool

	// Float64 end values; on completion the controller snaps to these so
	// configured targets read back exactly despite float32 tweening.
	endRadius  float64
	endOpacity float64

	// hideOnDone marks a hiding transition: completion clears visibility
	// and the animation arm.
	hideOnDone bool
}

// smoothstepEase adapts the shared smoothstep curve to gween's easing
// signature (elapsed, begin, change, duration).
func smoothstepEase(t, b, c, d float32) float32 {
	u := clamp01(float64(t / d))
	return b + c*float32(u*u*(3-2*u))
}

// Controller owns the spotlight's state: the bound collaborators, the
// configured radius/opacity/fade/tint, the live (possibly mid-transition)
// radius and opacity, and the transition machine. All methods are meant to
// be called from the game's update thread; a Show or Hide issued mid-frame
// simply rewrites the transition, observed by the next tick.
type Controller struct {
	backend  Backend
	camera   Camera
	viewport Viewport
	target   Target

	radius  float64 // configured hole radius, world units
	opacity float64 // configured overlay opacity
	fade    float64 // fade band width, normalized
	tint    Color
	texture *ebiten.Image

	curRadius  float64
	curOpacity float64
	visible    bool

	arm         armState
	armDuration float32

	trans *transition

	// Last valid viewport half-extent in world units, kept as a fallback
	// for Show/Hide calls that arrive while the viewport is degenerate.
	lastExtent float64
	haveExtent bool
}

// NewController creates a spotlight controller bound to the given backend,
// camera, and viewport. Any of them may be nil; the per-frame update is a
// silent no-op until all collaborators and a target are bound. Defaults:
// radius 1, opacity 0.8, fade 0.1, black tint, hidden.
func NewController(backend Backend, camera Camera, viewport Viewport) *Controller {
	return &Controller{
		backend:    backend,
		camera:     camera,
		viewport:   viewport,
		radius:     1.0,
		opacity:    0.8,
		fade:       0.1,
		tint:       ColorBlack,
		curRadius:  1.0,
		curOpacity: 0.8,
	}
}

// SetTarget binds the target the spotlight centers on. Passing nil unbinds
// the target and idles the per-frame update.
func (c *Controller) SetTarget(t Target) *Controller {
	c.target = t
	return c
}

// SetCamera rebinds the projection camera.
func (c *Controller) SetCamera(cam Camera) *Controller {
	c.camera = cam
	return c
}

// SetViewport rebinds the viewport provider.
func (c *Controller) SetViewport(vp Viewport) *Controller {
	c.viewport = vp
	return c
}

// SetRadius sets the target hole radius in world units, clamped to >= 0.
// Outside a transition the change applies immediately; during one, the
// in-flight interpolation finishes first and the next Show picks it up.
func (c *Controller) SetRadius(r float64) *Controller {
	if r < 0 {
		r = 0
	}
	c.radius = r
	if c.trans == nil {
		c.curRadius = r
	}
	return c
}

// SetOpacity sets the target overlay opacity, clamped to [0, 1].
func (c *Controller) SetOpacity(o float64) *Controller {
	c.opacity = clamp01(o)
	if c.trans == nil {
		c.curOpacity = c.opacity
	}
	return c
}

// SetFadeDistance sets the width of the soft edge ring in normalized screen
// units, clamped to [0, 1]. Zero yields a hard edge.
func (c *Controller) SetFadeDistance(d float64) *Controller {
	c.fade = clamp01(d)
	return c
}

// SetTint sets the overlay color. The alpha component is ignored; opacity is
// owned by SetOpacity and the transition machine.
func (c *Controller) SetTint(tint Color) *Controller {
	c.tint = tint
	return c
}

// SetTexture sets an optional overlay texture, stretched across the
// viewport by the backend. Nil reverts to a solid tint.
func (c *Controller) SetTexture(tex *ebiten.Image) *Controller {
	c.texture = tex
	return c
}

// WithAnimation arms the next Show/Hide to animate over the given duration
// in seconds (clamped to >= 0; zero keeps transitions instantaneous). The
// arm persists through Show so the matching Hide animates too, and is
// cleared when a hide completes.
func (c *Controller) WithAnimation(seconds float64) *Controller {
	if seconds < 0 {
		seconds = 0
	}
	c.arm = armedForNext
	c.armDuration = float32(seconds)
	return c
}

// Radius returns the configured hole radius.
func (c *Controller) Radius() float64 { return c.radius }

// Opacity returns the configured overlay opacity.
func (c *Controller) Opacity() float64 { return c.opacity }

// FadeDistance returns the configured fade band width.
func (c *Controller) FadeDistance() float64 { return c.fade }

// CurrentRadius returns the live hole radius, which differs from Radius
// while a transition is in flight.
func (c *Controller) CurrentRadius() float64 { return c.curRadius }

// CurrentOpacity returns the live overlay opacity.
func (c *Controller) CurrentOpacity() float64 { return c.curOpacity }

// Visible reports whether the overlay is drawn. True for the whole of a
// hiding transition; it flips false when the transition completes.
func (c *Controller) Visible() bool { return c.visible }

// Show makes the overlay visible. When armed with a non-zero duration it
// starts a shrinking transition: from the viewport half-extent at zero
// opacity down to the configured radius and opacity. Unanimated it snaps.
// If a transition is already in flight the new one starts from the current
// radius and opacity, never from the nominal defaults, so there is no jump.
func (c *Controller) Show() *Controller {
	c.visible = true
	if c.arm != armedForNext || c.armDuration <= 0 {
		c.trans = nil
		c.curRadius = c.radius
		c.curOpacity = c.opacity
		return c
	}

	startR, startO := c.curRadius, c.curOpacity
	if c.trans == nil {
		startR = c.extentStart()
		startO = 0
	}
	c.curRadius, c.curOpacity = startR, startO
	c.trans = c.newTransition(startR, startO, c.radius, c.opacity, false)
	return c
}

// Hide dismisses the overlay. When armed it animates from the current
// radius and opacity out to the viewport half-extent at zero opacity and
// clears visibility (and the animation arm) on completion. Unanimated it
// hides immediately and clears the arm.
func (c *Controller) Hide() *Controller {
	if c.arm != armedForNext || c.armDuration <= 0 {
		c.trans = nil
		c.visible = false
		c.arm = notArmed
		return c
	}

	if !c.visible {
		// Already hidden: the transition completes trivially.
		c.trans = nil
		c.arm = notArmed
		return c
	}

	end, ok := c.liveExtent()
	if !ok {
		end = c.curRadius
	}
	c.trans = c.newTransition(c.curRadius, c.curOpacity, end, 0, true)
	return c
}

func (c *Controller) newTransition(startR, startO, endR, endO float64, hideOnDone bool) *transition {
	return &transition{
		radius:     gween.New(float32(startR), float32(endR), c.armDuration, smoothstepEase),
		opacity:    gween.New(float32(startO), float32(endO), c.armDuration, smoothstepEase),
		endRadius:  endR,
		endOpacity: endO,
		hideOnDone: hideOnDone,
	}
}

// extentStart resolves the start radius for a fresh animated show: the
// current viewport half-extent, the last known one, or (failing both) the
// current radius so the transition still begins from a defined value.
func (c *Controller) extentStart() float64 {
	if ext, ok := c.liveExtent(); ok {
		return ext
	}
	if c.haveExtent {
		return c.lastExtent
	}
	return c.curRadius
}

// liveExtent computes the viewport half-extent in world units from the
// currently bound collaborators, if they can produce one this instant.
func (c *Controller) liveExtent() (float64, bool) {
	if c.camera == nil || c.viewport == nil || c.target == nil {
		if c.haveExtent {
			return c.lastExtent, true
		}
		return 0, false
	}
	w, h := c.viewport.Size()
	if w <= 0 || h <= 0 {
		if c.haveExtent {
			return c.lastExtent, true
		}
		return 0, false
	}
	ext, ok := worldExtent(c.camera, c.target.Position(), w, h)
	if !ok {
		if c.haveExtent {
			return c.lastExtent, true
		}
		return 0, false
	}
	return ext, true
}

// advance steps the in-flight transition by dt seconds. On completion the
// live values snap exactly to the transition's end pair and any completion
// action (hiding the overlay) runs.
func (c *Controller) advance(dt float32) {
	tr := c.trans
	if tr == nil {
		return
	}
	if !tr.doneR {
		v, done := tr.radius.Update(dt)
		c.curRadius = float64(v)
		tr.doneR = done
	}
	if !tr.doneO {
		v, done := tr.opacity.Update(dt)
		c.curOpacity = float64(v)
		tr.doneO = done
	}
	if tr.doneR && tr.doneO {
		c.curRadius = tr.endRadius
		c.curOpacity = tr.endOpacity
		if tr.hideOnDone {
			c.visible = false
			c.arm = notArmed
		}
		c.trans = nil
	}
}

// Update runs one frame tick: it advances any in-flight transition,
// projects the target through the camera, and submits the shading
// parameters to the backend. A missing target, backend, camera, or
// viewport, a hidden overlay, or a degenerate viewport all make this a
// silent no-op; the update resumes on its own once the preconditions hold.
func (c *Controller) Update(dt float32) {
	if !c.visible || c.target == nil || c.backend == nil || c.camera == nil || c.viewport == nil {
		return
	}
	w, h := c.viewport.Size()
	if w <= 0 || h <= 0 {
		return
	}

	c.advance(dt)

	anchor := c.target.Position()
	if ext, ok := worldExtent(c.camera, anchor, w, h); ok {
		c.lastExtent = ext
		c.haveExtent = true
	}

	center, radiusUV, aspect := Project(anchor, c.curRadius, c.camera, w, h)
	tint := c.tint
	tint.A = c.curOpacity
	c.backend.Submit(ShadingParams{
		Center:  center,
		Radius:  radiusUV,
		Aspect:  aspect,
		Fade:    c.fade,
		Tint:    tint,
		Texture: c.texture,
	})
}
