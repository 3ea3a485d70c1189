// Package limelight renders a full-screen overlay with a soft-edged
// circular cutout ("spotlight") centered on a world-space target, for
// [Ebitengine] games and tools.
//
// The overlay dims everything except a circular hole around the target.
// Radius and opacity animate between shown and hidden states with a
// smoothstep ease, and retriggering a transition mid-flight always
// continues from the current values, so there is never a visual jump.
//
// # Quick start
//
// Create an [Overlay] backend, a [Controller], and drive them from your
// game loop:
//
//	overlay, err := limelight.NewOverlay()
//	if err != nil {
//		log.Fatal(err)
//	}
//	cam := limelight.NewCamera2D(limelight.Rect{Width: 640, Height: 480})
//	ctrl := limelight.NewController(overlay, cam, cam)
//
//	ctrl.SetTarget(limelight.FixedTarget{X: 100, Y: 80}).
//		SetRadius(2).
//		WithAnimation(0.6).
//		Show()
//
//	// each frame:
//	ctrl.Update(dt)       // in Update
//	overlay.Draw(screen)  // in Draw, after the scene
//
// # Collaborators
//
// The controller only talks to three small interfaces: [Camera] projects
// world points to viewport pixels, [Viewport] reports the canvas size,
// and [Backend] receives the per-frame [ShadingParams]. [Camera2D] and
// [Overlay] are the built-in implementations; supply your own to embed
// the spotlight in a different pipeline.
//
// # Tours
//
// [Tour] sequences several spotlight steps (onboarding walkthroughs,
// tutorial highlights) from a YAML script; see [LoadTour].
//
// [Ebitengine]: https://ebitengine.org
package limelight
