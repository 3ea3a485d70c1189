package limelight

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TourStep is one stop in a tour: where the spotlight points, how it looks,
// and how long it stays.
type TourStep struct {
	// Name labels the step for the host application (caption lookup etc.).
	Name string `yaml:"name"`
	// Target is the world-space anchor the spotlight centers on.
	Target Vec3 `yaml:"target"`
	// Radius overrides the hole radius for this step. Zero keeps the
	// controller's current radius.
	Radius float64 `yaml:"radius"`
	// Opacity overrides the overlay opacity. Zero keeps the current value.
	Opacity float64 `yaml:"opacity"`
	// Duration is the show transition length in seconds. Zero snaps.
	Duration float64 `yaml:"duration"`
	// Hold is how long the step stays fully shown before auto-advancing.
	// Zero means the step waits for an explicit Next call.
	Hold float64 `yaml:"hold"`
}

// tourScript is the top-level YAML structure for a tour script.
type tourScript struct {
	Steps []TourStep `yaml:"steps"`
}

// Tour sequences spotlight steps over a Controller: each step retargets the
// spotlight and triggers an animated show, and the tour hides the overlay
// after the last step. Steps with a hold time advance automatically from
// Update; steps without one wait for Next (typically wired to a click).
type Tour struct {
	steps  []TourStep
	ctrl   *Controller
	cursor int
	wait   float64 // remaining auto-advance time for the current step
	active bool
}

// LoadTour parses a YAML tour script:
//
//	steps:
//	  - name: inventory
//	    target: {x: 120, y: 64}
//	    radius: 3
//	    duration: 0.5
//	    hold: 2
func LoadTour(data []byte) (*Tour, error) {
	var script tourScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse tour script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tour script: no steps")
	}
	return &Tour{steps: script.Steps}, nil
}

// NewTour creates a tour from already-built steps.
func NewTour(steps []TourStep) *Tour {
	return &Tour{steps: steps}
}

// Steps returns the tour's steps. The returned slice MUST NOT be mutated.
func (t *Tour) Steps() []TourStep {
	return t.steps
}

// Start begins the tour on the given controller, showing the first step.
func (t *Tour) Start(ctrl *Controller) {
	t.ctrl = ctrl
	t.cursor = 0
	t.active = len(t.steps) > 0
	if t.active {
		t.apply(t.steps[0])
	}
}

// Next advances to the following step, or ends the tour after the last one.
// No-op when the tour is not running.
func (t *Tour) Next() {
	if !t.active {
		return
	}
	t.cursor++
	if t.cursor >= len(t.steps) {
		t.finish()
		return
	}
	t.apply(t.steps[t.cursor])
}

// Stop ends the tour early, hiding the overlay with the current step's
// transition duration.
func (t *Tour) Stop() {
	if !t.active {
		return
	}
	t.finish()
}

// Update advances the current step's hold timer by dt seconds and
// auto-advances when it expires. Call once per frame, before the
// controller's Update.
func (t *Tour) Update(dt float64) {
	if !t.active || t.wait <= 0 {
		return
	}
	t.wait -= dt
	if t.wait <= 0 {
		t.Next()
	}
}

// Done reports whether the tour has finished (or was stopped).
func (t *Tour) Done() bool {
	return !t.active && t.ctrl != nil
}

// CurrentStep returns the in-progress step, or nil when the tour is idle.
func (t *Tour) CurrentStep() *TourStep {
	if !t.active {
		return nil
	}
	return &t.steps[t.cursor]
}

func (t *Tour) apply(step TourStep) {
	t.ctrl.SetTarget(FixedTarget(step.Target))
	if step.Radius > 0 {
		t.ctrl.SetRadius(step.Radius)
	}
	if step.Opacity > 0 {
		t.ctrl.SetOpacity(step.Opacity)
	}
	t.ctrl.WithAnimation(step.Duration).Show()
	if step.Hold > 0 {
		t.wait = step.Duration + step.Hold
	} else {
		t.wait = 0
	}
}

func (t *Tour) finish() {
	t.active = false
	t.wait = 0
	dur := 0.0
	if len(t.steps) > 0 {
		dur = t.steps[len(t.steps)-1].Duration
	}
	t.ctrl.WithAnimation(dur).Hide()
}
