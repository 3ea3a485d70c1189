package limelight

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader source ---
// Uses //kage:unit pixels as required by Ebitengine. The overlay texture and
// tint are premultiplied; multiplying them by the cutout factor scales both
// color and alpha, which is exactly source-over-compatible output.

const cutoutShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Radius float
var Aspect float
var Fade float
var ViewportSize vec2
var Tint vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	base := imageSrc0At(src)
	p := dst.xy / ViewportSize
	off := p - Center
	// Correct for non-square viewports so the hole is a circle, not an ellipse.
	off.x *= Aspect
	d := length(off)
	cut := 0.0
	if Fade <= 0 {
		// Zero-width fade band: hard edge. smoothstep with equal edges
		// would divide by zero.
		cut = step(Radius, d)
	} else {
		cut = smoothstep(Radius-Fade, Radius, d)
	}
	return base * Tint * cut
}
`

// cutoutShader is compiled once and shared by all Overlay instances.
var cutoutShader *ebiten.Shader

func ensureCutoutShader() (*ebiten.Shader, error) {
	if cutoutShader == nil {
		s, err := ebiten.NewShader([]byte(cutoutShaderSrc))
		if err != nil {
			return nil, fmt.Errorf("limelight: compile cutout shader: %w", err)
		}
		cutoutShader = s
	}
	return cutoutShader, nil
}
