package limelight

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay is the built-in Ebitengine rendering backend. It keeps the last
// submitted ShadingParams and rasterizes them as a full-screen quad through
// the cutout shader. Construct once, Submit from Controller.Update, and call
// Draw at the end of the game's Draw pass.
type Overlay struct {
	shader *ebiten.Shader

	params    ShadingParams
	submitted bool

	uniforms   map[string]any
	centerF32  [2]float32 // persistent buffers to avoid per-frame slice escape
	sizeF32    [2]float32
	tintF32    [4]float32
	centerBuf  []float32 // persistent slice headers pointing into the buffers
	sizeBuf    []float32
	tintBuf    []float32
	shaderOp   ebiten.DrawRectShaderOptions
	imgOp      ebiten.DrawImageOptions

	// backing is a viewport-sized source image for the shader: white for a
	// solid tint, or the configured texture stretched to fit. DrawRectShader
	// requires the source to match the rect size, so it is rebuilt on
	// resize or texture change.
	backing     *ebiten.Image
	backW       int
	backH       int
	backTexture *ebiten.Image
}

// NewOverlay creates the overlay backend, compiling the cutout shader on
// first use. A compile failure is a misconfiguration detected here, once,
// rather than per frame; the caller should treat the error as fatal for the
// spotlight feature and leave the controller without a backend.
func NewOverlay() (*Overlay, error) {
	shader, err := ensureCutoutShader()
	if err != nil {
		return nil, err
	}
	o := &Overlay{
		shader:   shader,
		uniforms: make(map[string]any, 6),
	}
	o.centerBuf = o.centerF32[:]
	o.sizeBuf = o.sizeF32[:]
	o.tintBuf = o.tintF32[:]
	o.uniforms["Center"] = o.centerBuf
	o.uniforms["ViewportSize"] = o.sizeBuf
	o.uniforms["Tint"] = o.tintBuf
	return o, nil
}

// Submit stores the shading parameters for the next Draw. Called by the
// controller once per frame; the snapshot is consumed, never mutated.
func (o *Overlay) Submit(p ShadingParams) {
	o.params = p
	o.submitted = true
}

// Discard drops the last submitted parameters so Draw renders nothing until
// the controller submits again. The controller stops submitting while
// hidden; call this to blank the overlay in the same frame as an
// instantaneous hide.
func (o *Overlay) Discard() {
	o.submitted = false
}

// Draw renders the overlay onto screen using the last submitted parameters.
// No-op until the first Submit or after Discard.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.submitted {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	o.ensureBacking(w, h)

	p := &o.params
	o.centerF32[0] = float32(p.Center.X)
	o.centerF32[1] = float32(p.Center.Y)
	o.sizeF32[0] = float32(w)
	o.sizeF32[1] = float32(h)
	// Premultiply the tint for the shader (write in-place, no alloc).
	a := clamp01(p.Tint.A)
	o.tintF32[0] = float32(clamp01(p.Tint.R) * a)
	o.tintF32[1] = float32(clamp01(p.Tint.G) * a)
	o.tintF32[2] = float32(clamp01(p.Tint.B) * a)
	o.tintF32[3] = float32(a)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	o.uniforms["Radius"] = float32(p.Radius)
	o.uniforms["Aspect"] = float32(p.Aspect)
	o.uniforms["Fade"] = float32(p.Fade)

	o.shaderOp.Images[0] = o.backing
	o.shaderOp.Uniforms = o.uniforms
	screen.DrawRectShader(w, h, o.shader, &o.shaderOp)
}

// ensureBacking rebuilds the shader's source image when the viewport size or
// the overlay texture changes.
func (o *Overlay) ensureBacking(w, h int) {
	sizeChanged := o.backW != w || o.backH != h
	textureChanged := o.backTexture != o.params.Texture
	if o.backing != nil && !sizeChanged && !textureChanged {
		return
	}
	if o.backing == nil || sizeChanged {
		if o.backing != nil {
			o.backing.Deallocate()
		}
		o.backing = ebiten.NewImage(w, h)
		o.backW = w
		o.backH = h
	}
	o.backTexture = o.params.Texture

	if o.backTexture == nil {
		// The tint uniform carries the actual color; the backing just needs
		// full alpha so base * tint = tint.
		o.backing.Fill(Color{1, 1, 1, 1}.toRGBA())
		return
	}

	o.backing.Clear()
	op := &o.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	tb := o.backTexture.Bounds()
	op.GeoM.Scale(float64(w)/float64(tb.Dx()), float64(h)/float64(tb.Dy()))
	op.Filter = ebiten.FilterLinear
	o.backing.DrawImage(o.backTexture, op)
}

// Dispose releases the overlay's GPU resources. The shared shader stays
// compiled for other instances.
func (o *Overlay) Dispose() {
	if o.backing != nil {
		o.backing.Deallocate()
		o.backing = nil
	}
	o.submitted = false
}
