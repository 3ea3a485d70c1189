package limelight

import "testing"

func TestNewOverlayCompilesShader(t *testing.T) {
	o, err := NewOverlay()
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if o.shader == nil {
		t.Fatal("overlay has no shader")
	}

	// The compiled shader is shared across instances.
	o2, err := NewOverlay()
	if err != nil {
		t.Fatalf("NewOverlay (second): %v", err)
	}
	if o2.shader != o.shader {
		t.Error("second overlay recompiled the shader")
	}
}

func TestOverlaySubmitDiscard(t *testing.T) {
	o, err := NewOverlay()
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if o.submitted {
		t.Error("fresh overlay claims submitted params")
	}
	o.Submit(ShadingParams{Radius: 0.1, Aspect: 1})
	if !o.submitted || o.params.Radius != 0.1 {
		t.Error("Submit did not store the snapshot")
	}
	o.Discard()
	if o.submitted {
		t.Error("Discard did not drop the snapshot")
	}
}
