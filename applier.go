package aml

import "image/color"

// Target is a renderer object a binding animates. Bounds is read once, at
// bind time, and anchors the OBJECT reference frame and the zoom factors.
type Target interface {
	Bounds() Rect
}

// disposable is implemented by targets that can go away while bound. A
// disposed target stops its binding without further sink calls.
type disposable interface {
	IsDisposed() bool
}

// Applier is the renderer sink. The engine calls Apply and ApplyColor once
// per tick for every playing binding, and Release one tick after the last
// frame of an animation so that frame is still drawn through the transform.
type Applier interface {
	Apply(target Target, t Transform)
	ApplyColor(target Target, c color.NRGBA)
	Release(target Target)
}

// ApplierFuncs adapts plain functions to Applier. Nil fields are skipped.
type ApplierFuncs struct {
	ApplyFunc      func(target Target, t Transform)
	ApplyColorFunc func(target Target, c color.NRGBA)
	ReleaseFunc    func(target Target)
}

// Apply implements Applier.
func (f ApplierFuncs) Apply(target Target, t Transform) {
	if f.ApplyFunc != nil {
		f.ApplyFunc(target, t)
	}
}

// ApplyColor implements Applier.
func (f ApplierFuncs) ApplyColor(target Target, c color.NRGBA) {
	if f.ApplyColorFunc != nil {
		f.ApplyColorFunc(target, c)
	}
}

// Release implements Applier.
func (f ApplierFuncs) Release(target Target) {
	if f.ReleaseFunc != nil {
		f.ReleaseFunc(target)
	}
}
