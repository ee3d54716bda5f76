package aml

import (
	"math"

	"github.com/tanema/gween/ease"
)

// returnEase rises to the full change at the midpoint and falls back to the
// start value at the end.
func returnEase(t, b, c, d float32) float32 {
	return c*float32(math.Sin(float64(t/d)*math.Pi)) + b
}

// Easing returns the gween easing function for the curve.
func (c Curve) Easing() ease.TweenFunc {
	switch c {
	case CurveAccelerate:
		return ease.InQuad
	case CurveDecelerate:
		return ease.OutSine
	case CurveReturn:
		return returnEase
	default:
		return ease.Linear
	}
}

// Evaluate returns the portion of delta covered at progress, which is
// expected in [0, 1]. Every curve yields exactly 0 at progress 0 and exactly
// delta at progress 1, except CurveReturn, which peaks at delta at 0.5 and
// yields 0 at 1. The easing runs on the normalized fraction; scaling by
// delta happens in float64.
func Evaluate(c Curve, progress, delta float64) float64 {
	switch {
	case delta == 0, progress <= 0:
		return 0
	case progress >= 1:
		if c == CurveReturn {
			return 0
		}
		return delta
	}
	frac := float64(c.Easing()(float32(progress), 0, 1, 1))
	return frac * delta
}
