package aml

import (
	"math"
	"testing"
)

// Interior points are compared against closed forms.
const curveEpsilon = 1e-4

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var allCurves = []Curve{CurveLinear, CurveAccelerate, CurveDecelerate, CurveReturn}

func TestEvaluateBoundaries(t *testing.T) {
	deltas := []float64{0, 1, 100, 255, -50, -0.25, 1e4, 0.1, -33.3, 12.345, 1.0 / 3}
	for _, c := range allCurves {
		for _, d := range deltas {
			if got := Evaluate(c, 0, d); got != 0 {
				t.Errorf("%v at 0 with delta %v = %v, want 0", c, d, got)
			}
			want := d
			if c == CurveReturn {
				want = 0
			}
			if got := Evaluate(c, 1, d); got != want {
				t.Errorf("%v at 1 with delta %v = %v, want %v", c, d, got, want)
			}
		}
	}
}

func TestEvaluateClampsOutsideUnitRange(t *testing.T) {
	for _, c := range allCurves {
		if got := Evaluate(c, -0.5, 33.3); got != 0 {
			t.Errorf("%v before 0 = %v, want 0", c, got)
		}
		want := 33.3
		if c == CurveReturn {
			want = 0
		}
		if got := Evaluate(c, 1.5, 33.3); got != want {
			t.Errorf("%v past 1 = %v, want %v", c, got, want)
		}
	}
}

func TestEvaluateReturnPeaksAtMidpoint(t *testing.T) {
	for _, d := range []float64{100, -40, 255} {
		assertNearTol(t, "return at 0.5", Evaluate(CurveReturn, 0.5, d), d, curveEpsilon)
	}
	// Symmetric about the midpoint.
	a := Evaluate(CurveReturn, 0.25, 100)
	b := Evaluate(CurveReturn, 0.75, 100)
	assertNearTol(t, "return symmetry", a, b, curveEpsilon)
	assertNearTol(t, "return at 0.25", a, 100*math.Sin(math.Pi/4), curveEpsilon)
}

func TestEvaluateMidpoints(t *testing.T) {
	tests := []struct {
		curve Curve
		want  float64
	}{
		{CurveLinear, 50},
		{CurveAccelerate, 25},
		{CurveDecelerate, 100 * math.Sin(math.Pi/4)},
		{CurveReturn, 100},
	}
	for _, tt := range tests {
		assertNearTol(t, tt.curve.String(), Evaluate(tt.curve, 0.5, 100), tt.want, curveEpsilon)
	}
}

func TestEvaluateZeroDelta(t *testing.T) {
	for _, c := range allCurves {
		if got := Evaluate(c, 0.3, 0); got != 0 {
			t.Errorf("%v with zero delta = %v", c, got)
		}
	}
}

func TestAccelerateIsSlowerThanDecelerate(t *testing.T) {
	for _, p := range []float64{0.1, 0.3, 0.6, 0.9} {
		acc := Evaluate(CurveAccelerate, p, 100)
		lin := Evaluate(CurveLinear, p, 100)
		dec := Evaluate(CurveDecelerate, p, 100)
		if !(acc < lin && lin < dec) {
			t.Errorf("progress %v: accelerate %v, linear %v, decelerate %v", p, acc, lin, dec)
		}
	}
}

func TestCurveStrings(t *testing.T) {
	tests := []struct {
		in   string
		want Curve
	}{
		{"LINEAR", CurveLinear},
		{"accelerate", CurveAccelerate},
		{" Decelerate ", CurveDecelerate},
		{"RETURN", CurveReturn},
		{"BOUNCE", CurveLinear},
		{"", CurveLinear},
	}
	for _, tt := range tests {
		if got := parseCurve(tt.in); got != tt.want {
			t.Errorf("parseCurve(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := Curve(9).String(); got != "Curve(9)" {
		t.Errorf("unknown curve String = %q", got)
	}
}
