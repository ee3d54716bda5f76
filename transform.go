package aml

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// identityAffine is the identity affine matrix.
var identityAffine = f64.Aff3{1, 0, 0, 0, 1, 0}

// minDepth keeps the perspective divide away from zero for points that
// rotate past the focal plane.
const minDepth = 1e-3

// Transform is the composed placement of a target for one tick. It is a
// plain value: the sink may keep it without copying.
//
// Points are mapped from the target's native pixel space as:
//
//	Scale(ScaleX, ScaleY) -> Translate(-Pivot) -> RotateX -> RotateY -> RotateZ
//	  -> perspective divide (Quad only) -> Translate(Pivot) -> Translate(X, Y)
type Transform struct {
	// Top-left position and resolved size.
	X, Y          float64
	Width, Height float64

	// Zoom relative to the target's bind-time size.
	ScaleX, ScaleY float64

	// Angles in degrees.
	Angle Vec3

	// Pivot is the rotation center as an offset from the top-left corner, in
	// resolved (post-zoom) pixels. Z lifts the pivot off the target plane.
	Pivot Vec3

	// Perspective is the focal length used by Quad. Zero disables it.
	Perspective float64
}

// IdentityTransform returns a transform that places a w x h target at (x, y)
// without scaling or rotation.
func IdentityTransform(x, y, w, h float64) Transform {
	return Transform{X: x, Y: y, Width: w, Height: h, ScaleX: 1, ScaleY: 1}
}

// rotate applies the X, Y and Z rotations, in that order, to p.
func rotate(p Vec3, deg Vec3) Vec3 {
	if deg.X != 0 {
		s, c := math.Sincos(deg.X * math.Pi / 180)
		p.Y, p.Z = p.Y*c-p.Z*s, p.Y*s+p.Z*c
	}
	if deg.Y != 0 {
		s, c := math.Sincos(deg.Y * math.Pi / 180)
		p.X, p.Z = p.X*c+p.Z*s, -p.X*s+p.Z*c
	}
	if deg.Z != 0 {
		s, c := math.Sincos(deg.Z * math.Pi / 180)
		p.X, p.Y = p.X*c-p.Y*s, p.X*s+p.Y*c
	}
	return p
}

// project maps a point given in resolved space (already zoomed) to screen
// space. perspective enables the depth divide.
func (t Transform) project(x, y float64, perspective bool) Vec2 {
	r := rotate(Vec3{x - t.Pivot.X, y - t.Pivot.Y, -t.Pivot.Z}, t.Angle)
	if perspective && t.Perspective > 0 {
		depth := t.Perspective + r.Z + t.Pivot.Z
		if depth < minDepth {
			depth = minDepth
		}
		f := t.Perspective / depth
		r.X *= f
		r.Y *= f
	}
	return Vec2{t.X + t.Pivot.X + r.X, t.Y + t.Pivot.Y + r.Y}
}

// Affine returns the orthographic projection of the transform as an affine
// matrix over the target's native pixel space. Rotations about X and Y show
// up as foreshortening and shear; Perspective is ignored.
func (t Transform) Affine() f64.Aff3 {
	o := t.project(0, 0, false)
	ex := t.project(t.ScaleX, 0, false)
	ey := t.project(0, t.ScaleY, false)
	return f64.Aff3{
		ex.X - o.X, ey.X - o.X, o.X,
		ex.Y - o.Y, ey.Y - o.Y, o.Y,
	}
}

// GeoM returns Affine as an ebiten.GeoM, ready for DrawImageOptions.
func (t Transform) GeoM() ebiten.GeoM {
	return geoMFromAffine(t.Affine())
}

// Quad returns the projected corners of the resolved rectangle in the order
// top-left, top-right, bottom-right, bottom-left, with perspective applied.
func (t Transform) Quad() [4]Vec2 {
	return [4]Vec2{
		t.project(0, 0, true),
		t.project(t.Width, 0, true),
		t.project(t.Width, t.Height, true),
		t.project(0, t.Height, true),
	}
}

// ToLocal converts a screen-space point to the target's native pixel space
// using the inverse of Affine.
func (t Transform) ToLocal(x, y float64) (lx, ly float64) {
	return transformPoint(invertAffine(t.Affine()), x, y)
}

// geoMFromAffine copies an affine matrix into an ebiten.GeoM.
func geoMFromAffine(m f64.Aff3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// multiplyAffine multiplies two affine matrices: result = p * c.
//
//	Matrix layout (row major, bottom row implicit):
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	|  0  0  1 |
func multiplyAffine(p, c f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		p[0]*c[0] + p[1]*c[3],
		p[0]*c[1] + p[1]*c[4],
		p[0]*c[2] + p[1]*c[5] + p[2],
		p[3]*c[0] + p[4]*c[3],
		p[3]*c[1] + p[4]*c[4],
		p[3]*c[2] + p[4]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of an affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	invDet := 1.0 / det
	a := m[4] * invDet
	b := -m[1] * invDet
	d := -m[3] * invDet
	e := m[0] * invDet
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
