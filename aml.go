package aml

import (
	"fmt"
	"strings"
)

// Vec2 is a 2D vector used for projected corner positions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for rotation pivots and angle triples.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Standard is the reference frame a scene's axis delta is anchored to.
type Standard uint8

const (
	StandardUnset   Standard = iota // override not given; use the axis standard
	StandardScreen                  // delta is an absolute screen value
	StandardObject                  // delta is relative to the bind-time geometry
	StandardCurrent                 // delta is relative to the previous scene's end state
)

var standardNames = [...]string{"", "SCREEN", "OBJECT", "CURRENT"}

func (s Standard) String() string {
	if int(s) < len(standardNames) {
		return standardNames[s]
	}
	return fmt.Sprintf("Standard(%d)", s)
}

// parseStandard maps an AML attribute value to a Standard. Unknown values
// fall back to StandardScreen.
func parseStandard(v string) Standard {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "OBJECT":
		return StandardObject
	case "CURRENT":
		return StandardCurrent
	default:
		return StandardScreen
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Standard) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value decodes
// to StandardUnset.
func (s *Standard) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*s = StandardUnset
		return nil
	}
	*s = parseStandard(string(b))
	return nil
}

// Curve selects the easing applied to a channel while its scene runs.
type Curve uint8

const (
	CurveLinear     Curve = iota // progress * delta
	CurveAccelerate              // progress^2 * delta
	CurveDecelerate              // sin(progress * pi/2) * delta
	CurveReturn                  // sin(progress * pi) * delta; ends back at zero
)

var curveNames = [...]string{"LINEAR", "ACCELERATE", "DECELERATE", "RETURN"}

func (c Curve) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", c)
}

func parseCurve(v string) Curve {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "ACCELERATE":
		return CurveAccelerate
	case "DECELERATE":
		return CurveDecelerate
	case "RETURN":
		return CurveReturn
	default:
		return CurveLinear
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	*c = parseCurve(string(b))
	return nil
}

// CenterAttribute selects how a rotation pivot is interpreted.
type CenterAttribute uint8

const (
	CenterRelative CenterAttribute = iota // fractions of the current width/height
	CenterAbsolute                        // literal offsets
)

func (a CenterAttribute) String() string {
	if a == CenterAbsolute {
		return "ABSOLUTE"
	}
	return "RELATIVE"
}

func parseCenterAttribute(v string) CenterAttribute {
	if strings.EqualFold(strings.TrimSpace(v), "ABSOLUTE") {
		return CenterAbsolute
	}
	return CenterRelative
}

// MarshalText implements encoding.TextMarshaler.
func (a CenterAttribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *CenterAttribute) UnmarshalText(b []byte) error {
	*a = parseCenterAttribute(string(b))
	return nil
}
