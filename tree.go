package aml

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a name/value attribute pair of an Element.
type Attr struct {
	Name, Value string
}

// Element is the generic document tree the model is built from. Any parser
// that can produce named nodes with attributes can feed the engine.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) intAttr(name string) int {
	v, ok := e.Attr(name)
	if !ok {
		return 0
	}
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	// Accept "12.0" style values; the fraction is dropped.
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

func (e *Element) floatAttr(name string) float64 {
	v, ok := e.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// BuildDocument walks root and builds the animation model. Every element
// named Animation opens an animation; its direct Scene children become the
// scenes, in document order. It fails with ErrDocumentParse when root is nil
// or holds no animation.
func BuildDocument(root *Element) (*Document, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrDocumentParse)
	}
	var anims []*Animation
	collectAnimations(root, &anims)
	if len(anims) == 0 {
		return nil, fmt.Errorf("%w: no Animation element under %q", ErrDocumentParse, root.Name)
	}
	return newDocument(anims), nil
}

func collectAnimations(e *Element, out *[]*Animation) {
	if e.Name == "Animation" {
		*out = append(*out, buildAnimation(e))
		return
	}
	for _, c := range e.Children {
		collectAnimations(c, out)
	}
}

func buildAnimation(e *Element) *Animation {
	title, _ := e.Attr("title")
	a := &Animation{Title: title}
	for _, c := range e.Children {
		if c.Name == "Scene" {
			a.Scenes = append(a.Scenes, buildScene(c))
		}
	}
	return a
}

func buildScene(e *Element) Scene {
	s := DefaultScene()
	s.Title, _ = e.Attr("title")
	for _, c := range e.Children {
		switch c.Name {
		case "Time":
			s.Start = c.floatAttr("start")
			s.End = c.floatAttr("end")
		case "CoordX":
			s.X = buildAxis(c)
		case "CoordY":
			s.Y = buildAxis(c)
		case "CoordW":
			s.W = buildAxis(c)
		case "CoordH":
			s.H = buildAxis(c)
		case "AngleX":
			s.AngleX = buildRotation(c)
		case "AngleY":
			s.AngleY = buildRotation(c)
		case "AngleZ":
			s.AngleZ = buildRotation(c)
		case "Center":
			s.Center = buildCenter(c)
		case "Red":
			s.Red = buildColor(c)
		case "Green":
			s.Green = buildColor(c)
		case "Blue":
			s.Blue = buildColor(c)
		case "Alpha":
			s.Alpha = buildColor(c)
		}
	}
	return s
}

func buildAxis(e *Element) AxisSpec {
	v, _ := e.Attr("standard")
	a := AxisSpec{
		Standard: parseStandard(v),
		From:     e.intAttr("from"),
		To:       e.intAttr("to"),
		Curve:    curveAttr(e),
	}
	if v, ok := e.Attr("standard_from"); ok {
		a.StandardFrom = parseStandard(v)
	}
	if v, ok := e.Attr("standard_to"); ok {
		a.StandardTo = parseStandard(v)
	}
	return a
}

func buildRotation(e *Element) RotationSpec {
	return RotationSpec{
		From:  e.floatAttr("from"),
		To:    e.floatAttr("to"),
		Curve: curveAttr(e),
	}
}

func buildCenter(e *Element) Center {
	v, _ := e.Attr("attribute")
	return Center{
		X:         e.floatAttr("x"),
		Y:         e.floatAttr("y"),
		Z:         e.floatAttr("z"),
		Attribute: parseCenterAttribute(v),
	}
}

func buildColor(e *Element) ColorSpec {
	return ColorSpec{
		From:  e.intAttr("from"),
		To:    e.intAttr("to"),
		Curve: curveAttr(e),
	}
}

func curveAttr(e *Element) Curve {
	v, _ := e.Attr("type")
	return parseCurve(v)
}
