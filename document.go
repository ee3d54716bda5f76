package aml

// AxisSpec describes one geometry channel (X, Y, width or height) of a scene.
// From and To are deltas interpreted through the reference frame.
type AxisSpec struct {
	Standard     Standard `yaml:"standard"`
	StandardFrom Standard `yaml:"standard_from,omitempty"`
	StandardTo   Standard `yaml:"standard_to,omitempty"`
	From         int      `yaml:"from"`
	To           int      `yaml:"to"`
	Curve        Curve    `yaml:"type"`
}

// fromStandard returns the frame used to resolve the start value.
func (a AxisSpec) fromStandard() Standard {
	if a.StandardFrom != StandardUnset {
		return a.StandardFrom
	}
	return a.Standard
}

// toStandard returns the frame used to resolve the end value.
func (a AxisSpec) toStandard() Standard {
	if a.StandardTo != StandardUnset {
		return a.StandardTo
	}
	return a.Standard
}

// RotationSpec describes one rotation channel in degrees.
type RotationSpec struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Curve Curve   `yaml:"type"`
}

// Center is the rotation pivot of a scene.
type Center struct {
	X         float64         `yaml:"x"`
	Y         float64         `yaml:"y"`
	Z         float64         `yaml:"z"`
	Attribute CenterAttribute `yaml:"attribute"`
}

// ColorSpec describes one color channel, 0-255.
type ColorSpec struct {
	From  int   `yaml:"from"`
	To    int   `yaml:"to"`
	Curve Curve `yaml:"type"`
}

// Scene is one time-bounded interpolation segment of an Animation. Start and
// End are seconds measured from the moment the scene becomes active.
type Scene struct {
	Title string  `yaml:"title"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`

	X AxisSpec `yaml:"x"`
	Y AxisSpec `yaml:"y"`
	W AxisSpec `yaml:"w"`
	H AxisSpec `yaml:"h"`

	AngleX RotationSpec `yaml:"angle_x"`
	AngleY RotationSpec `yaml:"angle_y"`
	AngleZ RotationSpec `yaml:"angle_z"`

	Center Center `yaml:"center"`

	Red   ColorSpec `yaml:"red"`
	Green ColorSpec `yaml:"green"`
	Blue  ColorSpec `yaml:"blue"`
	Alpha ColorSpec `yaml:"alpha"`
}

// DefaultScene returns the scene used for absent AML elements: geometry held
// at its current value, no rotation about the middle of the target, and
// opaque white.
func DefaultScene() Scene {
	hold := AxisSpec{Standard: StandardCurrent}
	opaque := ColorSpec{From: 255, To: 255}
	return Scene{
		X: hold, Y: hold, W: hold, H: hold,
		Center: Center{X: 0.5, Y: 0.5},
		Red:    opaque, Green: opaque, Blue: opaque, Alpha: opaque,
	}
}

// Duration returns End - Start in seconds.
func (s *Scene) Duration() float64 {
	return s.End - s.Start
}

// Degenerate reports whether the scene ends before it starts.
func (s *Scene) Degenerate() bool {
	return s.End < s.Start
}

// Animation is a named, ordered list of scenes. It is immutable once loaded
// and shared by every binding that plays it.
type Animation struct {
	Title  string  `yaml:"title"`
	Scenes []Scene `yaml:"scenes"`
}

// Document is the parsed set of animations. It is read-only after load.
type Document struct {
	animations []*Animation
	index      map[string]*Animation
	duplicates []string
}

// newDocument indexes animations by title. The first animation with a
// given title wins; later duplicates are remembered for reporting.
func newDocument(anims []*Animation) *Document {
	d := &Document{
		animations: anims,
		index:      make(map[string]*Animation, len(anims)),
	}
	for _, a := range anims {
		if _, ok := d.index[a.Title]; ok {
			d.duplicates = append(d.duplicates, a.Title)
			continue
		}
		d.index[a.Title] = a
	}
	return d
}

// Lookup returns the animation with the given title.
func (d *Document) Lookup(title string) (*Animation, bool) {
	if d == nil {
		return nil, false
	}
	a, ok := d.index[title]
	return a, ok
}

// Animations returns the animations in document order. The returned slice
// MUST NOT be mutated.
func (d *Document) Animations() []*Animation {
	if d == nil {
		return nil
	}
	return d.animations
}

// Titles returns the animation titles in document order.
func (d *Document) Titles() []string {
	if d == nil {
		return nil
	}
	titles := make([]string, len(d.animations))
	for i, a := range d.animations {
		titles[i] = a.Title
	}
	return titles
}

// Len returns the number of animations.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.animations)
}
