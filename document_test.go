package aml

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AML>
  <!-- two animations -->
  <Animation title="slide">
    <Scene title="in">
      <Time start="0.5" end="1.5"/>
      <CoordX standard="OBJECT" from="-100" to="0" type="DECELERATE"/>
      <CoordY standard="SCREEN" from="10" to="20"/>
      <CoordW standard="CURRENT" standard_to="OBJECT" from="0" to="40" type="accelerate"/>
      <AngleZ from="0" to="90" type="RETURN"/>
      <Center x="4" y="8" z="2" attribute="ABSOLUTE"/>
      <Alpha from="0" to="255"/>
    </Scene>
    <Scene title="out">
      <Time start="0" end="1"/>
    </Scene>
  </Animation>
  <Group>
    <Animation title="odd">
      <Scene>
        <CoordX standard="SIDEWAYS" from="12.7" to="abc" type="WOBBLE"/>
        <Center attribute="PERCENT"/>
      </Scene>
    </Animation>
  </Group>
</AML>`

func loadSample(t *testing.T) *Document {
	t.Helper()
	root, err := ParseXML(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	doc, err := BuildDocument(root)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	return doc
}

func TestBuildDocument(t *testing.T) {
	doc := loadSample(t)
	if got := doc.Titles(); !reflect.DeepEqual(got, []string{"slide", "odd"}) {
		t.Fatalf("titles = %v", got)
	}
	slide, ok := doc.Lookup("slide")
	if !ok || len(slide.Scenes) != 2 {
		t.Fatalf("slide: ok=%v scenes=%d", ok, len(slide.Scenes))
	}

	in := slide.Scenes[0]
	if in.Title != "in" || in.Start != 0.5 || in.End != 1.5 {
		t.Errorf("scene header: %q %v-%v", in.Title, in.Start, in.End)
	}
	if in.X != (AxisSpec{Standard: StandardObject, From: -100, To: 0, Curve: CurveDecelerate}) {
		t.Errorf("X = %+v", in.X)
	}
	if in.Y != (AxisSpec{Standard: StandardScreen, From: 10, To: 20, Curve: CurveLinear}) {
		t.Errorf("Y = %+v", in.Y)
	}
	if in.W.fromStandard() != StandardCurrent || in.W.toStandard() != StandardObject || in.W.Curve != CurveAccelerate {
		t.Errorf("W = %+v", in.W)
	}
	if in.AngleZ != (RotationSpec{From: 0, To: 90, Curve: CurveReturn}) {
		t.Errorf("AngleZ = %+v", in.AngleZ)
	}
	if in.Center != (Center{X: 4, Y: 8, Z: 2, Attribute: CenterAbsolute}) {
		t.Errorf("Center = %+v", in.Center)
	}
	if in.Alpha != (ColorSpec{From: 0, To: 255}) {
		t.Errorf("Alpha = %+v", in.Alpha)
	}
	// Absent nodes keep their defaults.
	def := DefaultScene()
	if in.H != def.H || in.Red != def.Red || in.AngleX != def.AngleX {
		t.Errorf("defaults not applied: H=%+v Red=%+v", in.H, in.Red)
	}
	out := slide.Scenes[1]
	out.Title, out.Start, out.End = "", 0, 0
	if out != def {
		t.Errorf("empty scene = %+v, want defaults", out)
	}
}

func TestBuildDocumentFallbacks(t *testing.T) {
	doc := loadSample(t)
	odd, ok := doc.Lookup("odd")
	if !ok {
		t.Fatal("nested animation not found")
	}
	s := odd.Scenes[0]
	if s.X.Standard != StandardScreen || s.X.Curve != CurveLinear {
		t.Errorf("unknown values should fall back: %+v", s.X)
	}
	if s.X.From != 12 || s.X.To != 0 {
		t.Errorf("numbers: from=%d to=%d", s.X.From, s.X.To)
	}
	if s.Center.Attribute != CenterRelative {
		t.Errorf("center attribute = %v", s.Center.Attribute)
	}
	if s.Start != 0 || s.End != 0 {
		t.Errorf("missing Time = %v-%v", s.Start, s.End)
	}
}

func TestBuildDocumentDuplicates(t *testing.T) {
	root := &Element{Name: "AML", Children: []*Element{
		{Name: "Animation", Attrs: []Attr{{"title", "a"}}, Children: []*Element{{Name: "Scene", Attrs: []Attr{{"title", "first"}}}}},
		{Name: "Animation", Attrs: []Attr{{"title", "a"}}, Children: []*Element{{Name: "Scene", Attrs: []Attr{{"title", "second"}}}}},
	}}
	doc, err := BuildDocument(root)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	a, _ := doc.Lookup("a")
	if a.Scenes[0].Title != "first" {
		t.Errorf("duplicate title resolved to %q, want first", a.Scenes[0].Title)
	}
	if !reflect.DeepEqual(doc.duplicates, []string{"a"}) {
		t.Errorf("duplicates = %v", doc.duplicates)
	}
	if doc.Len() != 2 {
		t.Errorf("Len = %d, want 2", doc.Len())
	}
}

func TestBuildDocumentErrors(t *testing.T) {
	if _, err := BuildDocument(nil); !errors.Is(err, ErrDocumentParse) {
		t.Errorf("nil root: %v", err)
	}
	_, err := BuildDocument(&Element{Name: "AML", Children: []*Element{{Name: "Scene"}}})
	if !errors.Is(err, ErrDocumentParse) {
		t.Errorf("no animations: %v", err)
	}
}

func TestNilDocument(t *testing.T) {
	var d *Document
	if _, ok := d.Lookup("x"); ok || d.Len() != 0 || d.Titles() != nil || d.Animations() != nil {
		t.Error("nil document should be empty")
	}
}

func TestParseXMLErrors(t *testing.T) {
	for _, in := range []string{"", "just text", "<AML><Animation>"} {
		if _, err := ParseXML(strings.NewReader(in)); !errors.Is(err, ErrDocumentParse) {
			t.Errorf("ParseXML(%q) error = %v, want ErrDocumentParse", in, err)
		}
	}
}

func TestParseXMLCharset(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?><AML><Animation title="caf`)
	buf.WriteByte(0xE9) // é in Latin-1
	buf.WriteString(`"><Scene/></Animation></AML>`)

	root, err := ParseXML(&buf)
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	doc, err := BuildDocument(root)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if _, ok := doc.Lookup("café"); !ok {
		t.Errorf("titles = %q", doc.Titles())
	}
}

func TestParseXMLEntities(t *testing.T) {
	root, err := ParseXML(strings.NewReader(`<AML><Animation title="a&nbsp;b &amp; c"/></AML>`))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	title, _ := root.Children[0].Attr("title")
	if title != "a\u00a0b & c" {
		t.Errorf("title = %q", title)
	}
}

func TestYAMLDefaults(t *testing.T) {
	const src = `
animations:
  - title: fade
    scenes:
      - title: in
        end: 1
        alpha: {from: 0, to: 255, type: linear}
        x: {standard: object, from: 5, to: 10, type: ACCELERATE}
`
	doc, err := ReadYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	fade, ok := doc.Lookup("fade")
	if !ok {
		t.Fatal("fade missing")
	}
	s := fade.Scenes[0]
	def := DefaultScene()
	if s.Alpha != (ColorSpec{From: 0, To: 255}) {
		t.Errorf("Alpha = %+v", s.Alpha)
	}
	if s.X != (AxisSpec{Standard: StandardObject, From: 5, To: 10, Curve: CurveAccelerate}) {
		t.Errorf("X = %+v", s.X)
	}
	if s.Y != def.Y || s.Red != def.Red || s.Center != def.Center {
		t.Errorf("defaults not applied: Y=%+v Red=%+v Center=%+v", s.Y, s.Red, s.Center)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := loadSample(t)
	var buf bytes.Buffer
	if err := WriteYAML(&buf, doc); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "DECELERATE") {
		t.Errorf("enums should be written by name:\n%s", buf.String())
	}
	back, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if !reflect.DeepEqual(back.Animations(), doc.Animations()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back.Animations(), doc.Animations())
	}
}

func TestYAMLErrors(t *testing.T) {
	for _, src := range []string{"animations: []", "animations: [", "title: x"} {
		if _, err := ReadYAML(strings.NewReader(src)); !errors.Is(err, ErrDocumentParse) {
			t.Errorf("ReadYAML(%q) error = %v", src, err)
		}
	}
}
