package aml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// documentFile is the YAML layout of a document:
//
//	animations:
//	  - title: fade
//	    scenes:
//	      - title: in
//	        start: 0
//	        end: 1
//	        alpha: {from: 0, to: 255, type: LINEAR}
type documentFile struct {
	Animations []*Animation `yaml:"animations"`
}

// UnmarshalYAML decodes a scene on top of DefaultScene, so keys left out of
// the YAML behave like absent AML elements.
func (s *Scene) UnmarshalYAML(value *yaml.Node) error {
	type plain Scene
	p := plain(DefaultScene())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Scene(p)
	return nil
}

// ReadYAML decodes a document written in the YAML layout.
func ReadYAML(r io.Reader) (*Document, error) {
	var f documentFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	if len(f.Animations) == 0 {
		return nil, fmt.Errorf("%w: no animations", ErrDocumentParse)
	}
	for i, a := range f.Animations {
		if a == nil {
			return nil, fmt.Errorf("%w: animation %d is empty", ErrDocumentParse, i)
		}
	}
	return newDocument(f.Animations), nil
}

// WriteYAML encodes d in the layout ReadYAML accepts.
func WriteYAML(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documentFile{Animations: d.Animations()}); err != nil {
		return err
	}
	return enc.Close()
}
