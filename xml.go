package aml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ParseXML reads an AML document and returns its element tree. Character
// data and comments are dropped; only element names and attributes matter
// to the model. Documents in encodings other than UTF-8 are transcoded
// according to their XML declaration.
func ParseXML(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		t, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			e := &Element{Name: se.Name.Local}
			if len(se.Attr) > 0 {
				e.Attrs = make([]Attr, len(se.Attr))
				for i, a := range se.Attr {
					e.Attrs[i] = Attr{Name: a.Name.Local, Value: a.Value}
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrDocumentParse)
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrDocumentParse)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element %q", ErrDocumentParse, stack[len(stack)-1].Name)
	}
	return root, nil
}
