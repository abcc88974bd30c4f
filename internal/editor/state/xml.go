package state

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// ErrEmptyDocument is returned when parsing input with no root element.
var ErrEmptyDocument = errors.New("state: document has no root element")

// MarshalXML implements xml.Marshaler.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.children {
		if err := c.MarshalXML(enc, start); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (e *Element) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	e.name = start.Name.Local
	e.attrs = nil
	e.children = nil
	for _, a := range start.Attr {
		e.attrs = append(e.attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(dec, t); err != nil {
				return err
			}
			e.children = append(e.children, child)
		case xml.EndElement:
			return nil
		}
		// Character data, comments, and directives between state elements
		// carry no meaning and are dropped.
	}
}

// WriteTo writes the element tree as indented XML.
func (e *Element) WriteTo(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}

// Encode returns the element tree as indented XML bytes.
func (e *Element) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse reads an element tree from XML input.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrEmptyDocument
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Element{}
			if err := root.UnmarshalXML(dec, start); err != nil {
				return nil, err
			}
			return root, nil
		}
	}
}

// ParseBytes reads an element tree from XML bytes.
func ParseBytes(data []byte) (*Element, error) {
	return Parse(bytes.NewReader(data))
}
