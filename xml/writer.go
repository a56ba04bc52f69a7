package xml

import (
	"bytes"
	"io"

	"github.com/xmlcoder/xmlcoder-go"
)

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// header is the XML declaration written by Marshal when Options.Header is
// set.
const header = `<?xml version="1.0" encoding="UTF-8"?>`

// writer is the subset of bytes.Buffer the serializer uses.
type writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	WriteRune(r rune) (n int, err error)
}

// Marshal encodes v into a root element with the given name and serializes
// the tree.
func (e *Encoder) Marshal(name string, v xmlcoder.Encodable) ([]byte, error) {
	root, err := e.Encode(name, v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if e.options.Header {
		buf.WriteString(header)
	}
	writeElement(&buf, root)

	return buf.Bytes(), nil
}

// WriteTo serializes the element and its descendants to w. Empty elements
// are written with an explicit end tag.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	writeElement(&buf, e)
	return buf.WriteTo(w)
}

// String returns the serialized element.
func (e *Element) String() string {
	var buf bytes.Buffer
	writeElement(&buf, e)
	return buf.String()
}

func writeElement(w writer, el *Element) {
	writeStartElement(w, el)
	for _, c := range el.Children {
		switch n := c.(type) {
		case *Element:
			writeElement(w, n)
		case Text:
			escapeText(w, n.Value)
		}
	}
	writeEndElement(w, el.Name)
}

// writeStartElement writes the start tag of el with its attributes.
func writeStartElement(w writer, el *Element) {
	w.WriteRune(leftAngleBracket)
	writeName(w, el.Name)

	for i := range el.Attr {
		w.WriteRune(' ')
		buildAttribute(w, &el.Attr[i])
	}

	w.WriteRune(rightAngleBracket)
}

// buildAttribute writes an attribute. A namespace declaration has Space
// "xmlns" and the prefix as Local, a default namespace declaration has Local
// "xmlns".
// https://www.w3.org/TR/REC-xml-names/#NT-DefaultAttName
func buildAttribute(w writer, attr *Attr) {
	writeName(w, attr.Name)
	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeAttr(w, attr.Value)
	w.WriteRune(quote)
}

// writeEndElement writes the end tag for name.
func writeEndElement(w writer, name Name) {
	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)
	writeName(w, name)
	w.WriteRune(rightAngleBracket)
}

func writeName(w writer, name Name) {
	if len(name.Space) != 0 {
		w.WriteString(name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(name.Local)
}
