package xml

// A Name represents an XML name (Local) qualified by a namespace prefix
// (Space). Space holds the short prefix used in the document, not the
// namespace URI.
type Name struct {
	Space, Local string
}

// String returns the name as it appears in the document, "prefix:local" or
// "local".
func (n Name) String() string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// Node is an element or a text node of an encoded tree.
type Node interface {
	node()
}

// An Element is a named node with ordered attributes and ordered children.
// Attribute names are not checked for uniqueness.
type Element struct {
	Name     Name
	Attr     []Attr
	Children []Node
}

// Text is character data. It may be a sibling of elements.
type Text struct {
	Value string
}

func (*Element) node() {}
func (Text) node()     {}

// NewElement returns an element with the given attributes and children. The
// slices are copied so the element does not alias container storage.
func NewElement(name Name, attrs []Attr, children []Node) *Element {
	e := &Element{Name: name}
	if len(attrs) != 0 {
		e.Attr = make([]Attr, len(attrs))
		copy(e.Attr, attrs)
	}
	if len(children) != 0 {
		e.Children = make([]Node, len(children))
		copy(e.Children, children)
	}
	return e
}

// NewText returns a text node.
func NewText(v string) Text {
	return Text{Value: v}
}

// Text returns the concatenated character data of the element's direct text
// children.
func (e *Element) Text() string {
	var s string
	for _, c := range e.Children {
		if t, ok := c.(Text); ok {
			s += t.Value
		}
	}
	return s
}

// Attribute returns the value of the first attribute with the given name.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.String() == name {
			return a.Value, true
		}
	}
	return "", false
}
