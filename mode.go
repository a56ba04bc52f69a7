package xmlcoder

// DefaultElementName is the element name wrapping sequence members when
// neither the member nor its encoding chose another mode.
const DefaultElementName = "element"

// ElementMode controls how a member of a sequence is placed in the sequence.
// The zero value means no preference.
type ElementMode struct {
	name   string
	inline bool
}

// ElementModeInline splices the member's own child nodes into the sequence
// without a wrapper element.
var ElementModeInline = ElementMode{inline: true}

// ElementModeKeyed wraps the member in an element with the given name.
func ElementModeKeyed(name string) ElementMode {
	return ElementMode{name: name}
}

// IsZero reports whether m expresses no preference.
func (m ElementMode) IsZero() bool {
	return !m.inline && len(m.name) == 0
}

// IsInline reports whether m splices members inline.
func (m ElementMode) IsInline() bool {
	return m.inline
}

// Name returns the wrapper element name of a keyed mode.
func (m ElementMode) Name() string {
	return m.name
}

func (m ElementMode) String() string {
	switch {
	case m.inline:
		return "inline"
	case len(m.name) != 0:
		return "keyed(" + m.name + ")"
	default:
		return "unset"
	}
}

// ElementModer is implemented by values that choose their own placement when
// written into a sequence.
type ElementModer interface {
	XMLElementMode() ElementMode
}
