package xml

import (
	"fmt"

	"github.com/xmlcoder/xmlcoder-go"
	"github.com/xmlcoder/xmlcoder-go/logging"
)

// Encoder builds XML element trees from Encodable values.
//
// An Encoder holds only configuration and may be used for any number of
// Encode calls, including concurrent ones.
type Encoder struct {
	options Options
}

// NewEncoder returns an XML tree encoder configured by the option
// functions.
func NewEncoder(optFns ...func(*Options)) *Encoder {
	var o Options
	for _, fn := range optFns {
		fn(&o)
	}
	resolveDefaults(&o)

	return &Encoder{options: o}
}

// Options returns a copy of the encoder's resolved options.
func (e *Encoder) Options() Options {
	return e.options.copy()
}

// Encode encodes v into a root element with the given name. Namespace
// declarations for every qualified key in the tree are attached to the root
// element.
//
// Encode panics with a *ContractError if v violates the traversal protocol.
func (e *Encoder) Encode(name string, v xmlcoder.Encodable) (*Element, error) {
	state := &encodeState{
		options:    e.options,
		namespaces: newNamespaceScope(e.options),
	}

	enc := newValueEncoder(state)
	if v != nil {
		if err := v.EncodeXML(enc); err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
	}

	attrs := state.namespaces.declarations()
	var children []Node
	if enc.top != nil {
		attrs = append(attrs, enc.top.attrs...)
		children = enc.top.nodes
	}

	return NewElement(Name{Local: name}, attrs, children), nil
}

// encodeState is shared by every encoder of a single Encode call.
type encodeState struct {
	options    Options
	namespaces *namespaceScope
}

type containerKind int

const (
	kindKeyed containerKind = iota + 1
	kindSequence
	kindScalar
)

func (k containerKind) String() string {
	switch k {
	case kindKeyed:
		return "keyed"
	case kindSequence:
		return "sequence"
	case kindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// storage is the node accumulator behind a container. It only grows.
type storage struct {
	kind    containerKind
	attrs   []Attr
	nodes   []Node
	written bool
}

func (s *storage) isEmpty() bool {
	return s == nil || len(s.attrs) == 0 && len(s.nodes) == 0
}

// soleText returns the value of s when it is exactly one text node.
func (s *storage) soleText() (string, bool) {
	if len(s.attrs) != 0 || len(s.nodes) != 1 {
		return "", false
	}
	t, ok := s.nodes[0].(Text)
	return t.Value, ok
}

func (s *storage) onlyText() bool {
	if len(s.attrs) != 0 {
		return false
	}
	for _, n := range s.nodes {
		if _, ok := n.(Text); !ok {
			return false
		}
	}
	return true
}

// valueEncoder is the xmlcoder.Encoder handed to a value. A new one is
// created for every nested value, and it owns at most one container.
type valueEncoder struct {
	state *encodeState
	top   *storage
	mode  xmlcoder.ElementMode

	// members of this encoder's sequence are spliced inline by default
	flatten bool
}

var _ xmlcoder.Encoder = (*valueEncoder)(nil)

func newValueEncoder(state *encodeState) *valueEncoder {
	return &valueEncoder{state: state}
}

func (e *valueEncoder) child() *valueEncoder {
	return newValueEncoder(e.state)
}

func (e *valueEncoder) options() *Options {
	return &e.state.options
}

func (e *valueEncoder) Keyed() xmlcoder.KeyedContainer {
	e.acquire("Keyed", kindKeyed)
	return &Object{enc: e, s: e.top}
}

func (e *valueEncoder) Sequence() xmlcoder.SequenceContainer {
	e.acquire("Sequence", kindSequence)
	return &Array{enc: e, s: e.top}
}

func (e *valueEncoder) Scalar() xmlcoder.ScalarContainer {
	if e.top != nil {
		violation("Scalar", "encoder already holds a %s container", e.top.kind)
	}
	e.top = &storage{kind: kindScalar}
	return &Scalar{enc: e, s: e.top}
}

// acquire creates the top-level container, or reuses it when it already
// has the requested kind.
func (e *valueEncoder) acquire(op string, kind containerKind) {
	if e.top == nil {
		e.top = &storage{kind: kind}
		return
	}
	if e.top.kind != kind {
		violation(op, "encoder already holds a %s container", e.top.kind)
	}
}

func (e *valueEncoder) SetElementMode(m xmlcoder.ElementMode) {
	e.mode = m
}

// appendAttr adds an attribute to s. Duplicate names are kept and logged.
func (e *valueEncoder) appendAttr(s *storage, name Name, value string) {
	for _, a := range s.attrs {
		if a.Name == name {
			e.options().Logger.Logf(logging.Warn, "duplicate attribute %q", name.String())
			break
		}
	}
	s.attrs = append(s.attrs, Attr{Name: name, Value: value})
}

// encodeChild encodes v with a fresh encoder sharing e's state.
func (e *valueEncoder) encodeChild(v xmlcoder.Encodable, flatten bool) (*valueEncoder, error) {
	child := e.child()
	child.flatten = flatten
	if err := v.EncodeXML(child); err != nil {
		return nil, err
	}
	return child, nil
}
