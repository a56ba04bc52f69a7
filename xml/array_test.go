package xml_test

import (
	"math"
	"testing"

	"github.com/xmlcoder/xmlcoder-go"
	"github.com/xmlcoder/xmlcoder-go/xml"
)

type idText struct {
	id   int64
	text string
}

func (v idText) EncodeXML(e xmlcoder.Encoder) error {
	o := e.Keyed()
	o.WriteInt64(xmlcoder.AttributeKey("id"), v.id)
	o.WriteString(xmlcoder.InlineTextKey("inlineText"), v.text)
	return nil
}

// code chooses its own element name while encoding.
type code string

func (v code) EncodeXML(e xmlcoder.Encoder) error {
	e.SetElementMode(xmlcoder.ElementModeKeyed("code"))
	e.Scalar().WriteString(string(v))
	return nil
}

// label names itself through ElementModer.
type label string

func (v label) XMLElementMode() xmlcoder.ElementMode {
	return xmlcoder.ElementModeKeyed("label")
}

func (v label) EncodeXML(e xmlcoder.Encoder) error {
	e.SetElementMode(xmlcoder.ElementModeKeyed("ignored"))
	e.Scalar().WriteString(string(v))
	return nil
}

func TestArrayElementModes(t *testing.T) {
	cases := map[string]struct {
		value  xmlcoder.Encodable
		expect string
	}{
		"default element name": {
			value:  stringList("a", "b"),
			expect: `<root><element>a</element><element>b</element></root>`,
		},
		"keyed by value": {
			value: keyed(func(o xmlcoder.KeyedContainer) error {
				return o.Write(xmlcoder.ElementKey("children"), xmlcoder.List[xmlcoder.Encodable]{
					xmlcoder.Named("child", xmlcoder.String("one")),
					xmlcoder.Named("child", xmlcoder.String("two")),
					xmlcoder.Named("child", xmlcoder.String("three")),
				})
			}),
			expect: `<root><children><child>one</child><child>two</child><child>three</child></children></root>`,
		},
		"keyed while encoding": {
			value:  xmlcoder.List[code]{"A", "B"},
			expect: `<root><code>A</code><code>B</code></root>`,
		},
		"value mode over encoding mode": {
			value:  xmlcoder.List[label]{"x"},
			expect: `<root><label>x</label></root>`,
		},
		"mode carried through scalar write": {
			value: xmlcoder.List[xmlcoder.Encodable]{
				xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
					return e.Scalar().Write(code("C"))
				}),
			},
			expect: `<root><code>C</code></root>`,
		},
		"inline members": {
			value: xmlcoder.List[xmlcoder.Encodable]{
				xmlcoder.Inline(pair{"1", "2"}),
				xmlcoder.Inline(pair{"3", "4"}),
			},
			expect: `<root><field1>1</field1><field2>2</field2><field1>3</field1><field2>4</field2></root>`,
		},
		"inline members drop attributes": {
			value:  xmlcoder.List[xmlcoder.Encodable]{xmlcoder.Inline(idText{id: 1, text: "one"})},
			expect: `<root>one</root>`,
		},
		"members with attributes": {
			value:  xmlcoder.List[idText]{{1, "one"}, {2, "two"}, {3, "three"}},
			expect: `<root><element id="1">one</element><element id="2">two</element><element id="3">three</element></root>`,
		},
		"mixed members": {
			value: xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
				s := e.Sequence()
				s.WriteBool(true)
				s.WriteFloat64(0.5)
				s.WriteFloat32(float32(math.Inf(-1)))
				return s.Write(xmlcoder.Named("n", xmlcoder.Int(-1)))
			}),
			expect: `<root><element>1</element><element>0.5</element><element>-INF</element><n>-1</n></root>`,
		},
		"nil members omitted": {
			value: xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
				s := e.Sequence()
				s.WriteNil()
				s.WriteString("a")
				if err := s.Write(xmlcoder.URL{}); err != nil {
					return err
				}
				return s.Write(nil)
			}),
			expect: `<root><element>a</element></root>`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			verify(t, xml.NewEncoder(), c.value, c.expect)
		})
	}
}

func TestArrayNilMembersAsEmpty(t *testing.T) {
	enc := xml.NewEncoder(func(o *xml.Options) {
		o.NilStrategy = xml.NilEmpty
	})

	v := xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
		s := e.Sequence()
		s.WriteNil()
		s.WriteString("a")
		return s.Write(xmlcoder.URL{})
	})

	verify(t, enc, v, `<root><element></element><element>a</element><element></element></root>`)
}

func TestArrayMemberIndexCountsOmittedMembers(t *testing.T) {
	failing := xmlcoder.EncodableFunc(func(xmlcoder.Encoder) error {
		return errBoom
	})

	v := xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
		s := e.Sequence()
		s.WriteNil()
		if err := s.Write(xmlcoder.URL{}); err != nil {
			return err
		}
		s.WriteString("a")
		return s.Write(failing)
	})

	_, err := xml.NewEncoder().Encode("root", v)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if e, a := "encode root: member 3: boom", err.Error(); e != a {
		t.Errorf("expected %q, got %q", e, a)
	}
}
