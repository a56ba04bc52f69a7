package xmlcoder_test

import (
	"testing"

	"github.com/xmlcoder/xmlcoder-go"
	"github.com/xmlcoder/xmlcoder-go/xml"
)

func TestKeyConstructors(t *testing.T) {
	cases := map[string]struct {
		key    xmlcoder.Key
		expect xmlcoder.Key
		role   string
	}{
		"element": {
			key:    xmlcoder.ElementKey("a"),
			expect: xmlcoder.Key{Name: "a"},
			role:   "element",
		},
		"attribute": {
			key:    xmlcoder.AttributeKey("a").WithNamespace("urn:x"),
			expect: xmlcoder.Key{Name: "a", Namespace: "urn:x", Role: xmlcoder.RoleAttribute},
			role:   "attribute",
		},
		"inline text": {
			key:    xmlcoder.InlineTextKey("value"),
			expect: xmlcoder.Key{Name: "value", Role: xmlcoder.RoleInlineText},
			role:   "inline-text",
		},
		"array": {
			key:    xmlcoder.ArrayKey("items", "list"),
			expect: xmlcoder.Key{Name: "items", Role: xmlcoder.RoleArray, Wrapper: "list"},
			role:   "array",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, c.key; e != a {
				t.Errorf("expected %+v, got %+v", e, a)
			}
			if e, a := c.role, c.key.Role.String(); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestElementMode(t *testing.T) {
	cases := map[string]struct {
		mode   xmlcoder.ElementMode
		zero   bool
		inline bool
		name   string
		str    string
	}{
		"unset":  {zero: true, str: "unset"},
		"inline": {mode: xmlcoder.ElementModeInline, inline: true, str: "inline"},
		"keyed":  {mode: xmlcoder.ElementModeKeyed("item"), name: "item", str: "keyed(item)"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.zero, c.mode.IsZero(); e != a {
				t.Errorf("expected zero %v, got %v", e, a)
			}
			if e, a := c.inline, c.mode.IsInline(); e != a {
				t.Errorf("expected inline %v, got %v", e, a)
			}
			if e, a := c.name, c.mode.Name(); e != a {
				t.Errorf("expected name %v, got %v", e, a)
			}
			if e, a := c.str, c.mode.String(); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestLeafHelpers(t *testing.T) {
	v := xmlcoder.EncodableFunc(func(e xmlcoder.Encoder) error {
		o := e.Keyed()
		if err := o.Write(xmlcoder.ElementKey("f"), xmlcoder.Float64(2.5)); err != nil {
			return err
		}
		if err := o.Write(xmlcoder.ElementKey("g"), xmlcoder.Float32(0.25)); err != nil {
			return err
		}
		if err := o.Write(xmlcoder.ElementKey("b"), xmlcoder.Blob("hi")); err != nil {
			return err
		}
		return o.Write(xmlcoder.ElementKey("l"), xmlcoder.List[xmlcoder.Encodable]{
			xmlcoder.Named("x", xmlcoder.Bool(true)),
			xmlcoder.Inline(xmlcoder.String("y")),
		})
	})

	b, err := xml.NewEncoder().Marshal("root", v)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := `<root><f>2.5</f><g>0.25</g><b>aGk=</b><l><x>1</x>y</l></root>`, string(b); e != a {
		t.Errorf("expected %s, got %s", e, a)
	}
}
