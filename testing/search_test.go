package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	xmlcoder "github.com/xmlcoder/xmlcoder-go/xml"
)

func TestSearchNode(t *testing.T) {
	root := xmlcoder.NewElement(xmlcoder.Name{Local: "root"},
		[]xmlcoder.Attr{{Name: xmlcoder.Name{Local: "id"}, Value: "7"}},
		[]xmlcoder.Node{
			xmlcoder.NewElement(xmlcoder.Name{Local: "a"}, nil, []xmlcoder.Node{xmlcoder.NewText("42")}),
			xmlcoder.NewText("inline"),
			xmlcoder.NewElement(xmlcoder.Name{Space: "ns1", Local: "b"}, nil, []xmlcoder.Node{xmlcoder.NewText("x")}),
		},
	)

	cases := map[string]struct {
		expr   string
		expect interface{}
	}{
		"root name": {
			expr:   "name",
			expect: "root",
		},
		"attribute": {
			expr:   "attributes.id",
			expect: "7",
		},
		"direct text": {
			expr:   "text",
			expect: "inline",
		},
		"child names": {
			expr:   "children[?name].name",
			expect: []interface{}{"a", "ns1:b"},
		},
		"child text by name": {
			expr:   "children[?name=='a'].text | [0]",
			expect: "42",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := SearchNode(c.expr, root)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.expect, actual); len(diff) != 0 {
				t.Errorf("expect match (-expect +actual):\n%s", diff)
			}
		})
	}
}
