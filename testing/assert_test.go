package testing

import (
	"testing"

	xmlcoder "github.com/xmlcoder/xmlcoder-go/xml"
)

func TestXMLEqual(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"equal": {
			X:     []byte(`<root a="1"><x>1</x><y>2</y></root>`),
			Y:     []byte(`<root a="1"><x>1</x><y>2</y></root>`),
			Equal: true,
		},
		"self closing matches explicit end tag": {
			X:     []byte(`<root><x/></root>`),
			Y:     []byte(`<root><x></x></root>`),
			Equal: true,
		},
		"child order matters": {
			X:     []byte(`<root><x>1</x><y>2</y></root>`),
			Y:     []byte(`<root><y>2</y><x>1</x></root>`),
			Equal: false,
		},
		"attribute order matters": {
			X:     []byte(`<root a="1" b="2"></root>`),
			Y:     []byte(`<root b="2" a="1"></root>`),
			Equal: false,
		},
		"prefixes are compared as written": {
			X:     []byte(`<root xmlns:ns1="urn:a"><ns1:x></ns1:x></root>`),
			Y:     []byte(`<root xmlns:ns2="urn:a"><ns2:x></ns2:x></root>`),
			Equal: false,
		},
		"text differs": {
			X:     []byte(`<root>a</root>`),
			Y:     []byte(`<root>b</root>`),
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := XMLEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect XML to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect XML not to be equal")
			}
		})
	}
}

func TestXMLEqualMalformed(t *testing.T) {
	if err := XMLEqual([]byte(`<root>`), []byte(`<root attr=></root>`)); err == nil {
		t.Fatalf("expect error for malformed XML")
	}
}

func TestAssertNodeEqual(t *testing.T) {
	expect := xmlcoder.NewElement(xmlcoder.Name{Local: "root"}, nil, []xmlcoder.Node{xmlcoder.NewText("x")})
	actual := xmlcoder.NewElement(xmlcoder.Name{Local: "root"}, nil, []xmlcoder.Node{xmlcoder.NewText("y")})

	if !AssertNodeEqual(t, expect, expect) {
		t.Fatalf("expect equal trees")
	}

	mock := &mockT{}
	if AssertNodeEqual(mock, expect, actual) {
		t.Fatalf("expect trees to differ")
	}
	if mock.errors == 0 {
		t.Fatalf("expect a reported error")
	}
}

type mockT struct {
	errors int
}

func (m *mockT) Error(...interface{})          { m.errors++ }
func (m *mockT) Errorf(string, ...interface{}) { m.errors++ }
func (m *mockT) Helper()                       {}
