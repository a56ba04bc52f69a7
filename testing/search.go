package testing

import (
	"github.com/jmespath/go-jmespath"

	xmlcoder "github.com/xmlcoder/xmlcoder-go/xml"
)

// SearchNode evaluates a JMESPath expression against an encoded tree.
//
// An element is presented as an object with "name", "attributes" (an object
// of attribute values keyed by qualified name, the first of duplicates
// wins), "children" (an array of nodes in order) and "text" (its direct
// character data). A text node is presented as an object with only "text".
//
//	SearchNode("children[?name=='a'].text | [0]", root)
func SearchNode(expression string, n xmlcoder.Node) (interface{}, error) {
	return jmespath.Search(expression, nodeDocument(n))
}

func nodeDocument(n xmlcoder.Node) interface{} {
	switch v := n.(type) {
	case *xmlcoder.Element:
		attrs := make(map[string]interface{}, len(v.Attr))
		for _, a := range v.Attr {
			if _, ok := attrs[a.Name.String()]; !ok {
				attrs[a.Name.String()] = a.Value
			}
		}
		children := make([]interface{}, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, nodeDocument(c))
		}
		return map[string]interface{}{
			"name":       v.Name.String(),
			"attributes": attrs,
			"children":   children,
			"text":       v.Text(),
		}
	case xmlcoder.Text:
		return map[string]interface{}{
			"text": v.Value,
		}
	default:
		return nil
	}
}
