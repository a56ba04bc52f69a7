package testing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	xmlcoder "github.com/xmlcoder/xmlcoder-go/xml"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// XMLEqual compares two XML documents token by token. Element order,
// attribute order and character data must match exactly. Returns an error
// describing the difference if the documents are not equal.
func XMLEqual(expectBytes, actualBytes []byte) error {
	expect, err := xmlTokens(expectBytes)
	if err != nil {
		return fmt.Errorf("failed to tokenize expected bytes, %v", err)
	}

	actual, err := xmlTokens(actualBytes)
	if err != nil {
		return fmt.Errorf("failed to tokenize actual bytes, %v", err)
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same tokens in the same order. Emits a testing error, and
// returns false if the documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML documents to be equal, %v", err)
		return false
	}

	return true
}

// AssertNodeEqual compares two encoded trees. Emits a testing error, and
// returns false if the trees are not equal.
func AssertNodeEqual(t T, expect, actual xmlcoder.Node) bool {
	t.Helper()

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("expect trees to be equal (-expect +actual):\n%s", diff)
		return false
	}

	return true
}

// xmlTokens returns the raw tokens of a document. Prefixes are kept as
// written rather than resolved to namespace URIs.
func xmlTokens(b []byte) ([]xml.Token, error) {
	d := xml.NewDecoder(bytes.NewReader(b))

	var tokens []xml.Token
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, xml.CopyToken(tok))
	}
}
