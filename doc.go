// Package xmlcoder defines the traversal protocol through which a Go value
// describes itself to an XML tree encoder.
//
// A value implements Encodable. When encoded, it asks the Encoder it is given
// for exactly one container shape (Keyed, Sequence or Scalar) and then issues
// write calls against that container in its natural field or element order.
// Per-field placement is controlled by the Role carried on each Key, and
// per-member wrapping inside sequences by ElementMode.
//
// The tree builder itself lives in the xml subpackage:
//
//	enc := xml.NewEncoder()
//	root, err := enc.Encode("root", value)
package xmlcoder
