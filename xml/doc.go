// Package xml builds XML element trees from values implementing
// xmlcoder.Encodable, and serializes them.
//
// Encoding is a depth-first recursion. The Encoder hands each value a fresh
// encoder that owns exactly one container: an Object for record shaped
// values, an Array for list shaped values, or a Scalar for leaf values. When
// a value writes a nested value, a child encoder is created for it, the
// nested value is encoded completely, and the child's nodes are attached to
// the parent container according to the key's role (element, attribute,
// inline text, flattened array) or the member's element mode.
//
// Misusing the protocol, such as acquiring a second container of another
// kind or writing a record into a scalar container, panics with a
// *ContractError and aborts the whole Encode call.
//
// Namespace declarations are collected over the whole tree and attached to
// the root element only.
package xml
