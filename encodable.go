package xmlcoder

import (
	"math/big"
	"net/url"
	"time"
)

// Encodable is an entity that can describe itself to an Encoder.
//
// Unlike the standard library marshaler interfaces, EncodeXML does not
// produce bytes. It issues container and write calls, and the Encoder decides
// how each call maps onto elements, attributes and text.
type Encodable interface {
	EncodeXML(Encoder) error
}

// Encoder is handed to an Encodable for the duration of a single EncodeXML
// call. An Encoder owns at most one top-level container.
type Encoder interface {
	// Keyed returns the keyed container of the encoder, creating it on first
	// use. Asking again returns the same container.
	Keyed() KeyedContainer

	// Sequence returns the sequence container of the encoder, creating it on
	// first use. Asking again returns the same container.
	Sequence() SequenceContainer

	// Scalar returns the scalar container of the encoder. It may only be
	// requested while the encoder has no container yet.
	Scalar() ScalarContainer

	// SetElementMode reports how the value being encoded wants to be placed
	// when it is a member of a sequence. A mode reported by the value itself
	// through ElementModer takes precedence.
	SetElementMode(ElementMode)
}

// KeyedContainer accumulates the fields of a record shaped value.
type KeyedContainer interface {
	WriteNil(Key)
	WriteString(Key, string)
	WriteBool(Key, bool)
	WriteInt64(Key, int64)
	WriteUint64(Key, uint64)
	WriteFloat32(Key, float32)
	WriteFloat64(Key, float64)
	WriteBigInteger(Key, *big.Int)
	WriteBigDecimal(Key, *big.Float)
	WriteTime(Key, time.Time)
	WriteURL(Key, *url.URL)
	WriteBlob(Key, []byte)

	// Write encodes a nested value under the key.
	Write(Key, Encodable) error

	// NestedKeyed, NestedSequence and SuperEncoder are not supported. Nested
	// values must be modeled as Encodable values and passed to Write.
	NestedKeyed(Key) KeyedContainer
	NestedSequence(Key) SequenceContainer
	SuperEncoder() Encoder
}

// SequenceContainer accumulates the members of a list shaped value.
type SequenceContainer interface {
	WriteNil()
	WriteString(string)
	WriteBool(bool)
	WriteInt64(int64)
	WriteUint64(uint64)
	WriteFloat32(float32)
	WriteFloat64(float64)
	WriteBigInteger(*big.Int)
	WriteBigDecimal(*big.Float)
	WriteTime(time.Time)
	WriteURL(*url.URL)
	WriteBlob([]byte)

	// Write encodes v as the next member.
	Write(Encodable) error

	NestedKeyed() KeyedContainer
	NestedSequence() SequenceContainer
	SuperEncoder() Encoder
}

// ScalarContainer holds the single leaf value of a scalar shaped value.
type ScalarContainer interface {
	WriteNil()
	WriteString(string)
	WriteBool(bool)
	WriteInt64(int64)
	WriteUint64(uint64)
	WriteFloat32(float32)
	WriteFloat64(float64)
	WriteBigInteger(*big.Int)
	WriteBigDecimal(*big.Float)
	WriteTime(time.Time)
	WriteURL(*url.URL)
	WriteBlob([]byte)

	// Write accepts a value whose own encoding is scalar. Composite values
	// are rejected.
	Write(Encodable) error

	NestedKeyed() KeyedContainer
	NestedSequence() SequenceContainer
	SuperEncoder() Encoder
}
