package xmlcoder

import (
	"net/url"
	"time"
)

// String is a string leaf value.
type String string

// EncodeXML writes s into a scalar container.
func (s String) EncodeXML(e Encoder) error {
	e.Scalar().WriteString(string(s))
	return nil
}

// Bool is a boolean leaf value.
type Bool bool

// EncodeXML writes b into a scalar container.
func (b Bool) EncodeXML(e Encoder) error {
	e.Scalar().WriteBool(bool(b))
	return nil
}

// Int is a signed integer leaf value.
type Int int64

// EncodeXML writes i into a scalar container.
func (i Int) EncodeXML(e Encoder) error {
	e.Scalar().WriteInt64(int64(i))
	return nil
}

// Uint is an unsigned integer leaf value.
type Uint uint64

// EncodeXML writes u into a scalar container.
func (u Uint) EncodeXML(e Encoder) error {
	e.Scalar().WriteUint64(uint64(u))
	return nil
}

// Float32 is a single precision leaf value.
type Float32 float32

// EncodeXML writes f into a scalar container.
func (f Float32) EncodeXML(e Encoder) error {
	e.Scalar().WriteFloat32(float32(f))
	return nil
}

// Float64 is a double precision leaf value.
type Float64 float64

// EncodeXML writes f into a scalar container.
func (f Float64) EncodeXML(e Encoder) error {
	e.Scalar().WriteFloat64(float64(f))
	return nil
}

// Time is a timestamp leaf value.
type Time time.Time

// EncodeXML writes t into a scalar container.
func (t Time) EncodeXML(e Encoder) error {
	e.Scalar().WriteTime(time.Time(t))
	return nil
}

// Blob is a binary leaf value, encoded as base64.
type Blob []byte

// EncodeXML writes b into a scalar container.
func (b Blob) EncodeXML(e Encoder) error {
	e.Scalar().WriteBlob([]byte(b))
	return nil
}

// URL is a URL leaf value.
type URL struct {
	*url.URL
}

// EncodeXML writes the absolute form of u into a scalar container. A nil URL
// is written as nil.
func (u URL) EncodeXML(e Encoder) error {
	if u.URL == nil {
		e.Scalar().WriteNil()
		return nil
	}
	e.Scalar().WriteURL(u.URL)
	return nil
}

// List is a sequence of values of the same type.
type List[T Encodable] []T

// EncodeXML writes each member of l into a sequence container.
func (l List[T]) EncodeXML(e Encoder) error {
	s := e.Sequence()
	for _, v := range l {
		if err := s.Write(v); err != nil {
			return err
		}
	}
	return nil
}

type withMode struct {
	Encodable
	mode ElementMode
}

func (w withMode) XMLElementMode() ElementMode {
	return w.mode
}

// Named wraps v so that, as a sequence member, it is placed in an element
// with the given name instead of the default.
func Named(name string, v Encodable) Encodable {
	return withMode{Encodable: v, mode: ElementModeKeyed(name)}
}

// Inline wraps v so that, as a sequence member, its nodes are spliced into
// the sequence without a wrapper element.
func Inline(v Encodable) Encodable {
	return withMode{Encodable: v, mode: ElementModeInline}
}

// EncodableFunc adapts a function to the Encodable interface.
type EncodableFunc func(Encoder) error

// EncodeXML calls fn(e).
func (fn EncodableFunc) EncodeXML(e Encoder) error {
	return fn(e)
}
