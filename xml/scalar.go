package xml

import (
	"math/big"
	"net/url"
	"time"

	"github.com/xmlcoder/xmlcoder-go"
)

// Scalar is the container of a single leaf value. It renders as one text
// node.
type Scalar struct {
	enc *valueEncoder
	s   *storage
}

var _ xmlcoder.ScalarContainer = (*Scalar)(nil)

func (sc *Scalar) claim(op string) {
	if sc.s.written {
		violation(op, "scalar container already holds a value")
	}
	sc.s.written = true
}

func (sc *Scalar) writeText(op, v string) {
	sc.claim(op)
	sc.s.nodes = append(sc.s.nodes, NewText(v))
}

// WriteNil encodes the absence of a value according to the nil strategy.
func (sc *Scalar) WriteNil() {
	if sc.enc.options().NilStrategy == NilEmpty {
		sc.writeText("WriteNil", "")
		return
	}
	sc.claim("WriteNil")
}

// WriteString encodes v as an XML string as the value of the container.
func (sc *Scalar) WriteString(v string) {
	sc.writeText("WriteString", v)
}

// WriteBool encodes v as a boolean using the bool strategy as the value of the container.
func (sc *Scalar) WriteBool(v bool) {
	sc.writeText("WriteBool", sc.enc.options().BoolStrategy.format(v))
}

// WriteInt64 encodes v as a signed integer as the value of the container.
func (sc *Scalar) WriteInt64(v int64) {
	sc.writeText("WriteInt64", formatInt(v))
}

// WriteUint64 encodes v as an unsigned integer as the value of the container.
func (sc *Scalar) WriteUint64(v uint64) {
	sc.writeText("WriteUint64", formatUint(v))
}

// WriteFloat32 encodes v as a single precision fixed-point number as the value of the container.
func (sc *Scalar) WriteFloat32(v float32) {
	sc.writeText("WriteFloat32", formatFloat(float64(v), 32))
}

// WriteFloat64 encodes v as a double precision fixed-point number as the value of the container.
func (sc *Scalar) WriteFloat64(v float64) {
	sc.writeText("WriteFloat64", formatFloat(v, 64))
}

// WriteBigInteger encodes v as an arbitrary precision integer as the value of the container.
func (sc *Scalar) WriteBigInteger(v *big.Int) {
	if v == nil {
		sc.WriteNil()
		return
	}
	sc.writeText("WriteBigInteger", formatBigInteger(v))
}

// WriteBigDecimal encodes v as an arbitrary precision fixed-point number as the value of the container.
func (sc *Scalar) WriteBigDecimal(v *big.Float) {
	if v == nil {
		sc.WriteNil()
		return
	}
	sc.writeText("WriteBigDecimal", formatBigDecimal(v))
}

// WriteTime encodes v as a timestamp in the configured format as the value of the container.
func (sc *Scalar) WriteTime(v time.Time) {
	sc.writeText("WriteTime", formatTime(v, sc.enc.options().TimestampFormat))
}

// WriteURL encodes v as a URL string as the value of the container.
func (sc *Scalar) WriteURL(v *url.URL) {
	if v == nil {
		sc.WriteNil()
		return
	}
	sc.writeText("WriteURL", formatURL(v))
}

// WriteBlob encodes v as a base64 string as the value of the container.
func (sc *Scalar) WriteBlob(v []byte) {
	if v == nil {
		sc.WriteNil()
		return
	}
	sc.writeText("WriteBlob", encodeByteSlice(v))
}

// Write encodes v, which must itself encode as a scalar, into the container.
// The element mode v reports is carried over to this container's encoder.
func (sc *Scalar) Write(v xmlcoder.Encodable) error {
	if v == nil {
		sc.WriteNil()
		return nil
	}

	child, err := sc.enc.encodeChild(v, false)
	if err != nil {
		return err
	}
	c := child.top
	if c == nil {
		return nil
	}
	if c.kind != kindScalar {
		violation("Write", "cannot write a %s value into a scalar container", c.kind)
	}

	sc.claim("Write")
	sc.s.nodes = append(sc.s.nodes, c.nodes...)

	mode := child.mode
	if m, ok := v.(xmlcoder.ElementModer); ok && !m.XMLElementMode().IsZero() {
		mode = m.XMLElementMode()
	}
	if sc.enc.mode.IsZero() {
		sc.enc.mode = mode
	}
	return nil
}

func (sc *Scalar) NestedKeyed() xmlcoder.KeyedContainer {
	notImplemented("NestedKeyed")
	return nil
}

func (sc *Scalar) NestedSequence() xmlcoder.SequenceContainer {
	notImplemented("NestedSequence")
	return nil
}

func (sc *Scalar) SuperEncoder() xmlcoder.Encoder {
	notImplemented("SuperEncoder")
	return nil
}
