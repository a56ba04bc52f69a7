package xml

import (
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/xmlcoder/xmlcoder-go"
)

// Array is the sequence container of a list shaped value. By default each
// member is wrapped in an `<element>` element tag.
//
// for eg, `<someList><element>entry1</element><element>entry2</element></someList>`.
type Array struct {
	enc *valueEncoder
	s   *storage

	// index of the next member, omitted ones included
	index int
}

var _ xmlcoder.SequenceContainer = (*Array)(nil)

// defaultMode is the placement of members that express no preference.
// Members of a sequence written under the array role are spliced inline.
func (a *Array) defaultMode() xmlcoder.ElementMode {
	if a.enc.flatten {
		return xmlcoder.ElementModeInline
	}
	return xmlcoder.ElementModeKeyed(xmlcoder.DefaultElementName)
}

func (a *Array) appendMember(mode xmlcoder.ElementMode, member *storage) {
	if mode.IsInline() {
		a.s.nodes = append(a.s.nodes, member.nodes...)
		return
	}
	a.s.nodes = append(a.s.nodes, NewElement(Name{Local: mode.Name()}, member.attrs, member.nodes))
}

func (a *Array) writeText(v string) {
	a.index++
	a.appendMember(a.defaultMode(), &storage{kind: kindScalar, nodes: []Node{NewText(v)}})
}

// WriteNil encodes the absence of a member according to the nil strategy.
func (a *Array) WriteNil() {
	if a.enc.options().NilStrategy == NilEmpty {
		a.writeText("")
		return
	}
	a.index++
}

// WriteString encodes v as an XML string as the next member.
func (a *Array) WriteString(v string) {
	a.writeText(v)
}

// WriteBool encodes v as a boolean using the bool strategy as the next member.
func (a *Array) WriteBool(v bool) {
	a.writeText(a.enc.options().BoolStrategy.format(v))
}

// WriteInt64 encodes v as a signed integer as the next member.
func (a *Array) WriteInt64(v int64) {
	a.writeText(formatInt(v))
}

// WriteUint64 encodes v as an unsigned integer as the next member.
func (a *Array) WriteUint64(v uint64) {
	a.writeText(formatUint(v))
}

// WriteFloat32 encodes v as a single precision fixed-point number as the next member.
func (a *Array) WriteFloat32(v float32) {
	a.writeText(formatFloat(float64(v), 32))
}

// WriteFloat64 encodes v as a double precision fixed-point number as the next member.
func (a *Array) WriteFloat64(v float64) {
	a.writeText(formatFloat(v, 64))
}

// WriteBigInteger encodes v as an arbitrary precision integer as the next member.
func (a *Array) WriteBigInteger(v *big.Int) {
	if v == nil {
		a.WriteNil()
		return
	}
	a.writeText(formatBigInteger(v))
}

// WriteBigDecimal encodes v as an arbitrary precision fixed-point number as the next member.
func (a *Array) WriteBigDecimal(v *big.Float) {
	if v == nil {
		a.WriteNil()
		return
	}
	a.writeText(formatBigDecimal(v))
}

// WriteTime encodes v as a timestamp in the configured format as the next member.
func (a *Array) WriteTime(v time.Time) {
	a.writeText(formatTime(v, a.enc.options().TimestampFormat))
}

// WriteURL encodes v as a URL string as the next member.
func (a *Array) WriteURL(v *url.URL) {
	if v == nil {
		a.WriteNil()
		return
	}
	a.writeText(formatURL(v))
}

// WriteBlob encodes v as a base64 string as the next member.
func (a *Array) WriteBlob(v []byte) {
	if v == nil {
		a.WriteNil()
		return
	}
	a.writeText(encodeByteSlice(v))
}

// Write encodes v as the next member. The member's placement is taken from
// v itself when it implements xmlcoder.ElementModer, then from the mode its
// encoding reported, then from the sequence default.
func (a *Array) Write(v xmlcoder.Encodable) error {
	if v == nil {
		a.WriteNil()
		return nil
	}

	i := a.index
	a.index++

	child, err := a.enc.encodeChild(v, false)
	if err != nil {
		return fmt.Errorf("member %d: %w", i, err)
	}
	if child.top == nil {
		violation("Write", "member %d did not acquire a container", i)
	}
	if child.top.kind == kindScalar && child.top.isEmpty() {
		// nil leaf under NilOmit
		return nil
	}

	var mode xmlcoder.ElementMode
	if m, ok := v.(xmlcoder.ElementModer); ok {
		mode = m.XMLElementMode()
	}
	if mode.IsZero() {
		mode = child.mode
	}
	if mode.IsZero() {
		mode = a.defaultMode()
	}

	a.appendMember(mode, child.top)
	return nil
}

func (a *Array) NestedKeyed() xmlcoder.KeyedContainer {
	notImplemented("NestedKeyed")
	return nil
}

func (a *Array) NestedSequence() xmlcoder.SequenceContainer {
	notImplemented("NestedSequence")
	return nil
}

func (a *Array) SuperEncoder() xmlcoder.Encoder {
	notImplemented("SuperEncoder")
	return nil
}
