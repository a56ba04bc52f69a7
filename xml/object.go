package xml

import (
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/xmlcoder/xmlcoder-go"
)

// Object is the keyed container of a record shaped value. Each field lands
// as a child element, an attribute, inline text or a flattened sequence
// according to the role of its key.
type Object struct {
	enc *valueEncoder
	s   *storage
}

var _ xmlcoder.KeyedContainer = (*Object)(nil)

func (o *Object) name(local string, key xmlcoder.Key) Name {
	return o.enc.state.namespaces.resolve(key.Namespace, local)
}

// writeText places a leaf value rendered as v.
func (o *Object) writeText(op string, key xmlcoder.Key, v string) {
	switch key.Role {
	case xmlcoder.RoleAttribute:
		o.enc.appendAttr(o.s, o.name(key.Name, key), v)
	case xmlcoder.RoleInlineText:
		o.s.nodes = append(o.s.nodes, NewText(v))
	case xmlcoder.RoleArray:
		violation(op, "key %q has the array role but its value is not a sequence", key.Name)
	default:
		o.s.nodes = append(o.s.nodes, NewElement(o.name(key.Name, key), nil, []Node{NewText(v)}))
	}
}

// WriteNil encodes the absence of a value according to the nil strategy.
func (o *Object) WriteNil(key xmlcoder.Key) {
	if o.enc.options().NilStrategy != NilEmpty {
		return
	}

	if key.Role == xmlcoder.RoleArray {
		// an absent sequence has no members, only the key element
		o.s.nodes = append(o.s.nodes, NewElement(o.name(key.Name, key), nil, nil))
		return
	}
	o.writeText("WriteNil", key, "")
}

// WriteString encodes v as an XML string under key.
func (o *Object) WriteString(key xmlcoder.Key, v string) {
	o.writeText("WriteString", key, v)
}

// WriteBool encodes v as a boolean using the bool strategy under key.
func (o *Object) WriteBool(key xmlcoder.Key, v bool) {
	o.writeText("WriteBool", key, o.enc.options().BoolStrategy.format(v))
}

// WriteInt64 encodes v as a signed integer under key.
func (o *Object) WriteInt64(key xmlcoder.Key, v int64) {
	o.writeText("WriteInt64", key, formatInt(v))
}

// WriteUint64 encodes v as an unsigned integer under key.
func (o *Object) WriteUint64(key xmlcoder.Key, v uint64) {
	o.writeText("WriteUint64", key, formatUint(v))
}

// WriteFloat32 encodes v as a single precision fixed-point number under key.
func (o *Object) WriteFloat32(key xmlcoder.Key, v float32) {
	o.writeText("WriteFloat32", key, formatFloat(float64(v), 32))
}

// WriteFloat64 encodes v as a double precision fixed-point number under key.
func (o *Object) WriteFloat64(key xmlcoder.Key, v float64) {
	o.writeText("WriteFloat64", key, formatFloat(v, 64))
}

// WriteBigInteger encodes v as an arbitrary precision integer under key.
func (o *Object) WriteBigInteger(key xmlcoder.Key, v *big.Int) {
	if v == nil {
		o.WriteNil(key)
		return
	}
	o.writeText("WriteBigInteger", key, formatBigInteger(v))
}

// WriteBigDecimal encodes v as an arbitrary precision fixed-point number under key.
func (o *Object) WriteBigDecimal(key xmlcoder.Key, v *big.Float) {
	if v == nil {
		o.WriteNil(key)
		return
	}
	o.writeText("WriteBigDecimal", key, formatBigDecimal(v))
}

// WriteTime encodes v as a timestamp in the configured format under key.
func (o *Object) WriteTime(key xmlcoder.Key, v time.Time) {
	o.writeText("WriteTime", key, formatTime(v, o.enc.options().TimestampFormat))
}

// WriteURL encodes v as a URL string under key.
func (o *Object) WriteURL(key xmlcoder.Key, v *url.URL) {
	if v == nil {
		o.WriteNil(key)
		return
	}
	o.writeText("WriteURL", key, formatURL(v))
}

// WriteBlob encodes v as a base64 string under key.
func (o *Object) WriteBlob(key xmlcoder.Key, v []byte) {
	if v == nil {
		o.WriteNil(key)
		return
	}
	o.writeText("WriteBlob", key, encodeByteSlice(v))
}

// Write encodes v with a child encoder and places the result according to
// the role of key. A value that produces nothing is omitted.
func (o *Object) Write(key xmlcoder.Key, v xmlcoder.Encodable) error {
	if v == nil {
		o.WriteNil(key)
		return nil
	}

	child, err := o.enc.encodeChild(v, key.Role == xmlcoder.RoleArray)
	if err != nil {
		return fmt.Errorf("%s: %w", key.Name, err)
	}
	c := child.top

	switch key.Role {
	case xmlcoder.RoleAttribute:
		if c.isEmpty() {
			return nil
		}
		text, ok := c.soleText()
		if !ok {
			violation("Write", "attribute %q needs a single string value, got a %s value", key.Name, c.kind)
		}
		o.enc.appendAttr(o.s, o.name(key.Name, key), text)

	case xmlcoder.RoleInlineText:
		if c.isEmpty() {
			return nil
		}
		if !c.onlyText() {
			violation("Write", "inline text %q needs a string value, got a %s value", key.Name, c.kind)
		}
		o.s.nodes = append(o.s.nodes, c.nodes...)

	case xmlcoder.RoleArray:
		if c == nil || c.kind != kindSequence {
			violation("Write", "key %q has the array role but its value is not a sequence", key.Name)
		}
		if len(c.nodes) == 0 {
			return nil
		}
		members := c.nodes
		if len(key.Wrapper) != 0 {
			members = []Node{NewElement(o.name(key.Wrapper, key), nil, members)}
		}
		o.s.nodes = append(o.s.nodes, NewElement(o.name(key.Name, key), nil, members))

	default:
		if c.isEmpty() {
			return nil
		}
		o.s.nodes = append(o.s.nodes, NewElement(o.name(key.Name, key), c.attrs, c.nodes))
	}

	return nil
}

// NestedKeyed is not supported and panics with a *ContractError.
func (o *Object) NestedKeyed(xmlcoder.Key) xmlcoder.KeyedContainer {
	notImplemented("NestedKeyed")
	return nil
}

// NestedSequence is not supported and panics with a *ContractError.
func (o *Object) NestedSequence(xmlcoder.Key) xmlcoder.SequenceContainer {
	notImplemented("NestedSequence")
	return nil
}

// SuperEncoder is not supported and panics with a *ContractError.
func (o *Object) SuperEncoder() xmlcoder.Encoder {
	notImplemented("SuperEncoder")
	return nil
}
