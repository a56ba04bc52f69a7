package xml

import (
	"github.com/xmlcoder/xmlcoder-go/logging"
)

// NilStrategy selects how the absence of a value is encoded.
type NilStrategy int

const (
	// NilOmit encodes an absent value as nothing at all.
	NilOmit NilStrategy = iota

	// NilEmpty encodes an absent value as an empty string: an empty
	// attribute, an empty element or an empty text node depending on
	// position.
	NilEmpty
)

// BoolStrategy holds the strings booleans are rendered as.
type BoolStrategy struct {
	False, True string
}

// DefaultBoolStrategy renders false as "0" and true as "1".
var DefaultBoolStrategy = BoolStrategy{False: "0", True: "1"}

func (s BoolStrategy) format(v bool) string {
	if v {
		return s.True
	}
	return s.False
}

// TimestampFormat selects how time values are rendered.
type TimestampFormat int

const (
	// TimestampLegacy renders yyyy-MM-ddTHH:mm:SSZ in UTC, where SS is
	// hundredths of a second.
	TimestampLegacy TimestampFormat = iota

	// TimestampDateTime renders yyyy-MM-ddTHH:mm:ssZ in UTC.
	TimestampDateTime
)

// DefaultNamespacePrefix is the base of prefixes assigned to namespaces that
// are not registered.
const DefaultNamespacePrefix = "ns"

// Options configures an Encoder. The zero value of each field selects its
// default.
type Options struct {
	// NilStrategy applies to every nil write. Defaults to NilOmit.
	NilStrategy NilStrategy

	// BoolStrategy renders booleans. Defaults to DefaultBoolStrategy.
	BoolStrategy *BoolStrategy

	// TimestampFormat renders time values. Defaults to TimestampLegacy.
	TimestampFormat TimestampFormat

	// Namespaces maps namespace URIs to prefixes. Defaults to
	// DefaultNamespaces.
	Namespaces *NamespaceRegistry

	// NamespacePrefix is the base used to assign prefixes, such as "ns1", to
	// namespaces absent from Namespaces. Set DisableNamespacePrefix to render
	// such keys unqualified instead.
	NamespacePrefix        string
	DisableNamespacePrefix bool

	// DefaultNamespace is declared as xmlns on the root element. Keys in this
	// namespace are rendered without prefix.
	DefaultNamespace string

	// Header writes an XML declaration before the root element when
	// marshaling.
	Header bool

	// Logger receives debug and warning entries. Defaults to logging.Noop.
	Logger logging.Logger
}

func (o Options) copy() Options {
	if o.BoolStrategy != nil {
		s := *o.BoolStrategy
		o.BoolStrategy = &s
	}
	return o
}

func resolveDefaults(o *Options) {
	if o.BoolStrategy == nil {
		s := DefaultBoolStrategy
		o.BoolStrategy = &s
	}
	if o.Namespaces == nil {
		o.Namespaces = DefaultNamespaces
	}
	if len(o.NamespacePrefix) == 0 && !o.DisableNamespacePrefix {
		o.NamespacePrefix = DefaultNamespacePrefix
	}
	if o.DisableNamespacePrefix {
		o.NamespacePrefix = ""
	}
	if o.Logger == nil {
		o.Logger = logging.Noop{}
	}
}
