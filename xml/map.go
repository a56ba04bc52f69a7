package xml

import (
	"github.com/xmlcoder/xmlcoder-go"
)

const (
	// mapEntryName is the default entry wrapper tag name for a Map
	mapEntryName = "entry"

	mapKeyName   = "key"
	mapValueName = "value"
)

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   string
	Value xmlcoder.Encodable
}

/*
Map encodes ordered key/value entries as a sequence. By default, the map
entries are wrapped with `<entry>` element tag.

for eg. `<someMap><entry><key>entry1</key><value>value1</value></entry></someMap>`

A Flattened map splices the key and value elements of every entry directly
into the map element.

for eg, `<someMap><key>entry1</key><value>value1</value><key>entry2</key><value>value2</value></someMap>`.
*/
type Map struct {
	Entries []MapEntry

	// EntryName, KeyName and ValueName override the "entry", "key" and
	// "value" element names.
	EntryName string
	KeyName   string
	ValueName string

	Flattened bool
}

var _ xmlcoder.Encodable = Map{}

// EncodeXML writes one sequence member per entry.
func (m Map) EncodeXML(e xmlcoder.Encoder) error {
	s := e.Sequence()
	for _, entry := range m.Entries {
		if err := s.Write(mapMember{m: &m, entry: entry}); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) names() (entry, key, value string) {
	entry, key, value = mapEntryName, mapKeyName, mapValueName
	if len(m.EntryName) != 0 {
		entry = m.EntryName
	}
	if len(m.KeyName) != 0 {
		key = m.KeyName
	}
	if len(m.ValueName) != 0 {
		value = m.ValueName
	}
	return entry, key, value
}

type mapMember struct {
	m     *Map
	entry MapEntry
}

func (mm mapMember) XMLElementMode() xmlcoder.ElementMode {
	if mm.m.Flattened {
		return xmlcoder.ElementModeInline
	}
	entry, _, _ := mm.m.names()
	return xmlcoder.ElementModeKeyed(entry)
}

func (mm mapMember) EncodeXML(e xmlcoder.Encoder) error {
	_, key, value := mm.m.names()

	o := e.Keyed()
	o.WriteString(xmlcoder.ElementKey(key), mm.entry.Key)
	return o.Write(xmlcoder.ElementKey(value), mm.entry.Value)
}
