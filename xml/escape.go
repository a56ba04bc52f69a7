package xml

import (
	"unicode/utf8"
)

var (
	escAmp  = []byte("&amp;")
	escLT   = []byte("&lt;")
	escGT   = []byte("&gt;")
	escQuot = []byte("&#34;")
	escTab  = []byte("&#x9;")
	escNL   = []byte("&#xA;")
	escCR   = []byte("&#xD;")
	escFFFD = []byte("\uFFFD") // Unicode replacement character
)

// escapeText writes s to w with character data escaping. Quotes, tabs and
// newlines are kept literal.
func escapeText(w writer, s string) {
	escape(w, s, false)
}

// escapeAttr writes s to w with escaping suitable for a double quoted
// attribute value. Whitespace other than spaces is escaped so it survives
// attribute value normalization.
func escapeAttr(w writer, s string) {
	escape(w, s, true)
}

func escape(w writer, s string, attr bool) {
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width

		var esc []byte
		switch r {
		case '&':
			esc = escAmp
		case '<':
			esc = escLT
		case '>':
			esc = escGT
		case '"':
			if !attr {
				continue
			}
			esc = escQuot
		case '\t':
			if !attr {
				continue
			}
			esc = escTab
		case '\n':
			if !attr {
				continue
			}
			esc = escNL
		case '\r':
			esc = escCR
		default:
			if !isInCharacterRange(r) || (r == utf8.RuneError && width == 1) {
				esc = escFFFD
				break
			}
			continue
		}

		w.WriteString(s[last : i-width])
		w.Write(esc)
		last = i
	}
	w.WriteString(s[last:])
}

// isInCharacterRange reports whether r may appear in an XML document.
// Decide whether the given rune is in the XML Character Range, per
// the Char production of https://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
