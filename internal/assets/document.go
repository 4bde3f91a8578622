package assets

import "strings"

// Document is what a window shows: an address, plus the inlined markup when
// the address was built locally.
type Document struct {
	Address string
	Payload []byte
}

// Remote returns a Document that points at a served address.
func Remote(address string) Document {
	return Document{Address: address}
}

// Inline reports whether the document carries its own content.
func (d Document) Inline() bool {
	return len(d.Payload) > 0
}

// DataURI wraps html into a self-contained text/html data: address.
func DataURI(html string) string {
	return "data:text/html," + encodeURIComponent(html)
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every byte except the characters
// ECMAScript's encodeURIComponent leaves untouched.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
