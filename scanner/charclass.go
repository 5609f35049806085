package scanner

import (
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// isIdentStartASCII/isIdentContinueASCII implement the ASCII identifier classes from
// the external interface contract: start is [A-Za-z_], continue additionally
// allows [0-9]. This is the scanner's default.
func isIdentStartASCII(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueASCII(b byte) bool {
	return isIdentStartASCII(b) || (b >= '0' && b <= '9')
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

// identContinuesAt reports whether the source at the given lookahead offset
// begins an identifier-continue character under the chosen classifier. Used
// for word-boundary checks on keyword matches.
func identContinuesAt(io LexerIO, offset int, unicodeIdentifiers bool) bool {
	b, ok := io.Peek(offset)
	if !ok {
		return false
	}
	if !unicodeIdentifiers {
		return isIdentContinueASCII(b)
	}
	r, _ := utf8.DecodeRune(peekBufAt(io, offset, utf8.UTFMax))
	return r != utf8.RuneError && (xid.Continue(r) || r == '_')
}

// identLen scans forward from s[0:] over an identifier and returns its byte
// length (0 if s does not start with an identifier character). When
// unicodeIdentifiers is true, github.com/smasher164/xid's Unicode classifier
// replaces the ASCII-only classes, adding PEP 3131 support for the Python
// side of the grammar. Identical results for all-ASCII input either way.
func identLen(s []byte, unicodeIdentifiers bool) int {
	if len(s) == 0 {
		return 0
	}
	if !unicodeIdentifiers {
		if !isIdentStartASCII(s[0]) {
			return 0
		}
		i := 1
		for i < len(s) && isIdentContinueASCII(s[i]) {
			i++
		}
		return i
	}

	r, w := utf8.DecodeRune(s)
	if r == utf8.RuneError || !(xid.Start(r) || r == '_') {
		return 0
	}
	i := w
	for i < len(s) {
		r, w := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError || !(xid.Continue(r) || r == '_') {
			break
		}
		i += w
	}
	return i
}
