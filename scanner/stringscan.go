package scanner

// This file implements the string engine: string-start detection,
// content-chunk scanning, the brace-escape rule for interpolated strings, and
// string-end, following a "consume until an escape or the terminator, yield
// a content token" shape; the prefix-flag parsing and brace-hole suspension
// are built in that same cursor-driven style.

const maxPrefixLen = 3

// prefixFlags holds the parsed prefix characters before delimiter
// construction.
type prefixFlags struct {
	raw, format, bytesFlag bool
	consumed               int // byte length of the prefix consumed
}

// scanPrefix inspects up to maxPrefixLen bytes at offset 0 looking for a
// run of [fFrRbBuU] immediately followed by a quote. Returns ok=false if no
// such run is found (no prefix characters is also a valid, empty prefix, as
// long as the very next byte is a quote).
func scanPrefix(io LexerIO) (prefixFlags, bool) {
	var pf prefixFlags
	for i := 0; i <= maxPrefixLen; i++ {
		b, ok := io.Peek(i)
		if !ok {
			return prefixFlags{}, false
		}
		switch b {
		case '\'', '"':
			pf.consumed = i
			return pf, true
		case 'r', 'R':
			pf.raw = true
		case 'f', 'F':
			pf.format = true
		case 'b', 'B':
			pf.bytesFlag = true
		case 'u', 'U':
			// accepted, carries no flag (plain str prefix)
		default:
			return prefixFlags{}, false
		}
	}
	return prefixFlags{}, false
}

// stringStart implements "String start" from §4.2: a possibly-empty prefix
// run followed by a quote, optionally tripled. Backticks are never string
// starts (left for grammar-level regex/glob rules).
func stringStart(io LexerIO, st *ScannerState) (Token, bool) {
	b0, ok := io.Peek(0)
	if !ok {
		return Token{}, false
	}

	var pf prefixFlags
	if b0 == '\'' || b0 == '"' {
		pf = prefixFlags{}
	} else {
		var found bool
		pf, found = scanPrefix(io)
		if !found {
			return Token{}, false
		}
	}

	quoteOff := pf.consumed
	quote, ok := io.Peek(quoteOff)
	if !ok || (quote != '\'' && quote != '"') {
		return Token{}, false
	}

	triple := false
	if q1, ok1 := io.Peek(quoteOff + 1); ok1 && q1 == quote {
		if q2, ok2 := io.Peek(quoteOff + 2); ok2 && q2 == quote {
			triple = true
		}
	}

	start := io.Pos()
	for i := 0; i < quoteOff; i++ {
		io.Advance()
	}
	io.Advance() // first quote
	if triple {
		io.Advance()
		io.Advance()
	}
	end := io.Pos()
	io.MarkEnd()

	d := NewDelimiter(quote, pf.raw, pf.format, pf.bytesFlag, triple)
	st.PushDelimiter(d)

	return Token{Kind: STRING_START, Start: start, End: end}, true
}

// braceEscape implements §4.2's "Brace escape inside interpolated string":
// at the top of a fresh invocation, a doubled '{' or '}' is consumed and
// reported as ESCAPE_INTERPOLATION; a single one is left untouched so the
// grammar can enter/exit a hole.
func braceEscape(io LexerIO, st *ScannerState) (Token, bool) {
	if !st.InsideInterpolated() {
		return Token{}, false
	}
	b0, ok := io.Peek(0)
	if !ok || (b0 != '{' && b0 != '}') {
		return Token{}, false
	}
	b1, ok := io.Peek(1)
	if !ok || b1 != b0 {
		return Token{}, false
	}
	start := io.Pos()
	io.Advance()
	io.Advance()
	end := io.Pos()
	io.MarkEnd()
	return Token{Kind: ESCAPE_INTERPOLATION, Start: start, End: end}, true
}

// stringContent implements §4.2's content-chunk scanning for the delimiter
// on top of the stack. It stops at EOF, at a bare newline in a non-triple
// string (unterminated-string case, §7), or at a suspend point (an
// interpolation hole boundary or a bytes-string \N/\u/\U escape), and emits
// the chunk collected so far as STRING_CONTENT — mirroring §7's "yield
// STRING_CONTENT before the escape" rule. It returns false (yields) only when
// that chunk is empty.
func stringContent(io LexerIO, st *ScannerState) (Token, bool) {
	d, ok := st.TopDelimiter()
	if !ok {
		return Token{}, false
	}

	start := io.Pos()
	io.MarkEnd()
	consumedAny := false

	for {
		b, ok := io.Peek(0)
		if !ok {
			break
		}

		if b == '\n' && !d.IsTriple() {
			// Unterminated string: yield without consuming the newline,
			// letting the grammar surface the syntax error.
			break
		}

		if n := closingRun(io, d); n > 0 {
			break
		}

		if d.IsFormat() && (b == '{' || b == '}') {
			break
		}

		if b == '\\' {
			if d.IsRaw() {
				// Backslash is literal, but a backslash immediately before
				// the delimiter or a line ending is still consumed so the
				// terminator isn't masked.
				nb, nok := io.Peek(1)
				if nok && (nb == d.QuoteChar() || nb == '\n' || nb == '\r') {
					io.Advance()
					io.Advance()
					consumedAny = true
					continue
				}
				io.Advance()
				consumedAny = true
				continue
			}

			if d.IsBytes() {
				if kind := bytesEscapeException(io); kind {
					// \N{...}, \uXXXX, \UXXXXXXXX are not escapes in a bytes
					// string: yield before them so the grammar can classify.
					break
				}
			}

			io.Advance() // backslash
			if _, ok := io.Peek(0); ok {
				io.Advance() // escaped character, consumed literally here
			}
			consumedAny = true
			continue
		}

		io.Advance()
		consumedAny = true
	}

	if !consumedAny {
		return Token{}, false
	}
	end := io.Pos()
	io.MarkEnd()
	return Token{Kind: STRING_CONTENT, Start: start, End: end}, true
}

// bytesEscapeException reports whether the byte at offset 1 (just after an
// unconsumed backslash at offset 0) begins one of the bytes-string escape
// exceptions: \N{, \u, \U.
func bytesEscapeException(io LexerIO) bool {
	b, ok := io.Peek(1)
	if !ok {
		return false
	}
	switch b {
	case 'u', 'U':
		return true
	case 'N':
		if b2, ok2 := io.Peek(2); ok2 && b2 == '{' {
			return true
		}
	}
	return false
}

// closingRun reports how many consecutive quote characters matching d's
// quote char sit at offset 0 (0, 1, or up to 3), used to detect a string
// terminator without consuming it.
func closingRun(io LexerIO, d Delimiter) int {
	q := d.QuoteChar()
	b0, ok := io.Peek(0)
	if !ok || b0 != q {
		return 0
	}
	if !d.IsTriple() {
		return 1
	}
	b1, ok1 := io.Peek(1)
	b2, ok2 := io.Peek(2)
	if ok1 && b1 == q && ok2 && b2 == q {
		return 3
	}
	return 0
}

// stringEnd implements §4.2's "String end": on the matching delimiter (or
// three of it for a triple string), pop the delimiter and emit STRING_END.
func stringEnd(io LexerIO, st *ScannerState) (Token, bool) {
	d, ok := st.TopDelimiter()
	if !ok {
		return Token{}, false
	}
	n := closingRun(io, d)
	want := 1
	if d.IsTriple() {
		want = 3
	}
	if n != want {
		return Token{}, false
	}
	start := io.Pos()
	io.MarkEnd()
	for i := 0; i < want; i++ {
		io.Advance()
	}
	end := io.Pos()
	io.MarkEnd()
	st.PopDelimiter()
	return Token{Kind: STRING_END, Start: start, End: end}, true
}
