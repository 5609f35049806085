package scanner

// Dispatcher is the top-level control flow tying every engine together:
// given the grammar's valid-token set, it tries each engine in priority
// order and emits at most one token per invocation, the usual "try a
// higher-priority special case first, fall back to the generic path" shape,
// generalized here to an eight-step priority chain (plus a STRING_END check
// while a string is open).
type Dispatcher struct{}

// NewDispatcher returns a stateless Dispatcher. All mutable state lives in
// the ScannerState passed to Scan.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Scan runs one dispatch cycle. It never blocks and never returns an error;
// ok is false when no engine produced a token, meaning the grammar should
// try an alternative production.
func (d *Dispatcher) Scan(io LexerIO, v ValidSet, st *ScannerState) (Token, bool) {
	if delim, active := st.TopDelimiter(); active {
		if v.Contains(ESCAPE_INTERPOLATION) && delim.IsFormat() {
			if tok, ok := braceEscape(io, st); ok {
				return tok, true
			}
		}

		if v.Contains(STRING_END) {
			if tok, ok := stringEnd(io, st); ok {
				return tok, true
			}
		}

		if v.Contains(STRING_CONTENT) {
			if tok, ok := stringContent(io, st); ok {
				return tok, true
			}
		}
	}

	if tok, ok := indentEngine(io, v, st); ok {
		return tok, true
	}

	if v.Any(LOGICAL_AND, LOGICAL_OR, BACKGROUND_AMP) {
		if tok, ok := operatorDisambiguator(io, v); ok {
			return tok, true
		}
	}

	if v.Any(KEYWORD_AND, KEYWORD_OR) {
		if tok, ok := keywordOperator(io, v, st); ok {
			return tok, true
		}
	}

	if v.Any(SUBPROCESS_START, SUBPROCESS_MACRO_START, BLOCK_MACRO_START, PATH_PREFIX) && !ErrorRecoveryMode(v) {
		if b, ok := io.Peek(0); !(ok && (b == '\'' || b == '"')) {
			if tok, ok := predictLineClass(io, v, st); ok {
				return tok, true
			}
		}
	}

	if v.Contains(PATH_PREFIX) {
		if tok, ok := pathPrefixOnly(io, st); ok {
			return tok, true
		}
	}

	if v.Contains(STRING_START) {
		if tok, ok := stringStart(io, st); ok {
			return tok, true
		}
	}

	return Token{}, false
}

// pathPrefixOnly is the last-resort step: when PATH_PREFIX is grammar-valid
// but the line-class predictor did not run (e.g. in error-recovery mode) or
// did not claim the prefix, a bare p/P [f/F/r/R] immediately before a quote
// is still recognized and consumed.
func pathPrefixOnly(io LexerIO, st *ScannerState) (Token, bool) {
	b0, ok := io.Peek(0)
	if !ok || (b0 != 'p' && b0 != 'P') {
		return Token{}, false
	}

	n := 1
	if b1, ok1 := io.Peek(1); ok1 {
		switch b1 {
		case 'f', 'F', 'r', 'R':
			n = 2
		}
	}

	q, ok := io.Peek(n)
	if !ok || (q != '\'' && q != '"') {
		return Token{}, false
	}

	start := io.Pos()
	for i := 0; i < n; i++ {
		io.Advance()
	}
	end := io.Pos()
	io.MarkEnd()
	return Token{Kind: PATH_PREFIX, Start: start, End: end}, true
}
