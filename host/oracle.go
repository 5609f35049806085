package host

import "github.com/oscarvarto/xonsh-tree-sitter/scanner"

// Oracle computes a scanner.ValidSet from a small amount of local context:
// bracket depth, whether the cursor sits at logical-line-start, and whether
// a string delimiter is currently active. It is explicitly a stand-in for
// a real GLR parser's reachable-symbol computation, not a reimplementation
// of one — a real parser's LR automaton state is what produces the
// authoritative valid-token set; this is a local approximation good enough
// to drive the scanner end-to-end for demonstration and tests.
type Oracle struct {
	bracketDepth int
}

// NewOracle returns an Oracle with zero bracket depth.
func NewOracle() *Oracle {
	return &Oracle{}
}

// Valid computes the next valid-token set from the session's local context:
// whether a string delimiter is active, the bracket depth, whether the
// current statement has produced any content yet (stmtActive — a real
// grammar only reaches the NEWLINE terminator once a statement exists),
// whether the cursor sits at the first non-whitespace position of a logical
// line (atLineStart — the only place the line-class markers and
// INDENT/DEDENT are reachable), and whether the statement was opened by a
// subprocess marker (inSubprocess — the operator and keyword-operator
// tokens are only grammar-valid inside a command pipeline).
//
// Sequencing NEWLINE on stmtActive and INDENT/DEDENT on atLineStart is what
// produces the canonical ordering at a block boundary: the statement's
// NEWLINE fires first (clearing stmtActive), and the zero-width indent
// tokens follow on the next invocations over the still-unconsumed
// whitespace run.
func (o *Oracle) Valid(st *scanner.ScannerState, atLineStart, stmtActive, inSubprocess bool) scanner.ValidSet {
	if _, active := st.TopDelimiter(); active {
		v := scanner.NewValidSet(scanner.STRING_CONTENT, scanner.STRING_END)
		if st.InsideInterpolated() {
			v = v.With(scanner.ESCAPE_INTERPOLATION)
		}
		return v
	}

	v := scanner.NewValidSet(scanner.STRING_START, scanner.PATH_PREFIX)

	if inSubprocess {
		v = v.With(scanner.LOGICAL_AND).With(scanner.LOGICAL_OR).With(scanner.BACKGROUND_AMP).
			With(scanner.KEYWORD_AND).With(scanner.KEYWORD_OR)
	}

	if o.bracketDepth > 0 {
		return v.With(scanner.CLOSE_PAREN).With(scanner.CLOSE_BRACKET).With(scanner.CLOSE_BRACE)
	}

	v = v.With(scanner.COMMENT)
	if stmtActive {
		v = v.With(scanner.NEWLINE)
	}
	if atLineStart {
		v = v.With(scanner.INDENT).With(scanner.DEDENT).
			With(scanner.SUBPROCESS_START).With(scanner.SUBPROCESS_MACRO_START).With(scanner.BLOCK_MACRO_START)
	}
	return v
}

// TrackBracket adjusts the oracle's local bracket-depth counter from an
// observed byte. Session calls this for each byte it skips as trivia outside
// a string, so later Valid() calls reflect brackets opened or closed there.
func (o *Oracle) TrackBracket(b byte) {
	switch b {
	case '(', '[', '{':
		o.bracketDepth++
	case ')', ']', '}':
		if o.bracketDepth > 0 {
			o.bracketDepth--
		}
	}
}

func (o *Oracle) BracketDepth() int {
	return o.bracketDepth
}
