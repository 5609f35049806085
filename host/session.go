package host

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

// Session ties one LexerIO, one ScannerState, one Oracle, and a
// log-correlation UUID together for a single run over a buffer: ask the
// oracle for the valid set, dispatch, advance, repeat until EOF. The UUID
// has no bearing on scanner semantics and is never serialized as part of
// ScannerState; it exists purely so a host embedding this package can
// correlate log lines across one tokenization run.
type Session struct {
	id         uuid.UUID
	io         *scanner.ByteLexerIO
	state      *scanner.ScannerState
	oracle     *Oracle
	dispatcher *scanner.Dispatcher
	log        *logrus.Entry

	// Line-position flags the Oracle sequences Valid() with; see
	// Oracle.Valid for what each one gates.
	atLineStart  bool
	stmtActive   bool
	inSubprocess bool

	diagnostics Diagnostics
}

// NewSession creates a Session over src, starting from a fresh
// ScannerState unless resumeState is non-nil (error recovery / checkpoint
// resumption).
func NewSession(src []byte, resumeState *scanner.ScannerState) *Session {
	id, err := uuid.NewV4()
	if err != nil {
		// uuid.NewV4 only errors if the system CSPRNG is broken; fall back to
		// the nil UUID rather than panicking a tokenization run over it.
		id = uuid.Nil
	}

	st := resumeState
	if st == nil {
		st = scanner.NewScannerState()
	}

	return &Session{
		id:          id,
		io:          scanner.NewByteLexerIO(src),
		state:       st,
		oracle:      NewOracle(),
		dispatcher:  scanner.NewDispatcher(),
		log:         logrus.WithField("session", id.String()),
		atLineStart: true,
	}
}

// ID returns the session's correlation UUID.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the live ScannerState, for checkpointing via
// ScannerState.Serialize between Next calls.
func (s *Session) State() *scanner.ScannerState {
	return s.state
}

// Diagnostics returns every diagnostic observed so far.
func (s *Session) Diagnostics() Diagnostics {
	return s.diagnostics
}

// Offset returns the current byte offset of the session's cursor into its
// source buffer, used by the `snapshot` CLI command to stop scanning at a
// requested byte offset for state-serialization dumps.
func (s *Session) Offset() int {
	return s.io.Offset()
}

// RunUntilOffset drives Next until the cursor reaches or passes offset, or
// EOF, whichever comes first. It is the bounded counterpart to RunAll used
// by the `snapshot` command, which only wants the scanner state at a given
// point rather than the full token stream.
func (s *Session) RunUntilOffset(offset int) {
	for s.Offset() < offset && !s.io.Eof() {
		s.Next()
	}
}

// Next runs one dispatch cycle: it asks the Oracle for the current
// valid-token set, hands it to the Dispatcher, and reports what (if
// anything) was emitted. ok is false when the dispatcher found no token for
// the source in front of the cursor, in which case the session disposes of
// one unit of trivia itself (the grammar's job in a real host). Next keeps
// working at EOF: the indent engine still flushes the final NEWLINE and any
// outstanding DEDENTs there.
func (s *Session) Next() (scanner.Token, bool) {
	v := s.oracle.Valid(s.state, s.atLineStart, s.stmtActive, s.inSubprocess)
	startOffset := s.io.Offset()

	tok, ok := s.dispatcher.Scan(s.io, v, s.state)
	if !ok {
		if !s.recoverUnterminatedString(v) && s.io.Offset() == startOffset && !s.io.Eof() {
			s.skipTrivia()
		}
		return scanner.Token{}, false
	}

	tok.Text = s.io.Slice(startOffset, s.io.Offset())
	s.logToken(tok)
	s.advanceLineState(tok.Kind)
	return tok, true
}

// advanceLineState updates the flags Oracle.Valid sequences on.
// NEWLINE/INDENT/DEDENT/COMMENT are line-boundary tokens: after any of them
// the cursor is logically at the start of a line. Everything else is
// statement content.
func (s *Session) advanceLineState(kind scanner.TokenKind) {
	switch kind {
	case scanner.NEWLINE:
		s.atLineStart = true
		s.stmtActive = false
		s.inSubprocess = false
	case scanner.INDENT, scanner.DEDENT, scanner.COMMENT:
		s.atLineStart = true
	case scanner.SUBPROCESS_START, scanner.SUBPROCESS_MACRO_START:
		s.atLineStart = false
		s.stmtActive = true
		s.inSubprocess = true
	default:
		s.atLineStart = false
		s.stmtActive = true
	}
}

// skipTrivia consumes one unit of source the scanner yielded on: a whole
// trailing comment, a whole line continuation, or a single byte. A real
// grammar tokenizes these itself; this stand-in just disposes of them while
// keeping the oracle's bracket depth honest.
func (s *Session) skipTrivia() {
	b, ok := s.io.Peek(0)
	if !ok {
		return
	}

	if _, active := s.state.TopDelimiter(); active {
		// Interpolation-hole content. Never bracket-tracked: a real grammar
		// parses the hole expression itself.
		s.io.Skip()
		return
	}

	switch {
	case b == '#':
		for {
			nb, ok := s.io.Peek(0)
			if !ok || nb == '\n' {
				return
			}
			s.io.Skip()
		}
	case b == '\\' && s.continuationAhead():
		s.io.Skip()
		if nb, ok := s.io.Peek(0); ok && nb == '\r' {
			s.io.Skip()
		}
		if nb, ok := s.io.Peek(0); ok && nb == '\n' {
			s.io.Skip()
		}
	default:
		s.oracle.TrackBracket(b)
		s.io.Skip()
		if !isTriviaByte(b) {
			s.atLineStart = false
			s.stmtActive = true
		}
	}
}

func (s *Session) continuationAhead() bool {
	off := 1
	if b, ok := s.io.Peek(off); ok && b == '\r' {
		off++
	}
	b, ok := s.io.Peek(off)
	return !ok || b == '\n'
}

func isTriviaByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\n':
		return true
	}
	return false
}

// recoverUnterminatedString handles the unterminated-string case: when
// STRING_CONTENT was valid, a delimiter is active, and the cursor sits on a
// bare newline inside a non-triple string (or at EOF with any delimiter
// still open), the scanner yields without emitting STRING_END. Session
// surfaces that as a diagnostic and force-closes the delimiter so the run
// can make progress.
func (s *Session) recoverUnterminatedString(v scanner.ValidSet) bool {
	d, active := s.state.TopDelimiter()
	if !active || !v.Contains(scanner.STRING_CONTENT) {
		return false
	}
	b, ok := s.io.Peek(0)
	if ok && (b != '\n' || d.IsTriple()) {
		return false
	}
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Pos:     Pos{Line: s.io.Pos().Line, Col: s.io.Pos().Col},
		Message: "unterminated string literal",
	})
	s.state.PopDelimiter()
	return true
}

// RunAll drives Next to completion, returning every emitted token in order,
// including the indent-stack flush at end of input.
func (s *Session) RunAll() []scanner.Token {
	var toks []scanner.Token
	for {
		wasEOF := s.io.Eof()
		depth := s.state.DelimiterDepth()
		tok, ok := s.Next()
		if ok {
			toks = append(toks, tok)
			continue
		}
		if wasEOF && s.state.DelimiterDepth() == depth {
			return toks
		}
	}
}

func (s *Session) logToken(tok scanner.Token) {
	s.log.WithFields(logrus.Fields{
		"kind": tok.Kind.String(),
		"line": tok.Start.Line,
		"col":  tok.Start.Col,
	}).Debug("token")
}
