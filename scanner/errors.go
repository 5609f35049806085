package scanner

// The scanner never panics on malformed input (programming-error invariant
// violations aside) and never returns a Go error from the token path. It
// communicates purely through the (Token, bool) result of Scan: a token, no
// token (letting the grammar try an alternative), or a token whose grammar
// reduction is expected to fail (e.g. STRING_CONTENT immediately followed by
// a bare newline in a non-triple string). Deserialize is the one exception,
// returning a Go error, because a corrupt snapshot buffer is a host-side
// integrity failure rather than a lexical ambiguity: lexing never errors,
// only host-level operations do.

// ErrorRecoveryMode reports whether the grammar's valid-token set signals
// error recovery: the scanner suppresses indent/newline and all
// line-prediction emissions whenever the grammar simultaneously accepts
// STRING_CONTENT and INDENT.
func ErrorRecoveryMode(v ValidSet) bool {
	return v.Contains(STRING_CONTENT) && v.Contains(INDENT)
}
