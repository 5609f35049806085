package scanner

// TokenKind is the fixed ordinal set of token kinds the scanner can emit.
// Order matches the contract in the external interface: NEWLINE through
// PATH_PREFIX. The grammar (external to this package) never sees any other
// value from Dispatcher.Scan.
type TokenKind int

const (
	NEWLINE TokenKind = iota + 1
	INDENT
	DEDENT
	STRING_START
	STRING_CONTENT
	ESCAPE_INTERPOLATION
	STRING_END
	COMMENT
	CLOSE_PAREN
	CLOSE_BRACKET
	CLOSE_BRACE
	EXCEPT
	SUBPROCESS_START
	LOGICAL_AND
	LOGICAL_OR
	BACKGROUND_AMP
	KEYWORD_AND
	KEYWORD_OR
	SUBPROCESS_MACRO_START
	BLOCK_MACRO_START
	PATH_PREFIX
)

func (k TokenKind) String() string {
	return tokenKindNames[k]
}

func (k TokenKind) GoString() string {
	return tokenKindNames[k]
}

var tokenKindNames = map[TokenKind]string{
	NEWLINE:                "NEWLINE",
	INDENT:                 "INDENT",
	DEDENT:                 "DEDENT",
	STRING_START:           "STRING_START",
	STRING_CONTENT:         "STRING_CONTENT",
	ESCAPE_INTERPOLATION:   "ESCAPE_INTERPOLATION",
	STRING_END:             "STRING_END",
	COMMENT:                "COMMENT",
	CLOSE_PAREN:            "CLOSE_PAREN",
	CLOSE_BRACKET:          "CLOSE_BRACKET",
	CLOSE_BRACE:            "CLOSE_BRACE",
	EXCEPT:                 "EXCEPT",
	SUBPROCESS_START:       "SUBPROCESS_START",
	LOGICAL_AND:            "LOGICAL_AND",
	LOGICAL_OR:             "LOGICAL_OR",
	BACKGROUND_AMP:         "BACKGROUND_AMP",
	KEYWORD_AND:            "KEYWORD_AND",
	KEYWORD_OR:             "KEYWORD_OR",
	SUBPROCESS_MACRO_START: "SUBPROCESS_MACRO_START",
	BLOCK_MACRO_START:      "BLOCK_MACRO_START",
	PATH_PREFIX:            "PATH_PREFIX",
}

func init() {
	// make sure we panic at startup if a description isn't declared, rather
	// than print an empty string from some token kind for the rest of time.
	for k := NEWLINE; k <= PATH_PREFIX; k++ {
		if tokenKindNames[k] == "" {
			panic("scanner: tokenKindNames missing an entry")
		}
	}
}

// Token is what the scanner hands back to the caller for one successful
// invocation: the kind decided by the dispatcher plus the exact source span
// `mark_end` committed to.
type Token struct {
	Kind  TokenKind
	Start Pos
	End   Pos
	// Text is the raw bytes of the consumed span. The grammar is free to
	// ignore it; it exists mainly so tests and the xonshtoken CLI in cli/
	// can render a human-readable token stream.
	Text string
}

// Pos is a line/column position, 1-indexed, matching the convention used
// throughout the rest of the toolchain this scanner feeds.
type Pos struct {
	Line, Col int
}
