package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

func kinds(toks []scanner.Token) []scanner.TokenKind {
	out := make([]scanner.TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestSessionLsDashLa(t *testing.T) {
	sess := NewSession([]byte("ls -la\n"), nil)
	toks := sess.RunAll()
	got := kinds(toks)
	require.Contains(t, got, scanner.SUBPROCESS_START)
	require.Contains(t, got, scanner.NEWLINE)
	assert.Equal(t, scanner.SUBPROCESS_START, got[0])
}

func TestSessionComparisonIsNotSubprocess(t *testing.T) {
	sess := NewSession([]byte("x == 1\n"), nil)
	toks := sess.RunAll()
	got := kinds(toks)
	assert.NotContains(t, got, scanner.SUBPROCESS_START)
	assert.Contains(t, got, scanner.NEWLINE)
}

func TestSessionInterpolatedString(t *testing.T) {
	sess := NewSession([]byte(`f"hi {name}!"` + "\n"), nil)
	toks := sess.RunAll()
	got := kinds(toks)

	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, scanner.STRING_START, got[0])
	assert.Contains(t, got, scanner.STRING_CONTENT)
	assert.Contains(t, got, scanner.STRING_END)
	assert.Equal(t, scanner.NEWLINE, got[len(got)-1])
}

func TestSessionBlockMacroWithIndentedBody(t *testing.T) {
	src := "with! open('x') as f:\n    pass\n"
	sess := NewSession([]byte(src), nil)
	toks := sess.RunAll()
	got := kinds(toks)

	assert.Equal(t, scanner.BLOCK_MACRO_START, got[0])
	assert.Contains(t, got, scanner.INDENT)
	assert.Contains(t, got, scanner.DEDENT)

	// INDENT must come before DEDENT.
	indentIdx, dedentIdx := -1, -1
	for i, k := range got {
		if k == scanner.INDENT && indentIdx < 0 {
			indentIdx = i
		}
		if k == scanner.DEDENT && dedentIdx < 0 {
			dedentIdx = i
		}
	}
	assert.Less(t, indentIdx, dedentIdx)
}

func TestSessionPipeAndLogicalAnd(t *testing.T) {
	sess := NewSession([]byte("cat file | grep foo && echo ok\n"), nil)
	toks := sess.RunAll()
	got := kinds(toks)

	assert.Equal(t, scanner.SUBPROCESS_START, got[0])
	assert.Contains(t, got, scanner.LOGICAL_AND)
}

func TestSessionPathPrefixThenString(t *testing.T) {
	sess := NewSession([]byte(`p'~/logs'` + "\n"), nil)
	toks := sess.RunAll()
	got := kinds(toks)

	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, scanner.PATH_PREFIX, got[0])
	assert.Equal(t, scanner.STRING_START, got[1])
	assert.Contains(t, got, scanner.STRING_END)
}

func TestSessionUnterminatedStringProducesDiagnostic(t *testing.T) {
	sess := NewSession([]byte("x = 'abc\ndef\n"), nil)
	sess.RunAll()
	diags := sess.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unterminated")
}

func TestSessionFinalNewlineThenDedentOrdering(t *testing.T) {
	src := "with! open('x') as f:\n    pass\n"
	sess := NewSession([]byte(src), nil)
	got := kinds(sess.RunAll())

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, scanner.DEDENT, got[len(got)-1])
	assert.Equal(t, scanner.NEWLINE, got[len(got)-2], "the statement's NEWLINE lands before the closing DEDENT")
}

func TestSessionEmitsNewlineAtEOFWithoutTrailingNewline(t *testing.T) {
	sess := NewSession([]byte("ls -la"), nil)
	got := kinds(sess.RunAll())
	require.NotEmpty(t, got)
	assert.Equal(t, scanner.SUBPROCESS_START, got[0])
	assert.Equal(t, scanner.NEWLINE, got[len(got)-1])
}

func TestSessionKeywordOperatorOnlyInsideSubprocess(t *testing.T) {
	sess := NewSession([]byte("x and y\n"), nil)
	assert.NotContains(t, kinds(sess.RunAll()), scanner.KEYWORD_AND)

	sess = NewSession([]byte("ls a and ls b\n"), nil)
	assert.Contains(t, kinds(sess.RunAll()), scanner.KEYWORD_AND)
}

func TestSessionEmitsCommentOnItsOwnLine(t *testing.T) {
	sess := NewSession([]byte("ls\n# note\npwd\n"), nil)
	got := kinds(sess.RunAll())
	assert.Contains(t, got, scanner.COMMENT)

	// Both command lines still classify; the comment line contributes no
	// spurious NEWLINE of its own.
	subs := 0
	for _, k := range got {
		if k == scanner.SUBPROCESS_START {
			subs++
		}
	}
	assert.Equal(t, 2, subs)
}

func TestSessionBracketInsideStringDoesNotDesyncOracle(t *testing.T) {
	// The '(' lives inside a string literal; it must not be tracked as an
	// open bracket, or the trailing NEWLINE would never become valid.
	sess := NewSession([]byte("x = '('\n"), nil)
	got := kinds(sess.RunAll())
	assert.Contains(t, got, scanner.NEWLINE)
	assert.Equal(t, 0, sess.oracle.BracketDepth())
}

func TestSessionEndOfInputReturnsIndentStackToZero(t *testing.T) {
	src := "if x:\n    if y:\n        pass\n"
	sess := NewSession([]byte(src), nil)
	sess.RunAll()
	assert.Equal(t, 0, sess.State().IndentTop())
	assert.Equal(t, 1, sess.State().IndentDepth())
}

func TestSessionResumesFromSerializedState(t *testing.T) {
	sess := NewSession([]byte("if x:\n    "), nil)
	sess.RunAll()
	buf := sess.State().Serialize(64)

	resumed, err := scanner.Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, sess.State().IndentTop(), resumed.IndentTop())
}

func TestSessionIDIsStableAcrossCalls(t *testing.T) {
	sess := NewSession([]byte("ls\n"), nil)
	id1 := sess.ID()
	sess.RunAll()
	id2 := sess.ID()
	assert.Equal(t, id1, id2)
}

func TestSessionRunUntilOffsetStopsEarly(t *testing.T) {
	sess := NewSession([]byte("x = 1\ny = 2\nz = 3\n"), nil)
	sess.RunUntilOffset(6)
	assert.LessOrEqual(t, 6, sess.Offset())
	assert.Less(t, sess.Offset(), 18)
}

func TestOracleOffersStringTokensInsideActiveDelimiter(t *testing.T) {
	st := scanner.NewScannerState()
	st.PushDelimiter(scanner.NewDelimiter('"', false, true, false, false))
	o := NewOracle()
	v := o.Valid(st, false, true, false)
	assert.True(t, v.Contains(scanner.STRING_CONTENT))
	assert.True(t, v.Contains(scanner.STRING_END))
	assert.True(t, v.Contains(scanner.ESCAPE_INTERPOLATION))
	assert.False(t, v.Contains(scanner.NEWLINE))
}

func TestOracleSequencesNewlineAndBlockTokens(t *testing.T) {
	st := scanner.NewScannerState()
	o := NewOracle()

	// Mid-statement: the terminator is reachable, block structure is not.
	v := o.Valid(st, false, true, false)
	assert.True(t, v.Contains(scanner.NEWLINE))
	assert.False(t, v.Contains(scanner.INDENT))
	assert.False(t, v.Contains(scanner.SUBPROCESS_START))

	// At line start with no statement yet: block structure and the
	// line-class markers, but no NEWLINE (there is nothing to terminate).
	v = o.Valid(st, true, false, false)
	assert.False(t, v.Contains(scanner.NEWLINE))
	assert.True(t, v.Contains(scanner.INDENT))
	assert.True(t, v.Contains(scanner.DEDENT))
	assert.True(t, v.Contains(scanner.SUBPROCESS_START))
}

func TestOracleOffersOperatorsOnlyInSubprocess(t *testing.T) {
	st := scanner.NewScannerState()
	o := NewOracle()
	v := o.Valid(st, false, true, false)
	assert.False(t, v.Contains(scanner.LOGICAL_AND))
	assert.False(t, v.Contains(scanner.KEYWORD_AND))
	v = o.Valid(st, false, true, true)
	assert.True(t, v.Contains(scanner.LOGICAL_AND))
	assert.True(t, v.Contains(scanner.BACKGROUND_AMP))
	assert.True(t, v.Contains(scanner.KEYWORD_OR))
}

func TestOracleTracksBracketDepth(t *testing.T) {
	o := NewOracle()
	assert.Equal(t, 0, o.BracketDepth())
	o.TrackBracket('(')
	assert.Equal(t, 1, o.BracketDepth())
	o.TrackBracket(')')
	assert.Equal(t, 0, o.BracketDepth())
	o.TrackBracket(')')
	assert.Equal(t, 0, o.BracketDepth(), "depth never goes negative")
}

func TestDiagnosticsErrorRendersFirstAndCount(t *testing.T) {
	ds := Diagnostics{
		{Pos: Pos{Line: 1, Col: 2}, Message: "a"},
		{Pos: Pos{Line: 3, Col: 4}, Message: "b"},
	}
	assert.Contains(t, ds.Error(), "1:2: a")
	assert.Contains(t, ds.Error(), "1 more")
}

func TestDiagnosticsErrorEmpty(t *testing.T) {
	assert.Equal(t, "no diagnostics", Diagnostics(nil).Error())
}
