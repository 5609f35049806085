package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorDisambiguatorLogicalAnd(t *testing.T) {
	io := NewByteLexerIO([]byte("&&rest"))
	tok, ok := operatorDisambiguator(io, NewValidSet(LOGICAL_AND))
	require.True(t, ok)
	assert.Equal(t, LOGICAL_AND, tok.Kind)
	assert.Equal(t, "&&", io.Slice(0, io.Offset()))
}

func TestOperatorDisambiguatorDoubleAmpWithoutLogicalAndValidYields(t *testing.T) {
	io := NewByteLexerIO([]byte("&&rest"))
	_, ok := operatorDisambiguator(io, NewValidSet(BACKGROUND_AMP))
	assert.False(t, ok, "a single '&' is never consumed out of a doubled '&&'")
}

func TestOperatorDisambiguatorBackgroundAmp(t *testing.T) {
	io := NewByteLexerIO([]byte("& rest"))
	tok, ok := operatorDisambiguator(io, NewValidSet(BACKGROUND_AMP))
	require.True(t, ok)
	assert.Equal(t, BACKGROUND_AMP, tok.Kind)
	assert.Equal(t, "&", io.Slice(0, io.Offset()))
}

func TestOperatorDisambiguatorSingleAmpWithoutBackgroundValidYields(t *testing.T) {
	io := NewByteLexerIO([]byte("& rest"))
	_, ok := operatorDisambiguator(io, NewValidSet(LOGICAL_AND))
	assert.False(t, ok)
}

func TestOperatorDisambiguatorLogicalOr(t *testing.T) {
	io := NewByteLexerIO([]byte("||rest"))
	tok, ok := operatorDisambiguator(io, NewValidSet(LOGICAL_OR))
	require.True(t, ok)
	assert.Equal(t, LOGICAL_OR, tok.Kind)
}

func TestOperatorDisambiguatorNeverEmitsSinglePipe(t *testing.T) {
	io := NewByteLexerIO([]byte("|rest"))
	_, ok := operatorDisambiguator(io, NewValidSet(LOGICAL_OR, LOGICAL_AND, BACKGROUND_AMP))
	assert.False(t, ok, "single '|' is the grammar's token, never ours")
}

func TestKeywordOperatorMatchesAndWithWordBoundary(t *testing.T) {
	io := NewByteLexerIO([]byte("and foo"))
	st := NewScannerState()
	tok, ok := keywordOperator(io, NewValidSet(KEYWORD_AND), st)
	require.True(t, ok)
	assert.Equal(t, KEYWORD_AND, tok.Kind)
	assert.Equal(t, "and", io.Slice(0, io.Offset()))
}

func TestKeywordOperatorRejectsPrefixOfLongerIdent(t *testing.T) {
	io := NewByteLexerIO([]byte("android"))
	st := NewScannerState()
	_, ok := keywordOperator(io, NewValidSet(KEYWORD_AND), st)
	assert.False(t, ok, "'android' is not the keyword 'and' at a word boundary")
}

func TestKeywordOperatorOr(t *testing.T) {
	io := NewByteLexerIO([]byte("or bar"))
	st := NewScannerState()
	tok, ok := keywordOperator(io, NewValidSet(KEYWORD_OR), st)
	require.True(t, ok)
	assert.Equal(t, KEYWORD_OR, tok.Kind)
}

func TestKeywordOperatorNotValidWhenNotOffered(t *testing.T) {
	io := NewByteLexerIO([]byte("and foo"))
	st := NewScannerState()
	_, ok := keywordOperator(io, NewValidSet(), st)
	assert.False(t, ok)
}
