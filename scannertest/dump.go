// Package scannertest provides test-support helpers for exercising the
// scanner and host packages: a disposable per-run identity (Fixture, with
// an id derived from gofrs/uuid but no database involved) and an
// alecthomas/repr-based token dumper for golden-file-style assertions.
package scannertest

import (
	"strings"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"

	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

// Fixture is a disposable per-test identity: here it carries no database
// handle, just an id tests can fold into golden-file names so parallel test
// runs never collide.
type Fixture struct {
	ID uuid.UUID
}

// NewFixture mints a fresh Fixture. Panics only if the system CSPRNG is
// broken — failing fast on an unrecoverable setup error rather than
// limping on with a zero id.
func NewFixture() *Fixture {
	id, err := uuid.NewV4()
	if err != nil {
		panic(err)
	}
	return &Fixture{ID: id}
}

// DumpTokens renders a token stream with alecthomas/repr, one token per
// line. Useful for golden-file regeneration and for quick eyeballing in
// failing test output.
func DumpTokens(toks []scanner.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(repr.String(t))
		b.WriteString("\n")
	}
	return b.String()
}

// KindSequence extracts just the TokenKind sequence from a token stream,
// the minimal shape most scanner tests assert against.
func KindSequence(toks []scanner.Token) []scanner.TokenKind {
	kinds := make([]scanner.TokenKind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}
