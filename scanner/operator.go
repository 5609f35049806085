package scanner

// operatorDisambiguator runs before the line-class predictor whenever any
// of {LOGICAL_AND, LOGICAL_OR, BACKGROUND_AMP} is grammar-valid, and
// decides between the doubled and single forms of '&' and '|' without ever
// emitting a bare '|' (the grammar owns that), using the same
// peek-one-ahead-before-committing lookahead the rest of the scanner uses
// to disambiguate multi-character operators.
func operatorDisambiguator(io LexerIO, v ValidSet) (Token, bool) {
	b0, ok := io.Peek(0)
	if !ok {
		return Token{}, false
	}

	switch b0 {
	case '&':
		b1, ok1 := io.Peek(1)
		if ok1 && b1 == '&' {
			if v.Contains(LOGICAL_AND) {
				start := io.Pos()
				io.Advance()
				io.Advance()
				end := io.Pos()
				io.MarkEnd()
				return Token{Kind: LOGICAL_AND, Start: start, End: end}, true
			}
			return Token{}, false
		}
		if v.Contains(BACKGROUND_AMP) {
			start := io.Pos()
			io.Advance()
			end := io.Pos()
			io.MarkEnd()
			return Token{Kind: BACKGROUND_AMP, Start: start, End: end}, true
		}
		return Token{}, false

	case '|':
		b1, ok1 := io.Peek(1)
		if ok1 && b1 == '|' && v.Contains(LOGICAL_OR) {
			start := io.Pos()
			io.Advance()
			io.Advance()
			end := io.Pos()
			io.MarkEnd()
			return Token{Kind: LOGICAL_OR, Start: start, End: end}, true
		}
		// Single '|' is never emitted here.
		return Token{}, false
	}

	return Token{}, false
}

// keywordOperator matches the `and`/`or` keyword operators: when
// KEYWORD_AND/KEYWORD_OR is grammar-valid, match the literal word followed
// by a non-identifier character.
func keywordOperator(io LexerIO, v ValidSet, st *ScannerState) (Token, bool) {
	if !v.Contains(KEYWORD_AND) && !v.Contains(KEYWORD_OR) {
		return Token{}, false
	}

	for _, cand := range [...]struct {
		word string
		kind TokenKind
	}{
		{"and", KEYWORD_AND},
		{"or", KEYWORD_OR},
	} {
		if !v.Contains(cand.kind) {
			continue
		}
		if matchWordBoundary(io, cand.word, st) {
			start := io.Pos()
			for range cand.word {
				io.Advance()
			}
			end := io.Pos()
			io.MarkEnd()
			return Token{Kind: cand.kind, Start: start, End: end}, true
		}
	}
	return Token{}, false
}

// matchWordBoundary reports whether the literal word sits at offset 0 and is
// followed by a non-identifier-continue byte (or EOF).
func matchWordBoundary(io LexerIO, word string, st *ScannerState) bool {
	for i := 0; i < len(word); i++ {
		b, ok := io.Peek(i)
		if !ok || b != word[i] {
			return false
		}
	}
	return !identContinuesAt(io, len(word), st.UnicodeIdentifiers)
}
