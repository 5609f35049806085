package scanner

// ValidSet is the bitset of token kinds the grammar currently accepts — the
// set `V` consulted by the dispatcher's priority rules. A uint32 comfortably
// covers every
// TokenKind declared in token.go (21 kinds); if the kind list ever grows
// past 32 this will need to widen, which is the reason Contains/Any/With
// go through methods instead of callers poking bits directly.
type ValidSet uint32

func bit(k TokenKind) ValidSet {
	return ValidSet(1) << uint(k)
}

// NewValidSet builds a ValidSet containing exactly the given kinds.
func NewValidSet(kinds ...TokenKind) ValidSet {
	var v ValidSet
	for _, k := range kinds {
		v |= bit(k)
	}
	return v
}

func (v ValidSet) Contains(k TokenKind) bool {
	return v&bit(k) != 0
}

func (v ValidSet) Any(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if v.Contains(k) {
			return true
		}
	}
	return false
}

func (v ValidSet) With(k TokenKind) ValidSet {
	return v | bit(k)
}
