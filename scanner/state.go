package scanner

import "fmt"

// ScannerState is everything that persists across invocations of the
// scanner. It is created on parser construction, serialized at each parse
// checkpoint, deserialized on resumption or error recovery, and destroyed
// on parser teardown; no cross-parse sharing ever happens.
type ScannerState struct {
	// indentStack is never empty; indentStack[0] is always 0. Monotone
	// non-decreasing bottom-to-top.
	indentStack []int

	// delimiterStack holds the currently-open string delimiters,
	// innermost (most recently opened) last.
	delimiterStack []Delimiter

	// insideInterpolated caches "top of delimiterStack has the format
	// flag", recomputed on every push/pop rather than stored independently,
	// so it can never drift out of sync with the stack: a successful
	// STRING_END pops exactly one Delimiter and clears InsideInterpolated
	// based on the new top.
	insideInterpolated bool

	// UnicodeIdentifiers, when true, widens identifier scanning from
	// ASCII-only classes to PEP 3131 Unicode identifiers. Defaults to
	// false, so existing callers that never set it keep ASCII-only behavior.
	UnicodeIdentifiers bool

	// extraShellCommands / extraReservedWords let a host (in this repo,
	// the xonshtoken CLI in cli/ via its --config file) extend the fixed dictionaries
	// in keywords.go without ever removing an entry from them.
	extraShellCommands map[string]struct{}
	extraReservedWords map[string]struct{}
}

// NewScannerState returns a freshly initialized state: indent stack {0},
// empty delimiter stack, not inside an interpolated string.
func NewScannerState() *ScannerState {
	return &ScannerState{indentStack: []int{0}}
}

func (s *ScannerState) IndentTop() int {
	return s.indentStack[len(s.indentStack)-1]
}

func (s *ScannerState) PushIndent(width int) {
	s.indentStack = append(s.indentStack, width)
}

// PopIndent removes the top indent width. It is a programming error to call
// this when only the bottom `0` remains; callers (the indent engine) must
// never let that happen, per the "IndentStack is never empty" invariant.
func (s *ScannerState) PopIndent() {
	if len(s.indentStack) <= 1 {
		panic("scanner: PopIndent called with only the bottom 0 left on the stack")
	}
	s.indentStack = s.indentStack[:len(s.indentStack)-1]
}

func (s *ScannerState) IndentDepth() int {
	return len(s.indentStack)
}

func (s *ScannerState) InsideInterpolated() bool {
	return s.insideInterpolated
}

func (s *ScannerState) TopDelimiter() (Delimiter, bool) {
	if len(s.delimiterStack) == 0 {
		return 0, false
	}
	return s.delimiterStack[len(s.delimiterStack)-1], true
}

func (s *ScannerState) PushDelimiter(d Delimiter) {
	s.delimiterStack = append(s.delimiterStack, d)
	s.insideInterpolated = d.IsFormat()
}

// PopDelimiter removes the innermost delimiter and recomputes
// insideInterpolated from the new top. Panics if the stack is empty, which
// would mean a STRING_END fired without a matching STRING_START having
// pushed one first — a dispatcher bug.
func (s *ScannerState) PopDelimiter() Delimiter {
	if len(s.delimiterStack) == 0 {
		panic("scanner: PopDelimiter called on an empty delimiter stack")
	}
	top := s.delimiterStack[len(s.delimiterStack)-1]
	s.delimiterStack = s.delimiterStack[:len(s.delimiterStack)-1]
	if len(s.delimiterStack) == 0 {
		s.insideInterpolated = false
	} else {
		s.insideInterpolated = s.delimiterStack[len(s.delimiterStack)-1].IsFormat()
	}
	return top
}

func (s *ScannerState) DelimiterDepth() int {
	return len(s.delimiterStack)
}

// WithExtraShellCommands extends the shell-command dictionary used by the
// line-class predictor. Entries here are additive only; shellCommands in
// keywords.go is never mutated.
func (s *ScannerState) WithExtraShellCommands(words ...string) {
	if s.extraShellCommands == nil {
		s.extraShellCommands = make(map[string]struct{}, len(words))
	}
	for _, w := range words {
		s.extraShellCommands[w] = struct{}{}
	}
}

func (s *ScannerState) WithExtraReservedWords(words ...string) {
	if s.extraReservedWords == nil {
		s.extraReservedWords = make(map[string]struct{}, len(words))
	}
	for _, w := range words {
		s.extraReservedWords[w] = struct{}{}
	}
}

func (s *ScannerState) isReservedKeyword(word string) bool {
	if isReservedKeyword(word) {
		return true
	}
	if s.extraReservedWords != nil {
		_, ok := s.extraReservedWords[word]
		return ok
	}
	return false
}

func (s *ScannerState) isKnownShellCommand(word string) bool {
	return isKnownShellCommand(word, s.extraShellCommands)
}

// Serialize encodes the state into a compact byte buffer:
//
//	byte 0:       bit 0 = InsideInterpolated, bit 1 = UnicodeIdentifiers, bits 2-7 reserved (0)
//	byte 1:       delimiter_count, saturated to 255
//	bytes 2..N:   one flag byte per delimiter, bottom-to-top
//	remaining:    indent stack entries, skipping the implicit 0 bottom, each
//	              clamped to a byte (widths > 255 saturate to 255)
//
// The caller-provided maxLen bounds the output: delimiter count saturates,
// and indent entries beyond what fits are silently truncated (this is a
// lossy, host-buffer-bounded encoding by design, not a bug).
func (s *ScannerState) Serialize(maxLen int) []byte {
	var b0 byte
	if s.insideInterpolated {
		b0 |= 1
	}
	if s.UnicodeIdentifiers {
		b0 |= 2
	}

	delimCount := len(s.delimiterStack)
	if delimCount > 255 {
		delimCount = 255
	}

	out := make([]byte, 0, 2+delimCount+len(s.indentStack)-1)
	out = append(out, b0, byte(delimCount))
	for i := 0; i < delimCount; i++ {
		out = append(out, byte(s.delimiterStack[i]))
	}
	for _, w := range s.indentStack[1:] {
		out = append(out, clampByte(w))
	}

	if maxLen >= 0 && len(out) > maxLen {
		out = out[:maxLen]
	}
	return out
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Deserialize restores a ScannerState from a buffer produced by Serialize.
// The indent stack is reinitialized with the implicit 0 bottom and the
// serialized widths appended; the delimiter stack and both flag bits are
// restored. An empty buffer decodes to NewScannerState().
func Deserialize(buf []byte) (*ScannerState, error) {
	s := NewScannerState()
	if len(buf) == 0 {
		return s, nil
	}
	if len(buf) < 2 {
		return nil, fmt.Errorf("scanner: truncated state buffer (len %d)", len(buf))
	}

	b0 := buf[0]
	s.insideInterpolated = b0&1 != 0
	s.UnicodeIdentifiers = b0&2 != 0

	delimCount := int(buf[1])
	if 2+delimCount > len(buf) {
		return nil, fmt.Errorf("scanner: truncated delimiter stack (want %d entries, have %d bytes left)", delimCount, len(buf)-2)
	}
	for i := 0; i < delimCount; i++ {
		s.delimiterStack = append(s.delimiterStack, Delimiter(buf[2+i]))
	}

	for _, w := range buf[2+delimCount:] {
		s.indentStack = append(s.indentStack, int(w))
	}

	return s, nil
}
