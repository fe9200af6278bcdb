package pinyinseg

import "unicode/utf8"

// State is a cursor over a UTF-8 encoded byte slice. It is created by the
// caller with [NewState] and advanced by successive calls to [NextWord]. A
// State must not be used by multiple goroutines at the same time.
type State struct {
	b   []byte
	off int
}

// NewState returns a cursor positioned at the start of b. The slice is not
// copied and must not be modified while the cursor is in use.
func NewState(b []byte) *State {
	return &State{b: b}
}

// Reset repositions the cursor at the start of b.
func (s *State) Reset(b []byte) {
	s.b, s.off = b, 0
}

// Offset returns the number of bytes consumed so far.
func (s *State) Offset() int {
	return s.off
}

// Len returns the length of the underlying input in bytes.
func (s *State) Len() int {
	return len(s.b)
}

// Done reports whether the whole input has been consumed.
func (s *State) Done() bool {
	return s.off >= len(s.b)
}

// Rest returns the input that has not been consumed yet.
func (s *State) Rest() []byte {
	return s.b[s.off:]
}

// StringState is like [State] but iterates over a string.
type StringState struct {
	str string
	off int
}

// NewStringState returns a cursor positioned at the start of str.
func NewStringState(str string) *StringState {
	return &StringState{str: str}
}

// Reset repositions the cursor at the start of str.
func (s *StringState) Reset(str string) {
	s.str, s.off = str, 0
}

// Offset returns the number of bytes consumed so far.
func (s *StringState) Offset() int {
	return s.off
}

// Len returns the length of the underlying input in bytes.
func (s *StringState) Len() int {
	return len(s.str)
}

// Done reports whether the whole input has been consumed.
func (s *StringState) Done() bool {
	return s.off >= len(s.str)
}

// Rest returns the input that has not been consumed yet.
func (s *StringState) Rest() string {
	return s.str[s.off:]
}

// NextWord returns the next pinyin word found in the input of the given
// cursor, together with the tone digit that immediately follows it, and
// advances the cursor past both.
//
// A word is a maximal run of pinyin letters: ASCII letters, precomposed toned
// vowels, ü, and combining tone marks or diaeresis that follow a letter. Any
// code points before the word that cannot start one (spaces, punctuation,
// stray digits, invalid UTF-8) are skipped as a separator. A trailing '1'
// through '4' is returned as the tone. A trailing '0' or '5' is consumed and
// reported as [Neutral], which is also the tone if no digit follows.
//
// The returned word is a sub-slice of the input. Tone marks inside the word
// are left as they are. Use [NormalizedChar] or [Canonical] to interpret them.
//
// This function can be called continuously to partition the entire input
// into separators and words. Each byte is consumed exactly once. When no word
// is left, the cursor is moved to the end of the input and a nil word is
// returned.
func NextWord(s *State) (word []byte, tone Tone) {
	b := s.b
	pos := s.off

	// Skip the separator.
	for pos < len(b) {
		r, length := utf8.DecodeRune(b[pos:])
		if prop := propertyPinyin(r); prop == prLetter || prop == prToned {
			break
		}
		pos += length
	}
	if pos >= len(b) {
		s.off = len(b)
		return nil, Neutral
	}

	// Collect the letter run.
	start := pos
	for pos < len(b) {
		r, length := utf8.DecodeRune(b[pos:])
		if prop := propertyPinyin(r); prop != prLetter && prop != prToned && prop != prMark {
			break
		}
		pos += length
	}
	word = b[start:pos]

	// An optional tone digit.
	if pos < len(b) {
		if t, ok := toneDigit(b[pos]); ok {
			tone = t
			pos++
		}
	}

	s.off = pos
	return word, tone
}

// NextWordInString is like [NextWord] but its input and word are strings. An
// empty word is returned when no word is left.
func NextWordInString(s *StringState) (word string, tone Tone) {
	str := s.str
	pos := s.off

	// Skip the separator.
	for pos < len(str) {
		r, length := utf8.DecodeRuneInString(str[pos:])
		if prop := propertyPinyin(r); prop == prLetter || prop == prToned {
			break
		}
		pos += length
	}
	if pos >= len(str) {
		s.off = len(str)
		return "", Neutral
	}

	// Collect the letter run.
	start := pos
	for pos < len(str) {
		r, length := utf8.DecodeRuneInString(str[pos:])
		if prop := propertyPinyin(r); prop != prLetter && prop != prToned && prop != prMark {
			break
		}
		pos += length
	}
	word = str[start:pos]

	// An optional tone digit.
	if pos < len(str) {
		if t, ok := toneDigit(str[pos]); ok {
			tone = t
			pos++
		}
	}

	s.off = pos
	return word, tone
}
