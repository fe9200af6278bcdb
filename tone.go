package pinyinseg

import "unicode/utf8"

// Tone is a Mandarin tone number. The four contours are 1 through 4 and the
// neutral tone is 0.
type Tone uint8

// Tones as returned by [NormalizedChar] and [NextWord].
const (
	Neutral Tone = iota // No tone mark, or tone digit 0 or 5.
	Tone1               // High level, marked with a macron (ā).
	Tone2               // Rising, marked with an acute accent (á).
	Tone3               // Dipping, marked with a caron (ǎ).
	Tone4               // Falling, marked with a grave accent (à).
)

// InvalidDigit is returned by [Subscript] for code points that are not ASCII
// decimal digits.
const InvalidDigit = -1

// subscriptZero is SUBSCRIPT ZERO. The other subscript digits follow it
// contiguously.
const subscriptZero = 0x2080

// String returns the tone as a single digit, "0" for [Neutral].
func (t Tone) String() string {
	return string(rune('0' + t))
}

// Subscript returns the subscript glyph (₀ through ₉) for an ASCII digit
// code point, or [InvalidDigit] if digit is anything else.
func Subscript(digit rune) rune {
	if digit < '0' || digit > '9' {
		return InvalidDigit
	}
	return subscriptZero + digit - '0'
}

// AppendSubscript appends the UTF-8 encoding of the tone's subscript glyph to
// dst. Neutral tones append nothing.
func AppendSubscript(dst []byte, t Tone) []byte {
	if t == Neutral || t > Tone4 {
		return dst
	}
	return utf8.AppendRune(dst, Subscript(rune('0'+t)))
}

// toneDigit returns the tone for a tone digit byte. Both '0' and '5' denote
// the neutral tone.
func toneDigit(b byte) (Tone, bool) {
	switch {
	case b >= '1' && b <= '4':
		return Tone(b - '0'), true
	case b == '0' || b == '5':
		return Neutral, true
	}
	return Neutral, false
}

// NormalizedChar returns the plain ASCII letter for a pinyin letter together
// with the tone its mark carries. Case is preserved. The ü family maps to 'v'
// (or 'V'), the customary ASCII stand-in for ü. Plain ASCII letters are
// returned unchanged with a [Neutral] tone.
//
// If r is not a pinyin letter, the returned byte is 0.
func NormalizedChar(r rune) (ch byte, tone Tone) {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return byte(r), Neutral
	}
	base, tone := toneProperty(r)
	switch base {
	case 0:
		return 0, Neutral
	case 'ü':
		return 'v', tone
	case 'Ü':
		return 'V', tone
	}
	return byte(base), tone
}
