package pinyinseg

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns the canonical spelling of a pinyin word: lowercase ASCII
// letters, ü written as v, and the tone appended as a digit unless it is
// [Neutral]. The word may be precomposed or decomposed. If tone is Neutral,
// a trailing tone digit in the word or else the first tone mark supplies it.
// A word without letters yields "". So does a word with any code point that
// is not a pinyin letter or a tone digit once composed, such as ň, ç or a
// tone mark on a consonant.
//
// Canonical is idempotent: Canonical(Canonical(w, t), Neutral) equals
// Canonical(w, t).
//
//	Canonical("mǎ", Neutral)   // "ma3"
//	Canonical("Lǜ", Neutral)   // "lv4"
//	Canonical("ma", Tone3)     // "ma3"
//	Canonical("hao5", Neutral) // "hao"
//	Canonical("ňg", Neutral)   // ""
func Canonical(word string, tone Tone) string {
	word = norm.NFC.String(word)

	var (
		b      strings.Builder
		marked = Neutral
		digit  = Neutral
	)
	b.Grow(len(word) + 1)
	for _, r := range word {
		switch propertyPinyin(r) {
		case prMark:
			// Every toned pinyin vowel composes, so a mark left over sits on
			// a consonant or on top of another mark.
			return ""
		case prDigit:
			digit, _ = toneDigit(byte(r))
			continue
		}
		ch, t := NormalizedChar(r)
		if ch == 0 {
			return ""
		}
		if marked == Neutral {
			marked = t
		}
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}

	if b.Len() == 0 {
		return ""
	}
	if tone == Neutral {
		tone = digit
	}
	if tone == Neutral {
		tone = marked
	}
	if tone != Neutral && tone <= Tone4 {
		b.WriteByte('0' + byte(tone))
	}
	return b.String()
}

// wordTone returns tone unless it is Neutral, in which case it returns the
// first tone mark found in word.
func wordTone(word string, tone Tone) Tone {
	if tone != Neutral {
		return tone
	}
	for _, r := range word {
		var t Tone
		if propertyPinyin(r) == prMark {
			t = markTone(r)
		} else {
			_, t = NormalizedChar(r)
		}
		if t != Neutral {
			return t
		}
	}
	return Neutral
}
