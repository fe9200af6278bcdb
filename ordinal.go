package pinyinseg

import (
	"strings"
	"unicode/utf8"
)

// Ordinal values for letters that are not a-z.
const (
	InvalidOrdinal = -1 // Not a pinyin letter.
	UmlautOrdinal  = 26 // ü when umlauts are not ignored. It sorts after z.
)

// Ordinal returns the alphabetical position of a pinyin letter: 0 for a
// through 25 for z, regardless of case or tone mark. The ü family returns
// [UmlautOrdinal], or the ordinal of u if ignoreUmlaut is set. Any other code
// point returns [InvalidOrdinal].
func Ordinal(r rune, ignoreUmlaut bool) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	}
	base, _ := toneProperty(r)
	switch base {
	case 0:
		return InvalidOrdinal
	case 'ü', 'Ü':
		if ignoreUmlaut {
			return 'u' - 'a'
		}
		return UmlautOrdinal
	}
	return Ordinal(base, ignoreUmlaut)
}

// Compare compares two strings of pinyin in dictionary order. Words are
// compared letter by letter by [Ordinal], then by length, then by tone. The
// tone is the trailing digit, or the first tone mark if there is no digit.
// Strings that compare equal word for word fall back to [strings.Compare] so
// the result is a total order.
//
// The result will be 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare(a, b string, ignoreUmlaut bool) int {
	sa, sb := NewStringState(a), NewStringState(b)
	for {
		wa, ta := NextWordInString(sa)
		wb, tb := NextWordInString(sb)
		switch {
		case wa == "" && wb == "":
			return strings.Compare(a, b)
		case wa == "":
			return -1
		case wb == "":
			return 1
		}
		if c := compareWords(wa, wb, ignoreUmlaut); c != 0 {
			return c
		}
		ta, tb = wordTone(wa, ta), wordTone(wb, tb)
		if ta != tb {
			if ta < tb {
				return -1
			}
			return 1
		}
	}
}

// compareWords compares two letter runs by ordinal. Combining marks carry no
// ordinal and are skipped.
func compareWords(a, b string, ignoreUmlaut bool) int {
	for len(a) > 0 && len(b) > 0 {
		ra, la := utf8.DecodeRuneInString(a)
		rb, lb := utf8.DecodeRuneInString(b)
		oa, ob := Ordinal(ra, ignoreUmlaut), Ordinal(rb, ignoreUmlaut)
		if oa == InvalidOrdinal {
			a = a[la:]
			continue
		}
		if ob == InvalidOrdinal {
			b = b[lb:]
			continue
		}
		if oa != ob {
			if oa < ob {
				return -1
			}
			return 1
		}
		a, b = a[la:], b[lb:]
	}
	la, lb := letterCount(a), letterCount(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}

// letterCount returns the number of code points in s that have an ordinal.
func letterCount(s string) (n int) {
	for _, r := range s {
		if Ordinal(r, false) != InvalidOrdinal {
			n++
		}
	}
	return
}
