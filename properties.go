package pinyinseg

// Code point classes used by the word scanner.
const (
	prNone   = iota // Not part of a pinyin word (must be 0)
	prLetter        // ASCII letter
	prToned         // Precomposed vowel with a tone mark or diaeresis
	prMark          // Combining tone mark or diaeresis following a letter
	prDigit         // Tone digit
)

// Combining marks that may follow a vowel in decomposed (NFD) input.
const (
	markGrave     = 0x0300 // Fourth tone
	markAcute     = 0x0301 // Second tone
	markMacron    = 0x0304 // First tone
	markDiaeresis = 0x0308 // Umlaut
	markCaron     = 0x030c // Third tone
)

// propertySearch performs a binary search on a sorted tone table whose
// entries are [startCodePoint, endCodePoint, base, tone]. It returns the
// matching entry, or a zero entry if r is not covered.
func propertySearch(table [][4]int, r rune) [4]int {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch entry := table[mid]; {
		case int(r) < entry[0]:
			hi = mid
		case int(r) > entry[1]:
			lo = mid + 1
		default:
			return entry
		}
	}
	return [4]int{}
}

// toneProperty returns the base letter and tone of a precomposed pinyin
// vowel, or a zero base if r is not one.
func toneProperty(r rune) (base rune, tone Tone) {
	if r < 0x00c0 {
		return 0, Neutral
	}
	entry := propertySearch(toneCodePoints, r)
	return rune(entry[2]), Tone(entry[3])
}

// propertyPinyin returns the class of the given code point (see constants
// above) while fast tracking ASCII.
func propertyPinyin(r rune) int {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return prLetter
	}
	if r >= '0' && r <= '5' {
		return prDigit
	}
	if r < 0x00c0 {
		return prNone
	}
	switch r {
	case markGrave, markAcute, markMacron, markDiaeresis, markCaron:
		return prMark
	}
	if base, _ := toneProperty(r); base != 0 {
		return prToned
	}
	return prNone
}

// markTone returns the tone encoded by a combining mark. The diaeresis and
// anything else carry no tone.
func markTone(r rune) Tone {
	switch r {
	case markMacron:
		return Tone1
	case markAcute:
		return Tone2
	case markCaron:
		return Tone3
	case markGrave:
		return Tone4
	}
	return Neutral
}
