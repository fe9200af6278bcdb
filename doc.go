/*
Package pinyinseg implements classification and segmentation of pinyin, the
romanization of Mandarin Chinese, in UTF-8 encoded text.

# Overview

Using this package, you can:
  - Split text such as "ni3hao3" or "nǐ hǎo" into pinyin words and tones
  - Reduce toned vowels (ā, ǘ, ...) to a plain letter plus a tone number
  - Sort pinyin alphabetically, with or without distinguishing ü from u
  - Render tone numbers as subscripts (ni₃)
  - Look up how common a spelling is among homonyms

All functions are pure except [NextWord] and [NextWordInString], which
advance a caller-owned cursor. Nothing in this package allocates global
state, so it is safe for concurrent use as long as each goroutine uses its
own cursor.

# Words

A word is a run of pinyin letters optionally followed by a tone digit. Tone
digits 1 through 4 denote the four tones. 0 and 5 both denote the neutral
tone. Text between words (spaces, punctuation, stray digits) is skipped:

	state := pinyinseg.NewState([]byte("ni3hao3"))
	for !state.Done() {
		word, tone := pinyinseg.NextWord(state)
		fmt.Println(string(word), tone)
	}

Use [NextWordInString] with a [StringState] to iterate over strings.

# Characters

[NormalizedChar] maps a letter to its plain ASCII form and the tone its mark
carries. The ü family maps to v, the usual stand-in for ü on keyboards.
[Ordinal] gives the position of a letter in the alphabet, with ü either
sorting after z or together with u. [Subscript] maps a digit to its subscript
glyph.

# Homonyms

[HomonymFrequency] looks up a word in a [FrequencyTable] under its
[Canonical] spelling. The table is supplied by the caller. The homonym
subpackage provides implementations backed by a map, a text or YAML file,
and the Han character dictionary of github.com/mozillazg/go-pinyin.

# Errors

None of the functions in this package fail. Input outside the expected
alphabet is reported with sentinel values: [InvalidDigit], [InvalidOrdinal],
[NotFound], and a zero byte from [NormalizedChar].
*/
package pinyinseg
