package pinyinseg

// NotFound is returned by [HomonymFrequency] for words that are not in the
// frequency table.
const NotFound = -1

// FrequencyTable maps canonical pinyin spellings (see [Canonical]) to
// homonym frequency ranks, lower ranks being more common. Implementations
// must be safe for concurrent readers. The homonym package provides several.
type FrequencyTable interface {
	Rank(key string) (rank int, ok bool)
}

// HomonymFrequency returns the rank of a single pinyin word in the given
// table, or [NotFound] if the word is not listed. The word may carry a tone
// digit ("ma3") or tone marks ("mǎ"). Input that is not exactly one word,
// such as "ni hao", an empty string, or a nil table, also yields NotFound.
//
// The word is scanned with a cursor of its own. No caller state is touched.
func HomonymFrequency(word string, table FrequencyTable) int {
	if table == nil {
		return NotFound
	}

	state := NewStringState(word)
	w, tone := NextWordInString(state)
	if w == "" || word[:len(w)] != w || state.Offset() != len(word) {
		return NotFound
	}

	rank, ok := table.Rank(Canonical(w, tone))
	if !ok {
		return NotFound
	}
	return rank
}
