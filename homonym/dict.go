package homonym

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// FromDict derives a table from the Han character dictionary bundled with
// github.com/mozillazg/go-pinyin. Each reading of each character counts as
// one homonym of its spelling, both with its tone ("ma3") and without it
// ("ma"). Rank 1 is the spelling shared by the most characters. Spellings
// with equal counts are ranked alphabetically, so ranks are dense.
func FromDict() *MapTable {
	return fromReadings(pinyin.PinyinDict)
}

func fromReadings(dict map[int]string) *MapTable {
	counts := map[string]int{}
	for _, readings := range dict {
		for _, reading := range strings.Split(readings, ",") {
			toned := pinyinseg.Canonical(reading, pinyinseg.Neutral)
			if toned == "" {
				continue
			}
			counts[toned]++
			if toneless := strings.TrimRight(toned, "1234"); toneless != toned {
				counts[toneless]++
			}
		}
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})

	t := &MapTable{ranks: make(map[string]int, len(keys))}
	for i, key := range keys {
		t.ranks[key] = i + 1
	}

	log.Debug(log.CatTable, "derived frequency table", "characters", len(dict), "entries", t.Len())
	return t
}
