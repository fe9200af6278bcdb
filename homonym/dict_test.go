package homonym

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/pinyinseg"
)

func TestFromReadings(t *testing.T) {
	dict := map[int]string{
		0x5988: "mā",       // 妈
		0x9EBB: "má",       // 麻
		0x9A6C: "mǎ",       // 马
		0x7801: "mǎ",       // 码
		0x9A82: "mà",       // 骂
		0x5417: "ma,má,mǎ", // 吗
		0x4F60: "nǐ",       // 你
	}
	table := fromReadings(dict)

	// ma: 8 readings, ma3: 3, ma2: 2, then ma, ma1, ma4, ni, ni3 with 1 each.
	require.Equal(t, []string{"ma", "ma3", "ma2", "ma1", "ma4", "ni", "ni3"}, table.Keys())
	require.Equal(t, 1, pinyinseg.HomonymFrequency("ma", table))
	require.Equal(t, 2, pinyinseg.HomonymFrequency("mǎ", table))
	require.Equal(t, 3, pinyinseg.HomonymFrequency("ma2", table))
	require.Equal(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("hao", table))
}

func TestFromReadingsSkipsForeignLetters(t *testing.T) {
	table := fromReadings(map[int]string{
		0x55EF: "ń,ńg,ňg,ǹg,ň,ǹ", // 嗯
		0x5463: "ḿ,m̀",            // 呣
		0x6B38: "ê̄,ế,ê̌,ề",       // 欸
		0x5417: "ma",             // 吗
	})
	require.Equal(t, []string{"ma"}, table.Keys())
	require.Equal(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("g", table))
	require.Equal(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("e", table))
}

func TestFromDictRanksAreDense(t *testing.T) {
	table := FromDict()
	require.Positive(t, table.Len())

	for i, key := range table.Keys() {
		rank, ok := table.Rank(key)
		require.True(t, ok)
		require.Equal(t, i+1, rank, "key %q", key)
	}

	// Every common syllable is present with and without its tone.
	require.NotEqual(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("zhong", table))
	require.NotEqual(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("zhōng", table))
	require.NotEqual(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("lü4", table))

	// Readings with letters outside the alphabet, such as ňg, add no keys.
	require.Equal(t, pinyinseg.NotFound, pinyinseg.HomonymFrequency("g", table))
}
