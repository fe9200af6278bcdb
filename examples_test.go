package pinyinseg_test

import (
	"fmt"
	"slices"

	"github.com/scalecode-solutions/pinyinseg"
)

func ExampleNextWord() {
	state := pinyinseg.NewState([]byte("ni3hao3"))
	for !state.Done() {
		word, tone := pinyinseg.NextWord(state)
		fmt.Println(string(word), tone)
	}
	// Output: ni 3
	//hao 3
}

func ExampleNextWordInString() {
	state := pinyinseg.NewStringState("Wǒ ài nǐ!")
	for {
		word, tone := pinyinseg.NextWordInString(state)
		if word == "" {
			break
		}
		fmt.Printf("(%s %d)", word, tone)
	}
	fmt.Println(state.Done())
	// Output: (Wǒ 0)(ài 0)(nǐ 0)true
}

func ExampleNormalizedChar() {
	for _, r := range "ǎÉü中" {
		ch, tone := pinyinseg.NormalizedChar(r)
		fmt.Printf("%c %q %d\n", r, ch, tone)
	}
	// Output: ǎ 'a' 3
	//É 'E' 2
	//ü 'v' 0
	//中 '\x00' 0
}

func ExampleOrdinal() {
	fmt.Println(pinyinseg.Ordinal('u', false), pinyinseg.Ordinal('ǚ', false), pinyinseg.Ordinal('ǚ', true), pinyinseg.Ordinal('3', false))
	// Output: 20 26 20 -1
}

func ExampleSubscript() {
	fmt.Println(string(pinyinseg.Subscript('3')), pinyinseg.Subscript('x'))
	// Output: ₃ -1
}

func ExampleAppendSubscript() {
	state := pinyinseg.NewStringState("ni3hao3 ma")
	var b []byte
	for {
		word, tone := pinyinseg.NextWordInString(state)
		if word == "" {
			break
		}
		b = append(b, word...)
		b = pinyinseg.AppendSubscript(b, tone)
	}
	fmt.Println(string(b))
	// Output: ni₃hao₃ma
}

func ExampleCanonical() {
	fmt.Println(pinyinseg.Canonical("mǎ", pinyinseg.Neutral))
	fmt.Println(pinyinseg.Canonical("Lǜ", pinyinseg.Neutral))
	fmt.Println(pinyinseg.Canonical("ma", pinyinseg.Tone3))
	fmt.Println(pinyinseg.Canonical("hao5", pinyinseg.Neutral))
	// Output: ma3
	//lv4
	//ma3
	//hao
}

func ExampleCompare() {
	words := []string{"nü3", "nu3", "na", "nú"}
	slices.SortFunc(words, func(a, b string) int {
		return pinyinseg.Compare(a, b, false)
	})
	fmt.Println(words)
	// Output: [na nú nu3 nü3]
}

type ranks map[string]int

func (r ranks) Rank(key string) (int, bool) {
	rank, ok := r[key]
	return rank, ok
}

func ExampleHomonymFrequency() {
	table := ranks{"ma": 2, "ma3": 5}
	fmt.Println(
		pinyinseg.HomonymFrequency("ma", table),
		pinyinseg.HomonymFrequency("mǎ", table),
		pinyinseg.HomonymFrequency("ma3", table),
		pinyinseg.HomonymFrequency("ni hao", table),
	)
	// Output: 2 5 5 -1
}
