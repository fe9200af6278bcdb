// Package homonym provides frequency tables for pinyinseg.HomonymFrequency.
//
// Every table stores keys in canonical form (see pinyinseg.Canonical), so
// "mǎ", "Ma3" and "ma3" all refer to the same entry. Tables are read-only
// after construction and safe for concurrent use.
package homonym

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// MapTable is an in-memory frequency table.
type MapTable struct {
	ranks map[string]int
}

var _ pinyinseg.FrequencyTable = (*MapTable)(nil)

// NewMapTable returns a table holding the given ranks. Keys are
// canonicalized. If two keys share a canonical form, the lower rank wins.
// Negative ranks are dropped because they collide with pinyinseg.NotFound.
// Words that are not pinyin (see pinyinseg.Canonical) are dropped too.
func NewMapTable(ranks map[string]int) *MapTable {
	t := &MapTable{ranks: make(map[string]int, len(ranks))}
	for word, rank := range ranks {
		t.add(word, rank)
	}
	return t
}

func (t *MapTable) add(word string, rank int) {
	if rank < 0 {
		log.Warn(log.CatTable, "skipping negative rank", "word", word, "rank", rank)
		return
	}
	key := pinyinseg.Canonical(word, pinyinseg.Neutral)
	if key == "" {
		log.Warn(log.CatTable, "skipping word that is not pinyin", "word", word)
		return
	}
	if old, ok := t.ranks[key]; ok && old <= rank {
		return
	}
	t.ranks[key] = rank
}

// Rank implements pinyinseg.FrequencyTable.
func (t *MapTable) Rank(key string) (int, bool) {
	rank, ok := t.ranks[key]
	return rank, ok
}

// Len returns the number of entries.
func (t *MapTable) Len() int {
	return len(t.ranks)
}

// Keys returns the canonical keys in ascending rank order, ties broken by
// key.
func (t *MapTable) Keys() []string {
	keys := make([]string, 0, len(t.ranks))
	for key := range t.ranks {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := t.ranks[keys[i]], t.ranks[keys[j]]
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// ReadText reads a table in the plain text format: one "word rank" pair per
// line, separated by whitespace. Blank lines and lines starting with '#' are
// ignored.
func ReadText(r io.Reader) (*MapTable, error) {
	t := &MapTable{ranks: map[string]int{}}

	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", num, len(fields))
		}
		rank, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rank %q: %w", num, fields[1], err)
		}
		if rank < 0 {
			return nil, fmt.Errorf("line %d: negative rank %d", num, rank)
		}
		t.add(fields[0], rank)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return t, nil
}

// yamlFile is the root structure of a YAML frequency table.
type yamlFile struct {
	Ranks map[string]int `yaml:"ranks"`
}

// ReadYAML reads a table in the YAML format:
//
//	ranks:
//	  ma: 2
//	  ma3: 5
func ReadYAML(r io.Reader) (*MapTable, error) {
	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	for word, rank := range file.Ranks {
		if rank < 0 {
			return nil, fmt.Errorf("word %q: negative rank %d", word, rank)
		}
	}
	return NewMapTable(file.Ranks), nil
}

// Open reads the table stored at path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as plain text.
func Open(path string) (*MapTable, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user-configured table
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	var t *MapTable
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = ReadYAML(f)
	default:
		t, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info(log.CatTable, "loaded frequency table", "path", path, "entries", t.Len())
	return t, nil
}
