package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// run executes the root command in isolation from any user configuration.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	a := newApp()
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	a.close()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWords(t *testing.T) {
	out, err := run(t, "", "words", "ni3hao3")
	require.NoError(t, err)
	require.Equal(t, "ni   3  0-3\nhao  3  3-7\n", out)
}

func TestWordsStdinSubscript(t *testing.T) {
	out, err := run(t, "ni3, hao3 ma\n", "words", "--subscript")
	require.NoError(t, err)
	require.Equal(t, "ni₃ hao₃ ma\n", out)
}

func TestWordsEmpty(t *testing.T) {
	out, err := run(t, "", "words")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestNormalize(t *testing.T) {
	out, err := run(t, "", "normalize", "ǎ ü", "中")
	require.NoError(t, err)
	require.Equal(t, "ǎ   a  3  0\nü   v  0  26\n中  -  0  -1\n", out)
}

func TestNormalizeIgnoreUmlautFromEnv(t *testing.T) {
	t.Setenv("PINYINSEG_IGNORE_UMLAUT", "true")
	out, err := run(t, "", "normalize", "ü")
	require.NoError(t, err)
	require.Equal(t, "ü   v  0  20\n", out)
}

func TestRank(t *testing.T) {
	table := writeFile(t, "ranks.txt", "ma 2\nma3 5\n")
	out, err := run(t, "", "rank", "--table", table, "ma", "mǎ", "mo")
	require.NoError(t, err)
	require.Equal(t, "ma  2\nmǎ  5\nmo  -\n", out)
}

func TestRankCached(t *testing.T) {
	table := writeFile(t, "ranks.yaml", "ranks:\n  ma: 2\n")
	out, err := run(t, "", "rank", "--table", table, "--cache-ttl", "1m", "ma", "ma")
	require.NoError(t, err)
	require.Equal(t, "ma  2\nma  2\n", out)
}

func TestRankDict(t *testing.T) {
	out, err := run(t, "", "rank", "--source", "dict", "zhong1")
	require.NoError(t, err)
	require.NotContains(t, out, "-")
}

func TestRankWithoutTable(t *testing.T) {
	_, err := run(t, "", "rank", "--source", "none", "ma")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no frequency table")
}

func TestSort(t *testing.T) {
	out, err := run(t, "nü3\nnu3\n\nna\nnú\n", "sort")
	require.NoError(t, err)
	require.Equal(t, "na\nnú\nnu3\nnü3\n", out)
}

func TestSortArgsIgnoreUmlaut(t *testing.T) {
	out, err := run(t, "", "sort", "--ignore-umlaut", "nuo", "nü")
	require.NoError(t, err)
	require.Equal(t, "nü\nnuo\n", out)
}

func TestSubscript(t *testing.T) {
	out, err := run(t, "", "subscript", "35", "0")
	require.NoError(t, err)
	require.Equal(t, "₃₅₀\n", out)

	_, err = run(t, "", "subscript", "3x")
	require.Error(t, err)
	require.Contains(t, err.Error(), `'x' is not a digit`)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "subscript: true\n")
	out, err := run(t, "", "--config", cfg, "words", "ni3hao3")
	require.NoError(t, err)
	require.Equal(t, "ni₃ hao₃\n", out)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "words", "ni")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "", "--source", "bogus", "words", "ni")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinyinseg.log")
	_, err := run(t, "", "--log-file", path, "--log-level", "debug", "words", "ni3")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "configuration loaded")
	require.Contains(t, string(content), "segmented input")
}

func TestLogFileClosedAfterFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinyinseg.log")
	_, err := run(t, "", "--log-file", path, "--log-level", "debug", "rank", "--source", "none", "ma")
	require.Error(t, err)

	// Once the command has returned, logging no longer reaches the file.
	log.Error(log.CatCLI, "after close")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "configuration loaded")
	require.NotContains(t, string(content), "after close")
}

func TestRenderWord(t *testing.T) {
	require.Equal(t, "ma3", string(renderWord(nil, []byte("ma"), pinyinseg.Tone3, false)))
	require.Equal(t, "ma", string(renderWord(nil, []byte("ma"), pinyinseg.Neutral, false)))
	require.Equal(t, "ma₃", string(renderWord(nil, []byte("ma"), pinyinseg.Tone3, true)))
}
