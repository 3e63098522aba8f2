package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fullByteRange() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func collectPaths(entries []FileContent) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func findEntry(t *testing.T, entries []FileContent, path string) FileContent {
	t.Helper()
	for _, e := range entries {
		if e.Path == path {
			return e
		}
	}
	t.Fatalf("no entry for %s in %v", path, collectPaths(entries))
	return FileContent{}
}

func TestCollectContentsTextAndBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "print('hello')\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), fullByteRange(), 0o644))

	rules, err := LoadRuleSets(dir, nil, zap.NewNop())
	require.NoError(t, err)

	entries, err := CollectContents(dir, rules, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	text := findEntry(t, entries, "a.py")
	assert.False(t, text.Binary)
	assert.Equal(t, "print('hello')\n", text.Payload)

	bin := findEntry(t, entries, "blob.bin")
	assert.True(t, bin.Binary)
	assert.Equal(t, fullByteRange(), decodeBinary(bin.Payload),
		"every byte value 0x00-0xFF must round-trip")
}

func TestCollectContentsHonorsContentOnlyRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, SettingsFileName), "ignore-content:\n  - \"SECRET.md\"\n")
	writeFile(t, filepath.Join(dir, "SECRET.md"), "top secret")
	writeFile(t, filepath.Join(dir, "a.py"), "pass")

	rules, err := LoadRuleSets(dir, nil, zap.NewNop())
	require.NoError(t, err)

	entries, err := CollectContents(dir, rules, zap.NewNop())
	require.NoError(t, err)

	paths := collectPaths(entries)
	assert.Contains(t, paths, "a.py")
	assert.NotContains(t, paths, "SECRET.md")
}

func TestCollectContentsSkipsAlwaysIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "config"), "[core]")
	writeFile(t, filepath.Join(dir, "repo-to-text_2024-01-01-00-00-00-UTC.txt"), "old output")
	writeFile(t, filepath.Join(dir, "kept.txt"), "ok")

	rules, err := LoadRuleSets(dir, nil, zap.NewNop())
	require.NoError(t, err)

	entries, err := CollectContents(dir, rules, zap.NewNop())
	require.NoError(t, err)

	paths := collectPaths(entries)
	assert.Equal(t, []string{"kept.txt"}, paths)
}

func TestCollectContentsNegatedPatternSurvivesIgnoredDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, GitignoreFileName), "build/\n!build/keep.txt\n")
	writeFile(t, filepath.Join(dir, "build", "drop.txt"), "x")
	writeFile(t, filepath.Join(dir, "build", "keep.txt"), "y")

	rules, err := LoadRuleSets(dir, nil, zap.NewNop())
	require.NoError(t, err)

	entries, err := CollectContents(dir, rules, zap.NewNop())
	require.NoError(t, err)

	paths := collectPaths(entries)
	assert.Contains(t, paths, "build/keep.txt")
	assert.NotContains(t, paths, "build/drop.txt")
}

func TestCollectContentsMissingRootFails(t *testing.T) {
	rules, err := LoadRuleSets(t.TempDir(), nil, zap.NewNop())
	require.NoError(t, err)

	_, err = CollectContents(filepath.Join(t.TempDir(), "missing"), rules, zap.NewNop())
	require.Error(t, err)
}

func TestBinaryEncodingRoundTrip(t *testing.T) {
	data := fullByteRange()
	assert.Equal(t, data, decodeBinary(encodeBinary(data)))
	assert.False(t, isTextPayload(data))
	assert.True(t, isTextPayload([]byte("plain text\n")))
	assert.True(t, isTextPayload(nil), "empty files are text")
}
