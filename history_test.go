package codextest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestHistoryRecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), HistoryFileName)
	h := NewHistory(path)

	require.NoError(t, h.Record([]string{"--test"}))
	require.NoError(t, h.Record([]string{"--bogus", "extra", "args"}))

	assert.Equal(t, []string{"--test", "--bogus extra args"}, readLines(t, path))
}

func TestHistoryRecordEmptyArgsWritesEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), HistoryFileName)

	require.NoError(t, NewHistory(path).Record(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestHistoryRecordKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), HistoryFileName)
	require.NoError(t, os.WriteFile(path, []byte("older\n"), 0o644))

	require.NoError(t, NewHistory(path).Record([]string{"-h"}))

	assert.Equal(t, []string{"older", "-h"}, readLines(t, path))
}

func TestHistoryRecordFailures(t *testing.T) {
	tests := []struct {
		name string
		h    *History
	}{
		{name: "nil recorder", h: nil},
		{name: "empty path", h: NewHistory("")},
		{name: "missing directory", h: NewHistory(filepath.Join(t.TempDir(), "no", "such", "dir", HistoryFileName))},
		{name: "path is a directory", h: NewHistory(t.TempDir())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.h.Record([]string{"--test"}))
		})
	}
}
