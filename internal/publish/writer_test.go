package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewongai/site-sync/internal/types"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks", "tasks.json")
	original := &types.TaskList{
		Meta: types.TaskMeta{Version: 1},
		Tasks: []types.Task{
			{Text: "Buy milk", Status: "open", CreatedAt: "2024-01-01T00:00:00Z"},
		},
	}

	require.NoError(t, WriteJSON(path, original))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored types.TaskList
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *original, restored)
}

func TestWriteJSON_TrailingNewlineAndIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(path, map[string]int{"a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(string(data), "\n"))
	assert.Contains(t, string(data), "  \"a\": 1")
}

func TestWriteJSON_HTMLLeftUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(path, map[string]string{"note": "a <b> & c"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a <b> & c")
}

func TestWriteJSON_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	payload := &types.TaskList{Meta: types.TaskMeta{Version: 1}}

	require.NoError(t, WriteJSON(path, payload))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteJSON(path, payload))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteHTML_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en", "status", "index.html")
	require.NoError(t, WriteHTML(path, "<!doctype html>\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<!doctype html>\n", string(data))
}

func TestWriteHTML_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, WriteHTML(path, "old"))
	require.NoError(t, WriteHTML(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
