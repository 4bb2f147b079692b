// Package tasks loads the task list captured by the messaging bot.
package tasks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/halewongai/site-sync/internal/types"
)

// Load reads the task list at path. A missing file yields an empty list;
// malformed JSON is fatal and returned as a LoadError. The raw bytes are
// returned for schema checking (nil when the default was used).
func Load(path string) (*types.TaskList, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultList(), nil, nil
		}
		return nil, nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var list types.TaskList
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &list, content, nil
}

// DefaultList is published when the capture bot has not written tasks.json yet.
func DefaultList() *types.TaskList {
	return &types.TaskList{
		Meta:  types.TaskMeta{Version: 1},
		Tasks: []types.Task{},
	}
}
