// Package publish writes rendered artifacts into the site repository.
//
// All writes are whole-file overwrites. There is no atomic rename and no
// backup of the previous version; the site is fully regenerated on every run.
package publish

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON pretty-prints v to path with two-space indentation, UTF-8 text
// left unescaped, and a trailing newline. Parent directories are created as
// needed.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return write(path, buf.Bytes())
}

// WriteHTML writes a rendered page to path, creating parent directories as
// needed.
func WriteHTML(path, html string) error {
	return write(path, []byte(html))
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
