// Package logsync copies the Markdown log archive into the site repository,
// redacting secret-shaped tokens on the way through.
package logsync

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/halewongai/site-sync/internal/types"
)

// indexLinkRe matches the dated-link syntax used by INDEX.md.
var indexLinkRe = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2})\]\(([^)]+)\)`)

// Result summarizes one archive sync.
type Result struct {
	FilesCopied int
	Redactions  int
	HasIndex    bool
	IndexLinks  []types.IndexLink
}

// SyncError represents a fatal archive sync failure
type SyncError struct {
	Message string
	Cause   error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("log sync error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("log sync error: %s", e.Message)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Sync copies INDEX.md and every daily/*.md from srcDir into dstDir through
// the redaction filter. A missing source directory is fatal; the archive is
// the one input this system refuses to default.
func Sync(srcDir, dstDir string) (*Result, error) {
	if _, err := os.Stat(srcDir); err != nil {
		return nil, &SyncError{
			Message: fmt.Sprintf("source not found: %s", srcDir),
			Cause:   err,
		}
	}

	if err := os.MkdirAll(filepath.Join(dstDir, "daily"), 0755); err != nil {
		return nil, &SyncError{
			Message: "failed to create destination directories",
			Cause:   err,
		}
	}

	result := &Result{}

	indexSrc := filepath.Join(srcDir, "INDEX.md")
	if _, err := os.Stat(indexSrc); err == nil {
		filtered, err := copyRedacted(indexSrc, filepath.Join(dstDir, "INDEX.md"), result)
		if err != nil {
			return nil, err
		}
		result.HasIndex = true
		result.IndexLinks = ExtractIndexLinks(filtered)
	}

	dailySrc := filepath.Join(srcDir, "daily")
	entries, err := filepath.Glob(filepath.Join(dailySrc, "*.md"))
	if err == nil {
		sort.Strings(entries)
		for _, p := range entries {
			if _, err := copyRedacted(p, filepath.Join(dstDir, "daily", filepath.Base(p)), result); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// ExtractIndexLinks pulls the dated links out of index markdown, in source
// order. Dates and targets are taken verbatim.
func ExtractIndexLinks(markdown string) []types.IndexLink {
	matches := indexLinkRe.FindAllStringSubmatch(markdown, -1)
	links := make([]types.IndexLink, 0, len(matches))
	for _, m := range matches {
		links = append(links, types.IndexLink{Date: m[1], Href: m[2]})
	}
	return links
}

// copyRedacted reads src, applies redaction, and writes the filtered text to
// dst. Returns the filtered content for further processing.
func copyRedacted(src, dst string, result *Result) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", &SyncError{
			Message: fmt.Sprintf("failed to read %s", src),
			Cause:   err,
		}
	}

	filtered, n := Redact(string(data))
	result.Redactions += n

	if err := os.WriteFile(dst, []byte(filtered), 0644); err != nil {
		return "", &SyncError{
			Message: fmt.Sprintf("failed to write %s", dst),
			Cause:   err,
		}
	}
	result.FilesCopied++

	return filtered, nil
}
