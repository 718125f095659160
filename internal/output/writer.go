// Package output writes summaries to disk in a format picked from the file extension.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPath returns <dir>/<stem>.summary.txt next to the video, or inside
// dir when it is not empty.
func DefaultPath(videoPath, dir string) string {
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(videoPath)
	}
	return filepath.Join(dir, stem+".summary.txt")
}

// TranscriptPath returns the sidecar path used when transcripts are kept.
func TranscriptPath(summaryPath string) string {
	p := strings.TrimSuffix(summaryPath, filepath.Ext(summaryPath))
	p = strings.TrimSuffix(p, ".summary")
	return p + ".transcript.txt"
}

// Write stores the summary at path. ".docx" and ".md" get a title; anything
// else is written as plain UTF-8 text.
func Write(path, title, summary string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		if err := summaryToDocx(title, summary, path); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		return nil
	case ".md":
		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", title, time.Now().Format("2006-01-02 15:04"), summary)
		return writeText(path, md)
	default:
		return writeText(path, summary)
	}
}

func writeText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
