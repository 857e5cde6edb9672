package summarizer

import (
	_ "embed"
	"fmt"
	"strings"
)

// promptTemplate is the summarization prompt wrapped around the collected
// git data.
//
//go:embed template.md
var promptTemplate string

// maxGitDataBytes bounds the git text embedded in a prompt so oversized
// diffs do not blow the backend's context window.
const maxGitDataBytes = 48 * 1024

// truncationNotice is appended when git data had to be cut.
const truncationNotice = "\n\n[... git output truncated ...]"

// BuildPrompt wraps git data in the summarization template, truncating the
// data to maxGitDataBytes on a line boundary first.
func BuildPrompt(gitData string) string {
	return fmt.Sprintf(promptTemplate, truncate(gitData, maxGitDataBytes))
}

// truncate cuts s to at most limit bytes, preferring the last newline before
// the limit, and marks the cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := s[:limit]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return cut + truncationNotice
}
