package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text while preserving its structure.
// Line endings become LF, trailing whitespace is dropped, runs of spaces
// inside a line collapse to one, and blank-line runs shrink to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine tidies a single line. Bullet markers keep their indentation so
// the list shape survives for the parser downstream.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	if isBulletLine(trimmed) {
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
