package llm

import "strings"

// CleanJSONBlock recovers the JSON payload from a model response. Models
// often wrap JSON in ```json fences or surround it with conversational text
// even when instructed not to; both are tolerated here.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Tolerate preamble or trailing prose around the payload.
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")
	if objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx) {
		if out := extractJSONObject(text[objIdx:]); out != "" {
			return out
		}
	} else if arrIdx >= 0 {
		if out := extractJSONArray(text[arrIdx:]); out != "" {
			return out
		}
	}
	return text
}

// extractJSONObject returns the balanced object at the start of s, or "".
// Braces inside string literals do not affect the balance.
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced array at the start of s, or "".
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

func extractBalanced(s string, opener, closer byte) string {
	if s == "" || s[0] != opener {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == opener:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
