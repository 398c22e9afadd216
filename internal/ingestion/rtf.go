package ingestion

import "strings"

// Destination groups whose contents are metadata or binary, never body text.
var rtfSkipGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"themedata":  true,
	"*":          true,
}

// extractRTF strips RTF control words and destination groups, keeping only
// the document text. Resume RTF files are simple enough that a full parser
// is not needed; paragraph and line breaks map to newlines, \'hh escapes
// decode as cp1252 (latin-1 for the range resumes use), and \uN escapes
// decode as Unicode code points.
func extractRTF(data []byte) string {
	var sb strings.Builder
	i, n := 0, len(data)
	for i < n {
		switch c := data[i]; c {
		case '{':
			if i+1 < n && data[i+1] == '\\' {
				word, _, _ := rtfControl(data, i+2)
				if rtfSkipGroups[word] {
					i = rtfSkipGroup(data, i)
					continue
				}
			}
			i++
		case '}':
			i++
		case '\\':
			word, param, next := rtfControl(data, i+1)
			i = next
			switch word {
			case "par", "line":
				sb.WriteByte('\n')
			case "tab":
				sb.WriteByte('\t')
			case "~":
				sb.WriteByte(' ')
			case "'":
				sb.WriteRune(rune(param))
			case "u":
				if param < 0 {
					param += 0x10000
				}
				sb.WriteRune(rune(param))
				i = rtfSkipFallback(data, i)
			case "\\", "{", "}":
				sb.WriteString(word)
			}
		case '\r', '\n':
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// rtfControl reads the control word or symbol starting at i (the byte after
// the backslash) and returns the word, its numeric parameter, and the index
// of the first byte after the control. A \'hh escape returns word "'" with
// the decoded byte as the parameter.
func rtfControl(data []byte, i int) (word string, param int, next int) {
	n := len(data)
	if i >= n {
		return "", 0, i
	}
	if data[i] == '\'' {
		i++
		for j := 0; j < 2 && i < n; j++ {
			param = param*16 + hexVal(data[i])
			i++
		}
		return "'", param, i
	}
	if !isRTFAlpha(data[i]) {
		return string(data[i]), 0, i + 1
	}

	start := i
	for i < n && isRTFAlpha(data[i]) {
		i++
	}
	word = string(data[start:i])

	neg := false
	if i < n && data[i] == '-' {
		neg = true
		i++
	}
	for i < n && data[i] >= '0' && data[i] <= '9' {
		param = param*10 + int(data[i]-'0')
		i++
	}
	if neg {
		param = -param
	}
	// A single space after a control word is part of the control, not text.
	if i < n && data[i] == ' ' {
		i++
	}
	return word, param, i
}

// rtfSkipGroup skips a balanced { ... } group starting at the opening brace.
func rtfSkipGroup(data []byte, i int) int {
	depth := 0
	for i < len(data) {
		switch data[i] {
		case '\\':
			i += 2
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

// rtfSkipFallback consumes the legacy fallback character that follows a \uN
// escape, whether written as a raw byte or a \'hh escape.
func rtfSkipFallback(data []byte, i int) int {
	n := len(data)
	if i >= n {
		return i
	}
	if data[i] == '\\' && i+1 < n && data[i+1] == '\'' {
		_, _, next := rtfControl(data, i+1)
		return next
	}
	if data[i] != '{' && data[i] != '}' && data[i] != '\\' {
		return i + 1
	}
	return i
}

func isRTFAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 0
}
