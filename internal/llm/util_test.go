package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "conversational preamble",
			input:    "Here is the structured output:\n\n{\"suggestions\": [], \"missingInformation\": []}",
			expected: `{"suggestions": [], "missingInformation": []}`,
		},
		{
			name:     "trailing prose",
			input:    "{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			expected: `{"key": "value"}`,
		},
		{
			name:     "braces inside strings",
			input:    `Result: {"template": "Hello {name}!"}`,
			expected: `{"template": "Hello {name}!"}`,
		},
		{
			name:     "escaped quotes",
			input:    "Result: {\"message\": \"He said \\\"hello\\\"\"}",
			expected: `{"message": "He said \"hello\""}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are the items:\n[\"item1\", \"item2\"]",
			expected: `["item1", "item2"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a": {"b": [1, 2]}}`, extractJSONObject(`{"a": {"b": [1, 2]}} extra`))
	assert.Equal(t, "", extractJSONObject("not json"))
	assert.Equal(t, "", extractJSONObject(`{"unterminated": `))
	assert.Equal(t, "", extractJSONObject(""))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[{"id": 1}, {"id": 2}]`, extractJSONArray(`[{"id": 1}, {"id": 2}] extra`))
	assert.Equal(t, "", extractJSONArray("not array"))
	assert.Equal(t, "", extractJSONArray(""))
}
