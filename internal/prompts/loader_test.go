package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("resume.json", "parse-resume")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Analyze the resume text provided")
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("resume.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Resume Text:\n---\n{{.ResumeText}}\n---"
	result := Format(template, map[string]string{"ResumeText": "Priya Sharma"})
	assert.Equal(t, "Resume Text:\n---\nPriya Sharma\n---", result)
}
