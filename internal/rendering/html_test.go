package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/resume"
)

func TestHTML_Deterministic(t *testing.T) {
	d := resume.DefaultDocument()
	for _, tpl := range Templates {
		v, err := Render(d, tpl)
		require.NoError(t, err)

		a, err := HTML(v)
		require.NoError(t, err)
		b, err := HTML(v)
		require.NoError(t, err)
		assert.Equal(t, a, b, "template %s", tpl)
	}
}

func TestHTML_ContainsContentAndIcons(t *testing.T) {
	d := resume.DefaultDocument()
	v, err := Render(d, Classic)
	require.NoError(t, err)

	out, err := HTML(v)
	require.NoError(t, err)

	assert.Contains(t, out, "Priya Sharma")
	assert.Contains(t, out, "Senior Software Engineer")
	assert.Contains(t, out, `href="mailto:priya.sharma@email.com"`)
	assert.Contains(t, out, "<svg", "contact rows carry inline vector icons")
	assert.Contains(t, out, "tpl-classic")
}

func TestHTML_LayoutClasses(t *testing.T) {
	d := resume.DefaultDocument()

	modern, err := Render(d, Modern)
	require.NoError(t, err)
	out, err := HTML(modern)
	require.NoError(t, err)
	assert.Contains(t, out, "layout-sidebar")
	assert.Contains(t, out, "<aside>")

	creative, err := Render(d, Creative)
	require.NoError(t, err)
	out, err = HTML(creative)
	require.NoError(t, err)
	assert.Contains(t, out, "layout-banner")
	assert.Contains(t, out, `class="banner"`)
}

func TestHTML_EscapesUserContent(t *testing.T) {
	d := resume.DefaultDocument()
	d, err := resume.SetPersonal(d, resume.FieldSummary, `<script>alert("x")</script>`)
	require.NoError(t, err)

	v, err := Render(d, Classic)
	require.NoError(t, err)
	out, err := HTML(v)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>alert")
	assert.True(t, strings.Contains(out, "&lt;script&gt;") || strings.Contains(out, "&#34;"))
}
