package export

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/resume"
)

func TestPlainText_SeedDocumentExactShape(t *testing.T) {
	d := resume.DefaultDocument()
	out := PlainText(d)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "PRIYA SHARMA", lines[0])
	assert.Equal(t, "Senior Software Engineer", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "CONTACT", lines[3])
	assert.Equal(t, "priya.sharma@email.com | +91 98765 43210 | Bengaluru, India", lines[4])
	assert.Equal(t, "LinkedIn: linkedin.com/in/priyasharma | Portfolio: priyasharma.dev", lines[5])

	// The first experience contributes exactly 4 bullet lines. The second
	// entry's header anchors the end of the slice; matching on the company
	// keeps it from landing inside "SENIOR SOFTWARE ENGINEER |".
	expSection := out[strings.Index(out, "WORK EXPERIENCE"):strings.Index(out, "PROJECTS")]
	firstEntry := expSection[strings.Index(expSection, "SENIOR SOFTWARE ENGINEER"):strings.Index(expSection, "\nSOFTWARE ENGINEER | CodeCrafters")]
	bullets := 0
	for _, line := range strings.Split(firstEntry, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	assert.Equal(t, 4, bullets)

	assert.Contains(t, out, "SKILLS\nJavaScript (ES6+), TypeScript,")
	assert.Contains(t, out, "Technologies: React, WebSockets, Node.js, Docker")
	assert.Contains(t, out, "Bachelor of Technology in Computer Science, Indian Institute of Technology, Bombay")
}

func TestPlainText_PreservesListOrder(t *testing.T) {
	d := resume.Document{
		Name:   "A B",
		Skills: []string{"z", "a", "z"},
		Experiences: []resume.Experience{
			{ID: 1, Title: "second chronologically, first in list"},
			{ID: 2, Title: "first chronologically, second in list"},
		},
	}
	out := PlainText(d)
	assert.Contains(t, out, "z, a, z")
	assert.Less(t,
		strings.Index(out, "SECOND CHRONOLOGICALLY"),
		strings.Index(out, "FIRST CHRONOLOGICALLY"),
		"experiences keep input order; no reverse-chronological sort is applied")
}

func TestPlainText_Deterministic(t *testing.T) {
	d := resume.DefaultDocument()
	assert.Equal(t, PlainText(d), PlainText(d))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Priya_Sharma_Resume.pdf", FileName("Priya Sharma", "pdf"))
	assert.Equal(t, "A_B_C_Resume.docx", FileName("  A  B\tC ", "docx"))
	assert.Equal(t, "Resume.pdf", FileName("", "pdf"))
}

// countingBrowser counts capability invocations and blocks until released.
type countingBrowser struct {
	renders atomic.Int32
	release chan struct{}
}

func (b *countingBrowser) RenderImage(context.Context, string) ([]byte, error) {
	b.renders.Add(1)
	if b.release != nil {
		<-b.release
	}
	return []byte("png"), nil
}

func (b *countingBrowser) ComposePDF(context.Context, []byte) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func TestManager_SecondExportOfSameFormatIsNoOp(t *testing.T) {
	browser := &countingBrowser{release: make(chan struct{})}
	exporter := NewPDFExporter(browser)
	m := NewManager()

	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := m.Do(FormatPDF, func() (*Artifact, error) {
			close(started)
			data, err := exporter.Export(context.Background(), "<html></html>")
			if err != nil {
				return nil, err
			}
			return &Artifact{Data: data}, nil
		})
		assert.NoError(t, err)
	}()

	<-started
	_, err := m.Do(FormatPDF, func() (*Artifact, error) {
		data, err := exporter.Export(context.Background(), "<html></html>")
		return &Artifact{Data: data}, err
	})
	require.ErrorIs(t, err, ErrExportInFlight)

	close(browser.release)
	wg.Wait()

	assert.Equal(t, int32(1), browser.renders.Load(), "capability invoked exactly once")
}

func TestManager_DifferentFormatsRunIndependently(t *testing.T) {
	m := NewManager()
	block := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_, _ = m.Do(FormatPDF, func() (*Artifact, error) {
			<-block
			return &Artifact{}, nil
		})
		close(done)
	}()

	// DOCX is not held up by the in-flight PDF export.
	a, err := m.Do(FormatDOCX, func() (*Artifact, error) {
		return &Artifact{Filename: "x.docx"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "x.docx", a.Filename)

	close(block)
	<-done
}

func TestManager_FlagReleasedAfterFailure(t *testing.T) {
	m := NewManager()

	_, err := m.Do(FormatPDF, func() (*Artifact, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	// A failed export must not leave the format wedged.
	a, err := m.Do(FormatPDF, func() (*Artifact, error) {
		return &Artifact{Filename: "ok.pdf"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok.pdf", a.Filename)
}

func TestStripVectorIcons(t *testing.T) {
	in := `<html><body><p>keep</p><svg viewBox="0 0 24 24"><path d="M0 0"/></svg></body></html>`
	out, err := StripVectorIcons(in)
	require.NoError(t, err)
	assert.Contains(t, out, "keep")
	assert.NotContains(t, out, "<svg")
	// Input string is untouched (the converter works on a detached copy).
	assert.Contains(t, in, "<svg")
}

func TestWordConverter_ProducesDocx(t *testing.T) {
	html := `<html><body>
		<h1>Priya Sharma</h1>
		<div class="role">Senior Software Engineer</div>
		<h2>Summary</h2>
		<p>Did things.</p>
		<ul><li><svg></svg>priya.sharma@email.com</li></ul>
	</body></html>`

	data, err := NewWordConverter().Convert(html)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// DOCX is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
