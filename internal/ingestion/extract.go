// Package ingestion converts uploaded resume files into plain text, keyed by
// the file's declared MIME type.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// Accepted upload content types.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDoc  = "application/msword"
	MIMEText = "text/plain"
	MIMERTF  = "application/rtf"
)

// allowedTypes is the upload allow-list. Anything else is rejected before
// extraction is attempted.
var allowedTypes = map[string]bool{
	MIMEPDF:  true,
	MIMEDocx: true,
	MIMEDoc:  true,
	MIMEText: true,
	MIMERTF:  true,
}

// Allowed reports whether the declared MIME type is on the upload allow-list.
func Allowed(mimeType string) bool {
	return allowedTypes[mimeType]
}

// UnsupportedTypeError reports a declared MIME type outside the allow-list.
type UnsupportedTypeError struct {
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIME)
}

// ExtractionError reports content that could not be read. The cause carries
// library detail for the log; callers surface only a generic message.
type ExtractionError struct {
	MIME  string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s content: %v", e.MIME, e.Cause)
	}
	return fmt.Sprintf("no extractable text in %s content", e.MIME)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText pulls plain text out of an uploaded document. The result is
// cleaned with CleanText; an allow-listed file that yields no text at all is
// an ExtractionError, not an empty success.
func ExtractText(data []byte, mimeType string) (string, error) {
	if !Allowed(mimeType) {
		return "", &UnsupportedTypeError{MIME: mimeType}
	}

	var (
		text string
		err  error
	)
	switch mimeType {
	case MIMEPDF:
		text, err = extractPDF(data)
	case MIMEDocx:
		text, err = extractDocx(data)
	case MIMEText:
		text = string(data)
	case MIMERTF:
		text = extractRTF(data)
	case MIMEDoc:
		text = extractDoc(data)
	}
	if err != nil {
		return "", &ExtractionError{MIME: mimeType, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{MIME: mimeType}
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	content, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err := io.Copy(&sb, content); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					sb.WriteString(t.Text)
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
