package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	docx "github.com/fumiama/go-docx"
)

// DocxConverter converts rendered resume markup into a DOCX binary.
type DocxConverter interface {
	Convert(html string) ([]byte, error)
}

// WordConverter is the go-docx backed converter. It operates on a detached
// parse of the markup and strips inline vector icons first, since the target
// format cannot represent them reliably.
type WordConverter struct{}

// NewWordConverter returns a WordConverter.
func NewWordConverter() *WordConverter {
	return &WordConverter{}
}

// Convert parses html, removes svg nodes, and writes the remaining textual
// structure into a DOCX document.
func (c *WordConverter) Convert(html string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume markup: %w", err)
	}
	doc.Find("svg").Remove()

	w := docx.New().WithDefaultTheme()

	doc.Find("h1, h2, p, li, div.role, div.inline, div.entry").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			w.AddParagraph().AddText(text).Size("36")
		case "h2":
			w.AddParagraph().AddText(text).Size("26").Color("334155")
		case "li":
			w.AddParagraph().AddText("• " + text).Size("21")
		default:
			w.AddParagraph().AddText(text).Size("21")
		}
	})

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write DOCX: %w", err)
	}
	return buf.Bytes(), nil
}

// StripVectorIcons removes svg nodes from html and returns the result. It
// never modifies its input; the returned markup is an independent copy.
func StripVectorIcons(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse resume markup: %w", err)
	}
	doc.Find("svg").Remove()
	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize stripped markup: %w", err)
	}
	return out, nil
}
