package rendering

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed page.tmpl
var pageTemplateText string

// Inline vector icons keyed by ContactItem.Icon. They are decorative only:
// the DOCX exporter strips them, and the plain-text exporter never sees them.
var icons = map[string]string{
	"mail":     `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M3 8l9 6 9-6M4 6h16a1 1 0 011 1v10a1 1 0 01-1 1H4a1 1 0 01-1-1V7a1 1 0 011-1z"/></svg>`,
	"phone":    `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M3 5a2 2 0 012-2h2l2 5-2 1a11 11 0 005 5l1-2 5 2v2a2 2 0 01-2 2A16 16 0 013 5z"/></svg>`,
	"location": `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 21s-7-5.5-7-11a7 7 0 1114 0c0 5.5-7 11-7 11z"/><circle cx="12" cy="10" r="2.5"/></svg>`,
	"linkedin": `<svg class="icon" viewBox="0 0 24 24" fill="currentColor"><path d="M4 4h4v16H4zM6 2a2 2 0 100 4 2 2 0 000-4zm6 8h4v2a4 4 0 014-2c3 0 4 2 4 5v5h-4v-5c0-1.5-.5-2.5-2-2.5S14 13.5 14 15v5h-4z"/></svg>`,
	"globe":    `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="9"/><path d="M3 12h18M12 3a15 15 0 010 18 15 15 0 010-18z"/></svg>`,
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"icon": func(name string) template.HTML {
		return template.HTML(icons[name])
	},
	"kind": func(b Block) string {
		switch b.Kind {
		case BlockHeading:
			return "heading"
		case BlockContact:
			return "contact"
		case BlockParagraph:
			return "paragraph"
		case BlockBullets:
			return "bullets"
		case BlockTags:
			return "tags"
		case BlockInline:
			return "inline"
		case BlockEntry:
			return "entry"
		default:
			return ""
		}
	},
	"join": strings.Join,
	"layout": func(l Layout) string {
		switch l {
		case LayoutSidebar:
			return "sidebar"
		case LayoutBanner:
			return "banner"
		default:
			return "single"
		}
	},
}).Parse(pageTemplateText))

// HTML serializes a VisualDocument into a standalone page. The output is
// deterministic for a given VisualDocument and is the input to both the PDF
// and DOCX exporters.
func HTML(v VisualDocument) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render %s template HTML: %w", v.Template, err)
	}
	return buf.String(), nil
}
