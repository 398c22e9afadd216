// Package rendering projects a resume document into one of five fixed layout
// variants. Every variant is a pure transformation: the same document and
// template always produce the same VisualDocument, and no variant may drop a
// section.
package rendering

import "fmt"

// Template selects one of the fixed layout variants.
type Template int

// The five layout variants.
const (
	Classic Template = iota
	Modern
	Creative
	Functional
	Executive
)

// Templates lists every variant in selection order.
var Templates = []Template{Classic, Modern, Creative, Functional, Executive}

func (t Template) String() string {
	switch t {
	case Classic:
		return "classic"
	case Modern:
		return "modern"
	case Creative:
		return "creative"
	case Functional:
		return "functional"
	case Executive:
		return "executive"
	default:
		return fmt.Sprintf("template(%d)", int(t))
	}
}

// ParseTemplate converts a template name to its Template value.
func ParseTemplate(name string) (Template, error) {
	for _, t := range Templates {
		if t.String() == name {
			return t, nil
		}
	}
	return Classic, &UnknownTemplateError{Name: name}
}

// UnknownTemplateError reports a template name outside the fixed set.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.Name)
}

// Layout describes the page arrangement of a variant.
type Layout int

// Page arrangements.
const (
	// LayoutSingle is one column with the header at the top.
	LayoutSingle Layout = iota
	// LayoutSidebar places Sidebar sections in a narrow left column.
	LayoutSidebar
	// LayoutBanner places Banner sections in a full-width colored header.
	LayoutBanner
)

// SectionID names the content a section carries, independent of its title.
type SectionID string

// Section identities. Every variant must surface all of them.
const (
	SectionHeader     SectionID = "header"
	SectionContact    SectionID = "contact"
	SectionSummary    SectionID = "summary"
	SectionSkills     SectionID = "skills"
	SectionExperience SectionID = "experience"
	SectionProjects   SectionID = "projects"
	SectionEducation  SectionID = "education"
)

// VisualDocument is the rendered, template-specific projection of a resume
// document. Section order within each region is display order.
type VisualDocument struct {
	Template Template
	Layout   Layout
	Banner   []Section // only for LayoutBanner
	Sidebar  []Section // only for LayoutSidebar
	Main     []Section
}

// Sections returns every section across all regions in display order.
func (v VisualDocument) Sections() []Section {
	out := make([]Section, 0, len(v.Banner)+len(v.Sidebar)+len(v.Main))
	out = append(out, v.Banner...)
	out = append(out, v.Sidebar...)
	out = append(out, v.Main...)
	return out
}

// Section is a titled group of blocks. Header sections have an empty title.
type Section struct {
	ID     SectionID
	Title  string
	Blocks []Block
}

// BlockKind discriminates the Block union.
type BlockKind int

// Block kinds.
const (
	// BlockHeading carries the resume owner's name and job title.
	BlockHeading BlockKind = iota
	// BlockContact is an ordered row or list of contact items.
	BlockContact
	// BlockParagraph is a single paragraph of text.
	BlockParagraph
	// BlockBullets is an ordered bullet list.
	BlockBullets
	// BlockTags is an ordered list rendered as pills or chips.
	BlockTags
	// BlockInline is an ordered list joined inline with separators.
	BlockInline
	// BlockEntry is the heading of an experience/project/education entry.
	BlockEntry
)

// ContactItem is one contact detail with its icon identity and an optional
// hyperlink target.
type ContactItem struct {
	Icon string // "mail", "phone", "location", "linkedin", "globe"
	Text string
	Href string
}

// Entry is the heading of a dated entry. Primary/Secondary carry the two
// leading lines (which one holds the title vs the company is a variant
// choice); Aside and SubAside carry the date range and location.
type Entry struct {
	Primary   string
	Secondary string
	Aside     string
	SubAside  string
}

// Block is one renderable unit inside a section. Exactly the fields relevant
// to Kind are populated.
type Block struct {
	Kind     BlockKind
	Name     string // BlockHeading
	Role     string // BlockHeading
	Text     string // BlockParagraph
	Italic   bool   // BlockParagraph
	Items    []string
	Contacts []ContactItem
	Entry    *Entry
}
