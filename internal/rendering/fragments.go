package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/resume"
)

// Shared fragment builders. Each variant arranges these differently but none
// re-implements them, so a field surfaced here is surfaced everywhere.

func headingSection(d resume.Document) Section {
	return Section{
		ID:     SectionHeader,
		Blocks: []Block{{Kind: BlockHeading, Name: d.Name, Role: d.JobTitle}},
	}
}

func contactItems(d resume.Document) []ContactItem {
	return []ContactItem{
		{Icon: "mail", Text: d.Email, Href: "mailto:" + d.Email},
		{Icon: "phone", Text: d.Phone, Href: "tel:" + d.Phone},
		{Icon: "location", Text: d.Location},
		{Icon: "linkedin", Text: d.LinkedIn, Href: "https://" + d.LinkedIn},
		{Icon: "globe", Text: d.Portfolio, Href: "https://" + d.Portfolio},
	}
}

func contactSection(d resume.Document) Section {
	return Section{
		ID:     SectionContact,
		Blocks: []Block{{Kind: BlockContact, Contacts: contactItems(d)}},
	}
}

func titledContactSection(d resume.Document, title string) Section {
	s := contactSection(d)
	s.Title = title
	return s
}

func summarySection(d resume.Document, title string, italic bool) Section {
	return Section{
		ID:     SectionSummary,
		Title:  title,
		Blocks: []Block{{Kind: BlockParagraph, Text: d.Summary, Italic: italic}},
	}
}

func skillsSection(d resume.Document, title string, kind BlockKind) Section {
	return Section{
		ID:     SectionSkills,
		Title:  title,
		Blocks: []Block{{Kind: kind, Items: append([]string(nil), d.Skills...)}},
	}
}

// experienceSection lays out each experience as an entry heading followed by
// its bullets. companyFirst puts the company on the primary line (the
// Executive arrangement); otherwise the job title leads.
func experienceSection(d resume.Document, title string, companyFirst bool) Section {
	s := Section{ID: SectionExperience, Title: title}
	for _, exp := range d.Experiences {
		entry := Entry{
			Primary:   exp.Title,
			Secondary: exp.Company,
			Aside:     dateRange(exp.StartDate, exp.EndDate),
			SubAside:  exp.Location,
		}
		if companyFirst {
			entry.Primary, entry.Secondary = exp.Company, exp.Title
		}
		s.Blocks = append(s.Blocks,
			Block{Kind: BlockEntry, Entry: &entry},
			Block{Kind: BlockBullets, Items: append([]string(nil), exp.Description...)},
		)
	}
	return s
}

func projectsSection(d resume.Document, title string) Section {
	s := Section{ID: SectionProjects, Title: title}
	for _, p := range d.Projects {
		s.Blocks = append(s.Blocks,
			Block{Kind: BlockEntry, Entry: &Entry{Primary: p.Name, Aside: p.Link}},
			Block{Kind: BlockParagraph, Text: p.Description},
			Block{Kind: BlockInline, Items: append([]string(nil), p.Technologies...)},
		)
	}
	return s
}

func educationSection(d resume.Document, title string) Section {
	s := Section{ID: SectionEducation, Title: title}
	for _, e := range d.Educations {
		s.Blocks = append(s.Blocks, Block{Kind: BlockEntry, Entry: &Entry{
			Primary:   e.Degree,
			Secondary: e.Institution,
			Aside:     dateRange(e.StartDate, e.EndDate),
			SubAside:  e.Location,
		}})
	}
	return s
}

func dateRange(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}
