package rendering

import "github.com/jonathan/resume-builder/internal/resume"

// Render projects a document into the selected template's visual form. It is
// deterministic and never mutates the document.
func Render(d resume.Document, t Template) (VisualDocument, error) {
	switch t {
	case Classic:
		return renderClassic(d), nil
	case Modern:
		return renderModern(d), nil
	case Creative:
		return renderCreative(d), nil
	case Functional:
		return renderFunctional(d), nil
	case Executive:
		return renderExecutive(d), nil
	default:
		return VisualDocument{}, &UnknownTemplateError{Name: t.String()}
	}
}

// renderClassic is a centered single-column layout: summary, experience,
// projects, skills as tags, education.
func renderClassic(d resume.Document) VisualDocument {
	return VisualDocument{
		Template: Classic,
		Layout:   LayoutSingle,
		Main: []Section{
			headingSection(d),
			contactSection(d),
			summarySection(d, "Summary", false),
			experienceSection(d, "Work Experience", false),
			projectsSection(d, "Projects"),
			skillsSection(d, "Skills", BlockTags),
			educationSection(d, "Education"),
		},
	}
}

// renderModern uses a dark sidebar for identity, contact, skills, and
// education, with the narrative sections in the main column.
func renderModern(d resume.Document) VisualDocument {
	return VisualDocument{
		Template: Modern,
		Layout:   LayoutSidebar,
		Sidebar: []Section{
			headingSection(d),
			titledContactSection(d, "Contact"),
			skillsSection(d, "Skills", BlockBullets),
			educationSection(d, "Education"),
		},
		Main: []Section{
			summarySection(d, "Summary", false),
			experienceSection(d, "Work Experience", false),
			projectsSection(d, "Projects"),
		},
	}
}

// renderCreative leads with a full-width colored banner holding the heading
// and contact row, then titles the summary "Profile".
func renderCreative(d resume.Document) VisualDocument {
	return VisualDocument{
		Template: Creative,
		Layout:   LayoutBanner,
		Banner: []Section{
			headingSection(d),
			contactSection(d),
		},
		Main: []Section{
			summarySection(d, "Profile", false),
			experienceSection(d, "Experience", false),
			projectsSection(d, "Projects"),
			skillsSection(d, "Skills", BlockTags),
			educationSection(d, "Education"),
		},
	}
}

// renderFunctional puts skills directly after the summary so competencies
// lead the page.
func renderFunctional(d resume.Document) VisualDocument {
	return VisualDocument{
		Template: Functional,
		Layout:   LayoutSingle,
		Main: []Section{
			headingSection(d),
			contactSection(d),
			summarySection(d, "Summary", false),
			skillsSection(d, "Core Competencies & Skills", BlockTags),
			experienceSection(d, "Professional Experience", false),
			projectsSection(d, "Projects"),
			educationSection(d, "Education"),
		},
	}
}

// renderExecutive is a serif layout with an untitled italic summary and
// company-first experience entries.
func renderExecutive(d resume.Document) VisualDocument {
	return VisualDocument{
		Template: Executive,
		Layout:   LayoutSingle,
		Main: []Section{
			headingSection(d),
			contactSection(d),
			summarySection(d, "", true),
			experienceSection(d, "Professional Experience", true),
			skillsSection(d, "Core Skills", BlockInline),
			educationSection(d, "Education"),
			projectsSection(d, "Key Projects"),
		},
	}
}
