// Package export turns a resume document or its rendered form into the three
// downloadable artifact formats: plain text, raster PDF, and DOCX.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/resume"
)

// PlainText serializes a document into the fixed plain-text layout. The
// output is byte-stable: section order, separators, and bullet prefixes are
// part of the contract.
func PlainText(d resume.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", strings.ToUpper(d.Name))
	fmt.Fprintf(&b, "%s\n\n", d.JobTitle)
	fmt.Fprintf(&b, "CONTACT\n%s | %s | %s\n", d.Email, d.Phone, d.Location)
	fmt.Fprintf(&b, "LinkedIn: %s | Portfolio: %s\n\n", d.LinkedIn, d.Portfolio)

	fmt.Fprintf(&b, "---\n\nSUMMARY\n%s\n\n", d.Summary)
	fmt.Fprintf(&b, "---\n\nSKILLS\n%s\n\n", strings.Join(d.Skills, ", "))

	b.WriteString("---\n\nWORK EXPERIENCE\n\n")
	for _, exp := range d.Experiences {
		fmt.Fprintf(&b, "%s | %s\n", strings.ToUpper(exp.Title), exp.Company)
		fmt.Fprintf(&b, "%s - %s | %s\n", exp.StartDate, exp.EndDate, exp.Location)
		for _, line := range exp.Description {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\nPROJECTS\n\n")
	for _, p := range d.Projects {
		fmt.Fprintf(&b, "%s\n", strings.ToUpper(p.Name))
		fmt.Fprintf(&b, "%s\n", p.Description)
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(p.Technologies, ", "))
		fmt.Fprintf(&b, "Link: %s\n\n", p.Link)
	}

	b.WriteString("---\n\nEDUCATION\n\n")
	for _, e := range d.Educations {
		fmt.Fprintf(&b, "%s, %s\n", e.Degree, e.Institution)
		fmt.Fprintf(&b, "%s - %s\n\n", e.StartDate, e.EndDate)
	}

	return b.String()
}
