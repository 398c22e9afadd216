package parsing

import "github.com/jonathan/resume-builder/internal/resume"

// normalize converts the nullable wire form into a document. Null leaves
// become empty strings, null lists become empty lists, and every entry gets
// a fresh entity identifier. A nil parsedData yields an empty document.
func normalize(p *parsedData) resume.Document {
	var d resume.Document
	d.Skills = []string{}
	d.Experiences = []resume.Experience{}
	d.Educations = []resume.Education{}
	d.Projects = []resume.Project{}

	if p == nil {
		return d.WithIDFloor(1)
	}

	d.Name = deref(p.Name)
	d.JobTitle = deref(p.JobTitle)
	d.Email = deref(p.Email)
	d.Phone = deref(p.Phone)
	d.Location = deref(p.Location)
	d.LinkedIn = deref(p.LinkedIn)
	d.Portfolio = deref(p.Portfolio)
	d.Summary = deref(p.Summary)
	if p.Skills != nil {
		d.Skills = append(d.Skills, p.Skills...)
	}

	var nextID int64 = 1
	for _, e := range p.Experiences {
		exp := resume.Experience{
			ID:          nextID,
			Title:       deref(e.Title),
			Company:     deref(e.Company),
			Location:    deref(e.Location),
			StartDate:   deref(e.StartDate),
			EndDate:     deref(e.EndDate),
			Description: []string{},
		}
		if e.Description != nil {
			exp.Description = append(exp.Description, e.Description...)
		}
		d.Experiences = append(d.Experiences, exp)
		nextID++
	}
	for _, e := range p.Educations {
		d.Educations = append(d.Educations, resume.Education{
			ID:          nextID,
			Institution: deref(e.Institution),
			Degree:      deref(e.Degree),
			Location:    deref(e.Location),
			StartDate:   deref(e.StartDate),
			EndDate:     deref(e.EndDate),
		})
		nextID++
	}
	for _, pr := range p.Projects {
		proj := resume.Project{
			ID:           nextID,
			Name:         deref(pr.Name),
			Description:  deref(pr.Description),
			Technologies: []string{},
			Link:         deref(pr.Link),
		}
		if pr.Technologies != nil {
			proj.Technologies = append(proj.Technologies, pr.Technologies...)
		}
		d.Projects = append(d.Projects, proj)
		nextID++
	}

	return d.WithIDFloor(nextID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
