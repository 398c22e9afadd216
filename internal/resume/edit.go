package resume

import "fmt"

// BadEditError reports an edit that names a field, entity, or index the
// document does not have. Edits coming through the UI are validated before
// they reach this package, so seeing one of these usually means a caller bug.
type BadEditError struct {
	Reason string
}

func (e *BadEditError) Error() string {
	return fmt.Sprintf("bad edit: %s", e.Reason)
}

func badEdit(format string, args ...any) error {
	return &BadEditError{Reason: fmt.Sprintf(format, args...)}
}

// PersonalField names a scalar personal-details field.
type PersonalField string

// Scalar personal-details fields.
const (
	FieldName      PersonalField = "name"
	FieldJobTitle  PersonalField = "jobTitle"
	FieldEmail     PersonalField = "email"
	FieldPhone     PersonalField = "phone"
	FieldLocation  PersonalField = "location"
	FieldLinkedIn  PersonalField = "linkedin"
	FieldPortfolio PersonalField = "portfolio"
	FieldSummary   PersonalField = "summary"
)

// SetPersonal returns a new document with one personal field replaced.
func SetPersonal(d Document, field PersonalField, value string) (Document, error) {
	out := d.Clone()
	switch field {
	case FieldName:
		out.Name = value
	case FieldJobTitle:
		out.JobTitle = value
	case FieldEmail:
		out.Email = value
	case FieldPhone:
		out.Phone = value
	case FieldLocation:
		out.Location = value
	case FieldLinkedIn:
		out.LinkedIn = value
	case FieldPortfolio:
		out.Portfolio = value
	case FieldSummary:
		out.Summary = value
	default:
		return d, badEdit("unknown personal field %q", field)
	}
	return out, nil
}

// AddSkill appends a skill. Duplicates are allowed; order is display order.
func AddSkill(d Document, value string) Document {
	out := d.Clone()
	out.Skills = append(out.Skills, value)
	return out
}

// SetSkill replaces the skill at index.
func SetSkill(d Document, index int, value string) (Document, error) {
	if index < 0 || index >= len(d.Skills) {
		return d, badEdit("skill index %d out of range", index)
	}
	out := d.Clone()
	out.Skills[index] = value
	return out, nil
}

// InsertSkill inserts a skill before index. index == len(skills) appends.
func InsertSkill(d Document, index int, value string) (Document, error) {
	if index < 0 || index > len(d.Skills) {
		return d, badEdit("skill insert index %d out of range", index)
	}
	out := d.Clone()
	out.Skills = append(out.Skills[:index], append([]string{value}, out.Skills[index:]...)...)
	return out, nil
}

// RemoveSkill removes the skill at index.
func RemoveSkill(d Document, index int) (Document, error) {
	if index < 0 || index >= len(d.Skills) {
		return d, badEdit("skill index %d out of range", index)
	}
	out := d.Clone()
	out.Skills = append(out.Skills[:index], out.Skills[index+1:]...)
	return out, nil
}

// AddExperience appends an empty experience entry with a fresh identifier and
// a single empty bullet, matching the editor's "Add Experience" action.
func AddExperience(d Document) (Document, int64) {
	out, id := d.Clone().allocateID()
	out.Experiences = append(out.Experiences, Experience{ID: id, Description: []string{""}})
	return out, id
}

// RemoveExperience removes the experience with the given identifier.
func RemoveExperience(d Document, id int64) (Document, error) {
	i, err := findExperience(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Experiences = append(out.Experiences[:i], out.Experiences[i+1:]...)
	return out, nil
}

// SetExperienceField replaces one scalar field of an experience entry.
func SetExperienceField(d Document, id int64, field, value string) (Document, error) {
	i, err := findExperience(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	switch field {
	case "title":
		out.Experiences[i].Title = value
	case "company":
		out.Experiences[i].Company = value
	case "location":
		out.Experiences[i].Location = value
	case "startDate":
		out.Experiences[i].StartDate = value
	case "endDate":
		out.Experiences[i].EndDate = value
	default:
		return d, badEdit("unknown experience field %q", field)
	}
	return out, nil
}

// AddExperienceBullet appends a bullet to an experience's description.
func AddExperienceBullet(d Document, id int64, value string) (Document, error) {
	i, err := findExperience(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Experiences[i].Description = append(out.Experiences[i].Description, value)
	return out, nil
}

// SetExperienceBullet replaces the bullet at index within an experience.
func SetExperienceBullet(d Document, id int64, index int, value string) (Document, error) {
	i, err := findExperience(d, id)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(d.Experiences[i].Description) {
		return d, badEdit("bullet index %d out of range for experience %d", index, id)
	}
	out := d.Clone()
	out.Experiences[i].Description[index] = value
	return out, nil
}

// RemoveExperienceBullet removes the bullet at index within an experience.
func RemoveExperienceBullet(d Document, id int64, index int) (Document, error) {
	i, err := findExperience(d, id)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(d.Experiences[i].Description) {
		return d, badEdit("bullet index %d out of range for experience %d", index, id)
	}
	out := d.Clone()
	desc := out.Experiences[i].Description
	out.Experiences[i].Description = append(desc[:index], desc[index+1:]...)
	return out, nil
}

// AddEducation appends an empty education entry with a fresh identifier.
func AddEducation(d Document) (Document, int64) {
	out, id := d.Clone().allocateID()
	out.Educations = append(out.Educations, Education{ID: id})
	return out, id
}

// RemoveEducation removes the education entry with the given identifier.
func RemoveEducation(d Document, id int64) (Document, error) {
	i, err := findEducation(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Educations = append(out.Educations[:i], out.Educations[i+1:]...)
	return out, nil
}

// SetEducationField replaces one scalar field of an education entry.
func SetEducationField(d Document, id int64, field, value string) (Document, error) {
	i, err := findEducation(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	switch field {
	case "institution":
		out.Educations[i].Institution = value
	case "degree":
		out.Educations[i].Degree = value
	case "location":
		out.Educations[i].Location = value
	case "startDate":
		out.Educations[i].StartDate = value
	case "endDate":
		out.Educations[i].EndDate = value
	default:
		return d, badEdit("unknown education field %q", field)
	}
	return out, nil
}

// AddProject appends an empty project entry with a fresh identifier and a
// single empty technology slot.
func AddProject(d Document) (Document, int64) {
	out, id := d.Clone().allocateID()
	out.Projects = append(out.Projects, Project{ID: id, Technologies: []string{""}})
	return out, id
}

// RemoveProject removes the project with the given identifier.
func RemoveProject(d Document, id int64) (Document, error) {
	i, err := findProject(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Projects = append(out.Projects[:i], out.Projects[i+1:]...)
	return out, nil
}

// SetProjectField replaces one scalar field of a project entry.
func SetProjectField(d Document, id int64, field, value string) (Document, error) {
	i, err := findProject(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	switch field {
	case "name":
		out.Projects[i].Name = value
	case "description":
		out.Projects[i].Description = value
	case "link":
		out.Projects[i].Link = value
	default:
		return d, badEdit("unknown project field %q", field)
	}
	return out, nil
}

// AddProjectTechnology appends a technology to a project.
func AddProjectTechnology(d Document, id int64, value string) (Document, error) {
	i, err := findProject(d, id)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Projects[i].Technologies = append(out.Projects[i].Technologies, value)
	return out, nil
}

// SetProjectTechnology replaces the technology at index within a project.
func SetProjectTechnology(d Document, id int64, index int, value string) (Document, error) {
	i, err := findProject(d, id)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(d.Projects[i].Technologies) {
		return d, badEdit("technology index %d out of range for project %d", index, id)
	}
	out := d.Clone()
	out.Projects[i].Technologies[index] = value
	return out, nil
}

// RemoveProjectTechnology removes the technology at index within a project.
func RemoveProjectTechnology(d Document, id int64, index int) (Document, error) {
	i, err := findProject(d, id)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(d.Projects[i].Technologies) {
		return d, badEdit("technology index %d out of range for project %d", index, id)
	}
	out := d.Clone()
	techs := out.Projects[i].Technologies
	out.Projects[i].Technologies = append(techs[:index], techs[index+1:]...)
	return out, nil
}

func findExperience(d Document, id int64) (int, error) {
	for i := range d.Experiences {
		if d.Experiences[i].ID == id {
			return i, nil
		}
	}
	return -1, badEdit("experience %d not found", id)
}

func findEducation(d Document, id int64) (int, error) {
	for i := range d.Educations {
		if d.Educations[i].ID == id {
			return i, nil
		}
	}
	return -1, badEdit("education %d not found", id)
}

func findProject(d Document, id int64) (int, error) {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return i, nil
		}
	}
	return -1, badEdit("project %d not found", id)
}
