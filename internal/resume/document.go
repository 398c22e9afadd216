// Package resume defines the canonical resume document model and the pure
// edit operations that produce new document snapshots.
package resume

// Experience is a single work-history entry. Dates are free text; "Present"
// is a valid end date.
type Experience struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Project is a single project entry with an ordered technology list.
type Project struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// Document is the root aggregate for one editing session. Every field is
// always present; list order is display order. Documents are values: edit
// operations never mutate their receiver, they return a new snapshot.
type Document struct {
	Name      string   `json:"name"`
	JobTitle  string   `json:"jobTitle"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Location  string   `json:"location"`
	LinkedIn  string   `json:"linkedin"`
	Portfolio string   `json:"portfolio"`
	Summary   string   `json:"summary"`
	Skills    []string `json:"skills"`

	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Projects    []Project    `json:"projects"`

	// nextID is the next entity identifier to assign. It rides along on every
	// snapshot so identifiers are never reused within a session.
	nextID int64
}

// Clone returns a deep copy of the document. The copy shares no slices with
// the original, so holding a prior snapshot across later edits is safe.
func (d Document) Clone() Document {
	out := d
	out.Skills = append([]string(nil), d.Skills...)
	out.Experiences = make([]Experience, len(d.Experiences))
	for i, e := range d.Experiences {
		e.Description = append([]string(nil), e.Description...)
		out.Experiences[i] = e
	}
	out.Educations = append([]Education(nil), d.Educations...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	return out
}

// allocateID returns a copy of the document with a fresh entity identifier.
// Identifiers are monotonically increasing and never reissued, even after the
// entity they named is removed.
func (d Document) allocateID() (Document, int64) {
	out := d
	id := out.nextID
	out.nextID++
	return out, id
}

// WithIDFloor returns a copy whose ID counter is at least floor. Used when a
// document is constructed from external data that carries its own IDs.
func (d Document) WithIDFloor(floor int64) Document {
	out := d
	if out.nextID < floor {
		out.nextID = floor
	}
	return out
}
