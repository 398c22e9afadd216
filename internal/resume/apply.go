package resume

// Edit is the wire form of a single editor action. Op and Target select the
// operation; the remaining fields carry its arguments. The validate tags are
// enforced at the HTTP boundary before Apply runs.
type Edit struct {
	Op       string `json:"op" validate:"required,oneof=set add insert remove"`
	Target   string `json:"target" validate:"required,oneof=personal skill experience education project bullet technology"`
	Field    string `json:"field,omitempty"`
	EntityID int64  `json:"entityId,omitempty"`
	Index    int    `json:"index,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Apply dispatches an Edit to the typed operation it describes and returns
// the resulting snapshot. The input document is never modified.
func Apply(d Document, e Edit) (Document, error) {
	switch e.Target {
	case "personal":
		if e.Op != "set" {
			return d, badEdit("personal fields only support set, got %q", e.Op)
		}
		return SetPersonal(d, PersonalField(e.Field), e.Value)

	case "skill":
		switch e.Op {
		case "add":
			return AddSkill(d, e.Value), nil
		case "insert":
			return InsertSkill(d, e.Index, e.Value)
		case "set":
			return SetSkill(d, e.Index, e.Value)
		case "remove":
			return RemoveSkill(d, e.Index)
		}

	case "experience":
		switch e.Op {
		case "add":
			out, _ := AddExperience(d)
			return out, nil
		case "set":
			return SetExperienceField(d, e.EntityID, e.Field, e.Value)
		case "remove":
			return RemoveExperience(d, e.EntityID)
		}

	case "education":
		switch e.Op {
		case "add":
			out, _ := AddEducation(d)
			return out, nil
		case "set":
			return SetEducationField(d, e.EntityID, e.Field, e.Value)
		case "remove":
			return RemoveEducation(d, e.EntityID)
		}

	case "project":
		switch e.Op {
		case "add":
			out, _ := AddProject(d)
			return out, nil
		case "set":
			return SetProjectField(d, e.EntityID, e.Field, e.Value)
		case "remove":
			return RemoveProject(d, e.EntityID)
		}

	case "bullet":
		switch e.Op {
		case "add":
			return AddExperienceBullet(d, e.EntityID, e.Value)
		case "set":
			return SetExperienceBullet(d, e.EntityID, e.Index, e.Value)
		case "remove":
			return RemoveExperienceBullet(d, e.EntityID, e.Index)
		}

	case "technology":
		switch e.Op {
		case "add":
			return AddProjectTechnology(d, e.EntityID, e.Value)
		case "set":
			return SetProjectTechnology(d, e.EntityID, e.Index, e.Value)
		case "remove":
			return RemoveProjectTechnology(d, e.EntityID, e.Index)
		}
	}
	return d, badEdit("unsupported operation %s %s", e.Op, e.Target)
}
