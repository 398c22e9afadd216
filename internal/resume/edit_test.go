package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPersonal_ReplacesSingleField(t *testing.T) {
	d := DefaultDocument()
	out, err := SetPersonal(d, FieldName, "Arjun Mehta")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Mehta", out.Name)
	assert.Equal(t, d.JobTitle, out.JobTitle)
	assert.Equal(t, d.Skills, out.Skills)
}

func TestSetPersonal_UnknownField(t *testing.T) {
	d := DefaultDocument()
	_, err := SetPersonal(d, "salary", "lots")
	var bad *BadEditError
	require.ErrorAs(t, err, &bad)
}

func TestEditIsolation_PriorSnapshotUnchanged(t *testing.T) {
	d := DefaultDocument()
	before := d.Clone()

	out, err := SetExperienceBullet(d, 1, 0, "rewritten bullet")
	require.NoError(t, err)

	assert.Equal(t, before, d, "input document must be unchanged")
	assert.Equal(t, "rewritten bullet", out.Experiences[0].Description[0])
	assert.Equal(t, before.Experiences[0].Description[0], d.Experiences[0].Description[0])
}

func TestEditIsolation_SkillsSliceNotShared(t *testing.T) {
	d := DefaultDocument()
	out := AddSkill(d, "Rust")
	out2, err := SetSkill(out, 0, "changed")
	require.NoError(t, err)

	assert.Equal(t, "JavaScript (ES6+)", d.Skills[0])
	assert.Equal(t, "JavaScript (ES6+)", out.Skills[0])
	assert.Equal(t, "changed", out2.Skills[0])
}

func TestSkillOps_OrderAndBounds(t *testing.T) {
	d := Document{Skills: []string{"a", "b", "c"}}

	out, err := InsertSkill(d, 1, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "b", "c"}, out.Skills)

	out, err = RemoveSkill(out, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "b", "c"}, out.Skills)

	_, err = SetSkill(out, 3, "nope")
	var bad *BadEditError
	require.ErrorAs(t, err, &bad)

	_, err = RemoveSkill(out, -1)
	require.ErrorAs(t, err, &bad)
}

func TestAddEntities_IdentifiersPairwiseDistinct(t *testing.T) {
	d := DefaultDocument()
	seen := make(map[int64]bool)
	for _, e := range d.Experiences {
		seen[e.ID] = true
	}

	const n = 20
	for i := 0; i < n; i++ {
		var id int64
		switch i % 3 {
		case 0:
			d, id = AddExperience(d)
		case 1:
			d, id = AddEducation(d)
		default:
			d, id = AddProject(d)
		}
		assert.False(t, seen[id], "identifier %d reused", id)
		seen[id] = true
	}
}

func TestIdentifiers_NotReusedAfterRemoval(t *testing.T) {
	d := DefaultDocument()
	d, first := AddExperience(d)
	d, err := RemoveExperience(d, first)
	require.NoError(t, err)
	_, second := AddExperience(d)
	assert.NotEqual(t, first, second)
}

func TestExperienceBullets_AddSetRemove(t *testing.T) {
	d := DefaultDocument()
	d, id := AddExperience(d)

	d, err := AddExperienceBullet(d, id, "did a thing")
	require.NoError(t, err)

	d, err = SetExperienceBullet(d, id, 1, "did a better thing")
	require.NoError(t, err)

	i, err := findExperience(d, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "did a better thing"}, d.Experiences[i].Description)

	d, err = RemoveExperienceBullet(d, id, 0)
	require.NoError(t, err)
	i, _ = findExperience(d, id)
	assert.Equal(t, []string{"did a better thing"}, d.Experiences[i].Description)

	_, err = SetExperienceBullet(d, id, 5, "x")
	var bad *BadEditError
	require.ErrorAs(t, err, &bad)
}

func TestProjectTechnologies_AddSetRemove(t *testing.T) {
	d := DefaultDocument()
	d, id := AddProject(d)

	d, err := SetProjectTechnology(d, id, 0, "Go")
	require.NoError(t, err)
	d, err = AddProjectTechnology(d, id, "chromedp")
	require.NoError(t, err)

	i, err := findProject(d, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "chromedp"}, d.Projects[i].Technologies)

	d, err = RemoveProjectTechnology(d, id, 0)
	require.NoError(t, err)
	i, _ = findProject(d, id)
	assert.Equal(t, []string{"chromedp"}, d.Projects[i].Technologies)
}

func TestEntityOps_UnknownIdentifier(t *testing.T) {
	d := DefaultDocument()
	var bad *BadEditError

	_, err := SetExperienceField(d, 999, "title", "x")
	require.ErrorAs(t, err, &bad)

	_, err = RemoveEducation(d, 999)
	require.ErrorAs(t, err, &bad)

	_, err = AddProjectTechnology(d, 999, "x")
	require.ErrorAs(t, err, &bad)
}

func TestApply_DispatchesAndIsolates(t *testing.T) {
	d := DefaultDocument()
	before := d.Clone()

	out, err := Apply(d, Edit{Op: "set", Target: "personal", Field: "jobTitle", Value: "Staff Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", out.JobTitle)
	assert.Equal(t, before, d)

	out, err = Apply(out, Edit{Op: "add", Target: "skill", Value: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "Go", out.Skills[len(out.Skills)-1])

	out, err = Apply(out, Edit{Op: "set", Target: "bullet", EntityID: 2, Index: 1, Value: "shipped it"})
	require.NoError(t, err)
	assert.Equal(t, "shipped it", out.Experiences[1].Description[1])

	_, err = Apply(out, Edit{Op: "insert", Target: "experience"})
	var bad *BadEditError
	require.ErrorAs(t, err, &bad)
}

func TestClone_DeepCopies(t *testing.T) {
	d := DefaultDocument()
	c := d.Clone()
	c.Experiences[0].Description[0] = "mutated"
	c.Skills[0] = "mutated"
	c.Projects[0].Technologies[0] = "mutated"

	assert.NotEqual(t, "mutated", d.Experiences[0].Description[0])
	assert.NotEqual(t, "mutated", d.Skills[0])
	assert.NotEqual(t, "mutated", d.Projects[0].Technologies[0])
}
