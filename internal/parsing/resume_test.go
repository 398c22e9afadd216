package parsing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/resume"
)

// fakeClient returns a canned response and records the prompt it was given.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (c *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (c *fakeClient) Close() error                  { return nil }

const fullResponse = `{
	"suggestions": ["Quantify your achievements"],
	"missingInfo": ["Portfolio link"],
	"parsedData": {
		"name": "Priya Sharma",
		"jobTitle": "Senior Software Engineer",
		"email": "priya.sharma@email.com",
		"phone": null,
		"location": "Bengaluru, India",
		"linkedin": null,
		"portfolio": null,
		"summary": "Engineer with 7 years of experience.",
		"skills": ["Go", "TypeScript"],
		"experiences": [
			{"title": "Senior Software Engineer", "company": "Innovatech", "location": null,
			 "startDate": "Jan 2021", "endDate": "Present", "description": ["Led a team", "Shipped things"]},
			{"title": "Software Engineer", "company": "Digital Dynamics", "location": null,
			 "startDate": "Jun 2017", "endDate": "Dec 2020", "description": null}
		],
		"educations": [
			{"institution": "IIT Bombay", "degree": "B.Tech", "location": null, "startDate": "2013", "endDate": "2017"}
		],
		"projects": [
			{"name": "Dashboard", "description": "Real-time charts", "technologies": ["React"], "link": null}
		]
	}
}`

func TestParseResume_FullResponse(t *testing.T) {
	client := &fakeClient{response: fullResponse}

	result, err := ParseResume(context.Background(), client, "resume body text")
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Analyze the resume text provided")
	assert.Contains(t, client.prompt, "resume body text")

	assert.Equal(t, []string{"Quantify your achievements"}, result.Suggestions)
	assert.Equal(t, []string{"Portfolio link"}, result.MissingInfo)

	d := result.Document
	assert.Equal(t, "Priya Sharma", d.Name)
	assert.Equal(t, "Senior Software Engineer", d.JobTitle)
	assert.Equal(t, "", d.Phone, "null leaf becomes empty string")
	assert.Equal(t, []string{"Go", "TypeScript"}, d.Skills)

	require.Len(t, d.Experiences, 2)
	assert.Equal(t, []string{"Led a team", "Shipped things"}, d.Experiences[0].Description)
	assert.NotNil(t, d.Experiences[1].Description, "null list becomes empty list")
	assert.Empty(t, d.Experiences[1].Description)

	require.Len(t, d.Educations, 1)
	require.Len(t, d.Projects, 1)
	assert.Equal(t, "", d.Projects[0].Link)
}

func TestParseResume_AssignsDistinctIdentifiers(t *testing.T) {
	client := &fakeClient{response: fullResponse}

	result, err := ParseResume(context.Background(), client, "text")
	require.NoError(t, err)

	seen := map[int64]bool{}
	d := result.Document
	for _, e := range d.Experiences {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
	for _, e := range d.Educations {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
	for _, p := range d.Projects {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}

	// Entities added later must not collide with parsed ones.
	grown, id := resume.AddExperience(d)
	assert.False(t, seen[id])
	_, id2 := resume.AddEducation(grown)
	assert.NotEqual(t, id, id2)
	assert.False(t, seen[id2])
}

func TestParseResume_NotAResume(t *testing.T) {
	client := &fakeClient{response: `{
		"suggestions": ["The document does not appear to be a resume."],
		"missingInfo": [],
		"parsedData": null
	}`}

	result, err := ParseResume(context.Background(), client, "grocery list")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Suggestions)
	assert.Empty(t, result.Document.Name)
	assert.Empty(t, result.Document.Experiences)
	assert.NotNil(t, result.Document.Skills, "empty document still has empty lists, not nulls")
}

func TestParseResume_APIFailure(t *testing.T) {
	client := &fakeClient{err: assert.AnError}

	_, err := ParseResume(context.Background(), client, "text")
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestParseResume_MalformedJSON(t *testing.T) {
	client := &fakeClient{response: "this is not JSON"}

	_, err := ParseResume(context.Background(), client, "text")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseResume_SchemaViolation(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": "should be an array", "missingInfo": []}`}

	_, err := ParseResume(context.Background(), client, "text")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNormalize_NilYieldsEmptyDocument(t *testing.T) {
	d := normalize(nil)
	assert.Equal(t, resume.Document{}.Name, d.Name)
	assert.NotNil(t, d.Skills)
	assert.NotNil(t, d.Experiences)
	assert.NotNil(t, d.Educations)
	assert.NotNil(t, d.Projects)
}
