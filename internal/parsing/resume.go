// Package parsing turns raw resume text into a structured document by way
// of an LLM, with JSON Schema enforcement on the model's output.
package parsing

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
)

//go:embed resume_schema.json
var resumeSchema string

// response mirrors the model's JSON output. Every leaf inside parsedData is
// nullable; null and absent both mean "not found in the resume".
type response struct {
	Suggestions []string    `json:"suggestions"`
	MissingInfo []string    `json:"missingInfo"`
	ParsedData  *parsedData `json:"parsedData"`
}

type parsedData struct {
	Name        *string            `json:"name"`
	JobTitle    *string            `json:"jobTitle"`
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	Location    *string            `json:"location"`
	LinkedIn    *string            `json:"linkedin"`
	Portfolio   *string            `json:"portfolio"`
	Summary     *string            `json:"summary"`
	Skills      []string           `json:"skills"`
	Experiences []parsedExperience `json:"experiences"`
	Educations  []parsedEducation  `json:"educations"`
	Projects    []parsedProject    `json:"projects"`
}

type parsedExperience struct {
	Title       *string  `json:"title"`
	Company     *string  `json:"company"`
	Location    *string  `json:"location"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description []string `json:"description"`
}

type parsedEducation struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

type parsedProject struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	Link         *string  `json:"link"`
}

// Result is the outcome of analyzing uploaded resume text. If the input was
// not a resume the model says so in Suggestions and Document stays empty.
type Result struct {
	Suggestions []string        `json:"suggestions"`
	MissingInfo []string        `json:"missingInfo"`
	Document    resume.Document `json:"parsedData"`
}

// ParseResume asks the model to extract structured resume content from
// resumeText and returns the normalized result. The raw response is held to
// the embedded schema before any of it is trusted.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*Result, error) {
	template := prompts.MustGet("resume.json", "parse-resume")
	prompt := prompts.Format(template, map[string]string{"ResumeText": resumeText})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate content from LLM", Cause: err}
	}

	var resp response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ParseError{Message: "failed to decode JSON response", Cause: err}
	}

	if err := schemas.ValidateJSONString(resumeSchema, raw); err != nil {
		return nil, &ParseError{Message: "response does not conform to the resume schema", Cause: err}
	}

	result := &Result{
		Suggestions: resp.Suggestions,
		MissingInfo: resp.MissingInfo,
		Document:    normalize(resp.ParsedData),
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	if result.MissingInfo == nil {
		result.MissingInfo = []string{}
	}
	return result, nil
}
