package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/resume"
)

// ErrSessionNotFound indicates the session id does not exist.
var ErrSessionNotFound = errors.New("session not found")

// ErrValidation indicates a request body that failed validation.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus maps an error to the status code it should produce.
func HTTPStatus(err error) int {
	var (
		badEdit     *resume.BadEditError
		unsupported *ingestion.UnsupportedTypeError
		extraction  *ingestion.ExtractionError
		apiCall     *parsing.APICallError
		parseErr    *parsing.ParseError
		validation  *ErrValidation
	)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict
	case errors.As(err, &badEdit),
		errors.As(err, &unsupported),
		errors.As(err, &extraction),
		errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &apiCall), errors.As(err, &parseErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
