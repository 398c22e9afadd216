package export

import (
	"errors"
	"strings"
	"sync"
)

// Format identifies an export output format.
type Format string

// Export formats.
const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Artifact is a finished export ready to hand to the client.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ErrExportInFlight is returned when an export of the same format is already
// running for this session. The caller treats it as a no-op: the capability
// is never invoked a second time.
var ErrExportInFlight = errors.New("an export of this format is already in progress")

// Manager serializes exports per format within one session. Different
// formats may run concurrently; a second export of an in-flight format is
// refused. The flag is released on success and failure alike, so a failed
// export never wedges the format.
type Manager struct {
	mu       sync.Mutex
	inFlight map[Format]bool
}

// NewManager returns a Manager with no exports in flight.
func NewManager() *Manager {
	return &Manager{inFlight: make(map[Format]bool)}
}

// Do runs fn under the format's in-flight flag. If the format is already in
// flight, fn is not invoked and ErrExportInFlight is returned.
func (m *Manager) Do(format Format, fn func() (*Artifact, error)) (*Artifact, error) {
	m.mu.Lock()
	if m.inFlight[format] {
		m.mu.Unlock()
		return nil, ErrExportInFlight
	}
	m.inFlight[format] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.inFlight, format)
		m.mu.Unlock()
	}()

	return fn()
}

// FileName builds the download filename stem from the resume owner's name,
// with whitespace runs replaced by underscores.
func FileName(ownerName, ext string) string {
	stem := strings.Join(strings.Fields(ownerName), "_")
	if stem == "" {
		stem = "Resume"
		return stem + "." + ext
	}
	return stem + "_Resume." + ext
}
