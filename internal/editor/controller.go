// Package editor holds the per-session editing state: the current document
// snapshot, the selected template, and the panel UI flags.
package editor

import (
	"sync"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
)

// Initial panel state: personal details and work experience start open.
func defaultOpenSections() map[string]bool {
	return map[string]bool{
		"Personal Details": true,
		"Summary":          false,
		"Skills":           false,
		"Work Experience":  true,
		"Projects":         false,
		"Education":        false,
	}
}

// Controller serializes all mutations of one editing session. The document
// is a value snapshot; every edit swaps it for a new one, so a snapshot
// handed out earlier is never affected by later edits.
type Controller struct {
	mu           sync.Mutex
	doc          resume.Document
	template     rendering.Template
	openSections map[string]bool
	dropdownOpen bool
}

// NewController starts a session on the given document with the classic
// template selected.
func NewController(doc resume.Document) *Controller {
	return &Controller{
		doc:          doc.Clone(),
		template:     rendering.Classic,
		openSections: defaultOpenSections(),
	}
}

// Apply performs one edit and returns the resulting snapshot. On error the
// current snapshot is unchanged.
func (c *Controller) Apply(e resume.Edit) (resume.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := resume.Apply(c.doc, e)
	if err != nil {
		return resume.Document{}, err
	}
	c.doc = next
	return next.Clone(), nil
}

// Replace swaps the whole document, e.g. after an upload is parsed.
func (c *Controller) Replace(doc resume.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc.Clone()
}

// Snapshot returns the current document. The caller owns the copy; later
// edits cannot change it.
func (c *Controller) Snapshot() resume.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Clone()
}

// SelectTemplate switches the active template.
func (c *Controller) SelectTemplate(t rendering.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.template = t
}

// Template returns the active template.
func (c *Controller) Template() rendering.Template {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.template
}

// ToggleSection flips one editor panel and reports its new state. Unknown
// titles start closed, so the first toggle opens them.
func (c *Controller) ToggleSection(title string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openSections[title] = !c.openSections[title]
	return c.openSections[title]
}

// OpenSections returns a copy of the panel flags.
func (c *Controller) OpenSections() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]bool, len(c.openSections))
	for k, v := range c.openSections {
		out[k] = v
	}
	return out
}

// SetDropdown records whether the download menu is open.
func (c *Controller) SetDropdown(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropdownOpen = open
}

// DropdownOpen reports whether the download menu is open.
func (c *Controller) DropdownOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropdownOpen
}

// Preview renders the current snapshot with the active template as a
// standalone HTML page.
func (c *Controller) Preview() (string, error) {
	_, html, err := c.PreviewDocument()
	return html, err
}

// PreviewDocument returns the current snapshot together with its rendered
// page. The pair is consistent: both come from the same snapshot, so an edit
// landing mid-export cannot make an artifact's filename diverge from its
// content.
func (c *Controller) PreviewDocument() (resume.Document, string, error) {
	c.mu.Lock()
	doc := c.doc
	tpl := c.template
	c.mu.Unlock()

	visual, err := rendering.Render(doc, tpl)
	if err != nil {
		return resume.Document{}, "", err
	}
	html, err := rendering.HTML(visual)
	if err != nil {
		return resume.Document{}, "", err
	}
	return doc.Clone(), html, nil
}
