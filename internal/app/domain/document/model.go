// Package document defines uploaded knowledge-base documents.
package document

import (
	"strings"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// DefaultCategory is applied when a document is uploaded without one.
const DefaultCategory = "general"

// Document is an uploaded file plus its extracted content and AI analysis.
// UploadedBy is a weak reference to a user id.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Content    string    `json:"content,omitempty"`
	AIAnalysis string    `json:"aiAnalysis,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Category   string    `json:"category"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ApplyDefaults fills unset optional fields.
func (d *Document) ApplyDefaults() {
	if d.Category == "" {
		d.Category = DefaultCategory
	}
}

// Validate checks the fields required to create a document.
func (d Document) Validate() error {
	if _, err := validation.Required(d.Title, "title"); err != nil {
		return err
	}
	if _, err := validation.Required(d.Filename, "filename"); err != nil {
		return err
	}
	if _, err := validation.Required(d.FileType, "fileType"); err != nil {
		return err
	}
	if d.FileSize < 0 {
		return validation.Errorf("fileSize", "must not be negative")
	}
	return nil
}

// Matches reports whether the query occurs, case-insensitively, in the
// document's title, content or any tag. Unicode case folding applies, so
// Cyrillic queries behave the same as Latin ones.
func (d Document) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(d.Title), q) {
		return true
	}
	if d.Content != "" && strings.Contains(strings.ToLower(d.Content), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
