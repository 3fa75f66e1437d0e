// Package meeting defines scheduled meetings and their AI-generated summary
// field.
package meeting

import (
	"errors"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// ErrNoNotes is returned by operations that need meeting notes (summary
// generation, action extraction) when the meeting has none. Handlers treat
// it like a missing record.
var ErrNoNotes = errors.New("meeting has no notes")

// Status values.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultDuration is applied when a meeting is created without one, in
// minutes.
const DefaultDuration = 60

// Meeting is a scheduled or held meeting. AISummary is only ever set by the
// explicit summary-generation operation and requires non-empty Notes.
type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Duration     int       `json:"duration"`
	Status       string    `json:"status"`
	Participants []string  `json:"participants"`
	Notes        string    `json:"notes,omitempty"`
	AISummary    string    `json:"aiSummary,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ApplyDefaults fills unset optional fields.
func (m *Meeting) ApplyDefaults() {
	if m.Status == "" {
		m.Status = StatusScheduled
	}
	if m.Duration == 0 {
		m.Duration = DefaultDuration
	}
	if m.Participants == nil {
		m.Participants = []string{}
	}
}

// Validate checks the fields required to create a meeting.
func (m Meeting) Validate() error {
	if _, err := validation.Required(m.Title, "title"); err != nil {
		return err
	}
	if m.ScheduledAt.IsZero() {
		return validation.Errorf("scheduledAt", "is required")
	}
	if m.Duration <= 0 {
		return validation.Errorf("duration", "must be positive")
	}
	return validation.OneOf(m.Status, "status", StatusScheduled, StatusCompleted, StatusCancelled)
}

// Patch carries a partial update; nil fields are left untouched. A non-nil
// Participants replaces the whole list.
type Patch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	Duration     *int       `json:"duration"`
	Status       *string    `json:"status"`
	Participants []string   `json:"participants"`
	Notes        *string    `json:"notes"`
	AISummary    *string    `json:"aiSummary"`
}

// Validate checks only the fields the patch supplies.
func (p Patch) Validate() error {
	if p.Title != nil {
		if _, err := validation.Required(*p.Title, "title"); err != nil {
			return err
		}
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return validation.Errorf("duration", "must be positive")
	}
	if p.Status != nil {
		return validation.OneOf(*p.Status, "status", StatusScheduled, StatusCompleted, StatusCancelled)
	}
	return nil
}

// Apply merges the patch onto an existing record.
func (p Patch) Apply(in Meeting) Meeting {
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.ScheduledAt != nil {
		in.ScheduledAt = *p.ScheduledAt
	}
	if p.Duration != nil {
		in.Duration = *p.Duration
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	if p.Participants != nil {
		in.Participants = append([]string(nil), p.Participants...)
	}
	if p.Notes != nil {
		in.Notes = *p.Notes
	}
	if p.AISummary != nil {
		in.AISummary = *p.AISummary
	}
	return in
}
