// Package initiative defines transformation initiatives and their
// progress/priority lifecycle.
package initiative

import (
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// Status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
)

// Priority values, shared wording with action items.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Initiative is a tracked transformation effort. Progress is a percentage in
// [0, 100]; UpdatedAt is refreshed on every mutation.
type Initiative struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Priority    string     `json:"priority"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ApplyDefaults fills unset optional fields.
func (i *Initiative) ApplyDefaults() {
	if i.Status == "" {
		i.Status = StatusActive
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
}

// Validate checks the fields required to create an initiative. Out-of-range
// progress is rejected rather than clamped.
func (i Initiative) Validate() error {
	if _, err := validation.Required(i.Title, "title"); err != nil {
		return err
	}
	if err := validation.OneOf(i.Status, "status", StatusActive, StatusCompleted, StatusPaused); err != nil {
		return err
	}
	if err := validation.OneOf(i.Priority, "priority", PriorityHigh, PriorityMedium, PriorityLow); err != nil {
		return err
	}
	return validation.IntRange(i.Progress, "progress", 0, 100)
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
	Priority    *string    `json:"priority"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// Validate checks only the fields the patch supplies.
func (p Patch) Validate() error {
	if p.Title != nil {
		if _, err := validation.Required(*p.Title, "title"); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := validation.OneOf(*p.Status, "status", StatusActive, StatusCompleted, StatusPaused); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if err := validation.OneOf(*p.Priority, "priority", PriorityHigh, PriorityMedium, PriorityLow); err != nil {
			return err
		}
	}
	if p.Progress != nil {
		return validation.IntRange(*p.Progress, "progress", 0, 100)
	}
	return nil
}

// Apply merges the patch onto an existing record. Shallow field overwrite;
// timestamps are owned by the store.
func (p Patch) Apply(in Initiative) Initiative {
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	if p.Progress != nil {
		in.Progress = *p.Progress
	}
	if p.Priority != nil {
		in.Priority = *p.Priority
	}
	if p.StartDate != nil {
		in.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		in.EndDate = p.EndDate
	}
	return in
}
