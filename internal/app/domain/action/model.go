// Package action defines action items tracked against meetings and
// initiatives.
package action

import (
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// Status values.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Item is a single action item. MeetingID and InitiativeID are weak
// references: they are stored as given and never checked against the
// referenced collections.
type Item struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Assignee     string     `json:"assignee"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	MeetingID    string     `json:"meetingId,omitempty"`
	InitiativeID string     `json:"initiativeId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ApplyDefaults fills unset optional fields.
func (i *Item) ApplyDefaults() {
	if i.Priority == "" {
		i.Priority = initiative.PriorityMedium
	}
	if i.Status == "" {
		i.Status = StatusOpen
	}
}

// Validate checks the fields required to create an action item.
func (i Item) Validate() error {
	if _, err := validation.Required(i.Title, "title"); err != nil {
		return err
	}
	if _, err := validation.Required(i.Assignee, "assignee"); err != nil {
		return err
	}
	if err := validation.OneOf(i.Priority, "priority",
		initiative.PriorityHigh, initiative.PriorityMedium, initiative.PriorityLow); err != nil {
		return err
	}
	return validation.OneOf(i.Status, "status", StatusOpen, StatusInProgress, StatusCompleted)
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Assignee     *string    `json:"assignee"`
	Priority     *string    `json:"priority"`
	Status       *string    `json:"status"`
	DueDate      *time.Time `json:"dueDate"`
	MeetingID    *string    `json:"meetingId"`
	InitiativeID *string    `json:"initiativeId"`
}

// Validate checks only the fields the patch supplies.
func (p Patch) Validate() error {
	if p.Title != nil {
		if _, err := validation.Required(*p.Title, "title"); err != nil {
			return err
		}
	}
	if p.Assignee != nil {
		if _, err := validation.Required(*p.Assignee, "assignee"); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if err := validation.OneOf(*p.Priority, "priority",
			initiative.PriorityHigh, initiative.PriorityMedium, initiative.PriorityLow); err != nil {
			return err
		}
	}
	if p.Status != nil {
		return validation.OneOf(*p.Status, "status", StatusOpen, StatusInProgress, StatusCompleted)
	}
	return nil
}

// Apply merges the patch onto an existing record.
func (p Patch) Apply(in Item) Item {
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Assignee != nil {
		in.Assignee = *p.Assignee
	}
	if p.Priority != nil {
		in.Priority = *p.Priority
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	if p.DueDate != nil {
		in.DueDate = p.DueDate
	}
	if p.MeetingID != nil {
		in.MeetingID = *p.MeetingID
	}
	if p.InitiativeID != nil {
		in.InitiativeID = *p.InitiativeID
	}
	return in
}
