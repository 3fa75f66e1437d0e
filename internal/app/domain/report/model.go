// Package report defines generated reports and their typed content payloads.
package report

import (
	"encoding/json"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// Report types. Each type selects exactly one content payload shape.
const (
	TypeProgress           = "progress"
	TypeMeetingSummary     = "meeting_summary"
	TypeInitiativeOverview = "initiative_overview"
)

// Report is a generated document. GeneratedBy is a weak reference to a user
// id.
type Report struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Content     Content   `json:"content"`
	GeneratedBy string    `json:"generatedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Content is the report payload. Exactly one branch is set; which one is
// dictated by the report type, so consumers switch on Report.Type before
// reading.
type Content struct {
	Progress           *ProgressContent           `json:"-"`
	MeetingSummary     *MeetingSummaryContent     `json:"-"`
	InitiativeOverview *InitiativeOverviewContent `json:"-"`
}

// ProgressContent is the payload for TypeProgress reports: AI insights plus
// the initiative snapshot they were derived from.
type ProgressContent struct {
	Insights    string                  `json:"insights"`
	Initiatives []initiative.Initiative `json:"initiatives"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// MeetingSummaryContent is the payload for TypeMeetingSummary reports.
type MeetingSummaryContent struct {
	MeetingID string `json:"meetingId"`
	Summary   string `json:"summary"`
}

// InitiativeOverviewContent is the payload for TypeInitiativeOverview
// reports.
type InitiativeOverviewContent struct {
	Initiatives []initiative.Initiative `json:"initiatives"`
}

// MarshalJSON emits the active payload only.
func (c Content) MarshalJSON() ([]byte, error) {
	switch {
	case c.Progress != nil:
		return json.Marshal(c.Progress)
	case c.MeetingSummary != nil:
		return json.Marshal(c.MeetingSummary)
	case c.InitiativeOverview != nil:
		return json.Marshal(c.InitiativeOverview)
	}
	return []byte("null"), nil
}

// Validate checks the report shape, including that the content branch
// matches the declared type.
func (r Report) Validate() error {
	if _, err := validation.Required(r.Title, "title"); err != nil {
		return err
	}
	if err := validation.OneOf(r.Type, "type", TypeProgress, TypeMeetingSummary, TypeInitiativeOverview); err != nil {
		return err
	}
	switch r.Type {
	case TypeProgress:
		if r.Content.Progress == nil {
			return validation.Errorf("content", "progress payload required for type %s", r.Type)
		}
	case TypeMeetingSummary:
		if r.Content.MeetingSummary == nil {
			return validation.Errorf("content", "meeting summary payload required for type %s", r.Type)
		}
	case TypeInitiativeOverview:
		if r.Content.InitiativeOverview == nil {
			return validation.Errorf("content", "initiative overview payload required for type %s", r.Type)
		}
	}
	return nil
}
