// Package actions manages action items, including AI extraction from
// meeting notes.
package actions

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// fallbackAssignee is used when extraction does not name a responsible
// person.
const fallbackAssignee = "Неопределен"

// Service owns the action item collection.
type Service struct {
	store     storage.ActionItemStore
	meetings  storage.MeetingStore
	generator ai.Generator
	log       *logrus.Logger
}

// New constructs the actions service.
func New(store storage.ActionItemStore, meetings storage.MeetingStore, generator ai.Generator, log *logrus.Logger) *Service {
	return &Service{store: store, meetings: meetings, generator: generator, log: log}
}

// List returns every action item.
func (s *Service) List(ctx context.Context) ([]action.Item, error) {
	return s.store.ListActionItems(ctx)
}

// Get returns a single action item; storage.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (action.Item, error) {
	return s.store.GetActionItem(ctx, id)
}

// Create validates and stores a new action item. The meeting and initiative
// references are stored as given, without existence checks.
func (s *Service) Create(ctx context.Context, item action.Item) (action.Item, error) {
	item.ApplyDefaults()
	if err := item.Validate(); err != nil {
		return action.Item{}, err
	}

	created, err := s.store.CreateActionItem(ctx, item)
	if err != nil {
		return action.Item{}, err
	}
	s.log.WithField("action_id", created.ID).Info("action item created")
	return created, nil
}

// Update applies a partial update; storage.ErrNotFound when absent.
func (s *Service) Update(ctx context.Context, id string, patch action.Patch) (action.Item, error) {
	if err := patch.Validate(); err != nil {
		return action.Item{}, err
	}

	updated, err := s.store.UpdateActionItem(ctx, id, patch)
	if err != nil {
		return action.Item{}, err
	}
	s.log.WithField("action_id", id).Info("action item updated")
	return updated, nil
}

// GenerateFromMeeting extracts action items from the meeting's notes and
// stores each as an open item referencing the meeting. Extraction failure
// degrades to an empty result rather than failing the request. Returns
// meeting.ErrNoNotes when the meeting has no notes.
func (s *Service) GenerateFromMeeting(ctx context.Context, meetingID string) ([]action.Item, error) {
	m, err := s.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(m.Notes) == "" {
		return nil, meeting.ErrNoNotes
	}

	start := time.Now()
	extracted, genErr := s.generator.ExtractActionItems(ctx, m.Notes)
	metrics.RecordGeneratorCall("extract_actions", time.Since(start), genErr)
	if genErr != nil {
		s.log.WithField("meeting_id", meetingID).WithError(genErr).Warn("action extraction failed")
		extracted = nil
	}

	created := make([]action.Item, 0, len(extracted))
	for _, ex := range extracted {
		if strings.TrimSpace(ex.Title) == "" {
			continue
		}
		item := action.Item{
			Title:       ex.Title,
			Description: ex.Description,
			Assignee:    ex.Assignee,
			Priority:    normalizePriority(ex.Priority),
			Status:      action.StatusOpen,
			MeetingID:   meetingID,
		}
		if strings.TrimSpace(item.Assignee) == "" {
			item.Assignee = fallbackAssignee
		}

		stored, err := s.store.CreateActionItem(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, stored)
	}

	s.log.WithField("meeting_id", meetingID).
		WithField("count", len(created)).
		Info("action items generated from meeting")
	return created, nil
}

// normalizePriority keeps whatever valid priority the model produced and
// falls back to medium for anything else.
func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case initiative.PriorityHigh:
		return initiative.PriorityHigh
	case initiative.PriorityLow:
		return initiative.PriorityLow
	default:
		return initiative.PriorityMedium
	}
}
