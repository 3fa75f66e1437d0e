// Package meetings manages meetings and their AI-generated summaries.
package meetings

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Service owns the meeting collection and the summary-generation flow.
type Service struct {
	store     storage.MeetingStore
	generator ai.Generator
	log       *logrus.Logger
}

// New constructs the meetings service.
func New(store storage.MeetingStore, generator ai.Generator, log *logrus.Logger) *Service {
	return &Service{store: store, generator: generator, log: log}
}

// List returns every meeting.
func (s *Service) List(ctx context.Context) ([]meeting.Meeting, error) {
	return s.store.ListMeetings(ctx)
}

// Get returns a single meeting; storage.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (meeting.Meeting, error) {
	return s.store.GetMeeting(ctx, id)
}

// Create validates and stores a new meeting.
func (s *Service) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	m.ApplyDefaults()
	if err := m.Validate(); err != nil {
		return meeting.Meeting{}, err
	}

	created, err := s.store.CreateMeeting(ctx, m)
	if err != nil {
		return meeting.Meeting{}, err
	}
	s.log.WithField("meeting_id", created.ID).Info("meeting created")
	return created, nil
}

// Update applies a partial update; storage.ErrNotFound when absent.
func (s *Service) Update(ctx context.Context, id string, patch meeting.Patch) (meeting.Meeting, error) {
	if err := patch.Validate(); err != nil {
		return meeting.Meeting{}, err
	}

	updated, err := s.store.UpdateMeeting(ctx, id, patch)
	if err != nil {
		return meeting.Meeting{}, err
	}
	s.log.WithField("meeting_id", id).Info("meeting updated")
	return updated, nil
}

// GenerateSummary asks the generator to summarize the meeting's notes and
// persists the result as the meeting's AISummary. A generator failure is not
// surfaced: the fixed fallback text is persisted and returned instead.
// Returns meeting.ErrNoNotes when the meeting has no notes.
func (s *Service) GenerateSummary(ctx context.Context, id string) (string, error) {
	m, err := s.store.GetMeeting(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(m.Notes) == "" {
		return "", meeting.ErrNoNotes
	}

	start := time.Now()
	summary, genErr := s.generator.SummarizeMeeting(ctx, m.Notes)
	metrics.RecordGeneratorCall("summarize_meeting", time.Since(start), genErr)
	if genErr != nil {
		s.log.WithField("meeting_id", id).WithError(genErr).Warn("meeting summary generation failed")
		summary = ai.FallbackMeetingSummary
	}

	if _, err := s.store.UpdateMeeting(ctx, id, meeting.Patch{AISummary: &summary}); err != nil {
		return "", err
	}
	s.log.WithField("meeting_id", id).Info("meeting summary generated")
	return summary, nil
}
