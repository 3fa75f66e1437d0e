// Package stats derives the dashboard's headline counters. Values are
// recomputed from the store on every call; collections stay dashboard-sized,
// so the repeated scans are fine.
package stats

import (
	"context"
	"math"

	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Overview holds the derived dashboard counters.
type Overview struct {
	ActiveInitiatives int `json:"activeInitiatives"`
	CompletedMeetings int `json:"completedMeetings"`
	OpenActions       int `json:"openActions"`
	OverallProgress   int `json:"overallProgress"`
}

// Service computes Overview on demand.
type Service struct {
	initiatives storage.InitiativeStore
	meetings    storage.MeetingStore
	actions     storage.ActionItemStore
}

// New constructs the stats service.
func New(initiatives storage.InitiativeStore, meetings storage.MeetingStore, actions storage.ActionItemStore) *Service {
	return &Service{initiatives: initiatives, meetings: meetings, actions: actions}
}

// Overview scans the relevant collections and returns fresh counters.
// OverallProgress is the mean initiative progress rounded to the nearest
// integer, and 0 when there are no initiatives.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	initiativeList, err := s.initiatives.ListInitiatives(ctx)
	if err != nil {
		return Overview{}, err
	}
	meetingList, err := s.meetings.ListMeetings(ctx)
	if err != nil {
		return Overview{}, err
	}
	actionList, err := s.actions.ListActionItems(ctx)
	if err != nil {
		return Overview{}, err
	}

	var overview Overview
	totalProgress := 0
	for _, in := range initiativeList {
		if in.Status == initiative.StatusActive {
			overview.ActiveInitiatives++
		}
		totalProgress += in.Progress
	}
	for _, m := range meetingList {
		if m.Status == meeting.StatusCompleted {
			overview.CompletedMeetings++
		}
	}
	for _, a := range actionList {
		if a.Status == action.StatusOpen {
			overview.OpenActions++
		}
	}
	if len(initiativeList) > 0 {
		overview.OverallProgress = int(math.Round(float64(totalProgress) / float64(len(initiativeList))))
	}
	return overview, nil
}
