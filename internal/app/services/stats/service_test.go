package stats

import (
	"context"
	"testing"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/storage/memory"
)

func TestService_OverviewEmpty(t *testing.T) {
	store := memory.New()
	svc := New(store, store, store)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview != (Overview{}) {
		t.Fatalf("empty store should yield zero counters: %+v", overview)
	}
}

func TestService_Overview(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, in := range []initiative.Initiative{
		{Title: "a", Status: initiative.StatusActive, Progress: 76, Priority: initiative.PriorityHigh},
		{Title: "b", Status: initiative.StatusActive, Progress: 45, Priority: initiative.PriorityHigh},
		{Title: "c", Status: initiative.StatusCompleted, Progress: 92, Priority: initiative.PriorityMedium},
		{Title: "d", Status: initiative.StatusPaused, Progress: 23, Priority: initiative.PriorityLow},
	} {
		if _, err := store.CreateInitiative(ctx, in); err != nil {
			t.Fatalf("create initiative: %v", err)
		}
	}

	for _, m := range []meeting.Meeting{
		{Title: "done", ScheduledAt: time.Now(), Duration: 30, Status: meeting.StatusCompleted},
		{Title: "upcoming", ScheduledAt: time.Now(), Duration: 30, Status: meeting.StatusScheduled},
	} {
		if _, err := store.CreateMeeting(ctx, m); err != nil {
			t.Fatalf("create meeting: %v", err)
		}
	}

	for _, item := range []action.Item{
		{Title: "open", Assignee: "x", Priority: initiative.PriorityHigh, Status: action.StatusOpen},
		{Title: "busy", Assignee: "y", Priority: initiative.PriorityLow, Status: action.StatusInProgress},
		{Title: "done", Assignee: "z", Priority: initiative.PriorityLow, Status: action.StatusCompleted},
	} {
		if _, err := store.CreateActionItem(ctx, item); err != nil {
			t.Fatalf("create action item: %v", err)
		}
	}

	overview, err := New(store, store, store).Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.ActiveInitiatives != 2 {
		t.Fatalf("active initiatives: %d", overview.ActiveInitiatives)
	}
	if overview.CompletedMeetings != 1 {
		t.Fatalf("completed meetings: %d", overview.CompletedMeetings)
	}
	if overview.OpenActions != 1 {
		t.Fatalf("open actions: %d", overview.OpenActions)
	}
	// (76+45+92+23)/4 = 59
	if overview.OverallProgress != 59 {
		t.Fatalf("overall progress: %d", overview.OverallProgress)
	}
}
