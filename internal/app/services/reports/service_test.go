package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/report"
	"github.com/transformhub/dashboard/internal/app/storage/memory"
)

type stubGenerator struct {
	insights string
}

func (g stubGenerator) CompleteChat(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (g stubGenerator) SummarizeMeeting(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func (g stubGenerator) AnalyzeDocument(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (g stubGenerator) ExtractActionItems(context.Context, string) ([]ai.ExtractedAction, error) {
	return nil, errors.New("not used")
}

func (g stubGenerator) SummarizeProgress(context.Context, []initiative.Initiative) (string, error) {
	return g.insights, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestService_GenerateProgress(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, in := range []initiative.Initiative{
		{Title: "a", Status: initiative.StatusActive, Progress: 40, Priority: initiative.PriorityHigh},
		{Title: "b", Status: initiative.StatusActive, Progress: 80, Priority: initiative.PriorityLow},
	} {
		if _, err := store.CreateInitiative(ctx, in); err != nil {
			t.Fatalf("create initiative: %v", err)
		}
	}

	svc := New(store, store, stubGenerator{insights: "Портфолиото напредва стабилно."}, testLogger())

	rep, err := svc.GenerateProgress(ctx)
	if err != nil {
		t.Fatalf("generate progress: %v", err)
	}
	if rep.Type != report.TypeProgress {
		t.Fatalf("unexpected type: %s", rep.Type)
	}
	if rep.Content.Progress == nil {
		t.Fatal("progress content missing")
	}
	if rep.Content.Progress.Insights != "Портфолиото напредва стабилно." {
		t.Fatalf("insights not stored: %s", rep.Content.Progress.Insights)
	}
	if len(rep.Content.Progress.Initiatives) != 2 {
		t.Fatalf("initiative snapshot missing: %d", len(rep.Content.Progress.Initiatives))
	}
	if rep.Content.Progress.GeneratedAt.IsZero() {
		t.Fatal("generatedAt not set")
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("report not persisted: %d", len(list))
	}
}

func TestService_GenerateProgressFallback(t *testing.T) {
	store := memory.New()
	svc := New(store, store, ai.Disabled{}, testLogger())

	rep, err := svc.GenerateProgress(context.Background())
	if err != nil {
		t.Fatalf("insight failure should not surface: %v", err)
	}
	if rep.Content.Progress.Insights != ai.FallbackProgressInsights {
		t.Fatalf("expected fallback insights, got %s", rep.Content.Progress.Insights)
	}
	if len(rep.Content.Progress.Initiatives) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(rep.Content.Progress.Initiatives))
	}
}
