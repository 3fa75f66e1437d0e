package documents

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/document"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/storage/memory"
)

type stubGenerator struct {
	analysis string
}

func (g stubGenerator) CompleteChat(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (g stubGenerator) SummarizeMeeting(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func (g stubGenerator) AnalyzeDocument(context.Context, string, string) (string, error) {
	return g.analysis, nil
}

func (g stubGenerator) ExtractActionItems(context.Context, string) ([]ai.ExtractedAction, error) {
	return nil, errors.New("not used")
}

func (g stubGenerator) SummarizeProgress(context.Context, []initiative.Initiative) (string, error) {
	return "", errors.New("not used")
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestService_Create(t *testing.T) {
	store := memory.New()
	svc := New(store, stubGenerator{analysis: "Документът описва план за миграция."}, testLogger())

	created, err := svc.Create(context.Background(), Upload{
		Filename: "plan.pdf",
		FileType: "application/pdf",
		FileSize: 2048,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "plan.pdf" {
		t.Fatalf("title should default to filename: %s", created.Title)
	}
	if created.Category != document.DefaultCategory {
		t.Fatalf("category should default: %s", created.Category)
	}
	if created.AIAnalysis != "Документът описва план за миграция." {
		t.Fatalf("analysis not stored: %s", created.AIAnalysis)
	}
	if created.UploadedBy != user.SystemID {
		t.Fatalf("uploader not set: %s", created.UploadedBy)
	}
}

func TestService_CreateFallback(t *testing.T) {
	store := memory.New()
	svc := New(store, ai.Disabled{}, testLogger())

	created, err := svc.Create(context.Background(), Upload{
		Title:    "Бюджет",
		Category: "finance",
		Filename: "budget.xlsx",
		FileType: "spreadsheet",
		FileSize: 512,
	})
	if err != nil {
		t.Fatalf("analysis failure should not surface: %v", err)
	}
	if created.AIAnalysis != ai.FallbackDocumentAnalysis {
		t.Fatalf("expected fallback analysis, got %s", created.AIAnalysis)
	}
	if created.Title != "Бюджет" || created.Category != "finance" {
		t.Fatalf("explicit fields overridden: %+v", created)
	}
}

func TestService_Search(t *testing.T) {
	store := memory.New()
	svc := New(store, stubGenerator{analysis: "x"}, testLogger())

	if _, err := svc.Create(context.Background(), Upload{
		Title:    "Цифрова стратегия",
		Filename: "strategy.pdf",
		FileType: "application/pdf",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	matches, err := svc.Search(context.Background(), "стратегия")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	none, err := svc.Search(context.Background(), "липсва")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}
