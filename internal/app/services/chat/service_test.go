package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	chatmsg "github.com/transformhub/dashboard/internal/app/domain/chat"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/domain/validation"
	"github.com/transformhub/dashboard/internal/app/storage/memory"
)

type stubGenerator struct {
	reply string
}

func (g stubGenerator) CompleteChat(context.Context, string, string) (string, error) {
	return g.reply, nil
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
	return "", errors.New("not used")
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestService_Send(t *testing.T) {
	store := memory.New()
	svc := New(store, stubGenerator{reply: "Здравейте!"}, testLogger())

	assistant, err := svc.Send(context.Background(), "s1", "Какъв е прогресът?", user.SystemID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if assistant.Role != chatmsg.RoleAssistant || assistant.Content != "Здравейте!" {
		t.Fatalf("unexpected assistant message: %+v", assistant)
	}
	if assistant.UserID != "" {
		t.Fatalf("assistant message should carry no user id: %s", assistant.UserID)
	}

	messages, err := svc.Messages(context.Background(), "s1")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected user and assistant messages, got %d", len(messages))
	}
	if messages[0].Role != chatmsg.RoleUser || messages[1].Role != chatmsg.RoleAssistant {
		t.Fatalf("messages out of order: %s then %s", messages[0].Role, messages[1].Role)
	}
	if messages[0].UserID != user.SystemID {
		t.Fatalf("user message should carry the user id: %s", messages[0].UserID)
	}
}

func TestService_SendFallback(t *testing.T) {
	store := memory.New()
	svc := New(store, ai.Disabled{}, testLogger())

	assistant, err := svc.Send(context.Background(), "s1", "въпрос", user.SystemID)
	if err != nil {
		t.Fatalf("generator failure should not surface: %v", err)
	}
	if assistant.Content != ai.FallbackChatReply {
		t.Fatalf("expected fallback reply, got %s", assistant.Content)
	}

	// The user message stays persisted even though generation failed.
	messages, err := svc.Messages(context.Background(), "s1")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
}

func TestService_SendValidation(t *testing.T) {
	store := memory.New()
	svc := New(store, stubGenerator{reply: "x"}, testLogger())

	if _, err := svc.Send(context.Background(), "s1", "  ", user.SystemID); !validation.IsError(err) {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}
	if _, err := svc.Send(context.Background(), "", "hello", user.SystemID); !validation.IsError(err) {
		t.Fatalf("expected validation error for blank session, got %v", err)
	}
}
