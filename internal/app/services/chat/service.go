// Package chat owns the per-session assistant conversation flow: persist
// the user message, ask the generator for a reply, persist the reply.
package chat

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	chatmsg "github.com/transformhub/dashboard/internal/app/domain/chat"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Service owns the chat session log.
type Service struct {
	store     storage.ChatStore
	generator ai.Generator
	log       *logrus.Logger
}

// New constructs the chat service.
func New(store storage.ChatStore, generator ai.Generator, log *logrus.Logger) *Service {
	return &Service{store: store, generator: generator, log: log}
}

// Messages returns the session's messages ordered by creation time.
func (s *Service) Messages(ctx context.Context, sessionID string) ([]chatmsg.Message, error) {
	return s.store.ListChatMessages(ctx, sessionID)
}

// Send appends the user's message, generates the assistant reply and appends
// that too, returning the assistant message. If the generator fails the user
// message stays persisted and the reply carries the fixed fallback text;
// there is no rollback.
func (s *Service) Send(ctx context.Context, sessionID, content, userID string) (chatmsg.Message, error) {
	userMsg := chatmsg.Message{
		Content:   content,
		Role:      chatmsg.RoleUser,
		UserID:    userID,
		SessionID: sessionID,
	}
	if err := userMsg.Validate(); err != nil {
		return chatmsg.Message{}, err
	}
	if _, err := s.store.CreateChatMessage(ctx, userMsg); err != nil {
		return chatmsg.Message{}, err
	}

	start := time.Now()
	reply, genErr := s.generator.CompleteChat(ctx, content, "")
	metrics.RecordGeneratorCall("complete_chat", time.Since(start), genErr)
	if genErr != nil {
		s.log.WithField("session_id", sessionID).WithError(genErr).Warn("chat completion failed")
		reply = ai.FallbackChatReply
	}

	assistant, err := s.store.CreateChatMessage(ctx, chatmsg.Message{
		Content:   reply,
		Role:      chatmsg.RoleAssistant,
		SessionID: sessionID,
	})
	if err != nil {
		return chatmsg.Message{}, err
	}
	return assistant, nil
}
