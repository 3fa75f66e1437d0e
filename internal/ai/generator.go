// Package ai wraps the external text-completion service the dashboard uses
// for chat replies, meeting summaries, document analyses, action-item
// extraction and progress insights.
//
// Every call is stateless request/response. Callers never surface a raw
// generator failure to the HTTP boundary: on error they substitute the fixed
// fallback texts below (or an empty list for extraction) and the request
// still completes.
package ai

import (
	"context"
	"errors"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
)

// Generator produces free-text content from the completion service.
type Generator interface {
	CompleteChat(ctx context.Context, message, promptContext string) (string, error)
	SummarizeMeeting(ctx context.Context, notes string) (string, error)
	AnalyzeDocument(ctx context.Context, content, filename string) (string, error)
	ExtractActionItems(ctx context.Context, notes string) ([]ExtractedAction, error)
	SummarizeProgress(ctx context.Context, initiatives []initiative.Initiative) (string, error)
}

// ExtractedAction is one action item pulled out of meeting notes.
type ExtractedAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee,omitempty"`
}

// Fixed user-facing fallback texts, substituted when the generator fails.
// The dashboard serves a Bulgarian-speaking audience.
const (
	FallbackChatReply        = "Възникна грешка при генериране на отговор. Моля, опитайте отново."
	FallbackMeetingSummary   = "Грешка при генериране на резюме на срещата."
	FallbackDocumentAnalysis = "Грешка при анализ на документа."
	FallbackProgressInsights = "Грешка при анализ на прогреса."
)

// ErrDisabled is returned by Disabled for every operation.
var ErrDisabled = errors.New("ai generator disabled")

// Disabled is a Generator that always fails, driving callers onto their
// fallback paths. Used when no API key is configured and in tests.
type Disabled struct{}

var _ Generator = Disabled{}

func (Disabled) CompleteChat(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) SummarizeMeeting(context.Context, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) AnalyzeDocument(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) ExtractActionItems(context.Context, string) ([]ExtractedAction, error) {
	return nil, ErrDisabled
}

func (Disabled) SummarizeProgress(context.Context, []initiative.Initiative) (string, error) {
	return "", ErrDisabled
}
