package storage

import (
	"context"
	"errors"

	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/chat"
	"github.com/transformhub/dashboard/internal/app/domain/document"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/domain/report"
	"github.com/transformhub/dashboard/internal/app/domain/user"
)

// ErrNotFound is returned when a lookup or update targets an id with no
// matching record. Absence is an expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// UserStore persists dashboard users.
type UserStore interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
}

// InitiativeStore persists transformation initiatives.
type InitiativeStore interface {
	CreateInitiative(ctx context.Context, in initiative.Initiative) (initiative.Initiative, error)
	UpdateInitiative(ctx context.Context, id string, patch initiative.Patch) (initiative.Initiative, error)
	GetInitiative(ctx context.Context, id string) (initiative.Initiative, error)
	ListInitiatives(ctx context.Context) ([]initiative.Initiative, error)
}

// MeetingStore persists meetings.
type MeetingStore interface {
	CreateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, patch meeting.Patch) (meeting.Meeting, error)
	GetMeeting(ctx context.Context, id string) (meeting.Meeting, error)
	ListMeetings(ctx context.Context) ([]meeting.Meeting, error)
}

// ActionItemStore persists action items.
type ActionItemStore interface {
	CreateActionItem(ctx context.Context, item action.Item) (action.Item, error)
	UpdateActionItem(ctx context.Context, id string, patch action.Patch) (action.Item, error)
	GetActionItem(ctx context.Context, id string) (action.Item, error)
	ListActionItems(ctx context.Context) ([]action.Item, error)
}

// DocumentStore persists uploaded documents. There is no update or delete;
// documents are write-once.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc document.Document) (document.Document, error)
	GetDocument(ctx context.Context, id string) (document.Document, error)
	ListDocuments(ctx context.Context) ([]document.Document, error)
	SearchDocuments(ctx context.Context, query string) ([]document.Document, error)
}

// ChatStore persists chat messages grouped by session.
type ChatStore interface {
	CreateChatMessage(ctx context.Context, msg chat.Message) (chat.Message, error)
	ListChatMessages(ctx context.Context, sessionID string) ([]chat.Message, error)
}

// ReportStore persists generated reports.
type ReportStore interface {
	CreateReport(ctx context.Context, rep report.Report) (report.Report, error)
	ListReports(ctx context.Context) ([]report.Report, error)
}
