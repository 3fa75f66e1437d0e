package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/services/actions"
	chatsvc "github.com/transformhub/dashboard/internal/app/services/chat"
	"github.com/transformhub/dashboard/internal/app/services/documents"
	"github.com/transformhub/dashboard/internal/app/services/initiatives"
	"github.com/transformhub/dashboard/internal/app/services/meetings"
	"github.com/transformhub/dashboard/internal/app/services/reports"
	"github.com/transformhub/dashboard/internal/app/services/stats"
	"github.com/transformhub/dashboard/internal/app/storage"
	"github.com/transformhub/dashboard/internal/app/storage/memory"
)

// Stores encapsulates the entity collections. Nil stores default to a shared
// in-memory implementation, the only one this dashboard ships.
type Stores struct {
	Users       storage.UserStore
	Initiatives storage.InitiativeStore
	Meetings    storage.MeetingStore
	ActionItems storage.ActionItemStore
	Documents   storage.DocumentStore
	Chat        storage.ChatStore
	Reports     storage.ReportStore
}

// Options configures optional application behaviour.
type Options struct {
	// SeedData installs the default user and sample initiatives on startup.
	SeedData bool
}

// Application ties the dashboard services together.
type Application struct {
	log *logrus.Logger

	Initiatives *initiatives.Service
	Meetings    *meetings.Service
	Actions     *actions.Service
	Documents   *documents.Service
	Chat        *chatsvc.Service
	Reports     *reports.Service
	Stats       *stats.Service
}

// New builds a fully initialised application. A nil generator degrades every
// AI operation to its fallback text.
func New(stores Stores, generator ai.Generator, opts Options, log *logrus.Logger) (*Application, error) {
	if log == nil {
		log = logrus.New()
	}
	if generator == nil {
		generator = ai.Disabled{}
	}

	mem := memory.New()
	seedable := false
	if stores.Users == nil {
		stores.Users = mem
		seedable = true
	}
	if stores.Initiatives == nil {
		stores.Initiatives = mem
		seedable = true
	}
	if stores.Meetings == nil {
		stores.Meetings = mem
	}
	if stores.ActionItems == nil {
		stores.ActionItems = mem
	}
	if stores.Documents == nil {
		stores.Documents = mem
	}
	if stores.Chat == nil {
		stores.Chat = mem
	}
	if stores.Reports == nil {
		stores.Reports = mem
	}

	if opts.SeedData && seedable {
		if err := mem.Seed(context.Background()); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		log.Info("store seeded with sample data")
	}

	return &Application{
		log:         log,
		Initiatives: initiatives.New(stores.Initiatives, log),
		Meetings:    meetings.New(stores.Meetings, generator, log),
		Actions:     actions.New(stores.ActionItems, stores.Meetings, generator, log),
		Documents:   documents.New(stores.Documents, generator, log),
		Chat:        chatsvc.New(stores.Chat, generator, log),
		Reports:     reports.New(stores.Reports, stores.Initiatives, generator, log),
		Stats:       stats.New(stores.Initiatives, stores.Meetings, stores.ActionItems),
	}, nil
}

// Logger exposes the application logger for HTTP-layer wiring.
func (a *Application) Logger() *logrus.Logger {
	return a.log
}
