package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/chat"
	"github.com/transformhub/dashboard/internal/app/domain/document"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/domain/report"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Store is the in-memory implementation of the storage interfaces. It is
// safe for concurrent use; each create/update is atomic with respect to its
// collection. Nothing is ever deleted and nothing survives process restart.
type Store struct {
	mu            sync.RWMutex
	users         map[string]user.User
	usersByName   map[string]string
	initiatives   map[string]initiative.Initiative
	meetings      map[string]meeting.Meeting
	actionItems   map[string]action.Item
	documents     map[string]document.Document
	chatMessages  map[string]chat.Message
	chatBySession map[string][]chat.Message
	reports       map[string]report.Report
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.InitiativeStore = (*Store)(nil)
var _ storage.MeetingStore = (*Store)(nil)
var _ storage.ActionItemStore = (*Store)(nil)
var _ storage.DocumentStore = (*Store)(nil)
var _ storage.ChatStore = (*Store)(nil)
var _ storage.ReportStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		users:         make(map[string]user.User),
		usersByName:   make(map[string]string),
		initiatives:   make(map[string]initiative.Initiative),
		meetings:      make(map[string]meeting.Meeting),
		actionItems:   make(map[string]action.Item),
		documents:     make(map[string]document.Document),
		chatMessages:  make(map[string]chat.Message),
		chatBySession: make(map[string][]chat.Message),
		reports:       make(map[string]report.Report),
	}
}

func newID() string {
	return uuid.New().String()
}

// UserStore implementation ----------------------------------------------------

func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = newID()
	} else if _, exists := s.users[u.ID]; exists {
		return user.User{}, fmt.Errorf("user %s already exists", u.ID)
	}

	nameKey := strings.ToLower(u.Username)
	if existing, exists := s.usersByName[nameKey]; exists {
		return user.User{}, fmt.Errorf("username %s already taken by user %s", u.Username, existing)
	}

	u.CreatedAt = time.Now().UTC()

	s.users[u.ID] = u
	s.usersByName[nameKey] = u.ID
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.usersByName[strings.ToLower(username)]; ok {
		return s.users[id], nil
	}
	return user.User{}, storage.ErrNotFound
}

// InitiativeStore implementation ----------------------------------------------

func (s *Store) CreateInitiative(_ context.Context, in initiative.Initiative) (initiative.Initiative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ID == "" {
		in.ID = newID()
	} else if _, exists := s.initiatives[in.ID]; exists {
		return initiative.Initiative{}, fmt.Errorf("initiative %s already exists", in.ID)
	}

	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	s.initiatives[in.ID] = in
	return in, nil
}

func (s *Store) UpdateInitiative(_ context.Context, id string, patch initiative.Patch) (initiative.Initiative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.initiatives[id]
	if !ok {
		return initiative.Initiative{}, storage.ErrNotFound
	}

	updated := patch.Apply(original)
	updated.UpdatedAt = time.Now().UTC()

	s.initiatives[id] = updated
	return updated, nil
}

func (s *Store) GetInitiative(_ context.Context, id string) (initiative.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, ok := s.initiatives[id]
	if !ok {
		return initiative.Initiative{}, storage.ErrNotFound
	}
	return in, nil
}

func (s *Store) ListInitiatives(_ context.Context) ([]initiative.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]initiative.Initiative, 0, len(s.initiatives))
	for _, in := range s.initiatives {
		result = append(result, in)
	}
	return result, nil
}

// MeetingStore implementation -------------------------------------------------

func (s *Store) CreateMeeting(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = newID()
	} else if _, exists := s.meetings[m.ID]; exists {
		return meeting.Meeting{}, fmt.Errorf("meeting %s already exists", m.ID)
	}

	m.CreatedAt = time.Now().UTC()
	m.Participants = append([]string(nil), m.Participants...)

	s.meetings[m.ID] = m
	return cloneMeeting(m), nil
}

func (s *Store) UpdateMeeting(_ context.Context, id string, patch meeting.Patch) (meeting.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.meetings[id]
	if !ok {
		return meeting.Meeting{}, storage.ErrNotFound
	}

	updated := patch.Apply(original)
	s.meetings[id] = updated
	return cloneMeeting(updated), nil
}

func (s *Store) GetMeeting(_ context.Context, id string) (meeting.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[id]
	if !ok {
		return meeting.Meeting{}, storage.ErrNotFound
	}
	return cloneMeeting(m), nil
}

func (s *Store) ListMeetings(_ context.Context) ([]meeting.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]meeting.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		result = append(result, cloneMeeting(m))
	}
	return result, nil
}

// ActionItemStore implementation ----------------------------------------------

func (s *Store) CreateActionItem(_ context.Context, item action.Item) (action.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = newID()
	} else if _, exists := s.actionItems[item.ID]; exists {
		return action.Item{}, fmt.Errorf("action item %s already exists", item.ID)
	}

	item.CreatedAt = time.Now().UTC()

	s.actionItems[item.ID] = item
	return item, nil
}

func (s *Store) UpdateActionItem(_ context.Context, id string, patch action.Patch) (action.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.actionItems[id]
	if !ok {
		return action.Item{}, storage.ErrNotFound
	}

	updated := patch.Apply(original)
	s.actionItems[id] = updated
	return updated, nil
}

func (s *Store) GetActionItem(_ context.Context, id string) (action.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.actionItems[id]
	if !ok {
		return action.Item{}, storage.ErrNotFound
	}
	return item, nil
}

func (s *Store) ListActionItems(_ context.Context) ([]action.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]action.Item, 0, len(s.actionItems))
	for _, item := range s.actionItems {
		result = append(result, item)
	}
	return result, nil
}

// DocumentStore implementation ------------------------------------------------

func (s *Store) CreateDocument(_ context.Context, doc document.Document) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = newID()
	} else if _, exists := s.documents[doc.ID]; exists {
		return document.Document{}, fmt.Errorf("document %s already exists", doc.ID)
	}

	doc.CreatedAt = time.Now().UTC()
	doc.Tags = append([]string(nil), doc.Tags...)

	s.documents[doc.ID] = doc
	return cloneDocument(doc), nil
}

func (s *Store) GetDocument(_ context.Context, id string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return document.Document{}, storage.ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (s *Store) ListDocuments(_ context.Context) ([]document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]document.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, cloneDocument(doc))
	}
	return result, nil
}

func (s *Store) SearchDocuments(_ context.Context, query string) ([]document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]document.Document, 0)
	for _, doc := range s.documents {
		if doc.Matches(query) {
			result = append(result, cloneDocument(doc))
		}
	}
	return result, nil
}

// ChatStore implementation ----------------------------------------------------

func (s *Store) CreateChatMessage(_ context.Context, msg chat.Message) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = newID()
	} else if _, exists := s.chatMessages[msg.ID]; exists {
		return chat.Message{}, fmt.Errorf("chat message %s already exists", msg.ID)
	}

	msg.CreatedAt = time.Now().UTC()

	s.chatMessages[msg.ID] = msg
	s.chatBySession[msg.SessionID] = append(s.chatBySession[msg.SessionID], msg)
	return msg, nil
}

func (s *Store) ListChatMessages(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := append([]chat.Message(nil), s.chatBySession[sessionID]...)
	// Per-session slices are append-ordered already; the stable sort keeps
	// that order for messages sharing a timestamp.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ReportStore implementation --------------------------------------------------

func (s *Store) CreateReport(_ context.Context, rep report.Report) (report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rep.ID == "" {
		rep.ID = newID()
	} else if _, exists := s.reports[rep.ID]; exists {
		return report.Report{}, fmt.Errorf("report %s already exists", rep.ID)
	}

	rep.CreatedAt = time.Now().UTC()
	rep.Content = cloneContent(rep.Content)

	s.reports[rep.ID] = rep
	return rep, nil
}

func (s *Store) ListReports(_ context.Context) ([]report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]report.Report, 0, len(s.reports))
	for _, rep := range s.reports {
		rep.Content = cloneContent(rep.Content)
		result = append(result, rep)
	}
	return result, nil
}

// Helpers --------------------------------------------------------------------

func cloneMeeting(m meeting.Meeting) meeting.Meeting {
	m.Participants = append([]string(nil), m.Participants...)
	return m
}

func cloneDocument(doc document.Document) document.Document {
	if doc.Tags != nil {
		doc.Tags = append([]string(nil), doc.Tags...)
	}
	return doc
}

func cloneContent(c report.Content) report.Content {
	if c.Progress != nil {
		p := *c.Progress
		p.Initiatives = append([]initiative.Initiative(nil), p.Initiatives...)
		c.Progress = &p
	}
	if c.MeetingSummary != nil {
		ms := *c.MeetingSummary
		c.MeetingSummary = &ms
	}
	if c.InitiativeOverview != nil {
		ov := *c.InitiativeOverview
		ov.Initiatives = append([]initiative.Initiative(nil), ov.Initiatives...)
		c.InitiativeOverview = &ov
	}
	return c
}
