// Package chat defines per-session chat messages exchanged with the AI
// assistant.
package chat

import (
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// Role values.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a chat session. Messages are grouped by SessionID
// and ordered by CreatedAt; assistant messages carry no user id.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	UserID    string    `json:"userId,omitempty"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the fields required to append a message.
func (m Message) Validate() error {
	if _, err := validation.Required(m.Content, "content"); err != nil {
		return err
	}
	if _, err := validation.Required(m.SessionID, "sessionId"); err != nil {
		return err
	}
	return validation.OneOf(m.Role, "role", RoleUser, RoleAssistant)
}
