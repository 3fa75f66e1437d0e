package user

import (
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/validation"
)

// DefaultRole is assigned when a user is created without an explicit role.
const DefaultRole = "manager"

// SystemID identifies the seeded dashboard user. Uploads and generated
// reports are attributed to it until a real authentication layer exists.
const SystemID = "user-1"

// User is a dashboard account. Users are referenced by documents, chat
// messages and reports through plain identifier fields; those references are
// never validated against this collection.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApplyDefaults fills unset optional fields.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = DefaultRole
	}
}

// Validate checks the fields required to create a user. Username uniqueness
// is enforced by the store, not here.
func (u User) Validate() error {
	if _, err := validation.Required(u.Username, "username"); err != nil {
		return err
	}
	if _, err := validation.Required(u.Password, "password"); err != nil {
		return err
	}
	return nil
}
