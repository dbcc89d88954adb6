package models

import (
	"time"
)

// Person is the identity anchor every role record and sub-profile hangs off.
// Guardians are persons without a linked user.
type Person struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User    *User     `json:"user,omitempty"`
	Parents []*Person `json:"parents,omitempty"`
}
