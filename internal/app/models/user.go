package models

import (
	"time"
)

// MaxUsernameLength is the hard limit on usernames; derivation that exceeds
// it aborts the import of the record.
const MaxUsernameLength = 15

// User defines the credential record based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, empty for imported users
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
