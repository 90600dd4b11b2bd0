package models

import "time"

// User is an authoring identity referenced by answers.
//
// The board has no caller identities yet, so the only rows in practice are
// the fixed system author that answers are attributed to.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is unique across all users and is the key used by
	// get-or-create lookups.
	Username string `json:"username"`

	// IsSystem marks identities created by the server itself rather
	// than by a person.
	IsSystem bool `json:"is_system"`

	// CreatedAt is the timestamp when the user row was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
