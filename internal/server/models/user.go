// Package models holds the entities persisted by the repositories.
// JSON tags match the wire names the frontend already consumes.
package models

import "time"

// User is the only entity with security-relevant fields. Password
// always holds the bcrypt hash; the plaintext never reaches a model.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Gender    string    `json:"gender"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
