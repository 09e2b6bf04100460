package domain

import "time"

// User is an account. Email is unique and compared case sensitively.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credential is what a successful register or login hands back.
type Credential struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
