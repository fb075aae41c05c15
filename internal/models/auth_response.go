package models

import "time"

// UserPayload is the public slice of a user returned after login
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Auth  bool        `json:"auth"`
	Token string      `json:"token"` // JWT token
	User  UserPayload `json:"user"`
}

// Identity is the authenticated user's public attributes, attached to the
// request context by the auth middleware. Password hash is never carried here.
type Identity struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
