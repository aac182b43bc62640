package domain

import "time"

// Role is the closed set of account roles. Anything else is rejected at the
// boundary.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool { return r == RoleClient || r == RoleAdmin }

// UserStatus tracks the onboarding lifecycle. Accounts start pending and flip
// to active exactly once, when an invite token is redeemed during login.
type UserStatus string

const (
	StatusPending UserStatus = "pending"
	StatusActive  UserStatus = "active"
)

func (s UserStatus) Valid() bool { return s == StatusPending || s == StatusActive }

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // argon2id encoded, never serialized
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Caller is the authenticated identity a request acts as. It is resolved from
// the bearer credential upstream and passed explicitly into every service
// call; services never read auth state from globals.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }
