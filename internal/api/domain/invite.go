package domain

import "time"

// InviteToken is the stored record for a pending client's first-login token.
// The raw token value is never persisted, only its fingerprint. At most one
// live token exists per user; reissuing replaces the previous record.
type InviteToken struct {
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IssuedInvite is what IssueInvite hands back to the admin: the raw token
// (shown exactly once) and its expiry.
type IssuedInvite struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
