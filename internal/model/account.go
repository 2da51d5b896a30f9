package model

import "time"

// UserID uniquely identifies a chat user across the system.
// It is assigned by the chat transport and treated as opaque.
type UserID string

// Account is the per-user record of coin balance and status flags
type Account struct {
	ID        UserID
	Coins     int64
	Verified  bool
	VIP       bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount returns a default account for a first-seen user:
// zero coins, unverified, not VIP
func NewAccount(id UserID, now time.Time) *Account {
	return &Account{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
