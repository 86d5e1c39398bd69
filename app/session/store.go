// Package session provides server-side session storage for the calendar app
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Session holds the server-side state bound to one opaque session ID
type Session struct {
	ID        string    `json:"id"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store persists sessions keyed by opaque ID.
//
// Get returns (nil, nil) when the session does not exist or has expired.
// Save must only return nil once the session is durable and re-readable,
// so a Get issued immediately after a successful Save observes the write.
// Destroy is idempotent.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}

// NewSessionID mints a 256-bit random hex session identifier
func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
