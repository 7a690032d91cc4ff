package session

import (
	"context"
	"time"
)

// Session is an authenticated staff session issued by the external identity
// provider; this service only looks sessions up, it never creates them.
type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

type Repository interface {
	Get(ctx context.Context, token string) (*Session, error)
}
