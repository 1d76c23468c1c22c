package ports

import (
	"context"
	"time"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// Session is returned after joining or switching to a roster member.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// SessionService establishes which roster member is acting.
type SessionService interface {
	Join(ctx context.Context, name, passphrase string) (*Session, error)
	Switch(ctx context.Context, userID, passphrase string) (*Session, error)
}
