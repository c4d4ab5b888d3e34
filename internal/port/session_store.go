package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recapd/internal/domain"
)

// SessionStore abstracts session state storage. Sessions are ephemeral;
// implementations are expected to be in-memory.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	// PurgeExpired removes sessions idle since before the cutoff and
	// returns how many were evicted.
	PurgeExpired(ctx context.Context, cutoff time.Time) int
}
