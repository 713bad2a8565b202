package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Session(ctx context.Context, userID uuid.UUID, now time.Time) (SessionOut, error)
	Complete(ctx context.Context, userID uuid.UUID, in CompleteIn, now time.Time) (CompleteOut, error)
}
