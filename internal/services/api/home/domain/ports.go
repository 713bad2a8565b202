package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Stats(ctx context.Context, userID uuid.UUID, now time.Time) (StatsOut, error)
	WordPool(ctx context.Context, userID uuid.UUID) (WordPoolOut, error)
}
