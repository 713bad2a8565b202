package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ResetProgress(ctx context.Context, userID uuid.UUID) (ResetProgressOut, error)
	ResetCooldown(ctx context.Context, userID uuid.UUID, now time.Time) (ResetCooldownOut, error)
	SeedWords(ctx context.Context, in SeedWordsIn) (SeedWordsOut, error)
	Words(ctx context.Context) (WordsOut, error)
}
