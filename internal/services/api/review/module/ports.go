package module

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/review/domain"
	reviewsvc "wordpool/internal/services/api/review/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReviewPort struct{ svc reviewsvc.Service }

// Session assembles a review display session for the user
func (a adaptReviewPort) Session(ctx context.Context, userID uuid.UUID, now time.Time) (domain.SessionOut, error) {
	return a.svc.Session(ctx, userID, now)
}

// Complete flips display rows into the test stage
func (a adaptReviewPort) Complete(
	ctx context.Context, userID uuid.UUID, in domain.CompleteIn, now time.Time,
) (domain.CompleteOut, error) {
	return a.svc.Complete(ctx, userID, in, now)
}

// Submit grades the test phase
func (a adaptReviewPort) Submit(
	ctx context.Context, userID uuid.UUID, in domain.SubmitIn, now time.Time,
) (domain.SubmitOut, error) {
	return a.svc.Submit(ctx, userID, in, now)
}
