package module

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/learn/domain"
	learnsvc "wordpool/internal/services/api/learn/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLearnPort struct{ svc learnsvc.Service }

// Session assembles the next learn batch for the user
func (a adaptLearnPort) Session(ctx context.Context, userID uuid.UUID, now time.Time) (domain.SessionOut, error) {
	return a.svc.Session(ctx, userID, now)
}

// Complete moves the finished words into the first practice pool
func (a adaptLearnPort) Complete(
	ctx context.Context, userID uuid.UUID, in domain.CompleteIn, now time.Time,
) (domain.CompleteOut, error) {
	return a.svc.Complete(ctx, userID, in, now)
}
