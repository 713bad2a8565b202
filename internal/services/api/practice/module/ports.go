package module

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/practice/domain"
	practicesvc "wordpool/internal/services/api/practice/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptPracticePort struct{ svc practicesvc.Service }

// Session assembles a practice session for the user
func (a adaptPracticePort) Session(ctx context.Context, userID uuid.UUID, now time.Time) (domain.SessionOut, error) {
	return a.svc.Session(ctx, userID, now)
}

// Submit grades a practice submission
func (a adaptPracticePort) Submit(
	ctx context.Context, userID uuid.UUID, in domain.SubmitIn, now time.Time,
) (domain.SubmitOut, error) {
	return a.svc.Submit(ctx, userID, in, now)
}
