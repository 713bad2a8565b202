package module

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/home/domain"
	homesvc "wordpool/internal/services/api/home/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptHomePort struct{ svc homesvc.Service }

// Stats computes the home dashboard aggregate
func (a adaptHomePort) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (domain.StatsOut, error) {
	return a.svc.Stats(ctx, userID, now)
}

// WordPool groups the catalog by the user's pools
func (a adaptHomePort) WordPool(ctx context.Context, userID uuid.UUID) (domain.WordPoolOut, error) {
	return a.svc.WordPool(ctx, userID)
}
