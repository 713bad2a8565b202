package module

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/admin/domain"
	adminsvc "wordpool/internal/services/api/admin/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAdminPort struct{ svc adminsvc.Service }

// ResetProgress wipes the user's rows
func (a adaptAdminPort) ResetProgress(ctx context.Context, userID uuid.UUID) (domain.ResetProgressOut, error) {
	return a.svc.ResetProgress(ctx, userID)
}

// ResetCooldown clears every pending wait
func (a adaptAdminPort) ResetCooldown(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.ResetCooldownOut, error) {
	return a.svc.ResetCooldown(ctx, userID, now)
}

// SeedWords imports a catalog batch
func (a adaptAdminPort) SeedWords(ctx context.Context, in domain.SeedWordsIn) (domain.SeedWordsOut, error) {
	return a.svc.SeedWords(ctx, in)
}

// Words lists the catalog
func (a adaptAdminPort) Words(ctx context.Context) (domain.WordsOut, error) {
	return a.svc.Words(ctx)
}
