// Package service implements user accounts and the header identity seam
package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	perr "wordpool/internal/platform/errors"
	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/users/domain"
)

// Svc implements domain.Port
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
}

var _ domain.Port = (*Svc)(nil)

// New constructs the users service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder}
}

// Login implements domain.Port: upsert by username and return the stable id
func (s *Svc) Login(ctx context.Context, username string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, perr.InvalidArgf("username required")
	}
	return s.binder.Bind(s.db).UpsertByUsername(ctx, username)
}

// Get implements domain.Port
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	return s.binder.Bind(s.db).ByID(ctx, id)
}

// AdvancePosition implements domain.Port
func (s *Svc) AdvancePosition(
	ctx context.Context, id uuid.UUID, level, category int,
) (bool, error) {
	return s.binder.Bind(s.db).AdvancePosition(ctx, id, level, category)
}

// UserIDHeader carries the caller identity. The deployment fronts this
// service with a gateway that authenticates and injects it; the backend
// trusts the value
const UserIDHeader = "X-User-ID"

// HeaderAuth implements the middleware auth seam from the trusted header
type HeaderAuth struct{}

// Parse validates the identity header shape. It does not hit storage;
// unknown ids surface later as empty progress
func (HeaderAuth) Parse(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return "", perr.Unauthorizedf("missing %s header", UserIDHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", perr.Unauthorizedf("malformed %s header", UserIDHeader)
	}
	return id.String(), nil
}
