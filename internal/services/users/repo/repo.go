// Package repo provides Postgres bindings for user accounts
package repo

import (
	"fmt"

	"context"

	"github.com/google/uuid"

	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/users/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// UpsertByUsername implements domain.Repo. The no-op DO UPDATE keeps
// RETURNING populated on the conflict path
func (r *queries) UpsertByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx, `
		INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, current_level, current_category, created_at
	`, username).Scan(&u.ID, &u.Username, &u.CurrentLevel, &u.CurrentCategory, &u.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("upsert user %q: %w", username, err)
	}
	return u, nil
}

// ByID implements domain.Repo
func (r *queries) ByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, username, current_level, current_category, created_at
		FROM users WHERE id = $1
	`, id)
	if err != nil {
		return domain.User{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.User{}, false, rows.Err()
	}
	var u domain.User
	if err := rows.Scan(&u.ID, &u.Username, &u.CurrentLevel, &u.CurrentCategory, &u.CreatedAt); err != nil {
		return domain.User{}, false, err
	}
	return u, true, rows.Err()
}

// AdvancePosition implements domain.Repo; the WHERE keeps it monotone
func (r *queries) AdvancePosition(
	ctx context.Context, id uuid.UUID, level, category int,
) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET current_level = $2, current_category = $3
		WHERE id = $1 AND (current_level, current_category) < ($2, $3)
	`, id, level, category)
	if err != nil {
		return false, fmt.Errorf("advance position: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
