// Package service implements the catalog surface
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wordpool/internal/core/normalize"
	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/catalog/domain"
)

// Svc serves catalog reads and the seeding path
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	norm   *normalize.Normalizer
}

var _ domain.Port = (*Svc)(nil)

// New constructs the catalog service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder, norm: normalize.New()}
}

// ByIDs implements domain.Port
func (s *Svc) ByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	return s.binder.Bind(s.db).ByIDs(ctx, ids)
}

// List implements domain.Port
func (s *Svc) List(ctx context.Context, limit, offset int) ([]domain.Word, error) {
	return s.binder.Bind(s.db).List(ctx, limit, offset)
}

// Count implements domain.Port
func (s *Svc) Count(ctx context.Context) (int, error) {
	return s.binder.Bind(s.db).Count(ctx)
}

// Distractors implements domain.Port
func (s *Svc) Distractors(
	ctx context.Context, exclude []uuid.UUID, limit int,
) ([]domain.Word, error) {
	return s.binder.Bind(s.db).SampleDistractors(ctx, exclude, limit)
}

// LearnBatch implements domain.Port: walk the curriculum from pos, then fill
// the remainder with untagged words so the catalog works without curriculum
// metadata at all
func (s *Svc) LearnBatch(
	ctx context.Context, userID uuid.UUID, pos domain.Position, limit int,
) ([]domain.Word, error) {
	repo := s.binder.Bind(s.db)

	words, err := repo.UnlearnedFrom(ctx, userID, pos, limit)
	if err != nil {
		return nil, err
	}
	if len(words) < limit {
		rest, err := repo.UnlearnedUntagged(ctx, userID, limit-len(words))
		if err != nil {
			return nil, err
		}
		words = append(words, rest...)
	}
	return words, nil
}

// Levels implements domain.Port
func (s *Svc) Levels(ctx context.Context) ([]domain.Level, error) {
	return s.binder.Bind(s.db).Levels(ctx)
}

// Categories implements domain.Port
func (s *Svc) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.binder.Bind(s.db).Categories(ctx)
}

// Seed implements domain.Port: normalize headwords, drop in-batch duplicates
// (first occurrence wins) and upsert the rest in one transaction
func (s *Svc) Seed(ctx context.Context, words []domain.Word) (int, error) {
	keep := make([]domain.Word, 0, len(words))
	norms := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		n := s.norm.Headword(w.Headword)
		if n == "" {
			return 0, fmt.Errorf("seed: empty headword %q", w.Headword)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		keep = append(keep, w)
		norms = append(norms, n)
	}

	var written int
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var txErr error
		written, txErr = s.binder.Bind(q).Upsert(ctx, keep, norms)
		return txErr
	})
	return written, err
}

// MaxPosition implements domain.Port
func (s *Svc) MaxPosition(
	ctx context.Context, ids []uuid.UUID,
) (domain.Position, bool, error) {
	return s.binder.Bind(s.db).MaxPosition(ctx, ids)
}
