// Package service computes the home dashboard and pool diagnostics
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
	ptime "wordpool/internal/platform/time"
	"wordpool/internal/services/api/home/domain"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
	usersdom "wordpool/internal/services/users/domain"
)

// Service defines the home service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the home service
type Svc struct {
	progress progdom.Port
	catalog  catalogdom.Port
	users    usersdom.Port
}

// New constructs a home service
func New(progress progdom.Port, catalog catalogdom.Port, users usersdom.Port) *Svc {
	if progress == nil || catalog == nil || users == nil {
		panic("home.Service requires progression, catalog and users ports")
	}
	return &Svc{progress: progress, catalog: catalog, users: users}
}

// Stats implements domain.ServicePort
func (s *Svc) Stats(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.StatsOut, error) {
	counts, err := s.progress.Counts(ctx, userID, now)
	if err != nil {
		return domain.StatsOut{}, err
	}

	out := domain.StatsOut{
		TodayLearned:      counts.TodayLearned,
		AvailablePractice: counts.AvailablePractice,
		AvailableReview:   counts.AvailableReview,
		Upcoming24h:       counts.Upcoming24h,
		CanPractice:       counts.CanPractice(),
		CanReview:         counts.CanReview(),
	}

	u, found, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.StatsOut{}, err
	}

	if _, blocked := counts.LearnBlock(); !blocked {
		pos := catalogdom.Position{}
		if found {
			pos = catalogdom.Position{Level: u.CurrentLevel, Category: u.CurrentCategory}
		}
		batch, err := s.catalog.LearnBatch(ctx, userID, pos, 1)
		if err != nil {
			return domain.StatsOut{}, err
		}
		out.CanLearn = len(batch) > 0
	}

	if !out.CanLearn && !out.CanPractice && !out.CanReview {
		out.NextAvailableAt = ptime.Ptr(counts.NextAvailableAt)
	}

	if found {
		if out.CurrentLevel, err = s.levelOut(ctx, u.CurrentLevel); err != nil {
			return domain.StatsOut{}, err
		}
		if out.CurrentCategory, err = s.categoryOut(ctx, u.CurrentCategory); err != nil {
			return domain.StatsOut{}, err
		}
	}
	return out, nil
}

// WordPool implements domain.ServicePort: every catalog word bucketed by the
// user's pool, with P0 synthesized from words that have no progress row
func (s *Svc) WordPool(ctx context.Context, userID uuid.UUID) (domain.WordPoolOut, error) {
	total, err := s.catalog.Count(ctx)
	if err != nil {
		return domain.WordPoolOut{}, err
	}
	words, err := s.catalog.List(ctx, total, 0)
	if err != nil {
		return domain.WordPoolOut{}, err
	}
	rows, err := s.progress.ByUser(ctx, userID)
	if err != nil {
		return domain.WordPoolOut{}, err
	}

	byWord := make(map[uuid.UUID]progdom.WordProgress, len(rows))
	for _, row := range rows {
		byWord[row.WordID] = row
	}

	pools := make(map[string][]domain.PoolItem, len(pool.All()))
	for _, p := range pool.All() {
		pools[p.String()] = []domain.PoolItem{}
	}
	for _, w := range words {
		item := domain.PoolItem{WordID: w.ID, Word: w.Headword, Translation: w.Translation}
		bucket := pool.P0.String()
		if row, ok := byWord[w.ID]; ok {
			bucket = row.Pool.String()
			item.NextAvailableAt = ptime.Ptr(row.NextAvailableAt)
		}
		pools[bucket] = append(pools[bucket], item)
	}

	return domain.WordPoolOut{Pools: pools, TotalCount: total}, nil
}

func (s *Svc) levelOut(ctx context.Context, rank int) (*domain.LevelOut, error) {
	if rank == 0 {
		return nil, nil
	}
	levels, err := s.catalog.Levels(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range levels {
		if l.Rank == rank {
			return &domain.LevelOut{Rank: l.Rank, Label: l.Name}, nil
		}
	}
	return nil, nil
}

func (s *Svc) categoryOut(ctx context.Context, rank int) (*domain.CategoryOut, error) {
	if rank == 0 {
		return nil, nil
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Rank == rank {
			return &domain.CategoryOut{Rank: c.Rank, Label: c.Name}, nil
		}
	}
	return nil, nil
}
