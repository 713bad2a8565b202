// Package service implements the admin maintenance surface
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/services/api/admin/domain"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
)

// Service defines the admin service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the admin service
type Svc struct {
	progress progdom.Port
	catalog  catalogdom.Port
}

// New constructs an admin service
func New(progress progdom.Port, catalog catalogdom.Port) *Svc {
	if progress == nil || catalog == nil {
		panic("admin.Service requires progression and catalog ports")
	}
	return &Svc{progress: progress, catalog: catalog}
}

// ResetProgress implements domain.ServicePort: every word back to P0
func (s *Svc) ResetProgress(ctx context.Context, userID uuid.UUID) (domain.ResetProgressOut, error) {
	n, err := s.progress.Reset(ctx, userID)
	if err != nil {
		return domain.ResetProgressOut{}, err
	}
	return domain.ResetProgressOut{WordsReset: n}, nil
}

// ResetCooldown implements domain.ServicePort: a debug helper that makes every
// scheduled word immediately available
func (s *Svc) ResetCooldown(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.ResetCooldownOut, error) {
	n, err := s.progress.ResetCooldown(ctx, userID, now)
	if err != nil {
		return domain.ResetCooldownOut{}, err
	}
	return domain.ResetCooldownOut{WordsAffected: n}, nil
}

// SeedWords implements domain.ServicePort
func (s *Svc) SeedWords(ctx context.Context, in domain.SeedWordsIn) (domain.SeedWordsOut, error) {
	words := make([]catalogdom.Word, len(in.Words))
	for i, w := range in.Words {
		words[i] = catalogdom.Word{
			Headword:      w.Word,
			Translation:   w.Translation,
			Sentence:      w.Sentence,
			SentenceTrans: w.SentenceTrans,
			ImageURL:      w.ImageURL,
			AudioURL:      w.AudioURL,
			Level:         w.Level,
			Category:      w.Category,
		}
	}
	n, err := s.catalog.Seed(ctx, words)
	if err != nil {
		return domain.SeedWordsOut{}, err
	}
	return domain.SeedWordsOut{WordsImported: n, WordsSkipped: len(in.Words) - n}, nil
}

// Words implements domain.ServicePort
func (s *Svc) Words(ctx context.Context) (domain.WordsOut, error) {
	total, err := s.catalog.Count(ctx)
	if err != nil {
		return domain.WordsOut{}, err
	}
	words, err := s.catalog.List(ctx, total, 0)
	if err != nil {
		return domain.WordsOut{}, err
	}

	out := domain.WordsOut{Words: make([]domain.WordOut, len(words)), TotalCount: total}
	for i, w := range words {
		out.Words[i] = domain.WordOut{
			ID:            w.ID,
			Word:          w.Headword,
			Translation:   w.Translation,
			Sentence:      w.Sentence,
			SentenceTrans: w.SentenceTrans,
			ImageURL:      w.ImageURL,
			AudioURL:      w.AudioURL,
			Level:         w.Level,
			Category:      w.Category,
		}
	}
	return out, nil
}
