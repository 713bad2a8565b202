// Package service assembles learn sessions
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
	"wordpool/internal/services/api/learn/domain"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
	usersdom "wordpool/internal/services/users/domain"
)

// Service defines the learn service contract
type Service interface {
	domain.ServicePort
}

// distractorSample is how many catalog words we pull as option material on
// top of the session's own words
const distractorSample = 24

// Svc implements the learn service
type Svc struct {
	progress progdom.Port
	catalog  catalogdom.Port
	users    usersdom.Port
}

// New constructs a learn service
func New(progress progdom.Port, catalog catalogdom.Port, users usersdom.Port) *Svc {
	if progress == nil || catalog == nil || users == nil {
		panic("learn.Service requires progression, catalog and users ports")
	}
	return &Svc{progress: progress, catalog: catalog, users: users}
}

// Session implements domain.ServicePort. Preconditions run in contract
// order: daily limit, P1 backpressure, then P0 availability
func (s *Svc) Session(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.SessionOut, error) {
	counts, err := s.progress.Counts(ctx, userID, now)
	if err != nil {
		return domain.SessionOut{}, err
	}
	if reason, blocked := counts.LearnBlock(); blocked {
		return domain.SessionOut{Reason: string(reason)}, nil
	}

	words, err := s.catalog.LearnBatch(ctx, userID, s.position(ctx, userID), progdom.LearnBatchSize)
	if err != nil {
		return domain.SessionOut{}, err
	}
	if len(words) == 0 {
		return domain.SessionOut{Reason: string(progdom.ReasonNoWordsInP0)}, nil
	}

	session := toExerciseWords(words)
	pool, err := s.optionPool(ctx, words)
	if err != nil {
		return domain.SessionOut{}, err
	}

	b := exercise.NewBuilder(exercise.NewRequestRNG())
	out := domain.SessionOut{
		Available: true,
		Words:     make([]domain.WordOut, 0, len(words)),
		Exercises: make([]exercise.Exercise, 0, len(words)),
	}
	for i, w := range words {
		out.Words = append(out.Words, toWordOut(w))
		out.Exercises = append(out.Exercises, b.BuildLearn(session[i], pool, session))
	}
	return out, nil
}

// Complete implements domain.ServicePort: move the words into P1 and advance
// the user's curriculum position to the furthest completed word
func (s *Svc) Complete(
	ctx context.Context, userID uuid.UUID, in domain.CompleteIn, now time.Time,
) (domain.CompleteOut, error) {
	moved, today, err := s.progress.CompleteLearn(ctx, userID, in.WordIDs, now)
	if err != nil {
		return domain.CompleteOut{}, err
	}

	if pos, ok, err := s.catalog.MaxPosition(ctx, in.WordIDs); err != nil {
		return domain.CompleteOut{}, err
	} else if ok {
		if _, err := s.users.AdvancePosition(ctx, userID, pos.Level, pos.Category); err != nil {
			return domain.CompleteOut{}, err
		}
	}
	return domain.CompleteOut{WordsMoved: moved, TodayLearned: today}, nil
}

// position is best-effort: an unknown user simply starts the walk at the top
func (s *Svc) position(ctx context.Context, userID uuid.UUID) catalogdom.Position {
	u, ok, err := s.users.Get(ctx, userID)
	if err != nil || !ok {
		return catalogdom.Position{}
	}
	return catalogdom.Position{Level: u.CurrentLevel, Category: u.CurrentCategory}
}

func (s *Svc) optionPool(
	ctx context.Context, session []catalogdom.Word,
) ([]exercise.Word, error) {
	exclude := make([]uuid.UUID, len(session))
	for i, w := range session {
		exclude[i] = w.ID
	}
	sample, err := s.catalog.Distractors(ctx, exclude, distractorSample)
	if err != nil {
		return nil, err
	}
	return toExerciseWords(sample), nil
}

func toWordOut(w catalogdom.Word) domain.WordOut {
	return domain.WordOut{
		WordID:        w.ID,
		Word:          w.Headword,
		Translation:   w.Translation,
		Sentence:      w.Sentence,
		SentenceTrans: w.SentenceTrans,
		ImageURL:      w.ImageURL,
		AudioURL:      w.AudioURL,
	}
}

func toExerciseWords(ws []catalogdom.Word) []exercise.Word {
	out := make([]exercise.Word, len(ws))
	for i, w := range ws {
		out[i] = exercise.Word{
			ID:            w.ID,
			Headword:      w.Headword,
			Translation:   w.Translation,
			Sentence:      w.Sentence,
			SentenceTrans: w.SentenceTrans,
			ImageURL:      w.ImageURL,
			AudioURL:      w.AudioURL,
		}
	}
	return out
}
