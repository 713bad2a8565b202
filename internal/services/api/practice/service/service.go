// Package service assembles practice sessions and grades submissions
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
	ptime "wordpool/internal/platform/time"
	"wordpool/internal/services/api/practice/domain"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
	usersdom "wordpool/internal/services/users/domain"
)

// Service defines the practice service contract
type Service interface {
	domain.ServicePort
}

const distractorSample = 24

// Svc implements the practice service
type Svc struct {
	progress progdom.Port
	catalog  catalogdom.Port
	users    usersdom.Port
}

// New constructs a practice service
func New(progress progdom.Port, catalog catalogdom.Port, users usersdom.Port) *Svc {
	if progress == nil || catalog == nil || users == nil {
		panic("practice.Service requires progression, catalog and users ports")
	}
	return &Svc{progress: progress, catalog: catalog, users: users}
}

// Session implements domain.ServicePort. Each candidate's exercise type
// follows its current pool; the batch is sorted into the
// reading -> listening -> speaking rhythm
func (s *Svc) Session(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.SessionOut, error) {
	rows, err := s.progress.PracticeCandidates(ctx, userID, now)
	if err != nil {
		return domain.SessionOut{}, err
	}
	if len(rows) < progdom.SessionMin {
		return domain.SessionOut{
			Reason:        string(progdom.ReasonNotEnoughWords),
			Exercises:     []exercise.Exercise{},
			ExerciseOrder: nil,
		}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.WordID
	}
	byID, session, err := s.sessionWords(ctx, ids)
	if err != nil {
		return domain.SessionOut{}, err
	}
	sample, err := s.catalog.Distractors(ctx, ids, distractorSample)
	if err != nil {
		return domain.SessionOut{}, err
	}
	all := toExerciseWords(sample)

	b := exercise.NewBuilder(exercise.NewRequestRNG())
	exercises := make([]exercise.Exercise, 0, len(rows))
	for _, row := range rows {
		w, ok := byID[row.WordID]
		if !ok {
			continue
		}
		if ex, ok := b.Build(w, row.Pool, all, session); ok {
			exercises = append(exercises, ex)
		}
	}
	exercise.SortByType(exercises)

	return domain.SessionOut{
		Available:     true,
		Exercises:     exercises,
		ExerciseOrder: exercise.Order(exercises),
	}, nil
}

// Submit implements domain.ServicePort
func (s *Svc) Submit(
	ctx context.Context, userID uuid.UUID, in domain.SubmitIn, now time.Time,
) (domain.SubmitOut, error) {
	results, sum, err := s.progress.SubmitPractice(ctx, userID, toAnswers(in.Answers), now)
	if err != nil {
		return domain.SubmitOut{}, err
	}

	out := domain.SubmitOut{
		Results: toResults(results, in.Answers),
		Summary: domain.SummaryOut{CorrectCount: sum.Correct, IncorrectCount: sum.Incorrect},
	}
	next, err := s.idleUntil(ctx, userID, now)
	if err != nil {
		return domain.SubmitOut{}, err
	}
	out.NextAvailableAt = next
	return out, nil
}

// idleUntil returns the global next_available_time, but only when the user
// has no learn, practice or review available right now
func (s *Svc) idleUntil(ctx context.Context, userID uuid.UUID, now time.Time) (*time.Time, error) {
	counts, err := s.progress.Counts(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if counts.CanPractice() || counts.CanReview() {
		return nil, nil
	}
	if _, blocked := counts.LearnBlock(); !blocked {
		pos := s.position(ctx, userID)
		batch, err := s.catalog.LearnBatch(ctx, userID, pos, 1)
		if err != nil {
			return nil, err
		}
		if len(batch) > 0 {
			return nil, nil
		}
	}
	return ptime.Ptr(counts.NextAvailableAt), nil
}

func (s *Svc) position(ctx context.Context, userID uuid.UUID) catalogdom.Position {
	u, ok, err := s.users.Get(ctx, userID)
	if err != nil || !ok {
		return catalogdom.Position{}
	}
	return catalogdom.Position{Level: u.CurrentLevel, Category: u.CurrentCategory}
}

func (s *Svc) sessionWords(
	ctx context.Context, ids []uuid.UUID,
) (map[uuid.UUID]exercise.Word, []exercise.Word, error) {
	words, err := s.catalog.ByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	session := toExerciseWords(words)
	byID := make(map[uuid.UUID]exercise.Word, len(session))
	for _, w := range session {
		byID[w.ID] = w
	}
	return byID, session, nil
}

func toAnswers(in []domain.AnswerIn) []progdom.Answer {
	out := make([]progdom.Answer, len(in))
	for i, a := range in {
		out[i] = progdom.Answer{WordID: a.WordID, Correct: a.Correct, ResponseTimeMS: a.ResponseTimeMS}
	}
	return out
}

func toResults(rs []progdom.Result, answers []domain.AnswerIn) []domain.ResultOut {
	graded := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		if _, dup := graded[a.WordID]; !dup {
			graded[a.WordID] = a.Correct
		}
	}
	out := make([]domain.ResultOut, len(rs))
	for i, r := range rs {
		out[i] = domain.ResultOut{
			WordID:          r.WordID,
			Correct:         graded[r.WordID],
			PreviousPool:    r.PreviousPool.String(),
			NewPool:         r.NewPool.String(),
			NextAvailableAt: r.NextAvailableAt,
		}
	}
	return out
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
