// Package service assembles review sessions: display first, test later
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
	practicedom "wordpool/internal/services/api/practice/domain"
	"wordpool/internal/services/api/review/domain"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
)

// Service defines the review service contract
type Service interface {
	domain.ServicePort
}

const distractorSample = 24

// Svc implements the review service
type Svc struct {
	progress progdom.Port
	catalog  catalogdom.Port
}

// New constructs a review service
func New(progress progdom.Port, catalog catalogdom.Port) *Svc {
	if progress == nil || catalog == nil {
		panic("review.Service requires progression and catalog ports")
	}
	return &Svc{progress: progress, catalog: catalog}
}

// Session implements domain.ServicePort: the display phase bundles full word
// content plus a preview of the exercises the test phase will ask
func (s *Svc) Session(
	ctx context.Context, userID uuid.UUID, now time.Time,
) (domain.SessionOut, error) {
	rows, err := s.progress.ReviewDisplayCandidates(ctx, userID, now)
	if err != nil {
		return domain.SessionOut{}, err
	}
	if len(rows) < progdom.SessionMin {
		return domain.SessionOut{
			Reason:    string(progdom.ReasonNotEnoughWords),
			Words:     []domain.WordOut{},
			Exercises: []exercise.Exercise{},
		}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.WordID
	}
	words, err := s.catalog.ByIDs(ctx, ids)
	if err != nil {
		return domain.SessionOut{}, err
	}
	byID := make(map[uuid.UUID]catalogdom.Word, len(words))
	session := make([]exercise.Word, 0, len(words))
	for _, w := range words {
		byID[w.ID] = w
		session = append(session, toExerciseWord(w))
	}
	sample, err := s.catalog.Distractors(ctx, ids, distractorSample)
	if err != nil {
		return domain.SessionOut{}, err
	}
	all := make([]exercise.Word, len(sample))
	for i, w := range sample {
		all[i] = toExerciseWord(w)
	}

	b := exercise.NewBuilder(exercise.NewRequestRNG())
	out := domain.SessionOut{
		Available: true,
		Words:     make([]domain.WordOut, 0, len(rows)),
		Exercises: make([]exercise.Exercise, 0, len(rows)),
	}
	for _, row := range rows {
		w, ok := byID[row.WordID]
		if !ok {
			continue
		}
		out.Words = append(out.Words, toWordOut(w, row.Pool.String()))
		if ex, ok := b.Build(toExerciseWord(w), row.Pool, all, session); ok {
			out.Exercises = append(out.Exercises, ex)
		}
	}
	return out, nil
}

// Complete implements domain.ServicePort: flip display rows into the test
// stage. Idempotent per word
func (s *Svc) Complete(
	ctx context.Context, userID uuid.UUID, in domain.CompleteIn, now time.Time,
) (domain.CompleteOut, error) {
	completed, nextPractice, err := s.progress.CompleteReview(ctx, userID, in.WordIDs, now)
	if err != nil {
		return domain.CompleteOut{}, err
	}
	return domain.CompleteOut{WordsCompleted: completed, NextPracticeAt: nextPractice}, nil
}

// Submit implements domain.ServicePort: grade the test phase
func (s *Svc) Submit(
	ctx context.Context, userID uuid.UUID, in domain.SubmitIn, now time.Time,
) (domain.SubmitOut, error) {
	answers := make([]progdom.Answer, len(in.Answers))
	for i, a := range in.Answers {
		answers[i] = progdom.Answer{WordID: a.WordID, Correct: a.Correct, ResponseTimeMS: a.ResponseTimeMS}
	}
	results, sum, err := s.progress.SubmitReview(ctx, userID, answers, now)
	if err != nil {
		return domain.SubmitOut{}, err
	}

	graded := make(map[uuid.UUID]bool, len(in.Answers))
	for _, a := range in.Answers {
		if _, dup := graded[a.WordID]; !dup {
			graded[a.WordID] = a.Correct
		}
	}
	out := domain.SubmitOut{
		Results: make([]practicedom.ResultOut, len(results)),
		Summary: domain.SummaryOut{
			CorrectCount:   sum.Correct,
			IncorrectCount: sum.Incorrect,
			ReturnedToP:    sum.ReturnedToP,
		},
	}
	for i, r := range results {
		out.Results[i] = practicedom.ResultOut{
			WordID:          r.WordID,
			Correct:         graded[r.WordID],
			PreviousPool:    r.PreviousPool.String(),
			NewPool:         r.NewPool.String(),
			NextAvailableAt: r.NextAvailableAt,
		}
	}
	return out, nil
}

func toWordOut(w catalogdom.Word, poolName string) domain.WordOut {
	return domain.WordOut{
		WordID:        w.ID,
		Word:          w.Headword,
		Translation:   w.Translation,
		Sentence:      w.Sentence,
		SentenceTrans: w.SentenceTrans,
		ImageURL:      w.ImageURL,
		AudioURL:      w.AudioURL,
		Pool:          poolName,
	}
}

func toExerciseWord(w catalogdom.Word) exercise.Word {
	return exercise.Word{
		ID:            w.ID,
		Headword:      w.Headword,
		Translation:   w.Translation,
		Sentence:      w.Sentence,
		SentenceTrans: w.SentenceTrans,
		ImageURL:      w.ImageURL,
		AudioURL:      w.AudioURL,
	}
}
