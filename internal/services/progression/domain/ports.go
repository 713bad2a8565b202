package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repo is the storage surface bound per transaction
type Repo interface {
	// PracticeCandidates lists P1..P5 rows eligible at now, ascending
	// next_available_time, capped at limit
	PracticeCandidates(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]WordProgress, error)

	// ReviewDisplayCandidates lists R rows in the display stage eligible at now
	ReviewDisplayCandidates(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]WordProgress, error)

	// ReviewTestCandidates lists R rows in the test stage eligible at now
	ReviewTestCandidates(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]WordProgress, error)

	// Counts computes the home/admission aggregate in one pass
	Counts(ctx context.Context, userID uuid.UUID, dayStart, now time.Time) (Counts, error)

	// LockByWordIDs re-reads the given rows FOR UPDATE in ascending word_id
	// order. Missing word IDs are absent from the result
	LockByWordIDs(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) ([]WordProgress, error)

	// InsertLearned creates P1 rows for the given words, skipping words that
	// already have one. Returns the number of rows actually inserted
	InsertLearned(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time) (int, error)

	// Update writes one row back
	Update(ctx context.Context, row WordProgress) error

	// CountLearnedToday counts rows with learned_at at or after dayStart
	CountLearnedToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error)

	// DeleteByUser removes every row of the user, returning the count
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// ClearCooldowns pulls every pending next_available_time down to now,
	// returning the number of rows touched
	ClearCooldowns(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	// ListByUser returns all rows of the user for diagnostics
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WordProgress, error)
}

// Port is the progression surface the session assemblers consume
type Port interface {
	Counts(ctx context.Context, userID uuid.UUID, now time.Time) (Counts, error)
	PracticeCandidates(ctx context.Context, userID uuid.UUID, now time.Time) ([]WordProgress, error)
	ReviewDisplayCandidates(ctx context.Context, userID uuid.UUID, now time.Time) ([]WordProgress, error)

	CompleteLearn(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time) (moved, todayLearned int, err error)
	SubmitPractice(ctx context.Context, userID uuid.UUID, answers []Answer, now time.Time) ([]Result, Summary, error)
	CompleteReview(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time) (completed int, nextPractice time.Time, err error)
	SubmitReview(ctx context.Context, userID uuid.UUID, answers []Answer, now time.Time) ([]Result, Summary, error)

	Reset(ctx context.Context, userID uuid.UUID) (int, error)
	ResetCooldown(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]WordProgress, error)
}
