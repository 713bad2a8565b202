// Package service implements the progression state machine over the store
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
	"wordpool/internal/modkit/repokit"
	alog "wordpool/internal/services/answerlog/domain"
	"wordpool/internal/services/progression/domain"
)

// Svc applies scheduler transitions inside per-submission transactions
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]

	// history rows commit with the progress mutation; sink fires after
	history repokit.Binder[alog.Recorder]
	sink    alog.Sink
}

var _ domain.Port = (*Svc)(nil)

// Option customizes the service
type Option func(*Svc)

// WithAnswerLog wires the in-tx history recorder and the post-commit sink
func WithAnswerLog(history repokit.Binder[alog.Recorder], sink alog.Sink) Option {
	return func(s *Svc) {
		s.history = history
		s.sink = sink
	}
}

// New constructs the progression service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("progression.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("progression.Service requires a non-nil Repo binder")
	}
	s := &Svc{db: db, binder: binder, sink: nil}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Counts implements domain.Port
func (s *Svc) Counts(ctx context.Context, userID uuid.UUID, now time.Time) (domain.Counts, error) {
	return s.binder.Bind(s.db).Counts(ctx, userID, domain.DayStartUTC(now), now)
}

// PracticeCandidates implements domain.Port
func (s *Svc) PracticeCandidates(
	ctx context.Context, userID uuid.UUID, now time.Time,
) ([]domain.WordProgress, error) {
	return s.binder.Bind(s.db).PracticeCandidates(ctx, userID, now, domain.SessionMax)
}

// ReviewDisplayCandidates implements domain.Port
func (s *Svc) ReviewDisplayCandidates(
	ctx context.Context, userID uuid.UUID, now time.Time,
) ([]domain.WordProgress, error) {
	return s.binder.Bind(s.db).ReviewDisplayCandidates(ctx, userID, now, domain.SessionMax)
}

/// CompleteLearn implements domain.Port: move the submitted words P0 -> P1.
// Words that already have a row are no-ops; moved counts fresh rows only
func (s *Svc) CompleteLearn(
	ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time,
) (moved, todayLearned int, err error) {
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		repo := s.binder.Bind(q)
		var txErr error
		if moved, txErr = repo.InsertLearned(ctx, userID, dedupe(wordIDs), now); txErr != nil {
			return txErr
		}
		todayLearned, txErr = repo.CountLearnedToday(ctx, userID, domain.DayStartUTC(now))
		return txErr
	})
	return moved, todayLearned, err
}

// SubmitPractice implements domain.Port. Rows are re-read under lock; rows no
// longer practice-eligible at now are reported unchanged
func (s *Svc) SubmitPractice(
	ctx context.Context, userID uuid.UUID, answers []domain.Answer, now time.Time,
) ([]domain.Result, domain.Summary, error) {
	return s.submit(ctx, userID, answers, now, alog.SourcePractice,
		func(p pool.Progress) bool { return p.EligibleForPractice(now) })
}

// SubmitReview implements domain.Port. Only rows in the test stage with their
// wait elapsed grade; everything else is reported unchanged
func (s *Svc) SubmitReview(
	ctx context.Context, userID uuid.UUID, answers []domain.Answer, now time.Time,
) ([]domain.Result, domain.Summary, error) {
	return s.submit(ctx, userID, answers, now, alog.SourceReview,
		func(p pool.Progress) bool { return p.EligibleForReviewTest(now) })
}

// submit is the shared transactional grading path. now is sampled once by the
// caller and threads through every transition so equal pools land on equal
// times within the batch
func (s *Svc) submit(
	ctx context.Context, userID uuid.UUID, answers []domain.Answer, now time.Time,
	source alog.Source, eligible func(pool.Progress) bool,
) ([]domain.Result, domain.Summary, error) {
	var (
		results []domain.Result
		sum     domain.Summary
		events  []alog.Event
	)

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		repo := s.binder.Bind(q)

		ids := make([]uuid.UUID, 0, len(answers))
		for _, a := range answers {
			ids = append(ids, a.WordID)
		}
		rows, err := repo.LockByWordIDs(ctx, userID, dedupe(ids))
		if err != nil {
			return err
		}
		byWord := make(map[uuid.UUID]*domain.WordProgress, len(rows))
		for i := range rows {
			byWord[rows[i].WordID] = &rows[i]
		}

		results = results[:0]
		sum = domain.Summary{}
		events = events[:0]
		for _, a := range answers {
			row, ok := byWord[a.WordID]
			if !ok {
				// unknown word for this user, dropped from results
				continue
			}

			snap := row.Snapshot()
			if !eligible(snap) {
				// raced its own state; report the row as-is
				results = append(results, domain.Result{
					WordID:          row.WordID,
					PreviousPool:    row.Pool,
					NewPool:         row.Pool,
					NextAvailableAt: row.NextAvailableAt,
				})
				continue
			}

			prev := row.Pool
			if ex, ok := prev.Exercise(); ok {
				events = append(events, alog.Event{
					UserID:         userID,
					WordID:         row.WordID,
					Source:         source,
					Exercise:       ex,
					Pool:           prev,
					Correct:        a.Correct,
					ResponseTimeMS: a.ResponseTimeMS,
					AnsweredAt:     now,
				})
			}

			row.Apply(pool.Transition(snap, a.Correct, now), a.Correct, now)
			if err := repo.Update(ctx, *row); err != nil {
				return err
			}

			if a.Correct {
				sum.Correct++
			} else {
				sum.Incorrect++
			}
			if prev.IsR() && row.Pool.IsP() {
				sum.ReturnedToP++
			}
			results = append(results, domain.Result{
				WordID:          row.WordID,
				PreviousPool:    prev,
				NewPool:         row.Pool,
				NextAvailableAt: row.NextAvailableAt,
			})
		}

		if s.history != nil && len(events) > 0 {
			return s.history.Bind(q).Insert(ctx, events)
		}
		return nil
	})
	if err != nil {
		return nil, domain.Summary{}, err
	}

	if s.sink != nil && len(events) > 0 {
		s.sink.Publish(ctx, events)
	}
	return results, sum, nil
}

// CompleteReview implements domain.Port: finish the display phase for the
// listed words. Rows already in the test stage are untouched (idempotent)
func (s *Svc) CompleteReview(
	ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time,
) (completed int, nextPractice time.Time, err error) {
	nextPractice = now.Add(pool.DisplayToTestWait)

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		repo := s.binder.Bind(q)
		rows, err := repo.LockByWordIDs(ctx, userID, dedupe(wordIDs))
		if err != nil {
			return err
		}
		for i := range rows {
			row := &rows[i]
			next := pool.CompleteDisplay(row.Snapshot(), now)
			if next == row.Snapshot() {
				continue
			}
			row.Stage = next.Stage
			row.NextAvailableAt = next.NextAvailableAt
			row.ReviewCompletedAt = now
			if err := repo.Update(ctx, *row); err != nil {
				return err
			}
			completed++
		}
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}
	return completed, nextPractice, nil
}

// Reset implements domain.Port: delete every progress row of the user
func (s *Svc) Reset(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var txErr error
		n, txErr = s.binder.Bind(q).DeleteByUser(ctx, userID)
		return txErr
	})
	return n, err
}

// ResetCooldown implements domain.Port: make every pending row eligible now
func (s *Svc) ResetCooldown(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var n int
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var txErr error
		n, txErr = s.binder.Bind(q).ClearCooldowns(ctx, userID, now)
		return txErr
	})
	return n, err
}

// ByUser implements domain.Port
func (s *Svc) ByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordProgress, error) {
	return s.binder.Bind(s.db).ListByUser(ctx, userID)
}

// dedupe keeps the first occurrence of each id, preserving order
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
