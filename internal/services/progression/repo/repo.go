// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/progression/domain"
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

// rowColumns is the select list every row query shares; scanRow matches it
const rowColumns = `
	user_id, word_id, pool, COALESCE(review_stage, ''),
	learned_at, next_available_time, last_outcome_at, review_completed_at,
	correct_count, incorrect_count
`

func scanRow(r repokit.Row) (domain.WordProgress, error) {
	var (
		w          domain.WordProgress
		poolName   string
		stageName  string
		learned    *time.Time
		next       *time.Time
		lastOut    *time.Time
		reviewDone *time.Time
	)
	if err := r.Scan(
		&w.UserID, &w.WordID, &poolName, &stageName,
		&learned, &next, &lastOut, &reviewDone,
		&w.CorrectCount, &w.IncorrectCount,
	); err != nil {
		return domain.WordProgress{}, err
	}

	p, err := pool.Parse(poolName)
	if err != nil {
		return domain.WordProgress{}, fmt.Errorf("progress row %s: %w", w.WordID, err)
	}
	w.Pool = p
	w.Stage = pool.ParseStage(stageName)
	w.LearnedAt = deref(learned)
	w.NextAvailableAt = deref(next)
	w.LastOutcomeAt = deref(lastOut)
	w.ReviewCompletedAt = deref(reviewDone)
	return w, nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// nullTime maps the zero time back to SQL NULL
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *queries) collect(ctx context.Context, sql string, args ...any) ([]domain.WordProgress, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WordProgress
	for rows.Next() {
		w, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// PracticeCandidates implements domain.Repo
func (r *queries) PracticeCandidates(
	ctx context.Context, userID uuid.UUID, now time.Time, limit int,
) ([]domain.WordProgress, error) {
	return r.collect(ctx, `
		SELECT `+rowColumns+`
		FROM word_progress
		WHERE user_id = $1
			AND pool IN ('P1','P2','P3','P4','P5')
			AND next_available_time <= $2
		ORDER BY next_available_time, word_id
		LIMIT $3
	`, userID, now, limit)
}

// ReviewDisplayCandidates implements domain.Repo
func (r *queries) ReviewDisplayCandidates(
	ctx context.Context, userID uuid.UUID, now time.Time, limit int,
) ([]domain.WordProgress, error) {
	return r.collect(ctx, `
		SELECT `+rowColumns+`
		FROM word_progress
		WHERE user_id = $1
			AND pool IN ('R1','R2','R3','R4','R5')
			AND review_stage = 'display'
			AND next_available_time <= $2
		ORDER BY next_available_time, word_id
		LIMIT $3
	`, userID, now, limit)
}

// ReviewTestCandidates implements domain.Repo
func (r *queries) ReviewTestCandidates(
	ctx context.Context, userID uuid.UUID, now time.Time, limit int,
) ([]domain.WordProgress, error) {
	return r.collect(ctx, `
		SELECT `+rowColumns+`
		FROM word_progress
		WHERE user_id = $1
			AND pool IN ('R1','R2','R3','R4','R5')
			AND review_stage = 'practice'
			AND next_available_time <= $2
		ORDER BY next_available_time, word_id
		LIMIT $3
	`, userID, now, limit)
}

// Counts implements domain.Repo with one aggregate pass over the user's rows
func (r *queries) Counts(
	ctx context.Context, userID uuid.UUID, dayStart, now time.Time,
) (domain.Counts, error) {
	var (
		c    domain.Counts
		next *time.Time
	)
	err := r.q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE learned_at >= $2)                            AS today_learned,
			COUNT(*) FILTER (WHERE pool IN ('P1','P2','P3','P4','P5')
				AND next_available_time <= $3)                                  AS available_practice,
			COUNT(*) FILTER (WHERE pool IN ('R1','R2','R3','R4','R5')
				AND next_available_time <= $3)                                  AS available_review,
			COUNT(*) FILTER (WHERE next_available_time > $3
				AND next_available_time <= $3 + interval '24 hours')            AS upcoming_24h,
			COUNT(*) FILTER (WHERE pool = 'P1' AND next_available_time > $3)    AS p1_upcoming,
			MIN(next_available_time)                                            AS next_available
		FROM word_progress
		WHERE user_id = $1
	`, userID, dayStart, now).Scan(
		&c.TodayLearned, &c.AvailablePractice, &c.AvailableReview,
		&c.Upcoming24h, &c.P1Upcoming, &next,
	)
	if err != nil {
		return domain.Counts{}, fmt.Errorf("progress counts: %w", err)
	}
	c.NextAvailableAt = deref(next)
	return c, nil
}

// LockByWordIDs implements domain.Repo. Ascending word_id keeps concurrent
// submissions of overlapping sets deadlock-free
func (r *queries) LockByWordIDs(
	ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID,
) ([]domain.WordProgress, error) {
	if len(wordIDs) == 0 {
		return nil, nil
	}
	return r.collect(ctx, `
		SELECT `+rowColumns+`
		FROM word_progress
		WHERE user_id = $1 AND word_id = ANY($2::uuid[])
		ORDER BY word_id
		FOR UPDATE
	`, userID, wordIDs)
}

// InsertLearned implements domain.Repo. ON CONFLICT DO NOTHING makes repeat
// submissions no-ops; the command tag counts only fresh rows
func (r *queries) InsertLearned(
	ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID, now time.Time,
) (int, error) {
	if len(wordIDs) == 0 {
		return 0, nil
	}
	p := pool.Learned(now)
	tag, err := r.q.Exec(ctx, `
		INSERT INTO word_progress (user_id, word_id, pool, learned_at, next_available_time)
		SELECT $1, w, $3, $4, $5
		FROM unnest($2::uuid[]) AS t(w)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`, userID, wordIDs, p.Pool.String(), p.LearnedAt, p.NextAvailableAt)
	if err != nil {
		return 0, fmt.Errorf("insert learned: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Update implements domain.Repo
func (r *queries) Update(ctx context.Context, row domain.WordProgress) error {
	_, err := r.q.Exec(ctx, `
		UPDATE word_progress SET
			pool = $3,
			review_stage = NULLIF($4, ''),
			next_available_time = $5,
			last_outcome_at = $6,
			review_completed_at = $7,
			correct_count = $8,
			incorrect_count = $9
		WHERE user_id = $1 AND word_id = $2
	`, row.UserID, row.WordID,
		row.Pool.String(), row.Stage.String(),
		nullTime(row.NextAvailableAt), nullTime(row.LastOutcomeAt), nullTime(row.ReviewCompletedAt),
		row.CorrectCount, row.IncorrectCount,
	)
	if err != nil {
		return fmt.Errorf("update progress %s: %w", row.WordID, err)
	}
	return nil
}

// CountLearnedToday implements domain.Repo
func (r *queries) CountLearnedToday(
	ctx context.Context, userID uuid.UUID, dayStart time.Time,
) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM word_progress
		WHERE user_id = $1 AND learned_at >= $2
	`, userID, dayStart).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count learned today: %w", err)
	}
	return n, nil
}

// DeleteByUser implements domain.Repo
func (r *queries) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM word_progress WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ClearCooldowns implements domain.Repo
func (r *queries) ClearCooldowns(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE word_progress SET next_available_time = $2
		WHERE user_id = $1 AND next_available_time > $2
	`, userID, now)
	if err != nil {
		return 0, fmt.Errorf("clear cooldowns: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListByUser implements domain.Repo
func (r *queries) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordProgress, error) {
	return r.collect(ctx, `
		SELECT `+rowColumns+`
		FROM word_progress
		WHERE user_id = $1
		ORDER BY pool, next_available_time NULLS LAST, word_id
	`, userID)
}
