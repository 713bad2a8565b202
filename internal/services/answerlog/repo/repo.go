// Package repo provides Postgres bindings for the answer history
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/answerlog/domain"
)

type (
	// PG is a Postgres binder for domain.Recorder
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Recorder
var _ domain.Recorder = (*queries)(nil)

// NewPG returns a Postgres binder for Recorder
func NewPG() repokit.Binder[domain.Recorder] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Recorder { return &queries{q: q} }

// Insert bulk-appends events via unnest so a whole submission is one statement
func (r *queries) Insert(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	users := make([]uuid.UUID, len(events))
	words := make([]uuid.UUID, len(events))
	sources := make([]string, len(events))
	exercises := make([]string, len(events))
	pools := make([]string, len(events))
	corrects := make([]bool, len(events))
	responses := make([]int32, len(events))
	times := make([]time.Time, len(events))
	for i, e := range events {
		users[i] = e.UserID
		words[i] = e.WordID
		sources[i] = string(e.Source)
		exercises[i] = string(e.Exercise)
		pools[i] = e.Pool.String()
		corrects[i] = e.Correct
		responses[i] = int32(e.ResponseTimeMS)
		times[i] = e.AnsweredAt
	}

	if _, err := r.q.Exec(ctx, `
		INSERT INTO answer_history
			(user_id, word_id, source, exercise_type, pool, correct, response_time_ms, answered_at)
		SELECT * FROM unnest(
			$1::uuid[], $2::uuid[], $3::text[], $4::text[],
			$5::text[], $6::boolean[], $7::int[], $8::timestamptz[]
		)
	`, users, words, sources, exercises, pools, corrects, responses, times); err != nil {
		return fmt.Errorf("answerlog insert: %w", err)
	}
	return nil
}
