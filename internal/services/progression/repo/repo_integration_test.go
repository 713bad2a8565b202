//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
	"wordpool/internal/modkit/repokit"
	"wordpool/internal/platform/store"
	"wordpool/internal/services/progression/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const progressDDL = `
CREATE TABLE word_progress (
	user_id             uuid        NOT NULL,
	word_id             uuid        NOT NULL,
	pool                text        NOT NULL,
	review_stage        text,
	learned_at          timestamptz,
	next_available_time timestamptz,
	last_outcome_at     timestamptz,
	review_completed_at timestamptz,
	correct_count       int         NOT NULL DEFAULT 0,
	incorrect_count     int         NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, word_id)
)`

func TestProgressRepo_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := store.Open(ctx, store.Config{
		AppName: "wordpool-progression-it",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	defer func() { _ = s.Close(ctx) }()

	if _, err := s.PG.Exec(ctx, progressDDL); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	binder := NewPG()
	user := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	words := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	t.Run("insert learned is idempotent per word", func(t *testing.T) {
		r := binder.Bind(s.PG)
		n, err := r.InsertLearned(ctx, user, words, now)
		if err != nil || n != 3 {
			t.Fatalf("InsertLearned = %d, %v", n, err)
		}
		n, err = r.InsertLearned(ctx, user, words, now.Add(time.Hour))
		if err != nil || n != 0 {
			t.Fatalf("repeat InsertLearned = %d, %v", n, err)
		}
	})

	t.Run("counts and candidates", func(t *testing.T) {
		r := binder.Bind(s.PG)

		c, err := r.Counts(ctx, user, domain.DayStartUTC(now), now)
		if err != nil {
			t.Fatalf("Counts: %v", err)
		}
		if c.TodayLearned != 3 || c.P1Upcoming != 3 || c.AvailablePractice != 0 {
			t.Fatalf("counts = %+v", c)
		}
		if !c.NextAvailableAt.Equal(now.Add(10 * time.Minute)) {
			t.Fatalf("min next = %v", c.NextAvailableAt)
		}

		later := now.Add(10 * time.Minute)
		cands, err := r.PracticeCandidates(ctx, user, later, domain.SessionMax)
		if err != nil || len(cands) != 3 {
			t.Fatalf("candidates = %d, %v", len(cands), err)
		}
		for _, w := range cands {
			if w.Pool != pool.P1 || w.Stage != pool.StageNone {
				t.Fatalf("candidate row = %+v", w)
			}
			if !w.LearnedAt.Equal(now) {
				t.Fatalf("learned_at round trip = %v", w.LearnedAt)
			}
		}
	})

	t.Run("lock update round trip", func(t *testing.T) {
		later := now.Add(10 * time.Minute)
		err := s.PG.Tx(ctx, func(q repokit.Queryer) error {
			r := binder.Bind(q)
			rows, err := r.LockByWordIDs(ctx, user, words)
			if err != nil {
				return err
			}
			if len(rows) != 3 {
				return fmt.Errorf("locked %d rows", len(rows))
			}
			row := rows[0]
			row.Apply(pool.Transition(row.Snapshot(), false, later), false, later)
			return r.Update(ctx, row)
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}

		// P1 wrong answers stay in P1 with the retry wait
		r := binder.Bind(s.PG)
		rows, err := r.ListByUser(ctx, user)
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		var hit bool
		for _, w := range rows {
			if w.IncorrectCount == 1 {
				hit = true
				if w.Pool != pool.P1 || !w.NextAvailableAt.Equal(later.Add(10*time.Minute)) {
					t.Fatalf("updated row = %+v", w)
				}
				if !w.LastOutcomeAt.Equal(later) {
					t.Fatalf("last_outcome_at = %v", w.LastOutcomeAt)
				}
			}
		}
		if !hit {
			t.Fatalf("updated row not found")
		}
	})

	t.Run("review stage round trip", func(t *testing.T) {
		later := now.Add(21 * time.Hour)
		err := s.PG.Tx(ctx, func(q repokit.Queryer) error {
			r := binder.Bind(q)
			rows, err := r.LockByWordIDs(ctx, user, words[:1])
			if err != nil {
				return err
			}
			row := rows[0]
			row.Pool = pool.R2
			row.Stage = pool.StageDisplay
			row.NextAvailableAt = later
			return r.Update(ctx, row)
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}

		r := binder.Bind(s.PG)
		cands, err := r.ReviewDisplayCandidates(ctx, user, later, domain.SessionMax)
		if err != nil || len(cands) != 1 {
			t.Fatalf("display candidates = %d, %v", len(cands), err)
		}
		if cands[0].Stage != pool.StageDisplay {
			t.Fatalf("stage round trip = %v", cands[0].Stage)
		}
		if n, err := r.ReviewTestCandidates(ctx, user, later, domain.SessionMax); err != nil || len(n) != 0 {
			t.Fatalf("test candidates = %d, %v", len(n), err)
		}
	})

	t.Run("cooldowns and reset", func(t *testing.T) {
		r := binder.Bind(s.PG)
		n, err := r.ClearCooldowns(ctx, user, now)
		if err != nil || n == 0 {
			t.Fatalf("ClearCooldowns = %d, %v", n, err)
		}
		n, err = r.DeleteByUser(ctx, user)
		if err != nil || n != 3 {
			t.Fatalf("DeleteByUser = %d, %v", n, err)
		}
	})
}
