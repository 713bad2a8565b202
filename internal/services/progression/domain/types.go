// Package domain defines the word-progress types and ports
package domain

import (
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
)

// Session and admission constants. Tests pin them; do not tune casually
const (
	// LearnBatchSize is the max words handed out per learn session
	LearnBatchSize = 5

	// SessionMax caps practice and review sessions
	SessionMax = 5

	// SessionMin is the eligible-row floor below which practice and review
	// report not_enough_words
	SessionMin = 3

	// DailyLearnLimit caps rows entering P1 per UTC day
	DailyLearnLimit = 50

	// P1UpcomingCap is the backpressure threshold: learn stops handing out
	// words while this many P1 rows are still waiting for first practice
	P1UpcomingCap = 10
)

// Reason is the machine-readable explanation for an unavailable session
type Reason string

// Session-unavailable reasons
const (
	ReasonDailyLimit     Reason = "daily_limit_reached"
	ReasonP1PoolFull     Reason = "p1_pool_full"
	ReasonNoWordsInP0    Reason = "no_words_in_p0"
	ReasonNotEnoughWords Reason = "not_enough_words"
)

// WordProgress is one (user, word) row. Zero times stand for SQL NULL
type WordProgress struct {
	UserID            uuid.UUID
	WordID            uuid.UUID
	Pool              pool.Pool
	Stage             pool.Stage
	LearnedAt         time.Time
	NextAvailableAt   time.Time
	LastOutcomeAt     time.Time
	ReviewCompletedAt time.Time
	CorrectCount      int
	IncorrectCount    int
}

// Snapshot projects the row onto the scheduler's view
func (w WordProgress) Snapshot() pool.Progress {
	return pool.Progress{
		Pool:            w.Pool,
		Stage:           w.Stage,
		LearnedAt:       w.LearnedAt,
		NextAvailableAt: w.NextAvailableAt,
	}
}

// Apply folds a graded transition result back into the row
func (w *WordProgress) Apply(p pool.Progress, correct bool, now time.Time) {
	w.Pool = p.Pool
	w.Stage = p.Stage
	w.NextAvailableAt = p.NextAvailableAt
	w.LastOutcomeAt = now
	if correct {
		w.CorrectCount++
	} else {
		w.IncorrectCount++
	}
}

// Counts is the single-pass aggregate behind home stats and admission
type Counts struct {
	TodayLearned      int
	AvailablePractice int

	// AvailableReview counts display-eligible plus test-eligible rows
	AvailableReview int

	Upcoming24h int
	P1Upcoming  int

	// NextAvailableAt is the min non-null next_available_time across the
	// user's rows; zero when the user has none
	NextAvailableAt time.Time
}

// CanPractice reports whether a practice session can be assembled
func (c Counts) CanPractice() bool { return c.AvailablePractice >= SessionMin }

// CanReview reports whether a review session can be assembled
func (c Counts) CanReview() bool { return c.AvailableReview >= SessionMin }

// LearnBlock evaluates the learn preconditions this aggregate can decide, in
// contract order. The P0 check needs the catalog and stays with the caller
func (c Counts) LearnBlock() (Reason, bool) {
	if c.TodayLearned >= DailyLearnLimit {
		return ReasonDailyLimit, true
	}
	if c.P1Upcoming >= P1UpcomingCap {
		return ReasonP1PoolFull, true
	}
	return "", false
}

// Answer is one graded submission entry. Correctness for speaking and
// listening is asserted by the client
type Answer struct {
	WordID         uuid.UUID
	Correct        bool
	ResponseTimeMS int
}

// Result reports one row's transition. A raced row that was no longer
// eligible is reported with PreviousPool == NewPool and its stored time
type Result struct {
	WordID          uuid.UUID
	PreviousPool    pool.Pool
	NewPool         pool.Pool
	NextAvailableAt time.Time
}

// Summary aggregates a submission
type Summary struct {
	Correct   int
	Incorrect int

	// ReturnedToP counts rows whose review test promoted them back into a
	// P pool; only review submissions set it
	ReturnedToP int
}

// DayStartUTC returns the UTC midnight the daily-learned window opens at.
// The daily boundary is fixed to UTC
func DayStartUTC(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
