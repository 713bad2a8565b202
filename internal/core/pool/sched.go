package pool

import "time"

// Stage is the sub-state of an R-pool visit. Words entering an R pool are
// first re-shown (display), then re-tested 20h later (test)
type Stage uint8

// R-pool stages. StageNone is the only valid stage outside R pools
const (
	StageNone Stage = iota
	StageDisplay
	StageTest
)

// StageString converts to the wire form used by the progress store
func (s Stage) String() string {
	switch s {
	case StageDisplay:
		return "display"
	case StageTest:
		return "practice"
	default:
		return ""
	}
}

// ParseStage maps the stored stage name back to a Stage
func ParseStage(s string) Stage {
	switch s {
	case "display":
		return StageDisplay
	case "practice":
		return StageTest
	default:
		return StageNone
	}
}

// Progress is the scheduling snapshot of one (user, word) row. Zero times
// stand for SQL NULL: NextAvailableAt is zero only in P0 and P6, LearnedAt
// is zero only in P0
type Progress struct {
	Pool            Pool
	Stage           Stage
	LearnedAt       time.Time
	NextAvailableAt time.Time
}

// EligibleForPractice reports whether the row may appear in a practice
// session at now: P1..P5 with its wait elapsed
func (p Progress) EligibleForPractice(now time.Time) bool {
	if p.Pool < P1 || p.Pool > P5 {
		return false
	}
	return !p.NextAvailableAt.After(now)
}

// EligibleForReviewDisplay reports whether the row may appear in a review
// session (display phase) at now
func (p Progress) EligibleForReviewDisplay(now time.Time) bool {
	return p.Pool.IsR() && p.Stage == StageDisplay && !p.NextAvailableAt.After(now)
}

// EligibleForReviewTest reports whether the row may be re-tested at now
func (p Progress) EligibleForReviewTest(now time.Time) bool {
	return p.Pool.IsR() && p.Stage == StageTest && !p.NextAvailableAt.After(now)
}

// Learned is the snapshot a word receives when a learn session completes:
// it enters P1 and becomes eligible RetryWait later
func Learned(now time.Time) Progress {
	return Progress{
		Pool:            P1,
		Stage:           StageNone,
		LearnedAt:       now,
		NextAvailableAt: now.Add(RetryWait),
	}
}

// Transition applies one submission outcome to the snapshot and returns the
// successor state. All rows of one submission must share the same now so a
// batch lands on identical times for equal pools.
//
//   - P_k correct: advance to P_{k+1}; P6 clears the schedule for good
//   - P_k incorrect, k >= 2: demote to R_k, display stage, RetryWait
//   - P1 incorrect: stay in P1 with RetryWait (there is no R0)
//   - R_k test correct: return to P_k with wait(P_k)
//   - R_k test incorrect: back to display stage with RetryWait
func Transition(p Progress, correct bool, now time.Time) Progress {
	next := p
	switch {
	case p.Pool.IsR():
		if correct {
			next.Pool = PAt(p.Pool.Level())
			next.Stage = StageNone
			w, _ := next.Pool.Wait()
			next.NextAvailableAt = now.Add(w)
		} else {
			next.Stage = StageDisplay
			next.NextAvailableAt = now.Add(RetryWait)
		}

	case correct:
		next.Pool = p.Pool + 1
		if next.Pool == P6 {
			next.NextAvailableAt = time.Time{}
		} else {
			w, _ := next.Pool.Wait()
			next.NextAvailableAt = now.Add(w)
		}

	default: // wrong answer in a P pool
		if r, ok := p.Pool.Review(); ok {
			next.Pool = r
			next.Stage = StageDisplay
		}
		next.NextAvailableAt = now.Add(RetryWait)
	}
	return next
}

// CompleteDisplay finishes the re-exposure phase of an R-pool row: the word
// moves to the test stage and waits DisplayToTestWait. Calling it on a row
// already in the test stage is a no-op (idempotent per word)
func CompleteDisplay(p Progress, now time.Time) Progress {
	if !p.Pool.IsR() || p.Stage != StageDisplay {
		return p
	}
	next := p
	next.Stage = StageTest
	next.NextAvailableAt = now.Add(DisplayToTestWait)
	return next
}
