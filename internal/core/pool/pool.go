// Package pool implements the word-progress pool ladder: the closed set of
// scheduling states a word can occupy for one user, the fixed waits between
// them, and the exercise type each pool surfaces when eligible.
//
// Everything here is pure; time enters only as an explicit argument
package pool

import (
	"fmt"
	"time"
)

// Pool is a scheduling bucket. P0 is the unlearned intake, P1..P5 are the
// practice ladder, P6 is mastered, R1..R5 are the relearn pools entered on a
// wrong answer from the P pool of the same index
type Pool uint8

// The twelve pools. Order matters: P-pools ascend, then R-pools ascend
const (
	P0 Pool = iota
	P1
	P2
	P3
	P4
	P5
	P6
	R1
	R2
	R3
	R4
	R5
)

var names = [...]string{"P0", "P1", "P2", "P3", "P4", "P5", "P6", "R1", "R2", "R3", "R4", "R5"}

// String returns the wire name, e.g. "P3" or "R2"
func (p Pool) String() string {
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("Pool(%d)", uint8(p))
}

// Parse maps a wire name back to a Pool
func Parse(s string) (Pool, error) {
	for i, n := range names {
		if n == s {
			return Pool(i), nil
		}
	}
	return P0, fmt.Errorf("pool: unknown pool %q", s)
}

// All lists every pool in display order
func All() []Pool {
	out := make([]Pool, len(names))
	for i := range names {
		out[i] = Pool(i)
	}
	return out
}

// IsP reports whether p is one of P0..P6
func (p Pool) IsP() bool { return p <= P6 }

// IsR reports whether p is one of R1..R5
func (p Pool) IsR() bool { return p >= R1 && p <= R5 }

// Level returns the ladder index: 0..6 for P0..P6, 1..5 for R1..R5
func (p Pool) Level() int {
	if p.IsP() {
		return int(p)
	}
	return int(p-R1) + 1
}

// PAt returns the P pool for a ladder level 0..6
func PAt(level int) Pool { return Pool(level) }

// RAt returns the R pool for a ladder level 1..5
func RAt(level int) Pool { return R1 + Pool(level-1) }

// Review returns the R pool a wrong answer in p demotes to, and whether such
// a demotion exists. P1 has no R counterpart: wrong answers retry in P1
func (p Pool) Review() (Pool, bool) {
	if p >= P2 && p <= P5 {
		return RAt(p.Level()), true
	}
	return p, false
}

// Scheduling constants. Bit-exact per the product design; tests pin them
const (
	// RetryWait applies after a P1 wrong answer and on every R-pool
	// (re-)entry before the display phase
	RetryWait = 10 * time.Minute

	// DisplayToTestWait separates the R-pool display phase from its test
	DisplayToTestWait = 20 * time.Hour
)

// waits indexes entry waits by P-pool level; zero means no wait applies
// (P0 has no schedule, P6 never resurfaces)
var waits = [...]time.Duration{
	P1: 10 * time.Minute,
	P2: 20 * time.Hour,
	P3: 44 * time.Hour,
	P4: 68 * time.Hour,
	P5: 164 * time.Hour,
}

// Wait returns the fixed wait after entering p before it becomes eligible,
// and whether p has one. P0, P6 and the R pools have no entry wait of their
// own (R waits are phase-driven, see Transition)
func (p Pool) Wait() (time.Duration, bool) {
	if p >= P1 && p <= P5 {
		return waits[p], true
	}
	return 0, false
}

// ExerciseType names the activity a pool surfaces when eligible
type ExerciseType string

// Exercise types in client wire form
const (
	ReadingLv1   ExerciseType = "reading_lv1"
	ListeningLv1 ExerciseType = "listening_lv1"
	SpeakingLv1  ExerciseType = "speaking_lv1"
	ReadingLv2   ExerciseType = "reading_lv2"
	SpeakingLv2  ExerciseType = "speaking_lv2"
)

// exercises indexes exercise types by ladder level 1..5; R pools share the
// type of the P pool with the same index
var exercises = [...]ExerciseType{
	1: ReadingLv1,
	2: ListeningLv1,
	3: SpeakingLv1,
	4: ReadingLv2,
	5: SpeakingLv2,
}

// Exercise returns the exercise type p surfaces, and whether it has one
// (P0 and P6 never surface exercises)
func (p Pool) Exercise() (ExerciseType, bool) {
	if p == P0 || p == P6 {
		return "", false
	}
	return exercises[p.Level()], true
}

// TypeRank orders exercise types for session presentation:
// reading first, then listening, then speaking
func TypeRank(t ExerciseType) int {
	switch t {
	case ReadingLv1, ReadingLv2:
		return 0
	case ListeningLv1:
		return 1
	case SpeakingLv1, SpeakingLv2:
		return 2
	default:
		return 3
	}
}
