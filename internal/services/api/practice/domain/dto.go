// Package domain holds DTOs for the practice http and service contracts
package domain

import (
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
	"wordpool/internal/core/pool"
)

// SessionOut is the practice session response. Exercises arrive sorted
// reading -> listening -> speaking; ExerciseOrder names the distinct types in
// that presentation order
type SessionOut struct {
	Available     bool                `json:"available"`
	Reason        string              `json:"reason,omitempty"`
	Exercises     []exercise.Exercise `json:"exercises"`
	ExerciseOrder []pool.ExerciseType `json:"exercise_order"`
}

// AnswerIn is one graded answer. Correctness for speaking and listening is
// asserted by the client
type AnswerIn struct {
	WordID         uuid.UUID `json:"word_id" validate:"required"`
	Correct        bool      `json:"correct"`
	ResponseTimeMS int       `json:"response_time_ms" validate:"min=0"`
}

// SubmitIn carries a session's answers
type SubmitIn struct {
	Answers []AnswerIn `json:"answers" validate:"required,min=1,max=50,dive"`
}

// ResultOut reports one row's transition. A raced row shows
// PreviousPool == NewPool with its stored time
type ResultOut struct {
	WordID          uuid.UUID `json:"word_id"`
	Correct         bool      `json:"correct"`
	PreviousPool    string    `json:"previous_pool"`
	NewPool         string    `json:"new_pool"`
	NextAvailableAt time.Time `json:"next_available_time"`
}

// SummaryOut aggregates a submission
type SummaryOut struct {
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`
}

// SubmitOut is the submission response. NextAvailableAt is only set when the
// user has nothing left to do right now: no learn, no practice, no review
type SubmitOut struct {
	Results         []ResultOut `json:"results"`
	Summary         SummaryOut  `json:"summary"`
	NextAvailableAt *time.Time  `json:"next_available_time,omitempty"`
}
