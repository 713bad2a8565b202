// Package domain defines the answer history types and ports
package domain

import (
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/pool"
)

// Source names the activity that produced an answer
type Source string

// Answer sources
const (
	SourcePractice Source = "practice"
	SourceReview   Source = "review_practice"
)

// Event is one graded answer. Pool and Exercise describe the word at the
// moment it was answered, before the transition applied
type Event struct {
	UserID         uuid.UUID
	WordID         uuid.UUID
	Source         Source
	Exercise       pool.ExerciseType
	Pool           pool.Pool
	Correct        bool
	ResponseTimeMS int
	AnsweredAt     time.Time
}
