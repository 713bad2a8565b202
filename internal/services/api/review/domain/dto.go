// Package domain holds DTOs for the review http and service contracts
package domain

import (
	"time"

	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
	practicedom "wordpool/internal/services/api/practice/domain"
)

// WordOut is the full word content re-shown during the display phase
type WordOut struct {
	WordID        uuid.UUID `json:"word_id"`
	Word          string    `json:"word"`
	Translation   string    `json:"translation"`
	Sentence      string    `json:"sentence,omitempty"`
	SentenceTrans string    `json:"sentence_translation,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	AudioURL      string    `json:"audio_url,omitempty"`
	Pool          string    `json:"pool"`
}

// SessionOut is the review session response. Exercises preview what the test
// phase will ask once the display wait elapses
type SessionOut struct {
	Available bool                `json:"available"`
	Reason    string              `json:"reason,omitempty"`
	Words     []WordOut           `json:"words"`
	Exercises []exercise.Exercise `json:"exercises"`
}

// CompleteIn lists the words whose display phase is done
type CompleteIn struct {
	WordIDs []uuid.UUID `json:"word_ids" validate:"required,min=1,max=50"`
}

// CompleteOut reports the phase flip. NextPracticeAt is when the test phase
// opens for the rows moved this call
type CompleteOut struct {
	WordsCompleted int       `json:"words_completed"`
	NextPracticeAt time.Time `json:"next_practice_time"`
}

// SubmitIn carries the test-phase answers
type SubmitIn = practicedom.SubmitIn

// SubmitOut is the test-phase submission response
type SubmitOut struct {
	Results []practicedom.ResultOut `json:"results"`
	Summary SummaryOut              `json:"summary"`
}

// SummaryOut aggregates a review submission
type SummaryOut struct {
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`

	// ReturnedToP counts rows the test promoted back into their P pool
	ReturnedToP int `json:"returned_to_p"`
}
