// Package domain holds DTOs for the learn http and service contracts
package domain

import (
	"github.com/google/uuid"

	"wordpool/internal/core/exercise"
)

// WordOut is the full word content shown during intake
type WordOut struct {
	WordID        uuid.UUID `json:"word_id"`
	Word          string    `json:"word"`
	Translation   string    `json:"translation"`
	Sentence      string    `json:"sentence,omitempty"`
	SentenceTrans string    `json:"sentence_translation,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	AudioURL      string    `json:"audio_url,omitempty"`
}

// SessionOut is the learn session response. When Available is false, Reason
// names the first failed precondition and the slices are empty
type SessionOut struct {
	Available bool                `json:"available"`
	Reason    string              `json:"reason,omitempty"`
	Words     []WordOut           `json:"words,omitempty"`
	Exercises []exercise.Exercise `json:"exercises,omitempty"`
}

// CompleteIn lists the words the client finished learning
type CompleteIn struct {
	WordIDs []uuid.UUID `json:"word_ids" validate:"required,min=1,max=50"`
}

// CompleteOut reports the learn completion. WordsMoved counts only rows that
// actually entered P1; repeat submissions are no-ops per word
type CompleteOut struct {
	WordsMoved   int `json:"words_moved"`
	TodayLearned int `json:"today_learned"`
}
