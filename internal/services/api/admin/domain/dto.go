// Package domain holds DTOs for the admin http and service contracts
package domain

import (
	"github.com/google/uuid"
)

// ResetProgressOut reports a full progress wipe
type ResetProgressOut struct {
	WordsReset int `json:"words_reset"`
}

// ResetCooldownOut reports how many pending waits were cleared
type ResetCooldownOut struct {
	WordsAffected int `json:"words_affected"`
}

// SeedWordIn is one word to import. Level and Category are curriculum ranks;
// zero leaves the word untagged
type SeedWordIn struct {
	Word          string `json:"word" validate:"required"`
	Translation   string `json:"translation" validate:"required"`
	Sentence      string `json:"sentence"`
	SentenceTrans string `json:"sentence_translation"`
	ImageURL      string `json:"image_url"`
	AudioURL      string `json:"audio_url"`
	Level         int    `json:"level" validate:"min=0"`
	Category      int    `json:"category" validate:"min=0"`
}

// SeedWordsIn is a catalog import batch
type SeedWordsIn struct {
	Words []SeedWordIn `json:"words" validate:"required,min=1,dive"`
}

// SeedWordsOut reports an import. Skipped counts entries dropped as in-batch
// duplicates of the same normalized headword
type SeedWordsOut struct {
	WordsImported int `json:"words_imported"`
	WordsSkipped  int `json:"words_skipped"`
}

// WordOut is one catalog entry in the admin listing
type WordOut struct {
	ID            uuid.UUID `json:"id"`
	Word          string    `json:"word"`
	Translation   string    `json:"translation"`
	Sentence      string    `json:"sentence,omitempty"`
	SentenceTrans string    `json:"sentence_translation,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	AudioURL      string    `json:"audio_url,omitempty"`
	Level         int       `json:"level,omitempty"`
	Category      int       `json:"category,omitempty"`
}

// WordsOut is the admin catalog listing
type WordsOut struct {
	Words      []WordOut `json:"words"`
	TotalCount int       `json:"total_count"`
}
