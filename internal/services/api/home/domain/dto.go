// Package domain holds DTOs for the home http and service contracts
package domain

import (
	"time"

	"github.com/google/uuid"
)

// LevelOut names the user's current curriculum level
type LevelOut struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
}

// CategoryOut names the user's current curriculum category
type CategoryOut struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
}

// StatsOut is the home dashboard aggregate. NextAvailableAt is only set when
// nothing is actionable right now
type StatsOut struct {
	TodayLearned      int `json:"today_learned"`
	AvailablePractice int `json:"available_practice"`
	AvailableReview   int `json:"available_review"`
	Upcoming24h       int `json:"upcoming_24h"`

	CanLearn    bool `json:"can_learn"`
	CanPractice bool `json:"can_practice"`
	CanReview   bool `json:"can_review"`

	NextAvailableAt *time.Time   `json:"next_available_time,omitempty"`
	CurrentLevel    *LevelOut    `json:"current_level,omitempty"`
	CurrentCategory *CategoryOut `json:"current_category,omitempty"`
}

// PoolItem is one word inside the pool diagnostics
type PoolItem struct {
	WordID          uuid.UUID  `json:"word_id"`
	Word            string     `json:"word"`
	Translation     string     `json:"translation"`
	NextAvailableAt *time.Time `json:"next_available_time,omitempty"`
}

// WordPoolOut groups every catalog word by the user's pool. Words without a
// progress row appear under P0
type WordPoolOut struct {
	Pools      map[string][]PoolItem `json:"pools"`
	TotalCount int                   `json:"total_count"`
}
