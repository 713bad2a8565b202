// Package domain defines the word catalog types and ports
package domain

import (
	"github.com/google/uuid"
)

// Word is one catalog entry. Level and Category are curriculum ranks;
// zero means the entry carries no curriculum tag
type Word struct {
	ID            uuid.UUID
	Headword      string
	Translation   string
	Sentence      string
	SentenceTrans string
	ImageURL      string
	AudioURL      string
	Level         int
	Category      int
}

// Level is one curriculum level in walk order
type Level struct {
	Rank int
	Name string
}

// Category is one curriculum category in walk order
type Category struct {
	Rank int
	Name string
}

// Position is a user's place in the curriculum walk. The zero value means
// "from the beginning"
type Position struct {
	Level    int
	Category int
}

// Before reports whether p sorts before q in (level, category) walk order
func (p Position) Before(q Position) bool {
	if p.Level != q.Level {
		return p.Level < q.Level
	}
	return p.Category < q.Category
}

// Max returns the later of the two positions
func (p Position) Max(q Position) Position {
	if p.Before(q) {
		return q
	}
	return p
}
