package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repo is the storage surface bound per transaction
type Repo interface {
	// ByIDs returns the named words; missing ids are simply absent
	ByIDs(ctx context.Context, ids []uuid.UUID) ([]Word, error)

	// List pages the catalog in insertion order
	List(ctx context.Context, limit, offset int) ([]Word, error)

	// Count returns the catalog size
	Count(ctx context.Context) (int, error)

	// SampleDistractors returns up to limit random words excluding the
	// given ids
	SampleDistractors(ctx context.Context, exclude []uuid.UUID, limit int) ([]Word, error)

	// UnlearnedFrom lists words without a progress row for the user, walking
	// the curriculum from pos in (level, category, insertion) order
	UnlearnedFrom(ctx context.Context, userID uuid.UUID, pos Position, limit int) ([]Word, error)

	// UnlearnedUntagged lists unlearned words with no curriculum tag
	UnlearnedUntagged(ctx context.Context, userID uuid.UUID, limit int) ([]Word, error)

	// Levels and Categories list the curriculum dimensions in walk order
	Levels(ctx context.Context) ([]Level, error)
	Categories(ctx context.Context) ([]Category, error)

	// Upsert writes words keyed by normalized headword, returning the number
	// of rows created or updated
	Upsert(ctx context.Context, words []Word, norms []string) (int, error)

	// MaxPosition returns the highest curriculum position among the given
	// words; ok is false when none of them carries a tag
	MaxPosition(ctx context.Context, ids []uuid.UUID) (Position, bool, error)
}

// Port is the catalog surface the session assemblers consume
type Port interface {
	ByIDs(ctx context.Context, ids []uuid.UUID) ([]Word, error)
	List(ctx context.Context, limit, offset int) ([]Word, error)
	Count(ctx context.Context) (int, error)
	Distractors(ctx context.Context, exclude []uuid.UUID, limit int) ([]Word, error)

	// LearnBatch picks up to limit unlearned words for the user, preferring
	// the curriculum walk from pos and falling back to untagged words
	LearnBatch(ctx context.Context, userID uuid.UUID, pos Position, limit int) ([]Word, error)

	Levels(ctx context.Context) ([]Level, error)
	Categories(ctx context.Context) ([]Category, error)
	Seed(ctx context.Context, words []Word) (int, error)
	MaxPosition(ctx context.Context, ids []uuid.UUID) (Position, bool, error)
}
