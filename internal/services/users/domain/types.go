// Package domain defines the user types and ports
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is one account row. CurrentLevel and CurrentCategory track the
// curriculum walk; zero means the walk has not started
type User struct {
	ID              uuid.UUID
	Username        string
	CurrentLevel    int
	CurrentCategory int
	CreatedAt       time.Time
}

// Repo is the storage surface bound per transaction
type Repo interface {
	// UpsertByUsername returns the user with that name, creating the row on
	// first login
	UpsertByUsername(ctx context.Context, username string) (User, error)

	// ByID returns the user when it exists
	ByID(ctx context.Context, id uuid.UUID) (User, bool, error)

	// AdvancePosition moves the curriculum position forward; positions never
	// move backwards. Returns whether the row changed
	AdvancePosition(ctx context.Context, id uuid.UUID, level, category int) (bool, error)
}

// Port is the user surface the api modules consume
type Port interface {
	Login(ctx context.Context, username string) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, bool, error)
	AdvancePosition(ctx context.Context, id uuid.UUID, level, category int) (bool, error)
}
