package domain

import (
	"context"
	"time"
)

// Entry is a single journal entry owned by exactly one user.
// CreatedAt is fixed when the entry is first written and survives edits;
// Sentiment holds the mood label produced by the classifier and is
// overwritten on every edit.
type Entry struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Sentiment string
	CreatedAt time.Time
}

// Validation limits for entries. These match the limits the mobile client
// enforces in its editor.
const (
	MinTitleLen   = 5
	MinContentLen = 10
	MaxContentLen = 1000
)

// EntryRepository defines persistence operations for journal entries.
// Repositories return entries regardless of owner; ownership checks live
// in the service layer so that a foreign entry and a missing entry are
// indistinguishable to callers.
type EntryRepository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) error
	DistinctSentiments(ctx context.Context, userID string) ([]string, error)
}
