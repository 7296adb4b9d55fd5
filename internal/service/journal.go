package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"daybook/internal/domain"
)

// JournalService handles journal entry CRUD, mood enrichment, and the
// ownership isolation between accounts. Every method takes the acting
// user's id explicitly; there is no ambient "current user".
type JournalService struct {
	entries    domain.EntryRepository
	classifier domain.MoodClassifier
	guard      *SaveGuard
}

// NewJournalService creates a new JournalService.
func NewJournalService(entries domain.EntryRepository, classifier domain.MoodClassifier) *JournalService {
	return &JournalService{
		entries:    entries,
		classifier: classifier,
		guard:      NewSaveGuard(),
	}
}

// List returns all of the user's entries in creation order.
func (s *JournalService) List(ctx context.Context, userID string) ([]domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.entries.ListByUser(ctx, userID)
}

// ListDay returns the user's entries created on the given local day
// ("2006-01-02"), optionally narrowed to a single mood label. An empty mood
// means no mood filter.
func (s *JournalService) ListDay(ctx context.Context, userID, day, mood string) ([]domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	dayStart, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: day must be formatted YYYY-MM-DD", domain.ErrInvalidInput)
	}
	// Next local midnight, which is not always 24h away (DST transitions).
	dayEnd := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day()+1, 0, 0, 0, 0, time.Local)

	entries, err := s.entries.ListByUserBetween(ctx, userID, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, err
	}
	if mood == "" {
		return entries, nil
	}

	filtered := entries[:0]
	for _, e := range entries {
		if e.Sentiment == mood {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Moods returns the distinct mood labels across the user's entries, for the
// client's filter chips.
func (s *JournalService) Moods(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.entries.DistinctSentiments(ctx, userID)
}

// Get returns a single entry. A missing entry and an entry owned by someone
// else are both ErrNotFound.
func (s *JournalService) Get(ctx context.Context, userID, id string) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.getOwned(ctx, userID, id)
}

// Add validates the draft, asks the classifier for a mood label, and only
// then persists. A classifier failure leaves the journal untouched.
func (s *JournalService) Add(ctx context.Context, userID, title, content string) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateDraft(title, content); err != nil {
		return nil, err
	}

	if !s.guard.TryBegin(userID) {
		return nil, domain.ErrSaveInProgress
	}
	defer s.guard.End(userID)

	sentiment, err := s.classifier.Classify(ctx, content)
	if err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update rewrites title and content, re-runs the classifier on the new
// content, and preserves the original creation time.
func (s *JournalService) Update(ctx context.Context, userID, id, title, content string) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateDraft(title, content); err != nil {
		return nil, err
	}

	existing, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if !s.guard.TryBegin(userID) {
		return nil, domain.ErrSaveInProgress
	}
	defer s.guard.End(userID)

	sentiment, err := s.classifier.Classify(ctx, content)
	if err != nil {
		return nil, err
	}

	existing.Title = title
	existing.Content = content
	existing.Sentiment = sentiment
	if err := s.entries.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an entry with the same ownership semantics as Get.
func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.entries.Delete(ctx, id)
}

// Saving reports whether an Add or Update is currently in flight for the
// user. The client uses this to disable its save button.
func (s *JournalService) Saving(userID string) bool {
	return s.guard.Saving(userID)
}

func (s *JournalService) getOwned(ctx context.Context, userID, id string) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		// Hide the entry's existence from non-owners.
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func validateDraft(title, content string) error {
	if utf8.RuneCountInString(title) < domain.MinTitleLen {
		return fmt.Errorf("%w: title must be at least %d characters", domain.ErrInvalidInput, domain.MinTitleLen)
	}
	n := utf8.RuneCountInString(content)
	if n < domain.MinContentLen {
		return fmt.Errorf("%w: content must be at least %d characters", domain.ErrInvalidInput, domain.MinContentLen)
	}
	if n > domain.MaxContentLen {
		return fmt.Errorf("%w: content must be at most %d characters", domain.ErrInvalidInput, domain.MaxContentLen)
	}
	return nil
}
