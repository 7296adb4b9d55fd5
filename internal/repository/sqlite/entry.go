package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"daybook/internal/domain"
)

// EntryRepository implements domain.EntryRepository using SQLite.
type EntryRepository struct {
	db *sql.DB
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (id, user_id, title, content, sentiment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Sentiment, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	e := &domain.Entry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, content, sentiment, created_at
		 FROM entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Sentiment, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query entry: %w", err)
	}
	return e, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	return r.list(ctx,
		`SELECT id, user_id, title, content, sentiment, created_at
		 FROM entries WHERE user_id = ? ORDER BY created_at`, userID)
}

func (r *EntryRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Entry, error) {
	return r.list(ctx,
		`SELECT id, user_id, title, content, sentiment, created_at
		 FROM entries WHERE user_id = ? AND created_at >= ? AND created_at < ?
		 ORDER BY created_at`, userID, from, to)
}

func (r *EntryRepository) list(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Sentiment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update rewrites title, content and sentiment. created_at is deliberately
// not part of the statement; it never changes after creation.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE entries SET title = ?, content = ?, sentiment = ? WHERE id = ?`,
		entry.Title, entry.Content, entry.Sentiment, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) DistinctSentiments(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT sentiment FROM entries WHERE user_id = ? ORDER BY sentiment`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sentiments: %w", err)
	}
	defer rows.Close()

	var sentiments []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan sentiment: %w", err)
		}
		sentiments = append(sentiments, s)
	}
	return sentiments, rows.Err()
}
