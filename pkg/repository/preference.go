package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newscurator/pkg/domain"
)

// preferenceSQL represents a keyword preference row
type preferenceSQL struct {
	Keyword     string    `db:"keyword"`
	Weight      float64   `db:"weight"`
	LastUpdated time.Time `db:"last_updated"`
}

// GetWeight returns the stored weight for a keyword, 0.0 when absent
func (r *Repository) GetWeight(ctx context.Context, keyword string) (float64, error) {
	var weight float64
	err := r.db.GetContext(ctx, &weight, "SELECT weight FROM preferences WHERE keyword = ?", keyword)
	if errors.Is(err, sql.ErrNoRows) {
		return 0.0, nil
	}
	if err != nil {
		return 0.0, fmt.Errorf("get weight: %w", err)
	}
	return weight, nil
}

// SetWeight inserts or replaces the weight for a keyword, refreshing last_updated
func (r *Repository) SetWeight(ctx context.Context, keyword string, weight float64) error {
	query := `
		INSERT OR REPLACE INTO preferences (keyword, weight, last_updated)
		VALUES (?, ?, datetime('now'))
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, keyword, weight); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("set weight: %w", err)}
		}
		return nil
	})
}

// ListPreferences returns all stored preferences, highest weight first.
// Ties are broken by keyword so the order is stable across calls.
func (r *Repository) ListPreferences(ctx context.Context) ([]domain.KeywordPreference, error) {
	var rows []preferenceSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM preferences ORDER BY weight DESC, keyword ASC")
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	prefs := make([]domain.KeywordPreference, len(rows))
	for i, row := range rows {
		prefs[i] = domain.KeywordPreference{Keyword: row.Keyword, Weight: row.Weight, LastUpdated: row.LastUpdated}
	}
	return prefs, nil
}

// TopPositiveKeywords returns up to limit keywords with weight > 0,
// strictly descending by weight, ties broken by keyword
func (r *Repository) TopPositiveKeywords(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT keyword FROM preferences
		WHERE weight > 0
		ORDER BY weight DESC, keyword ASC
		LIMIT ?
	`
	var keywords []string
	if err := r.db.SelectContext(ctx, &keywords, query, limit); err != nil {
		return nil, fmt.Errorf("top positive keywords: %w", err)
	}
	return keywords, nil
}

// PreferenceCount returns the number of stored preferences
func (r *Repository) PreferenceCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM preferences"); err != nil {
		return 0, fmt.Errorf("preference count: %w", err)
	}
	return count, nil
}
