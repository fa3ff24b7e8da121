package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newscurator/pkg/domain"
)

// AppendReaction records a reaction in the append-only log
func (r *Repository) AppendReaction(ctx context.Context, articleID string, kind domain.ReactionKind) error {
	query := "INSERT INTO reactions (article_id, kind) VALUES (?, ?)"

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, articleID, string(kind)); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("append reaction: %w", err)}
		}
		return nil
	})
}

// ReactionCount returns the total number of recorded reactions
func (r *Repository) ReactionCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM reactions"); err != nil {
		return 0, fmt.Errorf("reaction count: %w", err)
	}
	return count, nil
}
