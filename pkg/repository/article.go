package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newscurator/pkg/domain"
)

// articleSQL represents an article row. Keywords are comma-joined in the
// database and split back on read, repeats and order are preserved.
type articleSQL struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	URL         string    `db:"url"`
	Source      string    `db:"source"`
	Keywords    string    `db:"keywords"`
	PublishedAt string    `db:"published_at"`
	FetchedAt   time.Time `db:"fetched_at"`
}

// UpsertArticle inserts or replaces an article by id. A re-fetched article
// overwrites prior fields but keeps the same identity.
func (r *Repository) UpsertArticle(ctx context.Context, article *domain.Article) error {
	row := &articleSQL{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		URL:         article.URL,
		Source:      article.Source,
		Keywords:    strings.Join(article.Keywords, ", "),
		PublishedAt: article.PublishedAt,
		FetchedAt:   time.Now(),
	}

	query := `
		INSERT OR REPLACE INTO articles (id, title, content, url, source, keywords, published_at, fetched_at)
		VALUES (:id, :title, :content, :url, :source, :keywords, :published_at, :fetched_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert article: %w", err)}
		}
		return nil
	})
}

// GetArticle retrieves an article by id, nil when not found
func (r *Repository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &domain.Article{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		URL:         row.URL,
		Source:      row.Source,
		Keywords:    splitKeywords(row.Keywords),
		PublishedAt: row.PublishedAt,
		FetchedAt:   row.FetchedAt,
	}, nil
}

// splitKeywords parses the comma-joined keyword column: trims whitespace and
// drops empty tokens, but keeps repeats and order.
func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	return keywords
}
