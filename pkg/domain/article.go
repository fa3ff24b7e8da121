package domain

import (
	"crypto/md5" //nolint:gosec // not used for security, only for stable article ids
	"encoding/hex"
	"time"
)

// Article represents a news article returned by the article source.
// The ID is content-addressed: it is derived from the article URL, so the same
// article fetched twice always maps to the same record.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Keywords    []string  `json:"keywords"` // ordered, may contain repeats across fetches
	PublishedAt string    `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at,omitempty"`
}

// ArticleID derives the stable article identifier from its URL
func ArticleID(url string) string {
	sum := md5.Sum([]byte(url)) //nolint:gosec // identity hash, not a security boundary
	return hex.EncodeToString(sum[:])
}
