package domain

import "time"

// ReactionKind represents the kind of user reaction on an article
type ReactionKind string

// supported reaction kinds
const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether the reaction kind is one of the supported values
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction is a single like/dislike event on an article. Reactions are
// append-only, they are never updated or deleted except by a full reset.
type Reaction struct {
	ID        int64
	ArticleID string
	Kind      ReactionKind
	CreatedAt time.Time
}

// KeywordPreference holds the learned affinity for a single keyword.
// Weight is clamped to [-1, 1]; a keyword absent from the store is neutral (0).
type KeywordPreference struct {
	Keyword     string    `json:"keyword"`
	Weight      float64   `json:"weight"`
	LastUpdated time.Time `json:"last_updated"`
}

// ProfileSummary is a read-only aggregate view of the preference state
type ProfileSummary struct {
	TotalPreferences int                 `json:"total_preferences"`
	PositiveCount    int                 `json:"positive_count"`
	NegativeCount    int                 `json:"negative_count"`
	TopPositive      []KeywordPreference `json:"top_positive"`
	TopNegative      []KeywordPreference `json:"top_negative"`
}
