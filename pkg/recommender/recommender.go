// Package recommender implements the preference learning and recommendation
// mixing logic: a weight model turning like/dislike reactions into keyword
// scores, and a pool allocator blending personalized, exploration and general
// content into one deduplicated list.
package recommender

import (
	"context"
	"errors"

	"github.com/umputun/newscurator/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/article_source.go -pkg mocks -skip-ensure -fmt goimports . ArticleSource

// ErrInvalidReaction indicates a reaction kind outside like/dislike.
// The request is rejected and no state is mutated.
var ErrInvalidReaction = errors.New("invalid reaction kind")

// Store is the persistence interface the recommender depends on
type Store interface {
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	UpsertArticle(ctx context.Context, article *domain.Article) error
	GetWeight(ctx context.Context, keyword string) (float64, error)
	SetWeight(ctx context.Context, keyword string, weight float64) error
	ListPreferences(ctx context.Context) ([]domain.KeywordPreference, error)
	TopPositiveKeywords(ctx context.Context, limit int) ([]string, error)
	PreferenceCount(ctx context.Context) (int, error)
	AppendReaction(ctx context.Context, articleID string, kind domain.ReactionKind) error
	ReactionCount(ctx context.Context) (int, error)
	ResetUserData(ctx context.Context) error
}

// ArticleSource fetches candidate articles from the external news provider.
// Any call may fail, the composer degrades the affected pool to empty.
type ArticleSource interface {
	SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]domain.Article, error)
	SearchByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error)
	FetchTrending(ctx context.Context, limit int) ([]domain.Article, error)
}
