package recommender

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newscurator/pkg/domain"
	"github.com/umputun/newscurator/pkg/recommender/mocks"
)

func makeArticles(prefix string, n int) []domain.Article {
	articles := make([]domain.Article, n)
	for i := range n {
		url := fmt.Sprintf("https://example.com/%s/%d", prefix, i)
		articles[i] = domain.Article{
			ID:    domain.ArticleID(url),
			Title: fmt.Sprintf("%s article %d", prefix, i),
			URL:   url,
		}
	}
	return articles
}

// composerFixture wires a composer with a populated store mock and a source
// mock that returns as many articles as each pool asks for
func composerFixture() (*Composer, *mocks.StoreMock, *mocks.ArticleSourceMock) {
	store := &mocks.StoreMock{
		PreferenceCountFunc: func(ctx context.Context) (int, error) { return 5, nil },
		TopPositiveKeywordsFunc: func(ctx context.Context, limit int) ([]string, error) {
			return []string{"science", "business", "technology", "health", "space"}, nil
		},
		UpsertArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	source := &mocks.ArticleSourceMock{
		SearchByKeywordsFunc: func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return makeArticles("personalized", limit), nil
		},
		SearchByCategoryFunc: func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			return makeArticles("cat-"+category, limit), nil
		},
		FetchTrendingFunc: func(ctx context.Context, limit int) ([]domain.Article, error) {
			return makeArticles("general", limit), nil
		},
	}
	learner := NewLearner(LearnerConfig{Store: store})
	composer := NewComposer(ComposerConfig{Learner: learner, Source: source, Store: store})
	return composer, store, source
}

func TestComposer_Recommendations(t *testing.T) {
	t.Run("pool sizes for limit 20", func(t *testing.T) {
		composer, _, source := composerFixture()

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, articles, 20)

		require.Len(t, source.SearchByKeywordsCalls(), 1)
		assert.Equal(t, 14, source.SearchByKeywordsCalls()[0].Limit)
		assert.Equal(t, []string{"science", "business", "technology"}, source.SearchByKeywordsCalls()[0].Keywords)

		require.Len(t, source.SearchByCategoryCalls(), 2)
		assert.Equal(t, "technology", source.SearchByCategoryCalls()[0].Category)
		assert.Equal(t, "business", source.SearchByCategoryCalls()[1].Category)
		assert.Equal(t, 4, source.SearchByCategoryCalls()[0].Limit)

		require.Len(t, source.FetchTrendingCalls(), 1)
		assert.Equal(t, 2, source.FetchTrendingCalls()[0].Limit)
	})

	t.Run("pool caps sum exactly to limit", func(t *testing.T) {
		composer, _, source := composerFixture()

		articles, err := composer.Recommendations(context.Background(), 13)
		require.NoError(t, err)
		assert.Len(t, articles, 13)

		// 13 -> 9 personalized, 2 exploration, 2 general
		assert.Equal(t, 9, source.SearchByKeywordsCalls()[0].Limit)
		assert.Equal(t, 2, source.SearchByCategoryCalls()[0].Limit)
		assert.Equal(t, 2, source.FetchTrendingCalls()[0].Limit)
	})

	t.Run("default limit applied for zero", func(t *testing.T) {
		composer, _, source := composerFixture()

		articles, err := composer.Recommendations(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, articles, DefaultLimit)
		assert.Equal(t, 14, source.SearchByKeywordsCalls()[0].Limit)
	})

	t.Run("priority order personalized first", func(t *testing.T) {
		composer, _, _ := composerFixture()

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		require.Len(t, articles, 20)
		assert.Contains(t, articles[0].Title, "personalized")
		assert.Contains(t, articles[19].Title, "general")
	})

	t.Run("duplicate across pools kept once at first position", func(t *testing.T) {
		composer, _, source := composerFixture()
		shared := makeArticles("shared", 1)[0]

		source.SearchByKeywordsFunc = func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return append([]domain.Article{shared}, makeArticles("personalized", 3)...), nil
		}
		source.FetchTrendingFunc = func(ctx context.Context, limit int) ([]domain.Article, error) {
			return []domain.Article{shared}, nil
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)

		var occurrences []int
		for i, a := range articles {
			if a.ID == shared.ID {
				occurrences = append(occurrences, i)
			}
		}
		require.Len(t, occurrences, 1)
		assert.Equal(t, 0, occurrences[0], "first (highest-priority) occurrence wins")
	})

	t.Run("cold start bootstraps then recommends", func(t *testing.T) {
		composer, store, _ := composerFixture()
		seeded := map[string]float64{}
		store.PreferenceCountFunc = func(ctx context.Context) (int, error) { return len(seeded), nil }
		store.SetWeightFunc = func(ctx context.Context, keyword string, weight float64) error {
			seeded[keyword] = weight
			return nil
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, articles, 20)
		assert.Len(t, seeded, 5, "empty store must be bootstrapped")
	})

	t.Run("no positive keywords skips personalized pool", func(t *testing.T) {
		composer, store, source := composerFixture()
		store.TopPositiveKeywordsFunc = func(ctx context.Context, limit int) ([]string, error) {
			return nil, nil
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)

		assert.Empty(t, source.SearchByKeywordsCalls())
		// only exploration (4) and general (2) contribute
		assert.Len(t, articles, 6)
	})

	t.Run("failed personalized pool degrades to empty", func(t *testing.T) {
		composer, _, source := composerFixture()
		source.SearchByKeywordsFunc = func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return nil, assert.AnError
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err, "single pool failure must not fail the call")
		assert.Len(t, articles, 6)
	})

	t.Run("all pools failing still succeeds with empty result", func(t *testing.T) {
		composer, _, source := composerFixture()
		source.SearchByKeywordsFunc = func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return nil, assert.AnError
		}
		source.SearchByCategoryFunc = func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			return nil, assert.AnError
		}
		source.FetchTrendingFunc = func(ctx context.Context, limit int) ([]domain.Article, error) {
			return nil, assert.AnError
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("one failed exploration category keeps the other", func(t *testing.T) {
		composer, _, source := composerFixture()
		source.SearchByCategoryFunc = func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			if category == "technology" {
				return nil, assert.AnError
			}
			return makeArticles("cat-"+category, limit), nil
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, articles, 20)
	})

	t.Run("every fetched article persisted including duplicates", func(t *testing.T) {
		composer, store, source := composerFixture()
		shared := makeArticles("shared", 1)[0]
		source.SearchByKeywordsFunc = func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return []domain.Article{shared}, nil
		}
		source.FetchTrendingFunc = func(ctx context.Context, limit int) ([]domain.Article, error) {
			return []domain.Article{shared}, nil
		}
		source.SearchByCategoryFunc = func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			return nil, nil
		}

		_, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, store.UpsertArticleCalls(), 2, "both pool copies persisted")
	})

	t.Run("persist failure is fatal", func(t *testing.T) {
		composer, store, _ := composerFixture()
		store.UpsertArticleFunc = func(ctx context.Context, article *domain.Article) error {
			return assert.AnError
		}

		_, err := composer.Recommendations(context.Background(), 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("exploration pool capped at its size", func(t *testing.T) {
		composer, _, source := composerFixture()
		source.SearchByCategoryFunc = func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			// each category returns a full pool worth, combined exceeds the cap
			return makeArticles("cat-"+category, limit), nil
		}
		source.SearchByKeywordsFunc = func(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
			return nil, nil
		}
		source.FetchTrendingFunc = func(ctx context.Context, limit int) ([]domain.Article, error) {
			return nil, nil
		}

		articles, err := composer.Recommendations(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, articles, 4, "exploration contributes at most floor(20*0.2)")
	})
}

func TestComposer_ProcessFeedback(t *testing.T) {
	t.Run("invalid kind rejected before learner", func(t *testing.T) {
		composer, store, _ := composerFixture()
		store.AppendReactionFunc = func(ctx context.Context, articleID string, kind domain.ReactionKind) error {
			return nil
		}

		err := composer.ProcessFeedback(context.Background(), "x", domain.ReactionKind("neutral"))
		require.ErrorIs(t, err, ErrInvalidReaction)
		assert.Empty(t, store.AppendReactionCalls())
	})

	t.Run("valid kind delegated", func(t *testing.T) {
		composer, store, _ := composerFixture()
		store.AppendReactionFunc = func(ctx context.Context, articleID string, kind domain.ReactionKind) error {
			return nil
		}
		store.GetArticleFunc = func(ctx context.Context, id string) (*domain.Article, error) {
			return nil, nil
		}

		require.NoError(t, composer.ProcessFeedback(context.Background(), "x", domain.ReactionLike))
		assert.Len(t, store.AppendReactionCalls(), 1)
	})
}

func TestComposer_Profile(t *testing.T) {
	composer, store, _ := composerFixture()
	store.ListPreferencesFunc = func(ctx context.Context) ([]domain.KeywordPreference, error) {
		return []domain.KeywordPreference{{Keyword: "science", Weight: 0.2}}, nil
	}

	profile, err := composer.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalPreferences)
	assert.Equal(t, 1, profile.PositiveCount)
}

func TestComposer_ResetUserData(t *testing.T) {
	composer, store, _ := composerFixture()
	store.ResetUserDataFunc = func(ctx context.Context) error { return nil }

	require.NoError(t, composer.ResetUserData(context.Background()))
	assert.Len(t, store.ResetUserDataCalls(), 1)
}
