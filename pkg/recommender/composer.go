package recommender

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newscurator/pkg/domain"
)

// DefaultLimit is the recommendation list size used when the caller asks for none
const DefaultLimit = 20

// explorationCategories is the fixed rotation list for the exploration pool.
// Only the first two are ever used; the rotation does not track recently
// shown categories. Known limitation, kept until there is a product decision.
var explorationCategories = []string{"technology", "business", "science", "health", "sports"}

// Composer blends three content pools into one recommendation list:
// 70% personalized (keyword search driven by learned weights), 20%
// exploration (fixed categories) and 10% general trending. Pools are
// fetched concurrently, persisted, then merged in priority order with
// identity-based dedup.
type Composer struct {
	learner *Learner
	source  ArticleSource
	store   Store
}

// ComposerConfig holds configuration for Composer
type ComposerConfig struct {
	Learner *Learner
	Source  ArticleSource
	Store   Store
}

// NewComposer creates a composer with the provided dependencies
func NewComposer(cfg ComposerConfig) *Composer {
	return &Composer{learner: cfg.Learner, source: cfg.Source, store: cfg.Store}
}

// Recommendations returns up to limit articles mixed from the three pools.
// A failed fetch degrades its pool to empty rather than failing the call;
// storage failures propagate since persisted state can't be guaranteed.
func (c *Composer) Recommendations(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// cold start: seed defaults when no preferences exist yet
	if err := c.learner.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap preferences: %w", err)
	}

	ranked, err := c.learner.RankedPositiveKeywords(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("ranked keywords: %w", err)
	}

	// pool sizes: general absorbs the rounding remainder so the three
	// always sum exactly to limit
	personalizedSize := limit * 7 / 10
	explorationSize := limit * 2 / 10
	generalSize := limit - personalizedSize - explorationSize

	var personalized, exploration, general []domain.Article

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if len(ranked) == 0 {
			// keyword-less state contributes nothing, no fallback substitution
			return nil
		}
		keywords := ranked
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		articles, err := c.source.SearchByKeywords(gctx, keywords, personalizedSize)
		if err != nil {
			lgr.Printf("[WARN] personalized pool fetch failed: %v", err)
			return nil
		}
		personalized = capArticles(articles, personalizedSize)
		return nil
	})

	g.Go(func() error {
		for _, category := range explorationCategories[:2] {
			articles, err := c.source.SearchByCategory(gctx, category, explorationSize)
			if err != nil {
				lgr.Printf("[WARN] exploration pool fetch failed for %s: %v", category, err)
				continue
			}
			exploration = append(exploration, articles...)
		}
		exploration = capArticles(exploration, explorationSize)
		return nil
	})

	g.Go(func() error {
		articles, err := c.source.FetchTrending(gctx, generalSize)
		if err != nil {
			lgr.Printf("[WARN] general pool fetch failed: %v", err)
			return nil
		}
		general = capArticles(articles, generalSize)
		return nil
	})

	_ = g.Wait() // pool goroutines never return errors, fetch failures degrade in place

	// persist every fetched article before merging, whether or not it
	// survives dedup
	for _, pool := range [][]domain.Article{personalized, exploration, general} {
		for i := range pool {
			if err := c.store.UpsertArticle(ctx, &pool[i]); err != nil {
				return nil, fmt.Errorf("persist article %s: %w", pool[i].ID, err)
			}
		}
	}

	// merge in priority order, first occurrence wins
	result := make([]domain.Article, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, pool := range [][]domain.Article{personalized, exploration, general} {
		for _, article := range pool {
			if _, ok := seen[article.ID]; ok {
				continue
			}
			seen[article.ID] = struct{}{}
			result = append(result, article)
			if len(result) >= limit {
				return result, nil
			}
		}
	}

	lgr.Printf("[DEBUG] composed %d recommendations (personalized: %d, exploration: %d, general: %d)",
		len(result), len(personalized), len(exploration), len(general))
	return result, nil
}

// ProcessFeedback validates the reaction kind and hands it to the learner
func (c *Composer) ProcessFeedback(ctx context.Context, articleID string, kind domain.ReactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReaction, kind)
	}
	return c.learner.RecordReaction(ctx, articleID, kind)
}

// Profile returns the preference summary for display and debugging
func (c *Composer) Profile(ctx context.Context) (*domain.ProfileSummary, error) {
	return c.learner.Summary(ctx)
}

// ResetUserData clears all learned preferences and the reaction log
func (c *Composer) ResetUserData(ctx context.Context) error {
	return c.learner.Reset(ctx)
}

func capArticles(articles []domain.Article, limit int) []domain.Article {
	if len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
