package recommender

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newscurator/pkg/domain"
)

// weight model constants
const (
	defaultAdjustment = 0.1
	maxWeight         = 1.0
	minWeight         = -1.0
)

// bootstrapDefaults seed the preference store on cold start so the first
// recommendation request has some personalization signal to work with
var bootstrapDefaults = []domain.KeywordPreference{
	{Keyword: "science", Weight: 0.2},
	{Keyword: "business", Weight: 0.2},
	{Keyword: "current_events", Weight: 0.1},
	{Keyword: "technology", Weight: 0.1},
	{Keyword: "health", Weight: 0.1},
}

// Learner maintains keyword preference weights and updates them from
// user reactions. All weight mutations go through a single mutex so
// concurrent reactions apply their full read-adjust-clamp step.
type Learner struct {
	store      Store
	adjustment float64

	mu sync.Mutex
}

// LearnerConfig holds configuration for Learner
type LearnerConfig struct {
	Store      Store
	Adjustment float64 // per-occurrence weight adjustment, defaults to 0.1
}

// NewLearner creates a learner backed by the given store
func NewLearner(cfg LearnerConfig) *Learner {
	adjustment := cfg.Adjustment
	if adjustment == 0 {
		adjustment = defaultAdjustment
	}
	return &Learner{store: cfg.Store, adjustment: adjustment}
}

// RecordReaction appends the reaction and adjusts the weight of every keyword
// of the referenced article. A missing article, or one with no stored
// keywords, still records the reaction but changes no weights. A keyword
// repeated in the article's list applies the adjustment once per occurrence.
func (l *Learner) RecordReaction(ctx context.Context, articleID string, kind domain.ReactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReaction, kind)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.AppendReaction(ctx, articleID, kind); err != nil {
		return fmt.Errorf("append reaction: %w", err)
	}

	article, err := l.store.GetArticle(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article for reaction: %w", err)
	}
	if article == nil || len(article.Keywords) == 0 {
		lgr.Printf("[DEBUG] reaction on %s recorded without keywords, no weights changed", articleID)
		return nil
	}

	adjustment := l.adjustment
	if kind == domain.ReactionDislike {
		adjustment = -l.adjustment
	}

	for _, keyword := range article.Keywords {
		current, err := l.store.GetWeight(ctx, keyword)
		if err != nil {
			return fmt.Errorf("get weight for %q: %w", keyword, err)
		}
		if err := l.store.SetWeight(ctx, keyword, clamp(current+adjustment)); err != nil {
			return fmt.Errorf("set weight for %q: %w", keyword, err)
		}
	}

	lgr.Printf("[INFO] %s reaction on %s adjusted %d keywords", kind, articleID, len(article.Keywords))
	return nil
}

// Weight returns the learned weight for a keyword, 0.0 when unknown
func (l *Learner) Weight(ctx context.Context, keyword string) (float64, error) {
	return l.store.GetWeight(ctx, keyword)
}

// RankedPositiveKeywords returns up to limit keywords with positive weight,
// strictly descending. The order is stable across calls with unchanged state.
func (l *Learner) RankedPositiveKeywords(ctx context.Context, limit int) ([]string, error) {
	return l.store.TopPositiveKeywords(ctx, limit)
}

// AllPreferences returns every stored preference, highest weight first
func (l *Learner) AllPreferences(ctx context.Context) ([]domain.KeywordPreference, error) {
	return l.store.ListPreferences(ctx)
}

// Summary builds the read-only profile view for diagnostics
func (l *Learner) Summary(ctx context.Context) (*domain.ProfileSummary, error) {
	prefs, err := l.store.ListPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	summary := &domain.ProfileSummary{
		TotalPreferences: len(prefs),
		TopPositive:      []domain.KeywordPreference{},
		TopNegative:      []domain.KeywordPreference{},
	}
	for _, p := range prefs {
		switch {
		case p.Weight > 0:
			summary.PositiveCount++
			if len(summary.TopPositive) < 5 {
				summary.TopPositive = append(summary.TopPositive, p)
			}
		case p.Weight < 0:
			summary.NegativeCount++
		}
	}

	// prefs are sorted descending, so the strongest dislikes are at the tail
	for i := len(prefs) - 1; i >= 0 && len(summary.TopNegative) < 5; i-- {
		if prefs[i].Weight < 0 {
			summary.TopNegative = append(summary.TopNegative, prefs[i])
		}
	}

	return summary, nil
}

// Bootstrap seeds default preferences when the store is empty.
// A non-empty store is left untouched, so repeated calls are safe.
func (l *Learner) Bootstrap(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bootstrapLocked(ctx)
}

func (l *Learner) bootstrapLocked(ctx context.Context) error {
	count, err := l.store.PreferenceCount(ctx)
	if err != nil {
		return fmt.Errorf("preference count: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range bootstrapDefaults {
		if err := l.store.SetWeight(ctx, p.Keyword, p.Weight); err != nil {
			return fmt.Errorf("seed %q: %w", p.Keyword, err)
		}
	}
	lgr.Printf("[INFO] bootstrapped %d default preferences", len(bootstrapDefaults))
	return nil
}

// Reset clears all preferences and reactions. Irreversible.
func (l *Learner) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.ResetUserData(ctx)
}

func clamp(w float64) float64 {
	return max(minWeight, min(maxWeight, w))
}
