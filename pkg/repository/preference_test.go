package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetWeightAbsent(t *testing.T) {
	repo := setupTestRepo(t)

	weight, err := repo.GetWeight(context.Background(), "unknown")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, weight, 0.0001)
}

func TestRepository_SetAndGetWeight(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetWeight(ctx, "science", 0.3))

	weight, err := repo.GetWeight(ctx, "science")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, weight, 0.0001)

	// upsert replaces
	require.NoError(t, repo.SetWeight(ctx, "science", -0.1))
	weight, err = repo.GetWeight(ctx, "science")
	require.NoError(t, err)
	assert.InDelta(t, -0.1, weight, 0.0001)

	var count int
	require.NoError(t, repo.db.Get(&count, "SELECT COUNT(*) FROM preferences"))
	assert.Equal(t, 1, count)
}

func TestRepository_ListPreferences(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetWeight(ctx, "science", 0.5))
	require.NoError(t, repo.SetWeight(ctx, "sports", -0.3))
	require.NoError(t, repo.SetWeight(ctx, "business", 0.5))
	require.NoError(t, repo.SetWeight(ctx, "health", 0.1))

	prefs, err := repo.ListPreferences(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 4)

	// descending by weight, equal weights ordered by keyword
	assert.Equal(t, "business", prefs[0].Keyword)
	assert.Equal(t, "science", prefs[1].Keyword)
	assert.Equal(t, "health", prefs[2].Keyword)
	assert.Equal(t, "sports", prefs[3].Keyword)
	assert.False(t, prefs[0].LastUpdated.IsZero())
}

func TestRepository_TopPositiveKeywords(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetWeight(ctx, "science", 0.5))
	require.NoError(t, repo.SetWeight(ctx, "politics", -0.4))
	require.NoError(t, repo.SetWeight(ctx, "tech", 0.3))
	require.NoError(t, repo.SetWeight(ctx, "neutral", 0.0))
	require.NoError(t, repo.SetWeight(ctx, "health", 0.1))

	keywords, err := repo.TopPositiveKeywords(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"science", "tech"}, keywords)

	// zero and negative weights are excluded even with room to spare
	keywords, err = repo.TopPositiveKeywords(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"science", "tech", "health"}, keywords)
}

func TestRepository_TopPositiveKeywordsStableOrder(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetWeight(ctx, "zebra", 0.2))
	require.NoError(t, repo.SetWeight(ctx, "apple", 0.2))

	first, err := repo.TopPositiveKeywords(ctx, 5)
	require.NoError(t, err)
	second, err := repo.TopPositiveKeywords(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"apple", "zebra"}, first)
}

func TestRepository_PreferenceCount(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.PreferenceCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.SetWeight(ctx, "science", 0.2))
	require.NoError(t, repo.SetWeight(ctx, "health", 0.1))

	count, err = repo.PreferenceCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
