package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NikhilBollineni/newsproject/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*ArticleRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.json")
	repo, err := NewArticleRepo(path)
	require.NoError(t, err)
	return repo, path
}

func testArticle(mutate func(*types.Article)) types.Article {
	a := types.Article{
		ID:          uuid.NewString(),
		Title:       "Heat Pump Demand Rises",
		Content:     "Demand for heat pumps keeps climbing.",
		Source:      "Test Wire",
		Category:    types.CategoryMarketTrends,
		Industry:    types.IndustryHVAC,
		Sentiment:   types.SentimentNeutral,
		Tags:        []string{"HeatPump"},
		PublishedAt: time.Now(),
		CreatedAt:   time.Now(),
	}
	if mutate != nil {
		mutate(&a)
	}
	return a
}

func TestSeedsWhenFileAbsent(t *testing.T) {
	repo, path := newTestRepo(t)

	articles := repo.List(types.ArticleFilter{})
	assert.NotEmpty(t, articles)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestListFiltersAreConjunctive(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.RewriteAll([]types.Article{
		testArticle(func(a *types.Article) {
			a.Category = types.CategoryProductLaunch
			a.Industry = types.IndustryHVAC
		}),
		testArticle(func(a *types.Article) {
			a.Category = types.CategoryProductLaunch
			a.Industry = types.IndustryBESS
		}),
		testArticle(func(a *types.Article) {
			a.Category = types.CategoryMarketTrends
			a.Industry = types.IndustryHVAC
		}),
	}))

	byCategory := repo.List(types.ArticleFilter{Category: types.CategoryProductLaunch})
	assert.Len(t, byCategory, 2)
	for _, a := range byCategory {
		assert.Equal(t, types.CategoryProductLaunch, a.Category)
	}

	intersection := repo.List(types.ArticleFilter{
		Category: types.CategoryProductLaunch,
		Industry: types.IndustryBESS,
	})
	require.Len(t, intersection, 1)
	assert.Equal(t, types.IndustryBESS, intersection[0].Industry)
}

func TestListSearchMatchesTitleContentTags(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.RewriteAll([]types.Article{
		testArticle(func(a *types.Article) { a.Title = "Megapack Expansion" }),
		testArticle(func(a *types.Article) { a.Content = "the megapack rollout continues" }),
		testArticle(func(a *types.Article) { a.Tags = []string{"Megapack"} }),
		testArticle(func(a *types.Article) { a.Title = "Unrelated" }),
	}))

	results := repo.List(types.ArticleFilter{Search: "MEGAPACK"})
	assert.Len(t, results, 3)
}

func TestListSortedByPublishedAtDescending(t *testing.T) {
	repo, _ := newTestRepo(t)
	base := time.Now().Add(-10 * time.Hour)
	articles := make([]types.Article, 10)
	for i := range articles {
		offset := time.Duration(i) * time.Hour
		articles[i] = testArticle(func(a *types.Article) {
			a.PublishedAt = base.Add(offset)
		})
	}
	require.NoError(t, repo.RewriteAll(articles))

	results := repo.List(types.ArticleFilter{})
	require.Len(t, results, 10)
	for i := 1; i < len(results); i++ {
		assert.False(t, results[i].PublishedAt.After(results[i-1].PublishedAt),
			"results must be ordered most recent first")
	}
	assert.Equal(t, base.Add(9*time.Hour).Unix(), results[0].PublishedAt.Unix())
}

func TestToggleBookmarkIsItsOwnInverse(t *testing.T) {
	repo, _ := newTestRepo(t)
	a := testArticle(nil)
	require.NoError(t, repo.RewriteAll([]types.Article{a}))

	toggled, err := repo.ToggleBookmark(a.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsBookmarked)

	toggled, err = repo.ToggleBookmark(a.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsBookmarked)
}

func TestGetByIDIncrementsViewsPerCall(t *testing.T) {
	repo, _ := newTestRepo(t)
	a := testArticle(nil)
	require.NoError(t, repo.RewriteAll([]types.Article{a}))

	for i := 1; i <= 3; i++ {
		got, err := repo.GetByID(a.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Views)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendSurvivesReload(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.RewriteAll([]types.Article{testArticle(nil)}))

	added := testArticle(func(a *types.Article) { a.Title = "Appended" })
	_, err := repo.Append(added)
	require.NoError(t, err)

	reloaded, err := NewArticleRepo(path)
	require.NoError(t, err)
	articles := reloaded.List(types.ArticleFilter{})
	require.Len(t, articles, 2)

	found := false
	for _, a := range articles {
		if a.ID == added.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalytics(t *testing.T) {
	repo, _ := newTestRepo(t)
	now := time.Now()
	require.NoError(t, repo.RewriteAll([]types.Article{
		testArticle(func(a *types.Article) {
			a.Sentiment = types.SentimentPositive
			a.Industry = types.IndustryHVAC
			a.Tags = []string{"HeatPump", "AI"}
			a.PublishedAt = now.Add(-time.Hour)
		}),
		testArticle(func(a *types.Article) {
			a.Sentiment = types.SentimentNegative
			a.Industry = types.IndustryBESS
			a.Tags = []string{"HeatPump"}
			a.PublishedAt = now.Add(-2 * time.Hour)
		}),
		testArticle(func(a *types.Article) {
			a.Sentiment = types.SentimentPositive
			a.Industry = types.IndustryHVAC
			a.Tags = []string{"EPA"}
			a.PublishedAt = now.Add(-48 * time.Hour)
		}),
		testArticle(func(a *types.Article) {
			a.Sentiment = types.SentimentNeutral
			a.Industry = types.IndustryFinance
			a.PublishedAt = now.Add(-3 * time.Hour)
		}),
	}))

	analytics := repo.Analytics(10)
	assert.Equal(t, 4, analytics.TotalArticles)
	assert.Equal(t, 3, analytics.PublishedLast24h)
	assert.InDelta(t, 50.0, analytics.PositivePercent, 0.001)
	assert.Equal(t, 2, analytics.IndustryCounts[types.IndustryHVAC])
	assert.Equal(t, 1, analytics.IndustryCounts[types.IndustryBESS])
	assert.Equal(t, 2, analytics.SentimentCounts[types.SentimentPositive])
	require.NotEmpty(t, analytics.TopTags)
	assert.Equal(t, "HeatPump", analytics.TopTags[0].Tag)
	assert.Equal(t, 2, analytics.TopTags[0].Count)
}

func TestAnalyticsEmptyCorpus(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.RewriteAll(nil))

	analytics := repo.Analytics(10)
	assert.Equal(t, 0, analytics.TotalArticles)
	assert.Zero(t, analytics.PositivePercent)
	assert.Empty(t, analytics.TopTags)
}
