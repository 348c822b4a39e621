package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/NikhilBollineni/newsproject/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ArticleRepo owns the article table and is the single writer of the durable
// file. Every mutation persists via write-then-rename so a failed write never
// corrupts the previous file contents. In-memory state may run ahead of disk
// when a write fails; that is an at-least-once durability guarantee for the
// tail of a run, not exactly-once.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles []types.Article
	filePath string
}

func NewArticleRepo(filePath string) (*ArticleRepo, error) {
	r := &ArticleRepo{filePath: filePath}
	if err := r.load(); err != nil {
		return nil, err
	}
	if len(r.articles) == 0 {
		r.articles = seedArticles()
		if err := r.persist(); err != nil {
			log.Printf("articles: failed to persist seed corpus: %v", err)
		}
	}
	return r, nil
}

func (r *ArticleRepo) load() error {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read article file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &r.articles); err != nil {
		return fmt.Errorf("parse article file: %w", err)
	}
	return nil
}

// persist writes the full table to a temp file and renames it into place.
// Callers must hold the write lock.
func (r *ArticleRepo) persist() error {
	data, err := json.MarshalIndent(r.articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if dir := filepath.Dir(r.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	tmp := r.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write article file: %w", err)
	}
	if err := os.Rename(tmp, r.filePath); err != nil {
		return fmt.Errorf("replace article file: %w", err)
	}
	return nil
}

// Append adds one article to the table and durably persists the table.
func (r *ArticleRepo) Append(article types.Article) (types.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append(r.articles, article)
	if err := r.persist(); err != nil {
		log.Printf("articles: append persisted in memory only: %v", err)
		return article, err
	}
	return article, nil
}

// RewriteAll replaces the table and the file wholesale. Used after a full
// ingestion run.
func (r *ArticleRepo) RewriteAll(articles []types.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = make([]types.Article, len(articles))
	copy(r.articles, articles)
	return r.persist()
}

// List returns articles matching every set filter, most recent first.
func (r *ArticleRepo) List(filter types.ArticleFilter) []types.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if matchesFilter(a, filter) {
			out = append(out, a)
		}
	}
	// Descending publishedAt ordering is part of the contract.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

func matchesFilter(a types.Article, f types.ArticleFilter) bool {
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.Industry != "" && a.Industry != f.Industry {
		return false
	}
	if f.Sentiment != "" && a.Sentiment != f.Sentiment {
		return false
	}
	if f.Bookmarked != nil && a.IsBookmarked != *f.Bookmarked {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Content), q) &&
			!tagMatches(a.Tags, q) {
			return false
		}
	}
	return true
}

func tagMatches(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// GetByID returns the article and increments its view counter exactly once.
func (r *ArticleRepo) GetByID(id string) (types.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles[i].Views++
			if err := r.persist(); err != nil {
				log.Printf("articles: view count persisted in memory only: %v", err)
			}
			return r.articles[i], nil
		}
	}
	return types.Article{}, ErrNotFound
}

func (r *ArticleRepo) ToggleBookmark(id string) (types.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles[i].IsBookmarked = !r.articles[i].IsBookmarked
			if err := r.persist(); err != nil {
				log.Printf("articles: bookmark persisted in memory only: %v", err)
			}
			return r.articles[i], nil
		}
	}
	return types.Article{}, ErrNotFound
}

// Analytics derives the rollup view over the full table.
func (r *ArticleRepo) Analytics(topTags int) types.Analytics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analytics := types.Analytics{
		TotalArticles:   len(r.articles),
		IndustryCounts:  map[string]int{},
		CategoryCounts:  map[string]int{},
		SentimentCounts: map[string]int{},
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	tagCounts := map[string]int{}
	recentTagCounts := map[string]int{}
	recent := 0
	positive := 0

	for _, a := range r.articles {
		analytics.IndustryCounts[a.Industry]++
		analytics.CategoryCounts[a.Category]++
		analytics.SentimentCounts[a.Sentiment]++
		if a.Sentiment == types.SentimentPositive {
			positive++
		}
		isRecent := a.PublishedAt.After(cutoff)
		if isRecent {
			recent++
		}
		for _, t := range a.Tags {
			tagCounts[t]++
			if isRecent {
				recentTagCounts[t]++
			}
		}
	}

	analytics.PublishedLast24h = recent
	if len(r.articles) > 0 {
		analytics.PositivePercent = float64(positive) / float64(len(r.articles)) * 100
	}
	analytics.TopTags = topTagTrends(tagCounts, recentTagCounts, len(r.articles), recent, topTags)
	return analytics
}

// topTagTrends ranks tags by frequency. The trend delta is an estimate: the
// tag's share among articles from the trailing 24h minus its overall share,
// in percentage points. There is no historical baseline behind it.
func topTagTrends(counts, recentCounts map[string]int, total, recent, limit int) []types.TagTrend {
	trends := make([]types.TagTrend, 0, len(counts))
	for tag, count := range counts {
		var overallShare, recentShare float64
		if total > 0 {
			overallShare = float64(count) / float64(total)
		}
		if recent > 0 {
			recentShare = float64(recentCounts[tag]) / float64(recent)
		}
		trends = append(trends, types.TagTrend{
			Tag:        tag,
			Count:      count,
			TrendDelta: (recentShare - overallShare) * 100,
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Count != trends[j].Count {
			return trends[i].Count > trends[j].Count
		}
		return trends[i].Tag < trends[j].Tag
	})
	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
