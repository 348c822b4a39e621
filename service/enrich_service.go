package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/NikhilBollineni/newsproject/types"
	"github.com/google/uuid"
)

// SentimentResult is the sentiment sub-call response.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// CategoryResult is the categorization sub-call response.
type CategoryResult struct {
	Category string   `json:"category"`
	Industry string   `json:"industry"`
	Tags     []string `json:"tags"`
}

// Classifier is the external classification service: two independent
// sub-calls per item.
type Classifier interface {
	AnalyzeSentiment(ctx context.Context, title, content string) (*SentimentResult, error)
	Categorize(ctx context.Context, title, content string) (*CategoryResult, error)
}

const (
	defaultBatchSize  = 5
	defaultBatchDelay = time.Second
)

// EnrichmentService attaches sentiment and categorization metadata to raw
// items in fixed-size batches. A nil classifier means no credential is
// configured; every item then gets the deterministic default and the
// pipeline never blocks or fails for it.
type EnrichmentService struct {
	classifier Classifier
	batchSize  int
	batchDelay time.Duration
}

func NewEnrichmentService(classifier Classifier, batchSize int, batchDelay time.Duration) *EnrichmentService {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if batchDelay < 0 {
		batchDelay = defaultBatchDelay
	}
	return &EnrichmentService{
		classifier: classifier,
		batchSize:  batchSize,
		batchDelay: batchDelay,
	}
}

// Enrich never returns an error: item failures degrade that item only.
func (s *EnrichmentService) Enrich(ctx context.Context, raw []types.RawArticle) []types.Article {
	articles := make([]types.Article, len(raw))

	if s.classifier == nil {
		for i, item := range raw {
			a := s.baseArticle(item)
			a.Enrichment.Failure = types.EnrichmentFailureNoCredential
			articles[i] = a
		}
		return articles
	}

	for start := 0; start < len(raw); start += s.batchSize {
		end := start + s.batchSize
		if end > len(raw) {
			end = len(raw)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				articles[i] = s.enrichOne(ctx, raw[i])
			}(i)
		}
		wg.Wait()

		// Throttle between batches to bound the request rate.
		if end < len(raw) && s.batchDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.batchDelay):
			}
		}
	}
	return articles
}

func (s *EnrichmentService) enrichOne(ctx context.Context, item types.RawArticle) types.Article {
	var (
		wg        sync.WaitGroup
		sentiment *SentimentResult
		category  *CategoryResult
		sErr      error
		cErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		sentiment, sErr = s.classifier.AnalyzeSentiment(ctx, item.Title, item.Content)
	}()
	go func() {
		defer wg.Done()
		category, cErr = s.classifier.Categorize(ctx, item.Title, item.Content)
	}()
	wg.Wait()

	a := s.baseArticle(item)

	if sErr != nil || cErr != nil {
		err := sErr
		if err == nil {
			err = cErr
		}
		log.Printf("enrich: item %q degraded to fallback: %v", item.Title, err)
		a.Enrichment.Failure = err.Error()
		return a
	}

	if types.ValidSentiment(sentiment.Sentiment) {
		a.Sentiment = sentiment.Sentiment
	}
	a.SentimentScore = clamp(sentiment.Score, -1, 1)
	a.Enrichment.Confidence = clamp(sentiment.Confidence, 0, 1)
	a.Enrichment.AIEnhanced = true

	// AI category/industry win when present and valid; otherwise keep the
	// fetch stage's inferred values.
	if types.ValidCategory(category.Category) {
		a.Category = category.Category
	}
	if types.ValidIndustry(category.Industry) {
		a.Industry = category.Industry
	}
	a.Tags = mergeTags(item.Tags, category.Tags, types.MaxTags)
	return a
}

// baseArticle builds the fallback article: the fetch stage's values with
// neutral sentiment and source tags only.
func (s *EnrichmentService) baseArticle(item types.RawArticle) types.Article {
	now := time.Now()
	category := item.Category
	if !types.ValidCategory(category) {
		category = types.CategoryIndustryAnalysis
	}
	industry := item.Industry
	if !types.ValidIndustry(industry) {
		industry = types.IndustryHVAC
	}
	return types.Article{
		ID:             uuid.NewString(),
		Title:          item.Title,
		Content:        item.Content,
		Summary:        item.Summary,
		Source:         item.Source,
		URL:            item.URL,
		Category:       category,
		Industry:       industry,
		Sentiment:      types.SentimentNeutral,
		SentimentScore: 0,
		Tags:           mergeTags(item.Tags, nil, types.MaxTags),
		Enrichment: types.Enrichment{
			AIEnhanced: false,
			Confidence: 0,
			SourceURL:  item.URL,
			FetchedAt:  now,
		},
		PublishedAt: parsePublishedAt(item.PublishedAt, now),
		CreatedAt:   now,
	}
}

// mergeTags unions source and AI tags, source order first, deduplicated,
// capped at max.
func mergeTags(source, ai []string, max int) []string {
	merged := make([]string, 0, max)
	seen := make(map[string]struct{}, max)
	for _, group := range [][]string{source, ai} {
		for _, tag := range group {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
			if len(merged) == max {
				return merged
			}
		}
	}
	return merged
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parsePublishedAt tolerates the formats the fetch script emits; Python's
// isoformat() omits the timezone suffix.
func parsePublishedAt(s string, fallback time.Time) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
