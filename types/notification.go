package types

import "time"

const (
	NotificationBreakingNews    = "breaking_news"
	NotificationMarketAlert     = "market_alert"
	NotificationSentimentChange = "sentiment_change"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Priority  string         `json:"priority"`
	Read      bool           `json:"read"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Analytics is the rollup view derived from the full corpus.
type Analytics struct {
	TotalArticles    int            `json:"total_articles"`
	PublishedLast24h int            `json:"published_last_24h"`
	PositivePercent  float64        `json:"positive_percent"`
	IndustryCounts   map[string]int `json:"industry_counts"`
	CategoryCounts   map[string]int `json:"category_counts"`
	SentimentCounts  map[string]int `json:"sentiment_counts"`
	TopTags          []TagTrend     `json:"top_tags"`
}

// TagTrend pairs a tag with its frequency and a trend estimate. TrendDelta is
// derived from the tag's recent share versus its overall share, not from real
// historical data; treat it as a signal, not ground truth.
type TagTrend struct {
	Tag        string  `json:"tag"`
	Count      int     `json:"count"`
	TrendDelta float64 `json:"trend_delta"`
}
