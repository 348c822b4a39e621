package types

import "time"

const (
	CategoryProductLaunch        = "Product Launch"
	CategoryMarketTrends         = "Market Trends"
	CategoryCompetitorFinancials = "Competitor Financials"
	CategoryRegulatoryCompliance = "Regulatory Compliance"
	CategoryTechnologyInnovation = "Technology Innovation"
	CategoryIndustryAnalysis     = "Industry Analysis"
)

const (
	IndustryHVAC    = "HVAC"
	IndustryBESS    = "BESS"
	IndustryFinance = "Finance"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// MaxTags caps the merged tag list of an article.
const MaxTags = 8

// Enrichment failure markers. An empty Failure means the item was enriched
// without degradation.
const (
	EnrichmentFailureNoCredential = "no_credential"
)

// Enrichment records the provenance of an article's AI metadata.
type Enrichment struct {
	AIEnhanced bool      `json:"ai_enhanced"`
	Confidence float64   `json:"confidence"`
	SourceURL  string    `json:"source_url,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
	Failure    string    `json:"failure,omitempty"`
}

type Article struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Summary        string     `json:"summary,omitempty"`
	Source         string     `json:"source"`
	URL            string     `json:"url,omitempty"`
	Category       string     `json:"category"`
	Industry       string     `json:"industry"`
	Sentiment      string     `json:"sentiment"`
	SentimentScore float64    `json:"sentiment_score"`
	Views          int        `json:"views"`
	IsBookmarked   bool       `json:"is_bookmarked"`
	Tags           []string   `json:"tags"`
	Enrichment     Enrichment `json:"enrichment"`
	PublishedAt    time.Time  `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RawArticle is an unenriched item as emitted by the external fetch process.
// PublishedAt stays a string because the fetcher does not guarantee RFC 3339.
type RawArticle struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Source      string   `json:"source"`
	Category    string   `json:"category"`
	Industry    string   `json:"industry"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publishedAt"`
	Tags        []string `json:"tags"`
}

// ArticleFilter holds optional, conjunctive list filters.
type ArticleFilter struct {
	Category   string
	Industry   string
	Sentiment  string
	Search     string
	Bookmarked *bool
}

func ValidCategory(s string) bool {
	switch s {
	case CategoryProductLaunch, CategoryMarketTrends, CategoryCompetitorFinancials,
		CategoryRegulatoryCompliance, CategoryTechnologyInnovation, CategoryIndustryAnalysis:
		return true
	}
	return false
}

func ValidIndustry(s string) bool {
	switch s {
	case IndustryHVAC, IndustryBESS, IndustryFinance:
		return true
	}
	return false
}

func ValidSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}
