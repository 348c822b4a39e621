package repository

import (
	"time"

	"github.com/NikhilBollineni/newsproject/types"
	"github.com/google/uuid"
)

// seedArticles returns the fixed sample corpus written out when the durable
// file is absent or empty.
func seedArticles() []types.Article {
	now := time.Now()
	seed := []struct {
		title, content, summary, source, category, industry, sentiment string
		score                                                          float64
		tags                                                           []string
		age                                                            time.Duration
	}{
		{
			title:     "Carrier Unveils Next-Generation Smart Heat Pump Line",
			content:   "Carrier announced a new line of smart heat pumps with integrated IoT controls aimed at commercial buildings, promising double-digit efficiency gains over the previous generation.",
			summary:   "Carrier launches smart heat pump line for commercial buildings.",
			source:    "HVAC Insider",
			category:  types.CategoryProductLaunch,
			industry:  types.IndustryHVAC,
			sentiment: types.SentimentPositive,
			score:     0.6,
			tags:      []string{"HeatPump", "SmartHVAC", "EnergyEfficiency"},
			age:       6 * time.Hour,
		},
		{
			title:     "Grid-Scale Battery Storage Deployments Hit Record Quarter",
			content:   "Utility-scale battery energy storage installations reached a record high last quarter as developers raced to connect projects ahead of expiring incentives.",
			summary:   "BESS installations set a quarterly record.",
			source:    "Energy Storage Report",
			category:  types.CategoryMarketTrends,
			industry:  types.IndustryBESS,
			sentiment: types.SentimentPositive,
			score:     0.5,
			tags:      []string{"BatteryStorage", "GridModernization", "MarketGrowth"},
			age:       18 * time.Hour,
		},
		{
			title:     "EPA Proposes Tighter Refrigerant Standards for 2027",
			content:   "The EPA released a proposal to tighten refrigerant GWP limits from 2027, which manufacturers warn will compress retrofit timelines across the HVAC sector.",
			summary:   "EPA proposal would tighten refrigerant limits from 2027.",
			source:    "Regulatory Watch",
			category:  types.CategoryRegulatoryCompliance,
			industry:  types.IndustryHVAC,
			sentiment: types.SentimentNegative,
			score:     -0.4,
			tags:      []string{"EPA", "Regulations", "Refrigerants"},
			age:       2 * 24 * time.Hour,
		},
		{
			title:     "Analysts See Consolidation Ahead for Mid-Market HVAC Distributors",
			content:   "Industry analysts expect a wave of acquisitions among mid-market HVAC distributors as larger players seek regional coverage and service revenue.",
			summary:   "Consolidation expected among HVAC distributors.",
			source:    "Industry Analysis Weekly",
			category:  types.CategoryIndustryAnalysis,
			industry:  types.IndustryFinance,
			sentiment: types.SentimentNeutral,
			score:     0,
			tags:      []string{"Acquisitions", "Distribution"},
			age:       4 * 24 * time.Hour,
		},
	}

	articles := make([]types.Article, 0, len(seed))
	for _, s := range seed {
		articles = append(articles, types.Article{
			ID:             uuid.NewString(),
			Title:          s.title,
			Content:        s.content,
			Summary:        s.summary,
			Source:         s.source,
			Category:       s.category,
			Industry:       s.industry,
			Sentiment:      s.sentiment,
			SentimentScore: s.score,
			Tags:           s.tags,
			Enrichment: types.Enrichment{
				AIEnhanced: false,
				FetchedAt:  now,
			},
			PublishedAt: now.Add(-s.age),
			CreatedAt:   now,
		})
	}
	return articles
}
