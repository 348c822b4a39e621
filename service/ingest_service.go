package service

import (
	"context"
	"fmt"
	"log"

	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/robfig/cron/v3"
)

// IngestService runs the fetch → enrich → persist → notify pipeline.
type IngestService struct {
	fetcher       Fetcher
	enricher      *EnrichmentService
	articles      *repository.ArticleRepo
	notifications *NotificationService
}

func NewIngestService(
	fetcher Fetcher,
	enricher *EnrichmentService,
	articles *repository.ArticleRepo,
	notifications *NotificationService,
) *IngestService {
	return &IngestService{
		fetcher:       fetcher,
		enricher:      enricher,
		articles:      articles,
		notifications: notifications,
	}
}

// Run executes one ingestion run. Any fetch-stage failure aborts the run
// before the corpus is touched. Enrichment failures degrade per item and
// never abort. A persistence failure is logged and returned, but the
// in-memory table keeps the enriched result and notifications still fire.
func (s *IngestService) Run(ctx context.Context) (int, error) {
	raw, err := s.fetcher.FetchRaw(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch raw items: %w", err)
	}
	if len(raw) == 0 {
		log.Println("ingest: nothing new")
		return 0, nil
	}

	articles := s.enricher.Enrich(ctx, raw)

	persistErr := s.articles.RewriteAll(articles)
	if persistErr != nil {
		log.Printf("ingest: persist failed, in-memory table retained: %v", persistErr)
	}

	for _, a := range articles {
		s.notifications.Dispatch(a)
	}
	s.notifications.DispatchSentimentAlert(s.articles.List(types.ArticleFilter{}))

	log.Printf("ingest: processed %d articles", len(articles))
	return len(articles), persistErr
}

// Schedule registers periodic ingestion runs and sentiment scans. Empty
// specs disable the corresponding job. The returned cron is already started.
func (s *IngestService) Schedule(ingestSpec, sentimentSpec string) (*cron.Cron, error) {
	c := cron.New()
	if ingestSpec != "" {
		if _, err := c.AddFunc(ingestSpec, func() {
			if _, err := s.Run(context.Background()); err != nil {
				log.Printf("scheduled ingest failed: %v", err)
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule ingest: %w", err)
		}
	}
	if sentimentSpec != "" {
		if _, err := c.AddFunc(sentimentSpec, func() {
			s.notifications.DispatchSentimentAlert(s.articles.List(types.ArticleFilter{}))
		}); err != nil {
			return nil, fmt.Errorf("schedule sentiment scan: %w", err)
		}
	}
	c.Start()
	return c, nil
}
