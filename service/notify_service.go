package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/google/uuid"
)

// breakingKeywords flag high-priority items. Matching is case-insensitive
// against title and content.
var breakingKeywords = []string{
	"breaking", "urgent", "recall", "acquisition", "merger", "lawsuit",
}

// Broadcaster pushes notification events to live subscribers.
type Broadcaster interface {
	Publish(n types.Notification)
	NotifyRead()
}

// NotificationService creates notifications from article heuristics and is
// their sole creator. hub may be nil (one-shot CLI runs have no subscribers).
type NotificationService struct {
	repo *repository.NotificationRepo
	hub  Broadcaster
}

func NewNotificationService(repo *repository.NotificationRepo, hub Broadcaster) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Evaluate applies the breaking-news and market-opportunity rules to one
// article. It only builds notifications; Dispatch persists and pushes them.
func (s *NotificationService) Evaluate(article types.Article) []types.Notification {
	var out []types.Notification

	text := strings.ToLower(article.Title + " " + article.Content)
	for _, kw := range breakingKeywords {
		if strings.Contains(text, kw) {
			out = append(out, types.Notification{
				ID:       uuid.NewString(),
				Type:     types.NotificationBreakingNews,
				Title:    "Breaking News",
				Message:  fmt.Sprintf("%s industry: %s", article.Industry, article.Title),
				Priority: types.PriorityHigh,
				Payload: map[string]any{
					"article_id": article.ID,
					"keyword":    kw,
				},
				CreatedAt: time.Now(),
			})
			break
		}
	}

	if article.Sentiment == types.SentimentPositive &&
		(article.Category == types.CategoryProductLaunch || article.Category == types.CategoryMarketTrends) {
		out = append(out, types.Notification{
			ID:       uuid.NewString(),
			Type:     types.NotificationMarketAlert,
			Title:    "Market Opportunity",
			Message:  fmt.Sprintf("Positive signal in %s: %s", article.Category, truncate(article.Title, 60)),
			Priority: types.PriorityMedium,
			Payload: map[string]any{
				"article_id": article.ID,
			},
			CreatedAt: time.Now(),
		})
	}

	return out
}

// Dispatch evaluates an article, persists any resulting notifications and
// fans them out to connected subscribers.
func (s *NotificationService) Dispatch(article types.Article) []types.Notification {
	notifications := s.Evaluate(article)
	for _, n := range notifications {
		s.publish(n)
	}
	return notifications
}

// CheckSentimentAlerts scans articles published in the trailing 24 hours and
// raises one sentiment_change notification when more than 60% are negative.
// There is no dedup across invocations; repeated firing on unchanged data is
// expected behavior.
func (s *NotificationService) CheckSentimentAlerts(articles []types.Article) *types.Notification {
	cutoff := time.Now().Add(-24 * time.Hour)
	total := 0
	negative := 0
	for _, a := range articles {
		if !a.PublishedAt.After(cutoff) {
			continue
		}
		total++
		if a.Sentiment == types.SentimentNegative {
			negative++
		}
	}
	if total == 0 {
		return nil
	}
	percent := float64(negative) / float64(total) * 100
	if percent <= 60 {
		return nil
	}
	return &types.Notification{
		ID:       uuid.NewString(),
		Type:     types.NotificationSentimentChange,
		Title:    "Negative Sentiment Shift",
		Message:  fmt.Sprintf("%.0f%% of the %d articles from the last 24 hours carry negative sentiment", percent, total),
		Priority: types.PriorityHigh,
		Payload: map[string]any{
			"negative_percent": percent,
			"sample_size":      total,
		},
		CreatedAt: time.Now(),
	}
}

// DispatchSentimentAlert runs the sentiment scan and publishes its result,
// if any.
func (s *NotificationService) DispatchSentimentAlert(articles []types.Article) *types.Notification {
	n := s.CheckSentimentAlerts(articles)
	if n != nil {
		s.publish(*n)
	}
	return n
}

// Create persists a caller-supplied notification and fans it out. Used by
// the CRUD surface.
func (s *NotificationService) Create(n types.Notification) types.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.Read = false
	s.publish(n)
	return n
}

// MarkRead flips the read flag and pushes the refreshed unread count only.
func (s *NotificationService) MarkRead(id string) error {
	if err := s.repo.MarkRead(id); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.NotifyRead()
	}
	return nil
}

func (s *NotificationService) List() []types.Notification {
	return s.repo.List()
}

func (s *NotificationService) UnreadCount() int {
	return s.repo.UnreadCount()
}

func (s *NotificationService) publish(n types.Notification) {
	s.repo.Create(n)
	if s.hub != nil {
		s.hub.Publish(n)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
