package types

type CreateArticleRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Source      string   `json:"source"`
	Category    string   `json:"category"`
	Industry    string   `json:"industry"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
}

type CreateNotificationRequest struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Priority string         `json:"priority"`
	Payload  map[string]any `json:"payload"`
}
