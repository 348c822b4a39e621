/*
Copyright © 2025 NikhilBollineni
*/
package cmd

import (
	"context"
	"log"

	"github.com/NikhilBollineni/newsproject/config"
	"github.com/NikhilBollineni/newsproject/handler"
	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the news intelligence server",
	Long:  `Starts the HTTP server, the WebSocket broadcast hub and the scheduled ingestion pipeline`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		articleRepo, err := repository.NewArticleRepo(cfg.DataFile)
		if err != nil {
			log.Fatalf("Failed to open article store: %v", err)
		}
		notificationRepo := repository.NewNotificationRepo()

		hub := service.NewBroadcastHub(notificationRepo)
		notificationService := service.NewNotificationService(notificationRepo, hub)

		classifier := buildClassifier(cfg)
		enricher := service.NewEnrichmentService(classifier, cfg.BatchSize, cfg.BatchDelay)
		fetcher := service.NewScriptFetcher(cfg.FetchCommand, cfg.FetchTimeout)
		ingestService := service.NewIngestService(fetcher, enricher, articleRepo, notificationService)

		scheduler, err := ingestService.Schedule(cfg.IngestSchedule, cfg.SentimentSchedule)
		if err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer scheduler.Stop()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		articleHandler := handler.NewArticleHandler(articleRepo, enricher, notificationService)
		notificationHandler := handler.NewNotificationHandler(notificationService)
		ingestHandler := handler.NewIngestHandler(ingestService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.GET("/articles", articleHandler.HandleListArticles)
			apiV1.POST("/articles", articleHandler.HandleCreateArticle)
			apiV1.GET("/articles/:id", articleHandler.HandleGetArticle)
			apiV1.POST("/articles/:id/bookmark", articleHandler.HandleToggleBookmark)
			apiV1.GET("/analytics", articleHandler.HandleAnalytics)
			apiV1.GET("/notifications", notificationHandler.HandleListNotifications)
			apiV1.POST("/notifications", notificationHandler.HandleCreateNotification)
			apiV1.POST("/notifications/:id/read", notificationHandler.HandleMarkRead)
			apiV1.GET("/notifications/unread-count", notificationHandler.HandleUnreadCount)
			apiV1.POST("/ingest", ingestHandler.HandleIngest)
		}
		router.GET("/ws", gin.WrapF(hub.HandleSubscribe))

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// buildClassifier picks the AI backend. Missing credentials are not an
// error: the pipeline runs with deterministic defaults instead.
func buildClassifier(cfg *config.Config) service.Classifier {
	switch cfg.AIProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Println("No GEMINI_API_KEY configured, enrichment falls back to defaults")
			return nil
		}
		classifier, err := service.NewGeminiClassifier(context.Background(), cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			log.Printf("Failed to create Gemini classifier, enrichment falls back to defaults: %v", err)
			return nil
		}
		return classifier
	default:
		if cfg.OpenAIAPIKey == "" {
			log.Println("No OPENAI_API_KEY configured, enrichment falls back to defaults")
			return nil
		}
		return service.NewOpenAIClassifier(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
