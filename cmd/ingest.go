/*
Copyright © 2025 NikhilBollineni
*/
package cmd

import (
	"context"
	"log"

	"github.com/NikhilBollineni/newsproject/config"
	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/service"
	"github.com/spf13/cobra"
)

// ingestCmd runs the ingestion pipeline once and exits. No hub is wired, so
// notifications are recorded but not pushed anywhere.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pipeline pass",
	Long:  `Fetches raw news items, enriches them, rewrites the corpus file and evaluates notification rules once`,
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
		notificationService := service.NewNotificationService(repository.NewNotificationRepo(), nil)

		enricher := service.NewEnrichmentService(buildClassifier(cfg), cfg.BatchSize, cfg.BatchDelay)
		fetcher := service.NewScriptFetcher(cfg.FetchCommand, cfg.FetchTimeout)
		ingestService := service.NewIngestService(fetcher, enricher, articleRepo, notificationService)

		count, err := ingestService.Run(context.Background())
		if err != nil {
			log.Fatalf("Ingestion failed: %v", err)
		}
		log.Printf("Ingested %d articles", count)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
