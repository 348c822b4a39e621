package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"port"`
	DataFile          string        `mapstructure:"data_file"`
	FetchCommand      []string      `mapstructure:"fetch_command"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	AIProvider        string        `mapstructure:"ai_provider"`
	AIEndpoint        string        `mapstructure:"ai_endpoint"`
	Model             string        `mapstructure:"model"`
	OpenAIAPIKey      string        `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	BatchSize         int           `mapstructure:"batch_size"`
	BatchDelay        time.Duration `mapstructure:"batch_delay"`
	IngestSchedule    string        `mapstructure:"ingest_schedule"`
	SentimentSchedule string        `mapstructure:"sentiment_schedule"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("data_file", "data/articles.json")
	v.SetDefault("fetch_timeout", 5*time.Minute)
	v.SetDefault("batch_size", 5)
	v.SetDefault("batch_delay", time.Second)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
