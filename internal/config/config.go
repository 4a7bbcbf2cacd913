package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Corpus
		Chat
		DailyVerse
		Export
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Corpus struct {
		Path string
	}
	Chat struct {
		APIKey  string
		BaseURL string
		Model   string
	}
	DailyVerse struct {
		Schedule string // Cron format: "0 0 * * *" = midnight
	}
	Export struct {
		Dir string // Directory for markdown exports
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("corpus_path", DefaultCorpusPath)

	// Chat gateway defaults
	v.SetDefault("chat_api_key", "")
	v.SetDefault("chat_base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("chat_model", "openai/gpt-4o-mini")

	// Daily verse defaults
	v.SetDefault("daily_verse_schedule", "0 0 * * *") // Midnight

	// Export defaults
	v.SetDefault("export_dir", "./markdown")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Corpus: Corpus{
			Path: v.GetString("CORPUS_PATH"),
		},
		Chat: Chat{
			APIKey:  v.GetString("CHAT_API_KEY"),
			BaseURL: v.GetString("CHAT_BASE_URL"),
			Model:   v.GetString("CHAT_MODEL"),
		},
		DailyVerse: DailyVerse{
			Schedule: v.GetString("DAILY_VERSE_SCHEDULE"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
