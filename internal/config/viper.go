package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper reads config.yaml (config.prod.yaml when ENV=production) from the
// working directory. Values can be overridden through the environment, e.g.
// LINE_CHANNEL_ACCESS_TOKEN for line.channel_access_token. A .env file is
// loaded first when present.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "words7000")
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.webhook.max_concurrency", 8)
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")
	config.SetDefault("database.driver", "postgres")
	config.SetDefault("database.path", "words7000.db")
	config.SetDefault("database.auto_migrate", true)
	config.SetDefault("line.api_base", "https://api.line.me")
	config.SetDefault("line.timeout", "10s")
	config.SetDefault("catalog.standard", "words.json")
	config.SetDefault("catalog.advance", "words-advance.json")
	config.SetDefault("audio.default_duration", "3s")
	config.SetDefault("audio.probe_timeout", "5s")
	config.SetDefault("state.backend", "database")
	config.SetDefault("redis.pending_ttl", "24h")
	config.SetDefault("dictionary.provider", "none")
	config.SetDefault("dictionary.timeout", "8s")
}
