package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	"github.com/evandrarf/words7000-bot/internal/pkg/catalog"
	"github.com/evandrarf/words7000-bot/internal/pkg/dictionary"
	"github.com/evandrarf/words7000-bot/internal/pkg/llm"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func NewCatalog(cfg *viper.Viper) (*catalog.Catalog, error) {
	aliases := textnorm.Aliases(cfg.GetStringMapString("catalog.aliases"))
	words, err := catalog.Load(cfg.GetString("catalog.standard"), cfg.GetString("catalog.advance"), aliases)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return words, nil
}

// NewPendingStore returns the store backing the audio question mailbox.
// state.backend=redis keeps it in redis with redis.pending_ttl expiry;
// anything else uses the database.
func NewPendingStore(ctx context.Context, cfg *viper.Viper, db *gorm.DB) (repository.KeyValueStore, func(), error) {
	switch strings.ToLower(cfg.GetString("state.backend")) {
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{
			Addr:        cfg.GetString("redis.addr"),
			Password:    cfg.GetString("redis.password"),
			DB:          cfg.GetInt("redis.db"),
			DialTimeout: 5 * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}

		store := repository.NewRedisKeyValueStore(rdb, cfg.GetString("app.name")+":pending", cfg.GetDuration("redis.pending_ttl"))
		return store, func() { _ = rdb.Close() }, nil
	case "database", "":
		return repository.NewGormKeyValueStore(db, "pending_question"), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown state.backend %q", cfg.GetString("state.backend"))
	}
}

// NewDictionary picks the definition provider from dictionary.provider:
// "openai", "gemini" or "none".
func NewDictionary(ctx context.Context, cfg *viper.Viper, log *logrus.Logger) (dictionary.Dictionary, error) {
	apiKey := cfg.GetString("dictionary.api_key")
	model := cfg.GetString("dictionary.model")
	baseURL := cfg.GetString("dictionary.base_url")
	timeout := cfg.GetDuration("dictionary.timeout")

	provider := strings.ToLower(cfg.GetString("dictionary.provider"))
	if provider != "none" && provider != "" && apiKey == "" {
		log.Warnf("dictionary.provider is %s but no api key is set, word cards use catalog glosses", provider)
		provider = "none"
	}

	switch provider {
	case "openai":
		return dictionary.NewLLMDictionary(llm.NewOpenAIClient(apiKey, model, baseURL), timeout), nil
	case "gemini":
		client, err := llm.NewGenAIClient(ctx, apiKey, model, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return dictionary.NewLLMDictionary(client, timeout), nil
	case "none", "":
		return dictionary.Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown dictionary.provider %q", provider)
	}
}
