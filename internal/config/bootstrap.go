package config

import (
	"context"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/handler"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/middleware"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/route"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/usecase"
	"github.com/evandrarf/words7000-bot/internal/pkg/audio"
	"github.com/evandrarf/words7000-bot/internal/pkg/line"
	"github.com/evandrarf/words7000-bot/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires the quiz engine behind the webhook routes. The returned
// cleanup releases connections opened here.
func Bootstrap(ctx context.Context, config *BootstrapConfig) (func(), error) {
	cfg := config.Config

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: cfg,
	})

	words, err := NewCatalog(cfg)
	if err != nil {
		return nil, err
	}
	config.Log.WithFields(logrus.Fields{
		"standard": words.Size(entity.LevelStandard),
		"advanced": words.Size(entity.LevelAdvanced),
	}).Info("catalog loaded")

	pendingStore, cleanup, err := NewPendingStore(ctx, cfg, config.DB)
	if err != nil {
		return nil, err
	}
	pending := repository.NewPendingQuestionRepository(pendingStore)
	collections := repository.NewCollectionRepository(repository.NewGormKeyValueStore(config.DB, "collection"))
	scores := repository.NewUserScoreRepository(config.DB)

	dict, err := NewDictionary(ctx, cfg, config.Log)
	if err != nil {
		cleanup()
		return nil, err
	}

	generator := usecase.NewQuestionGenerator(usecase.QuestionGeneratorConfig{
		Catalog: words,
		Pending: pending,
	})
	bot := usecase.NewBotUsecase(usecase.BotConfig{
		Log:        config.Log,
		Catalog:    words,
		Aliases:    words.Aliases(),
		Generator:  generator,
		Grader:     usecase.NewAnswerGrader(words, pending),
		Progress:   usecase.NewProgressUsecase(usecase.ProgressConfig{DB: config.DB, Repository: scores}),
		Collection: usecase.NewCollectionUsecase(collections),
		Dictionary: dict,
		Prober:     audio.NewHTTPProber(cfg.GetDuration("audio.probe_timeout")),
		Replier: line.NewClient(
			cfg.GetString("line.channel_access_token"),
			cfg.GetString("line.api_base"),
			cfg.GetDuration("line.timeout"),
		),
		AssetBaseURL:         cfg.GetString("asset.base_url"),
		ScoreBannerURL:       cfg.GetString("asset.score_banner"),
		DefaultAudioDuration: cfg.GetDuration("audio.default_duration"),
		MaxConcurrency:       cfg.GetInt("api.webhook.max_concurrency"),
	})
	if cfg.GetString("line.channel_access_token") == "" {
		config.Log.Warn("line.channel_access_token is empty, replies will fail")
	}

	webhookHandler := handler.NewWebhookHandler(config.Validator, config.Log, bot, cfg.GetString("app.landing_url"))

	route.Setup(&route.RouteConfig{
		Api:            config.Api,
		Middleware:     mid,
		WebhookHandler: webhookHandler,
	})

	return cleanup, nil
}
