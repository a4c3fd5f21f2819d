package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"promptserver/internal/cache"
	"promptserver/internal/http/handlers"
	httpapi "promptserver/internal/http/httpapi"
	"promptserver/internal/infra"
	"promptserver/internal/infra/geoip"
	"promptserver/internal/middleware"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/textgen"
	"promptserver/internal/providers/videometa"
	"promptserver/internal/providers/vision"
	"promptserver/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	app := &handlers.App{
		Config: cfg,
		Logger: logger,
		Images: promptgen.NewImageRenderer(nil),
	}

	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		app.SQL = infra.NewSQLRunner(dbpool, logger)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, result persistence disabled")
	}

	if cfg.RedisAddr != "" {
		redisClient, err := infra.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer func() {
			_ = redisClient.Close()
		}()
		app.Cache = cache.NewRecordCache(redisClient, cfg.ResultTTL)
	} else {
		logger.Warn().Msg("REDIS_ADDR not set, result caching disabled")
	}

	app.Parser = buildParser(cfg, logger, app.Images)

	if cfg.GeminiAPIKey != "" {
		analyzer, err := vision.NewGeminiAnalyzer(vision.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiVisionModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build vision analyzer")
		}
		app.Vision = analyzer
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, image analysis disabled")
	}

	app.Videos = videometa.NewClient(videometa.Options{
		DouyinAPIBase:   cfg.DouyinAPIBase,
		BilibiliAPIBase: cfg.BilibiliAPIBase,
	})

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	app.Store = store

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip unavailable")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	router := httpapi.NewRouter(app, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func buildParser(cfg *infra.Config, logger infra.Logger, renderer *promptgen.ImageRenderer) textgen.Parser {
	static := textgen.NewStaticParser(renderer)

	switch cfg.PromptProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn().Msg("OPENAI_API_KEY not set, using static prompts")
			return static
		}
		parser, err := textgen.NewOpenAIParser(textgen.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			Renderer:     renderer,
			Fallback:     static,
			OnFallback: func(reason string, err error) {
				logger.Warn().Err(err).Str("reason", reason).Msg("openai fallback")
			},
		})
		if err != nil {
			logger.Warn().Err(err).Msg("openai parser unavailable, using static prompts")
			return static
		}
		return parser
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Warn().Msg("GEMINI_API_KEY not set, using static prompts")
			return static
		}
		parser, err := textgen.NewGeminiParser(textgen.GeminiOptions{
			APIKey:   cfg.GeminiAPIKey,
			Model:    cfg.GeminiModel,
			BaseURL:  cfg.GeminiBaseURL,
			Renderer: renderer,
			Fallback: static,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("gemini parser unavailable, using static prompts")
			return static
		}
		return parser
	}
}
