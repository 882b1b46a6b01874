package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/admission"
	"github.com/baechuer/cityevents/services/listing-service/internal/application/category"
	"github.com/baechuer/cityevents/services/listing-service/internal/application/comment"
	"github.com/baechuer/cityevents/services/listing-service/internal/application/compilation"
	appevent "github.com/baechuer/cityevents/services/listing-service/internal/application/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/application/user"
	"github.com/baechuer/cityevents/services/listing-service/internal/config"
	rediscache "github.com/baechuer/cityevents/services/listing-service/internal/infrastructure/caching/redis"
	"github.com/baechuer/cityevents/services/listing-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/baechuer/cityevents/services/listing-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/cityevents/services/listing-service/internal/infrastructure/stats"
	"github.com/baechuer/cityevents/services/listing-service/internal/logger"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/handlers"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/router"
)

// sysClock implements the application Clock interfaces using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	Pool   *pgxpool.Pool

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	app := NewApp(cfg, pool)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, pool *pgxpool.Pool) *App {
	// 1) Infrastructure
	eventRepo := postgres.NewEventRepo(pool)
	requestRepo := postgres.NewRequestRepo(pool)
	userRepo := postgres.NewUserRepo(pool)
	categoryRepo := postgres.NewCategoryRepo(pool)
	compilationRepo := postgres.NewCompilationRepo(pool)
	commentRepo := postgres.NewCommentRepo(pool)

	var rabbit *rabbitpub.Publisher
	var pub appevent.Publisher = appevent.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var cache *rediscache.Client
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis connect failed")
		}
		cache = c
	} else {
		zlog.Warn().Msg("REDIS_URL empty: read caches disabled")
	}

	var statsClient appevent.StatsClient = appevent.NoopStats{}
	if cfg.StatsURL != "" {
		statsClient = stats.NewClient(cfg.StatsURL, cfg.StatsTimeout)
	} else {
		zlog.Warn().Msg("STATS_URL empty: view counts will read as zero")
	}

	// 2) Application
	// admission.Cache / event.Cache stay nil when redis is off; the services
	// degrade to direct store reads
	var admissionCache admission.Cache
	var eventCache appevent.Cache
	if cache != nil {
		admissionCache = cache
		eventCache = cache
	}

	admissionSvc := admission.New(requestRepo, eventRepo, userRepo, sysClock{}, pub, admissionCache)
	eventSvc := appevent.New(eventRepo, categoryRepo, userRepo, requestRepo,
		statsClient, sysClock{}, pub, eventCache, cfg.CacheTTLDetails)
	categorySvc := category.New(categoryRepo, eventRepo, sysClock{})
	userSvc := user.New(userRepo, sysClock{})
	compilationSvc := compilation.New(compilationRepo, eventRepo, sysClock{})
	commentSvc := comment.New(commentRepo, eventRepo, userRepo, sysClock{})

	// 3) Transport
	h := router.Handlers{
		Events:       handlers.NewEventsHandler(eventSvc),
		Requests:     handlers.NewRequestsHandler(admissionSvc),
		Comments:     handlers.NewCommentsHandler(commentSvc),
		Categories:   handlers.NewCategoriesHandler(categorySvc),
		Users:        handlers.NewUsersHandler(userSvc),
		Compilations: handlers.NewCompilationsHandler(compilationSvc),
		Health:       handlers.NewHealthHandler(),
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		Pool:      pool,
		Publisher: rabbit,
		Cache:     cache,
	}
}
