// @title           Leverage Journal API
// @version         1.0
// @description     Daily journaling, goals, weekly reviews and the insights and momentum engine.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/cache"
	adapterHTTP "github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/handler/http"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/handler/http/middleware"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/repository"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/config"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/workers"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/observability"
)

const limiterIdleTTL = 10 * time.Minute

type storage struct {
	users   domain.UserRepository
	entries domain.JournalEntryRepository
	goals   domain.GoalRepository
	reviews domain.WeeklyReviewRepository
	db      *sqlx.DB
}

type app struct {
	router    *gin.Engine
	worker    *workers.StreakWorker
	scheduler *workers.Scheduler
	closers   []func() error
}

func (a *app) start(ctx context.Context) {
	a.worker.Start(ctx)
	a.scheduler.Start(ctx)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logrus.WithError(err).Warn("close failed")
		}
	}
}

func openStorage(cfg *config.Config) (*storage, error) {
	if cfg.StorageBackend == config.BackendMemory {
		logrus.Warn("using in-memory storage, data is lost on restart")
		return &storage{
			users:   repository.NewInMemoryUserRepository(),
			entries: repository.NewInMemoryJournalRepository(),
			goals:   repository.NewInMemoryGoalRepository(),
			reviews: repository.NewInMemoryReviewRepository(),
		}, nil
	}

	logrus.WithField("driver", cfg.DB.Driver).Info("connecting to database")

	db, err := sqlx.Connect(cfg.DB.Driver, cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	logrus.Info("database connected")

	return &storage{
		users:   repository.NewPostgresUserRepository(db),
		entries: repository.NewPostgresJournalRepository(db),
		goals:   repository.NewPostgresGoalRepository(db),
		reviews: repository.NewPostgresReviewRepository(db),
		db:      db,
	}, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	if store.db != nil {
		a.closers = append(a.closers, store.db.Close)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		store.goals = repository.NewCachedGoalRepository(store.goals, rdb, cfg.GoalsCacheTTL)
	}

	metrics := observability.NewMetrics()

	a.worker = workers.NewStreakWorker(store.entries)
	a.scheduler = workers.NewScheduler()

	var localLimiter *middleware.LocalRateLimiter
	if rdb == nil {
		localLimiter = middleware.NewLocalRateLimiter(cfg.Limits.Requests, cfg.Limits.Window)
		err = a.scheduler.Every("@every 5m", "rate-limiter-cleanup", func() {
			if n := localLimiter.Cleanup(limiterIdleTTL); n > 0 {
				logrus.WithField("evicted", n).Debug("[RATELIMIT] idle buckets evicted")
			}
		})
		if err != nil {
			a.close()
			return nil, err
		}
	}

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, store.users)
	authService := services.NewAuthService(store.users, tokenService)
	journalService := services.NewJournalService(store.entries, a.worker)
	goalService := services.NewGoalService(store.goals)
	reviewService := services.NewReviewService(store.reviews)
	insightsService := services.NewInsightsService(
		store.users, store.entries, store.goals, store.reviews,
		services.InsightsConfig{
			DefaultLocation: cfg.Insights.Location(),
			FetchTimeout:    cfg.Insights.FetchTimeout,
		},
		metrics,
	)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService),
		EntryHandler:    adapterHTTP.NewEntryHandler(journalService),
		GoalHandler:     adapterHTTP.NewGoalHandler(goalService),
		ReviewHandler:   adapterHTTP.NewReviewHandler(reviewService),
		InsightsHandler: adapterHTTP.NewInsightsHandler(insightsService),
		Tokens:          tokenService,
		DB:              store.db,
		Redis:           rdb,
		LocalLimiter:    localLimiter,
		RateLimit:       cfg.Limits.Requests,
		RateWindow:      cfg.Limits.Window,
		Metrics:         metrics,
		StartTime:       time.Now(),
	})

	return a, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if err := observability.Setup(cfg.Log.Level, cfg.Log.Format, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("invalid logging configuration")
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("startup failed")
	}
	defer a.close()

	a.start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"backend": cfg.StorageBackend,
		}).Info("Leverage Journal API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}
	stop()

	logrus.Info("server stopped gracefully")
}
