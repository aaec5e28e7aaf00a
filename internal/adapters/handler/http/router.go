package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/KhamareClarke/leveragejournal.com-sub001/docs"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/cache"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/handler/http/middleware"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/observability"
)

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

type RouterDependencies struct {
	AuthHandler     *AuthHandler
	EntryHandler    *EntryHandler
	GoalHandler     *GoalHandler
	ReviewHandler   *ReviewHandler
	InsightsHandler *InsightsHandler
	Tokens          middleware.TokenValidator

	// DB and Redis are nil when the backend does not use them.
	DB           *sqlx.DB
	Redis        *redis.Client
	LocalLimiter *middleware.LocalRateLimiter
	RateLimit    int
	RateWindow   time.Duration

	Metrics   *observability.Metrics
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), observability.RequestLogger())

	if deps.Metrics != nil {
		router.Use(deps.Metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	switch {
	case deps.Redis != nil:
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow))
	case deps.LocalLimiter != nil:
		router.Use(deps.LocalLimiter.Middleware())
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		deps.InsightsHandler.RegisterRoutes(protected)
		deps.EntryHandler.RegisterRoutes(protected)
		deps.GoalHandler.RegisterRoutes(protected)
		deps.ReviewHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := statusDisabled
		if deps.DB != nil {
			dbStatus = statusConnected
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = statusUnreachable
			}
		}

		redisStatus := statusDisabled
		if deps.Redis != nil {
			redisStatus = statusConnected
			if err := cache.Ping(ctx, deps.Redis); err != nil {
				redisStatus = statusUnreachable
			}
		}

		status, code := "ok", http.StatusOK
		if dbStatus == statusUnreachable || redisStatus == statusUnreachable {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
