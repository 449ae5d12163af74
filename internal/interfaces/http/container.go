package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"intake/internal/application/intake/usecases"
	"intake/internal/domain/intake"
	"intake/internal/infrastructure/config"
	"intake/internal/infrastructure/permission"
	"intake/internal/infrastructure/ratelimit"
	"intake/internal/infrastructure/repository"
	intakehandlers "intake/internal/interfaces/http/handlers/intake"
	"intake/internal/interfaces/http/middleware"
	"intake/internal/shared/db"
	"intake/internal/shared/logger"
	"intake/internal/shared/sanitize"
	"intake/internal/shared/services/markdown"
)

const rateLimitKeyPrefix = "ratelimit:intake"

// Container wires infrastructure, use cases, handlers and middleware into a
// gin engine. Shutdown releases what the container opened itself.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	intakeHandler *intakehandlers.Handler

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer builds every component. The database must already be
// migrated; casbin policies are seeded here.
func NewContainer(ctx context.Context, cfg *config.Config, database *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	enforcer, err := permission.NewEnforcer(database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitIntakePermissions(enforcer, cfg.Auth.AdminUsername); err != nil {
		return nil, fmt.Errorf("failed to initialize permissions: %w", err)
	}

	limiter := c.newLimiter(ctx)

	intakeRepo := repository.NewIntakeRepository(database, log.Named("intake_repository"))
	txManager := db.NewTransactionManager(database)
	classifier := intake.NewDefaultClassifier()
	sanitizer := sanitize.New()
	renderer := markdown.NewRenderer()

	ucLog := log.Named("intake_usecase")
	c.intakeHandler = intakehandlers.NewHandler(
		usecases.NewCreateIntakeUseCase(intakeRepo, classifier, sanitizer, ucLog),
		usecases.NewGetIntakeUseCase(intakeRepo, renderer, ucLog),
		usecases.NewListIntakesUseCase(intakeRepo, ucLog),
		usecases.NewUpdateIntakeUseCase(intakeRepo, txManager, sanitizer, ucLog),
		usecases.NewGetIntakeStatsUseCase(intakeRepo, ucLog),
		log.Named("intake_handler"),
	)

	c.authMiddleware = middleware.NewAuthMiddleware(middleware.Credentials{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
	}, log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log.Named("permission"))
	c.rateLimiter = middleware.NewRateLimiter(limiter, log.Named("ratelimit"))

	return c, nil
}

// newLimiter prefers redis when enabled and reachable, and falls back to an
// in-process limiter otherwise.
func (c *Container) newLimiter(ctx context.Context) ratelimit.Limiter {
	limit := c.cfg.RateLimit.RequestsPerWindow
	window := c.cfg.RateLimit.Window()

	if !c.cfg.Redis.Enabled {
		c.log.Infow("using in-memory rate limiter", "limit", limit, "window", window)
		return ratelimit.NewMemoryLimiter(limit, window)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unavailable, using in-memory rate limiter", "addr", c.cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return ratelimit.NewMemoryLimiter(limit, window)
	}

	c.redis = client
	c.log.Infow("using redis rate limiter", "addr", c.cfg.Redis.GetAddr(), "limit", limit, "window", window)
	return ratelimit.NewRedisLimiter(client, rateLimitKeyPrefix, limit, window)
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
