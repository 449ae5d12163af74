package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"intake/internal/infrastructure/database"
	"intake/internal/interfaces/http/middleware"
	"intake/internal/interfaces/http/routes"
	"intake/internal/shared/utils"
	"intake/internal/shared/version"

	_ "intake/docs"
)

const healthCheckTimeout = 2 * time.Second

// SetupRoutes registers middleware and every route on the engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.healthCheck)
	c.engine.GET("/version", c.versionInfo)

	if c.cfg.Server.Mode != gin.ReleaseMode {
		c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := c.engine.Group("/api")
	api.Use(middleware.SecurityHeaders())

	routes.SetupIntakeRoutes(api, &routes.IntakeRouteConfig{
		IntakeHandler:        c.intakeHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// healthCheck handles GET /health
//
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse{data=healthStatus}
// @Failure 503 {object} utils.APIResponse{data=healthStatus}
// @Router /health [get]
func (c *Container) healthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := database.Ping(pingCtx, c.db); err != nil {
		c.log.Errorw("health check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Data:    healthStatus{Status: "degraded", Database: "unreachable"},
		})
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "", healthStatus{Status: "ok", Database: "ok"})
}

// versionInfo handles GET /version
func (c *Container) versionInfo(ctx *gin.Context) {
	utils.SuccessResponse(ctx, http.StatusOK, "", version.Get())
}
