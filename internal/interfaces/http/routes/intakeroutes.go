package routes

import (
	"github.com/gin-gonic/gin"

	intakehandlers "intake/internal/interfaces/http/handlers/intake"
	"intake/internal/interfaces/http/middleware"
	"intake/internal/shared/constants"
)

type IntakeRouteConfig struct {
	IntakeHandler        *intakehandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

func SetupIntakeRoutes(api *gin.RouterGroup, config *IntakeRouteConfig) {
	intakes := api.Group("/intakes")
	{
		// Public submission
		intakes.POST("",
			config.RateLimiter.Limit(),
			config.IntakeHandler.CreateIntake)

		staff := intakes.Group("")
		staff.Use(config.AuthMiddleware.RequireAuth())
		{
			staff.GET("",
				config.PermissionMiddleware.RequirePermission(constants.ResourceIntake, constants.ActionRead),
				config.IntakeHandler.ListIntakes)

			// must come before /:id
			staff.GET("/stats",
				config.PermissionMiddleware.RequirePermission(constants.ResourceIntake, constants.ActionStats),
				config.IntakeHandler.GetStats)

			staff.GET("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceIntake, constants.ActionRead),
				config.IntakeHandler.GetIntake)
			staff.PATCH("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceIntake, constants.ActionUpdate),
				config.IntakeHandler.UpdateIntake)
		}
	}
}
