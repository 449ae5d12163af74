package middleware

import (
	"github.com/gin-gonic/gin"

	"intake/internal/shared/constants"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
	"intake/internal/shared/utils"
)

// Authorizer decides whether a subject may act on a resource.
type Authorizer interface {
	Enforce(subject, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	authorizer Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(constants.ContextKeyUsername)
		if username == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("Authentication required"))
			return
		}

		allowed, err := m.authorizer.Enforce(username, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "username", username, "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewInternalError("Permission check failed", err.Error()))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "username", username, "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewForbiddenError("Insufficient permissions"))
			return
		}

		c.Next()
	}
}
