package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intake/internal/shared/errors"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string              `json:"type"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Fields  []errors.FieldError `json:"fields,omitempty"`
}

// ListResponse is the data of an unpaginated listing.
type ListResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func CreatedResponse(c *gin.Context, data any, message string) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

func ListSuccessResponse(c *gin.Context, items any, total int64) {
	SuccessResponse(c, http.StatusOK, "", ListResponse{Items: items, Total: total})
}

// ErrorResponseWithError writes err using its AppError type and status.
// Anything else becomes a generic 500; the underlying message is only
// exposed when gin runs in debug mode.
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode, info := errorInfo(err)
	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}

// AbortWithError is ErrorResponseWithError for middleware.
func AbortWithError(c *gin.Context, err error) {
	statusCode, info := errorInfo(err)
	c.AbortWithStatusJSON(statusCode, APIResponse{Success: false, Error: &info})
}

func errorInfo(err error) (int, ErrorInfo) {
	if appErr := errors.GetAppError(err); appErr != nil {
		info := ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
			Fields:  appErr.Fields,
		}
		if appErr.Type == errors.ErrorTypeInternal && gin.Mode() != gin.DebugMode {
			info.Details = ""
		}
		return appErr.Code, info
	}

	info := ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	}
	if gin.Mode() == gin.DebugMode && err != nil {
		info.Details = err.Error()
	}
	return http.StatusInternalServerError, info
}
