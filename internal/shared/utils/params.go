package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"intake/internal/shared/errors"
)

// ParseIDParam reads a positive integer id from the named path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewFieldValidationError(name, name+" must be a positive integer")
	}
	return uint(id), nil
}
