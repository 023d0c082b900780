package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/shared/errors"
)

// ParseUintParam parses a positive numeric path parameter.
// entityName is used in the error message, e.g. "request".
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName), raw)
	}
	return uint(n), nil
}
