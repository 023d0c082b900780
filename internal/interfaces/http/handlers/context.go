package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/shared/constants"
	"github.com/gearguard/gearguard/internal/shared/errors"
)

// currentUserID returns the id the auth middleware stored for this request.
func currentUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	return id, nil
}
