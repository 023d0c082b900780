package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/shared/db"
)

type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and pageSize (or page_size) query parameters,
// falling back to defaults and clamping to db.MaxPageSize.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", 1)
	pageSize := parseQueryInt(c, "pageSize", 0)
	if pageSize == 0 {
		pageSize = parseQueryInt(c, "page_size", db.DefaultPageSize)
	}
	if pageSize > db.MaxPageSize {
		pageSize = db.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
