package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"netbill/internal/shared/errors"
)

// ParseUintParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "subscription", "renewal").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID, expected a positive integer")
	}

	return uint(id), nil
}

// ParseUintQuery parses and validates a numeric ID from a query parameter.
func ParseUintQuery(c *gin.Context, queryName, entityName string) (uint, error) {
	raw := c.Query(queryName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + ", expected a positive integer")
	}

	return uint(id), nil
}

// ParseIntQuery parses an integer query parameter with a fallback default.
func ParseIntQuery(c *gin.Context, queryName string, def int) int {
	raw := c.Query(queryName)
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return def
}
