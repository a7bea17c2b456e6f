package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userId"
	ctxRole   = "role"
)

var ErrInvalidID = errors.New("invalid id")

// SetCurrentUser is called by the auth middleware.
func SetCurrentUser(c *gin.Context, userID uint, role string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
