package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Data: data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{OK: true, Data: data})
}
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{OK: false, Error: msg})
}
func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, msg)
}
func NotFound(c *gin.Context, msg string) {
	Fail(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	Fail(c, http.StatusConflict, msg)
}
func ServerError(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, err.Error())
}
