package httperr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromError maps an error coming out of a use case onto an HTTP response.
// Business codes follow a naming convention: *_not_found -> 404,
// slot_conflict / invalid_state -> 409, store_unavailable -> 503,
// everything else business -> 400. Context deadline errors mean the
// store call timed out.
func FromError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		Unavailable(c, "store_unavailable", "Data store did not respond in time.")
		return
	}

	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch {
	case strings.HasSuffix(code, "_not_found"):
		NotFound(c, code, "Record not found.")
	case code == "slot_conflict" || code == "invalid_state":
		Conflict(c, code, "Operation conflicts with current state.")
	case code == "store_unavailable":
		Unavailable(c, code, "Data store unavailable.")
	default:
		BadRequest(c, code, "Invalid request.")
	}
}
