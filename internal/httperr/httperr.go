package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
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

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
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

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps err onto the response. Unclassified and dependency errors are
// logged and answered with a generic message.
func Respond(c *gin.Context, err error) {
	e, ok := As(err)
	if !ok {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
		Internal(c, "internal_error", "Internal server error.")
		return
	}

	if e.Kind == KindDependency {
		log.Error().
			Err(e.Cause).
			Str("code", e.Code).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("dependency failure")
	}

	Write(c, e.Kind.Status(), e.Code, e.Message)
}

// ValidationError is the 400 body for malformed requests; Fields maps each
// offending JSON field to the rule it broke.
type ValidationError struct {
	HTTPError
	Fields map[string]string `json:"fields,omitempty"`
}

func Invalid(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		HTTPError: HTTPError{Code: "invalid_request", Message: "Invalid request data."},
		Fields:    fields,
	})
}
