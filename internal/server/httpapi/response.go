// Package httpapi exposes the HTTP surface: the gin router, the
// authorization gate, and handlers that translate service results into
// the fixed {msg, variant, payload} envelope.
package httpapi

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	VariantSuccess = "success"
	VariantWarning = "warning"
	VariantError   = "error"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Msg     string `json:"msg"`
	Variant string `json:"variant"`
	Payload any    `json:"payload"`
}

func newSuccessResponse(c *gin.Context, statusCode int, msg string, payload any) {
	c.JSON(statusCode, Response{Msg: msg, Variant: VariantSuccess, Payload: payload})
}

func newWarningResponse(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, Response{Msg: msg, Variant: VariantWarning, Payload: nil})
}

func newErrorResponse(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, Response{Msg: msg, Variant: VariantError, Payload: nil})
}

// joinValidationErrors flattens binding failures into one string of
// field-level messages, e.g. "username is required; password is required".
func joinValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
