package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError reports a single field failing a validator. It is carried
// inside form snapshots and never aborts other fields.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AuthError wraps a rejection from the authentication collaborator.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func (e AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": authentication failed"
}

func (e AuthError) Unwrap() error { return e.Err }

// NetworkError wraps a failed call to the external data backend. In-memory
// state is left at last-known-good when one of these surfaces.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": request failed"
}

func (e NetworkError) Unwrap() error { return e.Err }

// StateError marks an action attempted against a state that does not allow
// it, such as submitting an invalid form or updating an expired session.
type StateError struct {
	Message string
}

func (e StateError) Error() string { return e.Message }

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
