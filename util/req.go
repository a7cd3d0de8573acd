package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

type HTTPError struct {
	Status      int
	Code        string
	Message     string
	FieldErrors map[string]string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v, code=%v)", he.Message, he.Status, he.Code)
}

func BuildDbHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "database error",
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "malformed request body",
	}
}

func BuildValidationHTTPErr(field, message string) *HTTPError {
	return &HTTPError{
		Status:      http.StatusBadRequest,
		Code:        CodeValidation,
		Message:     message,
		FieldErrors: map[string]string{field: message},
	}
}

func BuildNotFoundHTTPErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: message,
	}
}

var (
	UnauthorizedHTTPErr = HTTPError{
		Status:  http.StatusUnauthorized,
		Code:    CodeUnauthorized,
		Message: "user is not authenticated",
	}
	RateLimitHTTPErr = HTTPError{
		Status:  http.StatusTooManyRequests,
		Code:    CodeRateLimited,
		Message: "too many posts, slow down",
	}
	InternalHTTPErr = HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "internal server error",
	}
)

type HandlerOpts struct{}

// HandlerWrapper normalizes every route into the single response envelope.
// No internal error detail crosses this boundary.
func HandlerWrapper(handler func(c *gin.Context) (interface{}, *HTTPError), opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	body := gin.H{
		"success": false,
		"code":    err.Code,
		"message": err.Message,
	}
	if len(err.FieldErrors) > 0 {
		body["fieldErrors"] = err.FieldErrors
	}
	c.JSON(err.Status, body)
}
