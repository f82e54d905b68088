package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is a stable machine-readable error identifier. Messages may change, codes do not.
type Code string

const (
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeValidation     Code = "VALIDATION_FAILED"
	CodeNotFound       Code = "NOT_FOUND"
	CodeConflict       Code = "BOOKING_CONFLICT"
	CodeGroupClosed    Code = "GROUP_CLOSED"
	CodeEmptyGroup     Code = "GROUP_EMPTY"
	CodeUnpriced       Code = "NO_PRICE_RULE"
	CodeStorage        Code = "STORAGE_FAILURE"
	CodeInternal       Code = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code Code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes resp and keeps err on the context for the error middleware to log.
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// BadRequest covers malformed bodies, queries and path parameters.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, err, NewResponse(http.StatusBadRequest, CodeInvalidRequest, msg, nil))
}
