package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/display"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/flow"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/request"
)

const (
	CodeParamError    = 10001
	CodeInternalError = 10002
	CodeModelRefused  = 10003
	CodeStateConflict = 10004
	CodeNotFound      = 10005
	CodeTooLarge      = 10006
)

var (
	ParamError            = gin.H{"code": CodeParamError, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": CodeParamError, "message": message}
	}

	InternalError = gin.H{"code": CodeInternalError, "message": "internal error"}

	Success         = gin.H{"code": 0}
	SuccessWithData = func(data interface{}) gin.H {
		return gin.H{"code": 0, "data": data}
	}
)

func withMessage(code int, err error) gin.H {
	return gin.H{"code": code, "message": err.Error()}
}

// FromError maps err to a status code and body. Unknown errors hide their text.
func FromError(err error) (int, gin.H) {
	var encErr *studio.EncodingError
	switch {
	case errors.Is(err, request.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, withMessage(CodeTooLarge, err)
	case errors.Is(err, request.ErrMissingImage),
		errors.Is(err, studio.ErrEmptySelection),
		errors.As(err, &encErr),
		errors.Is(err, flow.ErrUnknownLabel),
		errors.Is(err, flow.ErrNothingSelect):
		return http.StatusBadRequest, withMessage(CodeParamError, err)
	case studio.IsModelRefusal(err):
		return http.StatusUnprocessableEntity, withMessage(CodeModelRefused, err)
	case errors.Is(err, flow.ErrInvalidState),
		errors.Is(err, flow.ErrBusy),
		errors.Is(err, flow.ErrSuperseded),
		errors.Is(err, flow.ErrClosed):
		return http.StatusConflict, withMessage(CodeStateConflict, err)
	case errors.Is(err, display.ErrHandleNotFound),
		errors.Is(err, flow.ErrSessionNotFound):
		return http.StatusNotFound, withMessage(CodeNotFound, err)
	default:
		return http.StatusInternalServerError, InternalError
	}
}
