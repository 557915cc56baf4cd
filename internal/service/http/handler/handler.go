package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/display"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/flow"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/response"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/middleware"
)

type Handler struct {
	studio    *studio.Studio
	handles   *display.Registry
	sessions  *flow.Manager
	maxUpload int64
}

// New builds the handler and the session manager it serves. Every session's
// controller swaps clothing through st.
func New(st *studio.Studio, handles *display.Registry, maxUpload int64) *Handler {
	h := &Handler{
		studio:    st,
		handles:   handles,
		maxUpload: maxUpload,
	}
	h.sessions = flow.NewManager(h.newController)
	return h
}

func (h *Handler) Sessions() *flow.Manager {
	return h.sessions
}

func (h *Handler) newController() *flow.Controller {
	return flow.NewController(h.studio, h.handles, h.applySwap)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, body := response.FromError(err)
	event := logs.Logger.Warn()
	if status >= 500 {
		event = logs.Logger.Error()
	}
	event.Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).Int("status_code", status).Msg("request failed")
	c.JSON(status, body)
}
