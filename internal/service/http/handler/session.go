package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/flow"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/request"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/response"
)

type swapJobKey struct{}

// swapJob carries the person image into the controller's apply callback and the result back out.
type swapJob struct {
	person studio.ImageAsset
	result studio.ImagePayload
}

var errNoPerson = errors.New("no person image attached to the swap")

func (h *Handler) applySwap(ctx context.Context, source studio.ImageAsset, labels []string) error {
	job, ok := ctx.Value(swapJobKey{}).(*swapJob)
	if !ok {
		return errNoPerson
	}
	result, err := h.studio.SwapClothing(ctx, job.person, source, labels)
	if err != nil {
		return err
	}
	job.result = result
	return nil
}

func (h *Handler) session(c *gin.Context) (*flow.Session, bool) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		h.fail(c, flow.ErrSessionNotFound)
	}
	return s, ok
}

func (h *Handler) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, s.Controller.Snapshot())))
}

func (h *Handler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, s.Controller.Snapshot())))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if !h.sessions.Delete(c.Param("id")) {
		h.fail(c, flow.ErrSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, response.Success)
}

// UploadReference identifies the clothing in the reference image. Finding nothing
// is not a request error: the session reports the failed state and its message.
func (h *Handler) UploadReference(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	img, err := request.FormImage(c, "image", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	snap, err := s.Controller.Upload(c.Request.Context(), img)
	if err != nil && !errors.Is(err, flow.ErrNoItems) {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, snap)))
}

func (h *Handler) ToggleItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	form := request.Toggle{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	snap, err := s.Controller.Toggle(form.Label)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, snap)))
}

// SetLoading marks the panel busy while the caller runs other work. Confirm is refused until it is cleared.
func (h *Handler) SetLoading(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	form := request.Loading{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	s.Controller.SetLoading(*form.Loading)
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, s.Controller.Snapshot())))
}

func (h *Handler) ResetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := s.Controller.Reset()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewSession(s, snap)))
}

func (h *Handler) ConfirmSwap(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	person, err := request.FormImage(c, "person", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	job := &swapJob{person: person}
	ctx := context.WithValue(c.Request.Context(), swapJobKey{}, job)
	snap, err := s.Controller.Confirm(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.Swap{
		Session: response.NewSession(s, snap),
		Image:   response.NewImage(job.result),
	}))
}
