package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/request"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/response"
)

func (h *Handler) Edit(c *gin.Context) {
	img, err := request.FormImage(c, "image", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	form := request.Edit{}
	if err = c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err = form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	payload, err := h.studio.Edit(c.Request.Context(), img, form.Prompt, studio.Hotspot{X: *form.X, Y: *form.Y})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewImage(payload)))
}

func (h *Handler) Filter(c *gin.Context) {
	h.instruction(c, h.studio.ApplyFilter)
}

func (h *Handler) Adjust(c *gin.Context) {
	h.instruction(c, h.studio.Adjust)
}

type instructionFunc func(ctx context.Context, image studio.ImageAsset, instruction string) (studio.ImagePayload, error)

func (h *Handler) instruction(c *gin.Context, run instructionFunc) {
	img, err := request.FormImage(c, "image", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	form := request.Instruction{}
	if err = c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err = form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	payload, err := run(c.Request.Context(), img, form.Prompt)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewImage(payload)))
}

func (h *Handler) Swap(c *gin.Context) {
	person, err := request.FormImage(c, "person", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	source, err := request.FormImage(c, "source", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	form := request.Swap{}
	if err = c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	payload, err := h.studio.SwapClothing(c.Request.Context(), person, source, form.Labels())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewImage(payload)))
}

// Identify answers 200 even when the model fails. The list is empty then.
func (h *Handler) Identify(c *gin.Context) {
	img, err := request.FormImage(c, "image", h.maxUpload)
	if err != nil {
		h.fail(c, err)
		return
	}
	items := h.studio.IdentifyItems(c.Request.Context(), img)
	c.JSON(http.StatusOK, response.SuccessWithData(response.Items{Items: items}))
}
