package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/display"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/request"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler/response"
	"github.com/unicorncodings/Ai-Photo-Studio/tools"
)

// GetHandle serves the bytes behind a display handle, or a scaled preview with thumbnail=true.
func (h *Handler) GetHandle(c *gin.Context) {
	form := request.GetHandle{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	form.FullWithDefault()
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	id := c.Param("id")
	if form.Thumbnail {
		data, mimeType, err := h.handles.Thumbnail(id, form.Ratio)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Data(http.StatusOK, mimeType, data)
		return
	}
	asset, ok := h.handles.Get(id)
	if !ok {
		h.fail(c, display.ErrHandleNotFound)
		return
	}
	imageType := tools.ImageTypeFromMIME(asset.MIMEType)
	if imageType == tools.ImageTypeUnknown {
		imageType = tools.DetectImageType(asset.Data)
	}
	c.Data(http.StatusOK, imageType.MIMEType(), asset.Data)
}
