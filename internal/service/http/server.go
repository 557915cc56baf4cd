package http

import (
	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/middleware"
)

// multipart boundaries and text fields on top of the images
const formOverhead = 1 << 20

// NewEngine wires every route. maxUpload is the per image limit in bytes.
func NewEngine(h *handler.Handler, maxUpload int64) *gin.Engine {
	e := gin.New()
	e.MaxMultipartMemory = maxUpload
	initRouter(e, h, 2*maxUpload+formOverhead)
	return e
}

func Serve(port string, e *gin.Engine) {
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine, h *handler.Handler, bodyLimit int64) {
	e.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.BodyLimit(bodyLimit))
	v1 := e.Group("/v1")
	images := v1.Group("/images")
	{
		images.POST("/edit", h.Edit)
		images.POST("/filter", h.Filter)
		images.POST("/adjust", h.Adjust)
		images.POST("/swap", h.Swap)
		images.POST("/identify", h.Identify)
	}
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/upload", h.UploadReference)
		sessions.POST("/:id/toggle", h.ToggleItem)
		sessions.POST("/:id/loading", h.SetLoading)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.POST("/:id/confirm", h.ConfirmSwap)
	}
	handles := v1.Group("/handles")
	{
		handles.GET("/:id", h.GetHandle)
	}
}
