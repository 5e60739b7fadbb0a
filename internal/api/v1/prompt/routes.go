package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/prompts")
	{
		group.GET("", h.ListPrompts)
		group.POST("", h.CreatePrompt)
		group.GET("/:id", h.GetPrompt)
		group.PUT("/:id", h.UpdatePrompt)
		group.DELETE("/:id", h.DeletePrompt)
		group.POST("/:id/duplicate", h.DuplicatePrompt)
		group.POST("/:id/generate", h.GeneratePrompt)
		group.POST("/:id/preview", h.PreviewPrompt)
		group.GET("/:id/export", h.ExportPrompt)
	}
}
