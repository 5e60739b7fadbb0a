package template

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/templates")
	{
		group.GET("", h.ListTemplates)
		group.GET("/:id", h.GetTemplate)
		group.POST("/:id/draft", h.DraftFromTemplate)
	}
}
