package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/settings")
	{
		group.GET("", h.GetSettings)
		group.PUT("", h.UpdateSettings)
	}
}
