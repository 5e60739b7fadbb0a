package builder

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/builder")
	{
		group.POST("/preview", Preview)
	}
}
