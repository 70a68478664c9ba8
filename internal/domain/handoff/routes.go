package handoff

import "github.com/gin-gonic/gin"

// RegisterRoutes registers handoff routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	g := r.Group("/handoff")
	{
		g.POST("", handler.Create)
		g.GET("/:token", handler.Take)
	}
}
