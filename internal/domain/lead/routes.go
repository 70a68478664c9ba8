package lead

import "github.com/gin-gonic/gin"

// RegisterSubmitRoute mounts the submission endpoint at /api/submit.
func RegisterSubmitRoute(api *gin.RouterGroup, handler *Handler) {
	api.POST("/submit", handler.Submit)
}

// RegisterPublicRoutes registers public lead routes under /api/v1.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/leads/submit", handler.Submit)
	r.GET("/plans/:slug", handler.GetPlan)
}

// RegisterInternalRoutes registers the lead export. The caller guards the
// group.
func RegisterInternalRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/leads", handler.ListLeads)
}
