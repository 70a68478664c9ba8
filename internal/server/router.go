// Package server assembles the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bura/internal/config"
	"bura/internal/domain/handoff"
	"bura/internal/domain/lead"
	"bura/internal/messaging"
	"bura/internal/middleware"
)

// Deps is everything the router needs. A nil LeadRepo leaves the lead store
// unconfigured.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	LeadRepo lead.Repository
	Handoffs *messaging.HandoffStore
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handoffs := d.Handoffs
	if handoffs == nil {
		handoffs = messaging.NewHandoffStore(cfg.HandoffCapacity, cfg.HandoffTTL)
	}

	leadService := lead.NewService(d.LeadRepo, logger.Named("lead"))
	leadHandler := lead.NewHandler(leadService, logger.Named("lead"), cfg.ReturnPlanSlug)
	handoffHandler := handoff.NewHandler(handoffs, cfg.WhatsAppBaseURL, cfg.CoachWhatsApp, logger.Named("handoff"))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(logger),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"storeConfigured": leadService.Configured(),
		})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	api := r.Group("/api")
	lead.RegisterSubmitRoute(api, leadHandler)

	v1 := api.Group("/v1")
	{
		lead.RegisterPublicRoutes(v1, leadHandler)
		handoff.RegisterRoutes(v1, handoffHandler)
	}

	internal := r.Group("/internal")
	internal.Use(middleware.InternalTokenAuth(cfg.LeadsToken, logger.Named("internal")))
	{
		lead.RegisterInternalRoutes(internal, leadHandler)
	}

	return r
}
