package handoff

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"bura/internal/messaging"
	"bura/internal/pkg/response"
	"bura/internal/pkg/validator"
	"bura/internal/wizard"
)

var handoffs = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bura_handoffs_total",
	Help: "Handoff store operations.",
}, []string{"op"})

// Handler parks messages for the redirect page and hands them back once.
type Handler struct {
	store     *messaging.HandoffStore
	baseURL   string
	recipient string
	logger    *zap.Logger
}

func NewHandler(store *messaging.HandoffStore, baseURL, recipient string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, baseURL: baseURL, recipient: recipient, logger: logger}
}

// Create handles POST /api/v1/handoff
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Unknown flow")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		if req.FormData == nil {
			response.Error(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		a := wizard.FromForm(req.FormData)
		a.Name = strings.TrimSpace(req.Name)
		message = messaging.MessageFor(req.Flow, &a)
	}

	token := h.store.Put(message)
	handoffs.WithLabelValues("put").Inc()
	h.logger.Debug("handoff stored", zap.String("token", token))

	c.JSON(http.StatusOK, CreateResponse{
		Success: true,
		Token:   token,
		Link:    messaging.DeepLink(h.baseURL, h.recipient, message),
	})
}

// Take handles GET /api/v1/handoff/:token
func (h *Handler) Take(c *gin.Context) {
	message, ok := h.store.Take(c.Param("token"))
	if !ok {
		handoffs.WithLabelValues("miss").Inc()
		response.Error(c, http.StatusNotFound, "Handoff not found")
		return
	}
	handoffs.WithLabelValues("take").Inc()

	c.JSON(http.StatusOK, TakeResponse{
		Success: true,
		Message: message,
		Link:    messaging.DeepLink(h.baseURL, h.recipient, message),
	})
}
