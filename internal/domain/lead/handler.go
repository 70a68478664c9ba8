package lead

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bura/internal/pkg/response"
	"bura/internal/pkg/validator"
)

const maxSubmitBody = 1 << 20

// Handler handles lead HTTP requests
type Handler struct {
	service    *Service
	logger     *zap.Logger
	returnSlug bool
}

// NewHandler creates the lead handler. With returnSlug set, a successful
// submission also reports the plan id.
func NewHandler(service *Service, logger *zap.Logger, returnSlug bool) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger, returnSlug: returnSlug}
}

// Submit handles POST /api/submit
func (h *Handler) Submit(c *gin.Context) {
	if !h.service.Configured() {
		leadsSubmitted.WithLabelValues(resultUnconfigured).Inc()
		h.logger.Error("submit rejected: lead store not configured")
		response.Error(c, http.StatusInternalServerError, msgServerConfig)
		return
	}

	if !isJSON(c.GetHeader("Content-Type")) {
		h.rejectBody(c, "content type")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSubmitBody))
	if err != nil {
		h.rejectBody(c, "read")
		return
	}

	req, err := parseSubmitRequest(body)
	if err != nil {
		h.rejectBody(c, "parse")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		leadsSubmitted.WithLabelValues(resultInvalid).Inc()
		if _, ok := fields["flow"]; ok && len(fields) == 1 {
			response.Error(c, http.StatusBadRequest, msgUnknownFlow)
			return
		}
		response.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	l, err := h.service.Submit(c.Request.Context(), req.input())
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidPhone):
		response.Error(c, http.StatusBadRequest, msgInvalidPhone)
		return
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, msgServerConfig)
		return
	default:
		_ = c.Error(err)
		response.Message(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	if h.returnSlug {
		response.OK(c, http.StatusOK, gin.H{"slug": l.PlanID})
		return
	}
	response.OK(c, http.StatusOK, nil)
}

// GetPlan handles GET /api/v1/plans/:slug
func (h *Handler) GetPlan(c *gin.Context) {
	plan, err := h.service.Plan(c.Request.Context(), c.Param("slug"))
	switch {
	case err == nil:
		response.Data(c, http.StatusOK, plan)
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, msgPlanNotFound)
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, msgServerConfig)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, msgInternalError)
	}
}

// ListLeads handles GET /internal/leads
func (h *Handler) ListLeads(c *gin.Context) {
	limit, err1 := queryInt(c, "limit", 50)
	offset, err2 := queryInt(c, "offset", 0)
	if err1 != nil || err2 != nil || limit < 1 || offset < 0 {
		response.Error(c, http.StatusBadRequest, msgInvalidPaging)
		return
	}
	limit = min(limit, 200)

	page, err := h.service.List(c.Request.Context(), limit, offset)
	switch {
	case err == nil:
		response.Data(c, http.StatusOK, page)
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, msgServerConfig)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, msgInternalError)
	}
}

func (h *Handler) rejectBody(c *gin.Context, reason string) {
	leadsSubmitted.WithLabelValues(resultInvalid).Inc()
	h.logger.Debug("submit rejected: invalid body", zap.String("reason", reason))
	response.Message(c, http.StatusBadRequest, msgInvalidBody)
}

// isJSON accepts a missing Content-Type, application/json and any +json type.
func isJSON(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
