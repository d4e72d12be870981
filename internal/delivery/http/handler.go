package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
	"github.com/foodlens/backend/internal/usecase"
)

// ReportBuilder produces product reports.
type ReportBuilder interface {
	BuildReport(ctx context.Context, barcode string, profile *domain.HealthProfile) (*domain.ProductReport, error)
	Evaluate(ctx context.Context, product *domain.Product, profile *domain.HealthProfile) *domain.ProductReport
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	reports ReportBuilder
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. reports may be nil, in which case
// the product endpoints answer 503.
func NewHandler(reports ReportBuilder, logger *zap.Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// AnalyzeRequest is the body of POST /api/v1/products/analyze.
type AnalyzeRequest struct {
	Product *domain.Product       `json:"product"`
	Profile *domain.HealthProfile `json:"profile"`
}

// AnalyzeResponse carries the personalized result. Analysis is null when
// the profile holds no health data.
type AnalyzeResponse struct {
	Analysis     *domain.AnalysisResult `json:"analysis"`
	AIInsights   *domain.CustomInsights `json:"aiInsights,omitempty"`
	FinalVerdict *domain.FinalVerdict   `json:"finalVerdict,omitempty"`
}

// ReportRequest is the optional body of POST /api/v1/products/:barcode/report.
type ReportRequest struct {
	Profile *domain.HealthProfile `json:"profile"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodlens-backend",
		"version": "1.0.0",
	})
}

// Vocabulary lists the chronic conditions, temporary issues and goals
// accepted in health profiles.
func (h *Handler) Vocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.ListVocabulary())
}

// RateProduct scores a caller-supplied product record.
func (h *Handler) RateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.badRequest(c, "invalid product payload", err)
		return
	}

	c.JSON(http.StatusOK, usecase.RateProduct(&product))
}

// AnalyzeProduct personalizes a caller-supplied product record for a profile.
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	if h.reports == nil {
		h.notConfigured(c)
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid analyze payload", err)
		return
	}
	if req.Product == nil {
		h.badRequest(c, "product is required", domain.ErrInvalidRequest)
		return
	}
	h.dropUnknownVocabulary(c, req.Profile)

	report := h.reports.Evaluate(c.Request.Context(), req.Product, req.Profile)
	c.JSON(http.StatusOK, AnalyzeResponse{
		Analysis:     report.Analysis,
		AIInsights:   report.Insights,
		FinalVerdict: report.FinalVerdict,
	})
}

// ProductReport looks a barcode up and builds the full report.
func (h *Handler) ProductReport(c *gin.Context) {
	if h.reports == nil {
		h.notConfigured(c)
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, "invalid report payload", err)
		return
	}
	h.dropUnknownVocabulary(c, req.Profile)

	report, err := h.reports.BuildReport(c.Request.Context(), c.Param("barcode"), req.Profile)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) dropUnknownVocabulary(c *gin.Context, profile *domain.HealthProfile) {
	if dropped := profile.DropUnknown(); len(dropped) > 0 {
		h.logger.Warn("ignoring unknown profile ids",
			zap.Strings("ids", dropped),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

func (h *Handler) badRequest(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func (h *Handler) notConfigured(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report service not configured"})
}

// respondError maps domain errors to HTTP status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrInvalidBarcode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode must be 8 to 14 digits"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, domain.ErrUpstreamFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "product database unavailable"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.logger.Error("unexpected error building report",
			zap.Error(err),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
