package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gstbill/invoice-service/internal/invoice"
	"github.com/gstbill/invoice-service/internal/layout"
	"github.com/gstbill/invoice-service/internal/render"
	"github.com/gstbill/invoice-service/internal/storage"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	validator *invoice.Validator
	renderer  *render.Renderer
	spool     *storage.SpoolStore
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	validator *invoice.Validator,
	renderer *render.Renderer,
	spool *storage.SpoolStore,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		validator: validator,
		renderer:  renderer,
		spool:     spool,
		logger:    logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// GenerateInvoice handles POST /api/v1/invoices. The pipeline is a
// single synchronous pass: validate, compute, lay out, render, then
// stream the PDF as a download. The spooled file is removed on every
// exit path.
func (h *Handlers) GenerateInvoice(c *gin.Context) {
	var req invoice.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		h.logger.Error("Invalid invoice request body", zap.Error(err))
		c.JSON(status, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	validated, err := h.validator.Validate(&req)
	if err != nil {
		h.logger.Info("Invoice request rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	lines := invoice.ComputeLines(validated.Items, validated.Intrastate())
	totals := invoice.Accumulate(lines)
	doc := layout.Build(validated, lines, totals)

	pdfBytes, err := h.renderer.Render(doc)
	if err != nil {
		h.logger.Error("Invoice rendering failed",
			zap.String("invoice_number", validated.Invoice.Number),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to generate invoice",
		})
		return
	}

	path, err := h.spool.Save("invoice", pdfBytes)
	if err != nil {
		h.logger.Error("Failed to spool invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to generate invoice",
		})
		return
	}
	defer func() {
		if err := h.spool.Remove(path); err != nil {
			h.logger.Warn("Spool cleanup failed", zap.String("path", path), zap.Error(err))
		}
	}()

	h.logger.Info("Invoice generated",
		zap.String("invoice_number", validated.Invoice.Number),
		zap.Int("items", len(validated.Items)),
		zap.Int("bytes", len(pdfBytes)))

	c.FileAttachment(path, "invoice.pdf")
}
