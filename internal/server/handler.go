package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/analyzer"
)

// Analyzer runs one analysis
type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) (*analyzer.Result, error)
}

// Handler adapts an Analyzer to HTTP and Lambda requests
type Handler struct {
	analyzer Analyzer
	timeout  time.Duration
	log      *zap.Logger
}

// NewHandler creates a handler. A zero timeout means no per-request deadline.
func NewHandler(a Analyzer, timeout time.Duration, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{analyzer: a, timeout: timeout, log: log}
}

// Handle analyzes imageURL and returns the response for the caller
func (h *Handler) Handle(ctx context.Context, imageURL string) Response {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.analyzer.Analyze(ctx, imageURL)
	if err != nil {
		return MapError(err, h.log)
	}

	return Response{StatusCode: http.StatusOK, Body: result.Body}
}

// Analyze handles GET /analyze?imageUrl=
func (h *Handler) Analyze(c *gin.Context) {
	resp := h.Handle(c.Request.Context(), c.Query("imageUrl"))
	c.String(resp.StatusCode, resp.Body)
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
