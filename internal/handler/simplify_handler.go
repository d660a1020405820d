package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errSentenceRequired = "Sentence is required"
	errProcessing       = "Failed to process sentence"
)

type SentenceSimplifier interface {
	Simplify(ctx context.Context, sentence string) ([]string, error)
	Provider() string
}

type SimplifyHandler struct {
	simplifier SentenceSimplifier
}

func NewSimplifyHandler(simplifier SentenceSimplifier) *SimplifyHandler {
	return &SimplifyHandler{simplifier: simplifier}
}

func (h *SimplifyHandler) Simplify(c *gin.Context) {
	if c.ContentType() != gin.MIMEJSON {
		slog.Warn("invalid simplify request", "content_type", c.ContentType())
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errSentenceRequired})
		return
	}

	var req SimplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid simplify request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errSentenceRequired})
		return
	}

	simplified, err := h.simplifier.Simplify(c.Request.Context(), req.Sentence)
	if err != nil {
		slog.Error("error processing sentence", "error", err, "provider", h.simplifier.Provider())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errProcessing})
		return
	}

	c.JSON(http.StatusOK, SimplifyResponse{
		Original:   req.Sentence,
		Simplified: simplified,
	})
}

func (h *SimplifyHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: h.simplifier.Provider(),
	})
}
