package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

const serviceVersion = "1.0.0"

type HealthHandler struct {
	registry *service.EngineRegistry
}

func NewHealthHandler(registry *service.EngineRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Book Summarizer API",
		"version": serviceVersion,
		"status":  "running",
	})
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:      "healthy",
		ModelLoaded: h.registry.ModelLoaded(),
	})
}
