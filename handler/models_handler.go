package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

type ModelsHandler struct {
	registry *service.EngineRegistry
}

func NewModelsHandler(registry *service.EngineRegistry) *ModelsHandler {
	return &ModelsHandler{registry: registry}
}

func (h *ModelsHandler) HandleListModels(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.ModelsResponse{
			Models:       h.registry.Models(),
			CurrentModel: h.registry.Current(),
		},
	})
}

// HandleChangeModel switches the default model and eagerly loads it so
// the next summarize call does not pay the load latency.
func (h *ModelsHandler) HandleChangeModel(c *gin.Context) {
	var req types.ChangeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.registry.SetCurrent(req.ModelName); err != nil {
		sendError(c, err)
		return
	}
	engine, err := h.registry.Engine(req.ModelName)
	if err != nil {
		sendError(c, err)
		return
	}
	if err := engine.Load(c.Request.Context()); err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: fmt.Sprintf("Model changed to %s", req.ModelName),
		Data: types.ModelsResponse{
			Models:       h.registry.Models(),
			CurrentModel: h.registry.Current(),
		},
	})
}
