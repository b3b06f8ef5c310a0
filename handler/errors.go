package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// statusForError maps the pipeline failure taxonomy onto HTTP status
// codes. Bad input is the client's fault, a missing model is a temporary
// service condition, everything else is a server-side failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrExtractionFailed):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func sendError(c *gin.Context, err error) {
	c.JSON(statusForError(err), types.DataResponse{
		Status:  false,
		Message: err.Error(),
	})
}
