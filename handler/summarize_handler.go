package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// Summarizer is the pipeline boundary the handler consumes. Implemented
// by service.PipelineService; tests substitute a stub.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts types.SummarizeOptions, progress service.ProgressFunc) (*types.SummaryResult, error)
}

type SummarizeHandler struct {
	extractor TextExtractor
	pipeline  Summarizer
	defaults  types.SummarizeOptions
}

func NewSummarizeHandler(extractor TextExtractor, pipeline Summarizer, defaults types.SummarizeOptions) *SummarizeHandler {
	return &SummarizeHandler{
		extractor: extractor,
		pipeline:  pipeline,
		defaults:  defaults,
	}
}

// HandleSummarize runs the whole pipeline on an uploaded PDF: extract,
// chunk, summarize per chunk, merge. Request form fields override the
// server defaults per key.
func (h *SummarizeHandler) HandleSummarize(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid summarization settings",
		})
		return
	}

	data, _, ok := readUploadedFile(c)
	if !ok {
		return
	}

	doc, err := h.extractor.ExtractText(data)
	if err != nil {
		sendError(c, err)
		return
	}

	result, err := h.pipeline.Summarize(c.Request.Context(), doc.Text, req.Options(h.defaults), nil)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Book summarized successfully",
		Data: types.SummarizeResponse{
			Summary:            result.Summary,
			ChunkSummaries:     result.ChunkSummaries,
			Statistics:         result.Statistics,
			OriginalStatistics: utils.GetTextStatistics(doc.Text),
		},
	})
}

type summarizeOutcome struct {
	result *types.SummaryResult
	err    error
}

// HandleSummarizeStream runs the same pipeline but streams one SSE
// "message" event per summarized chunk, then a final "result" (or
// "error") event. For clients that cannot hold a websocket open.
func (h *SummarizeHandler) HandleSummarizeStream(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid summarization settings",
		})
		return
	}

	data, _, ok := readUploadedFile(c)
	if !ok {
		return
	}

	doc, err := h.extractor.ExtractText(data)
	if err != nil {
		sendError(c, err)
		return
	}

	ctx := c.Request.Context()
	statusChan := make(chan types.ProcessingStatus)
	outcomeChan := make(chan summarizeOutcome, 1)
	go func() {
		result, err := h.pipeline.Summarize(ctx, doc.Text, req.Options(h.defaults), func(status types.ProcessingStatus) {
			// Drop progress once the client is gone so the pipeline
			// goroutine never blocks on an abandoned stream.
			select {
			case statusChan <- status:
			case <-ctx.Done():
			}
		})
		outcomeChan <- summarizeOutcome{result: result, err: err}
	}()

	for {
		select {
		case <-ctx.Done():
			return // Client disconnected
		case status := <-statusChan:
			jsonStatus, err := json.Marshal(status)
			if err != nil {
				continue
			}
			c.SSEvent("message", string(jsonStatus))
			c.Writer.Flush()
		case outcome := <-outcomeChan:
			if outcome.err != nil {
				c.SSEvent("error", types.DataResponse{
					Status:  false,
					Message: outcome.err.Error(),
				})
			} else {
				c.SSEvent("result", types.DataResponse{
					Status: true,
					Data: types.SummarizeResponse{
						Summary:            outcome.result.Summary,
						ChunkSummaries:     outcome.result.ChunkSummaries,
						Statistics:         outcome.result.Statistics,
						OriginalStatistics: utils.GetTextStatistics(doc.Text),
					},
				})
			}
			c.Writer.Flush()
			return
		}
	}
}
