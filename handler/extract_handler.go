package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

type ExtractHandler struct {
	extractor TextExtractor
}

func NewExtractHandler(extractor TextExtractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

// HandleExtractText extracts and returns the cleaned text of an uploaded
// PDF along with basic statistics, without summarizing anything.
func (h *ExtractHandler) HandleExtractText(c *gin.Context) {
	data, _, ok := readUploadedFile(c)
	if !ok {
		return
	}

	doc, err := h.extractor.ExtractText(data)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Text extracted successfully",
		Data: types.ExtractResponse{
			Text:       doc.Text,
			TextLength: doc.Characters,
			Pages:      doc.Pages,
			Statistics: utils.GetTextStatistics(doc.Text),
		},
	})
}
