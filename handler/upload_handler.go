package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// TextExtractor is the PDF boundary the handlers consume. Implemented by
// service.PDFService; tests substitute a stub.
type TextExtractor interface {
	ValidatePDF(data []byte) (*types.PDFInfo, error)
	Metadata(data []byte) types.PDFMetadata
	ExtractText(data []byte) (*types.Document, error)
}

type UploadHandler struct {
	extractor   TextExtractor
	fileService *service.FileService
}

func NewUploadHandler(extractor TextExtractor, fileService *service.FileService) *UploadHandler {
	return &UploadHandler{
		extractor:   extractor,
		fileService: fileService,
	}
}

// HandleUploadPDF validates an uploaded PDF, stores it and returns its
// metadata. The stored name can be fed to the websocket summarize surface
// or the /pdf endpoint later.
func (h *UploadHandler) HandleUploadPDF(c *gin.Context) {
	data, header, ok := readUploadedFile(c)
	if !ok {
		return
	}

	info, err := h.extractor.ValidatePDF(data)
	if err != nil {
		sendError(c, err)
		return
	}

	stored, err := h.fileService.SaveUpload(header.Filename, data)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "PDF uploaded and validated successfully",
		Data: types.UploadResponse{
			Filename: header.Filename,
			Stored:   stored,
			SizeMB:   info.SizeMB,
			Pages:    info.Pages,
			Metadata: h.extractor.Metadata(data),
		},
	})
}

// readUploadedFile pulls the "file" form field, rejecting non-PDF names
// before any parsing happens. Replies with 400 itself when ok is false.
func readUploadedFile(c *gin.Context) ([]byte, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return nil, nil, false
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF files are supported",
		})
		return nil, nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Failed to read file",
		})
		return nil, nil, false
	}
	return data, header, true
}
