package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

type UploadResponse struct {
	Filename string      `json:"filename"`
	Stored   string      `json:"stored"`
	SizeMB   float64     `json:"size_mb"`
	Pages    int         `json:"pages"`
	Metadata PDFMetadata `json:"metadata"`
}

type ExtractResponse struct {
	Text       string         `json:"text"`
	TextLength int            `json:"text_length"`
	Pages      int            `json:"pages"`
	Statistics TextStatistics `json:"statistics"`
}

type SummarizeResponse struct {
	Summary            string            `json:"summary"`
	ChunkSummaries     []Summary         `json:"chunk_summaries"`
	Statistics         SummaryStatistics `json:"statistics"`
	OriginalStatistics TextStatistics    `json:"original_statistics"`
}

type ModelsResponse struct {
	Models       []ModelInfo `json:"models"`
	CurrentModel string      `json:"current_model"`
}
