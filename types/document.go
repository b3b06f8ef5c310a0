package types

// Document is the full extracted text of one upload plus basic metadata.
// It is created once per request and discarded when the request ends.
type Document struct {
	Text       string `json:"text"`
	Pages      int    `json:"pages"`
	Characters int    `json:"characters"`
}

// Chunk is a contiguous substring of a document sized for a single model
// call. Start and End are rune offsets into the source text; consecutive
// chunks overlap by up to the configured overlap size.
type Chunk struct {
	Index   int    `json:"index"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}

// Summary is the model output for one chunk (or one reduction pass),
// paired with the model and length bounds that produced it.
type Summary struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	MinLength  int    `json:"min_length"`
	MaxLength  int    `json:"max_length"`
	Pass       int    `json:"pass"`
	ChunkIndex int    `json:"chunk_index"`
}

// SummaryResult is the final output of the pipeline: the condensed
// summary plus the ordered intermediate chunk summaries kept for
// transparency and debugging.
type SummaryResult struct {
	Summary        string            `json:"summary"`
	ChunkSummaries []Summary         `json:"chunk_summaries"`
	Statistics     SummaryStatistics `json:"statistics"`
}

// SummaryStatistics describes one pipeline run.
type SummaryStatistics struct {
	TotalChunks             int     `json:"total_chunks"`
	TotalOriginalWords      int     `json:"total_original_words"`
	TotalSummaryWords       int     `json:"total_summary_words"`
	OverallCompressionRatio float64 `json:"overall_compression_ratio"`
	FinalSummaryLength      int     `json:"final_summary_length"`
	ReductionPasses         int     `json:"reduction_passes"`
	ProcessingTimeMS        int64   `json:"processing_time_ms"`
}

// TextStatistics describes extracted text.
type TextStatistics struct {
	TotalCharacters             int     `json:"total_characters"`
	TotalWords                  int     `json:"total_words"`
	TotalSentences              int     `json:"total_sentences"`
	AverageWordsPerSentence     float64 `json:"average_words_per_sentence"`
	EstimatedReadingTimeMinutes float64 `json:"estimated_reading_time_minutes"`
}

// PDFInfo is the result of validating an uploaded file.
type PDFInfo struct {
	Pages  int     `json:"pages"`
	SizeMB float64 `json:"size_mb"`
}

// PDFMetadata is read from the PDF info dictionary.
type PDFMetadata struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Creator  string `json:"creator"`
	Producer string `json:"producer"`
	Pages    int    `json:"pages"`
}

// ModelInfo describes one supported summarization model.
type ModelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxLength   int    `json:"max_length"`
}
