package types

import "fmt"

// SummarizeOptions are the request-scoped settings for one pipeline run.
// Nothing here is persisted.
type SummarizeOptions struct {
	ModelName    string `json:"model_name"`
	MaxLength    int    `json:"max_length"`
	MinLength    int    `json:"min_length"`
	ChunkSize    int    `json:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap"`
}

// Validate rejects bad bounds before any processing starts.
func (o SummarizeOptions) Validate() error {
	if o.MinLength <= 0 || o.MaxLength <= 0 {
		return fmt.Errorf("%w: length bounds must be positive, got min=%d max=%d",
			ErrInvalidConfiguration, o.MinLength, o.MaxLength)
	}
	if o.MinLength > o.MaxLength {
		return fmt.Errorf("%w: min_length %d exceeds max_length %d",
			ErrInvalidConfiguration, o.MinLength, o.MaxLength)
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %d",
			ErrInvalidConfiguration, o.ChunkSize)
	}
	if o.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_overlap must not be negative, got %d",
			ErrInvalidConfiguration, o.ChunkOverlap)
	}
	if o.ChunkOverlap >= o.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap %d must be smaller than chunk_size %d",
			ErrInvalidConfiguration, o.ChunkOverlap, o.ChunkSize)
	}
	return nil
}

// ProcessingStatus is a progress report emitted once per summarized chunk.
type ProcessingStatus struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	Progress        float64 `json:"progress"`
	Pass            int     `json:"pass"`
	TotalChunks     int     `json:"total_chunks"`
	ProcessedChunks int     `json:"processed_chunks"`
}
