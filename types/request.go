package types

// SummarizeRequest carries the per-request settings of the summarize
// endpoint. All fields are optional form values; unset fields fall back
// to the server defaults.
type SummarizeRequest struct {
	ModelName    string `form:"model_name" json:"model_name"`
	MaxLength    int    `form:"max_length" json:"max_length"`
	MinLength    int    `form:"min_length" json:"min_length"`
	ChunkSize    int    `form:"chunk_size" json:"chunk_size"`
	ChunkOverlap int    `form:"chunk_overlap" json:"chunk_overlap"`
}

// Options merges the request with server defaults, request values winning
// per key.
func (r SummarizeRequest) Options(defaults SummarizeOptions) SummarizeOptions {
	opts := defaults
	if r.ModelName != "" {
		opts.ModelName = r.ModelName
	}
	if r.MaxLength > 0 {
		opts.MaxLength = r.MaxLength
	}
	if r.MinLength > 0 {
		opts.MinLength = r.MinLength
	}
	if r.ChunkSize > 0 {
		opts.ChunkSize = r.ChunkSize
	}
	if r.ChunkOverlap > 0 {
		opts.ChunkOverlap = r.ChunkOverlap
	}
	return opts
}

type ChangeModelRequest struct {
	ModelName string `json:"model_name"`
}
