package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOptions() SummarizeOptions {
	return SummarizeOptions{
		ModelName:    "t5-small",
		MaxLength:    150,
		MinLength:    50,
		ChunkSize:    1000,
		ChunkOverlap: 100,
	}
}

func TestSummarizeOptionsValidate(t *testing.T) {
	assert.NoError(t, validOptions().Validate())

	zeroOverlap := validOptions()
	zeroOverlap.ChunkOverlap = 0
	assert.NoError(t, zeroOverlap.Validate(), "zero overlap is allowed")

	tests := []struct {
		name   string
		mutate func(*SummarizeOptions)
	}{
		{"zero min length", func(o *SummarizeOptions) { o.MinLength = 0 }},
		{"zero max length", func(o *SummarizeOptions) { o.MaxLength = 0 }},
		{"min above max", func(o *SummarizeOptions) { o.MinLength = 200 }},
		{"zero chunk size", func(o *SummarizeOptions) { o.ChunkSize = 0 }},
		{"negative overlap", func(o *SummarizeOptions) { o.ChunkOverlap = -1 }},
		{"overlap equals chunk size", func(o *SummarizeOptions) { o.ChunkOverlap = 1000 }},
		{"overlap above chunk size", func(o *SummarizeOptions) { o.ChunkOverlap = 2000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}
}

func TestSummarizeRequestOptions(t *testing.T) {
	defaults := validOptions()

	// Empty request keeps every default.
	assert.Equal(t, defaults, SummarizeRequest{}.Options(defaults))

	// Set fields win per key.
	req := SummarizeRequest{ModelName: "facebook/bart-base", MaxLength: 200}
	opts := req.Options(defaults)
	assert.Equal(t, "facebook/bart-base", opts.ModelName)
	assert.Equal(t, 200, opts.MaxLength)
	assert.Equal(t, defaults.MinLength, opts.MinLength)
	assert.Equal(t, defaults.ChunkSize, opts.ChunkSize)

	// Zero and negative values never override.
	req = SummarizeRequest{MaxLength: -5, ChunkSize: 0}
	assert.Equal(t, defaults, req.Options(defaults))
}
