package service

import (
	"fmt"
	"unicode"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// Chunker splits text into ordered, overlapping segments sized for a
// single model call.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker validates the chunking parameters. The overlap must be
// strictly smaller than the chunk size or consecutive chunks could never
// advance through the text.
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d",
			types.ErrInvalidConfiguration, chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %d",
			types.ErrInvalidConfiguration, overlap)
	}
	if overlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be smaller than chunk size %d",
			types.ErrInvalidConfiguration, overlap, chunkSize)
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Split cuts text into chunks. Chunk i starts at rune offset i*(S-O) and
// spans up to S runes; the cut prefers the last whitespace inside the
// overlap window so words stay intact, falling back to a hard cut at
// exactly S runes. Looking back no further than the overlap keeps the
// next chunk's fixed start inside this chunk, so no text is ever dropped.
// Empty text yields no chunks; text of at most S runes yields one chunk
// equal to the text.
func (c *Chunker) Split(text string) []types.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= c.chunkSize {
		return []types.Chunk{{Index: 0, Start: 0, End: len(runes), Content: text}}
	}

	step := c.chunkSize - c.overlap
	var chunks []types.Chunk
	for i := 0; ; i++ {
		start := i * step
		if start >= len(runes) {
			break
		}

		end := start + c.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, types.Chunk{
				Index:   i,
				Start:   start,
				End:     len(runes),
				Content: string(runes[start:]),
			})
			break
		}

		cut := end
		for j := end; j > end-c.overlap && j > start; j-- {
			if unicode.IsSpace(runes[j-1]) {
				cut = j
				break
			}
		}
		chunks = append(chunks, types.Chunk{
			Index:   i,
			Start:   start,
			End:     cut,
			Content: string(runes[start:cut]),
		})
	}
	return chunks
}

// ChunkSize returns the configured maximum chunk length in runes.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap length in runes.
func (c *Chunker) Overlap() int { return c.overlap }
