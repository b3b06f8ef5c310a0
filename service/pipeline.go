package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// Inputs below this word count are already their own summary; the model
// is not invoked for them.
const passthroughWordLimit = 50

// Floors for the per-chunk length bounds so scaling by the chunk count
// never produces degenerate near-zero targets.
const (
	chunkMinLengthFloor = 16
	chunkMaxLengthFloor = 32
)

// ProgressFunc receives one report per summarized chunk.
type ProgressFunc func(types.ProcessingStatus)

// PipelineService turns a full document into one final summary regardless
// of the document length exceeding the model's single-call input size.
// Each call is stateless given its inputs; the shared state (the lazily
// loaded model) lives in the engine registry.
type PipelineService struct {
	registry          *EngineRegistry
	maxReductionDepth int
}

func NewPipelineService(registry *EngineRegistry, maxReductionDepth int) *PipelineService {
	if maxReductionDepth <= 0 {
		maxReductionDepth = 3
	}
	return &PipelineService{
		registry:          registry,
		maxReductionDepth: maxReductionDepth,
	}
}

// Summarize reduces text to a single summary.
//
// Short texts (at most chunk_size runes) are summarized with one direct
// model call. Longer texts are chunked and each chunk summarized in
// ordinal order with length bounds scaled down by the chunk count; the
// chunk summaries are joined in order with a single space. While the
// joined text still exceeds chunk_size the reduction repeats on it, up to
// the configured depth, after which the run fails rather than looping.
// A failed chunk aborts the whole run with its pass and chunk index.
func (p *PipelineService) Summarize(ctx context.Context, text string, opts types.SummarizeOptions, progress ProgressFunc) (*types.SummaryResult, error) {
	started := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Nothing to summarize; the model backend is never touched.
	if strings.TrimSpace(text) == "" {
		return &types.SummaryResult{
			Summary:        "",
			ChunkSummaries: nil,
			Statistics: types.SummaryStatistics{
				ProcessingTimeMS: time.Since(started).Milliseconds(),
			},
		}, nil
	}

	engine, err := p.registry.Engine(opts.ModelName)
	if err != nil {
		return nil, err
	}
	chunker, err := NewChunker(opts.ChunkSize, opts.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	originalWords := utils.WordCount(text)

	if utf8.RuneCountInString(text) <= opts.ChunkSize {
		final, err := p.summarizeText(ctx, engine, text, opts.MinLength, opts.MaxLength)
		if err != nil {
			return nil, err
		}
		return p.buildResult(final, nil, originalWords, 0, 0, started), nil
	}

	var chunkSummaries []types.Summary
	totalChunks := 0
	current := text

	for pass := 1; ; pass++ {
		if pass > p.maxReductionDepth {
			return nil, fmt.Errorf("%w: reduction did not converge after %d passes",
				types.ErrSummaryTooLarge, p.maxReductionDepth)
		}

		chunks := chunker.Split(current)
		n := len(chunks)
		log.Printf("Reduction pass %d: %d chunks", pass, n)

		// Scale the per-chunk targets down by the chunk count so the
		// joined pass output lands near the requested final length.
		chunkMax := maxInt(opts.MaxLength/n, chunkMaxLengthFloor)
		chunkMin := maxInt(opts.MinLength/n, chunkMinLengthFloor)
		if chunkMin > chunkMax {
			chunkMin = chunkMax
		}

		parts := make([]string, 0, n)
		for _, chunk := range chunks {
			summary, err := p.summarizeText(ctx, engine, chunk.Content, chunkMin, chunkMax)
			if err != nil {
				return nil, fmt.Errorf("pass %d, chunk %d: %w", pass, chunk.Index, err)
			}
			parts = append(parts, summary)
			chunkSummaries = append(chunkSummaries, types.Summary{
				Text:       summary,
				Model:      engine.ModelName(),
				MinLength:  chunkMin,
				MaxLength:  chunkMax,
				Pass:       pass,
				ChunkIndex: chunk.Index,
			})
			if progress != nil {
				progress(types.ProcessingStatus{
					Status:          "processing",
					Message:         fmt.Sprintf("summarized chunk %d/%d (pass %d)", chunk.Index+1, n, pass),
					Progress:        float64(chunk.Index+1) / float64(n),
					Pass:            pass,
					TotalChunks:     n,
					ProcessedChunks: chunk.Index + 1,
				})
			}
		}
		totalChunks += n

		current = strings.Join(parts, " ")
		if utf8.RuneCountInString(current) <= opts.ChunkSize {
			return p.buildResult(current, chunkSummaries, originalWords, totalChunks, pass, started), nil
		}
	}
}

// summarizeText invokes the engine once, passing very short inputs
// through unchanged.
func (p *PipelineService) summarizeText(ctx context.Context, engine SummarizationEngine, text string, minLength, maxLength int) (string, error) {
	if utils.WordCount(text) < passthroughWordLimit {
		return strings.TrimSpace(text), nil
	}
	return engine.Summarize(ctx, text, minLength, maxLength)
}

func (p *PipelineService) buildResult(final string, chunkSummaries []types.Summary, originalWords, totalChunks, passes int, started time.Time) *types.SummaryResult {
	summaryWords := 0
	for _, s := range chunkSummaries {
		summaryWords += utils.WordCount(s.Text)
	}
	finalWords := utils.WordCount(final)
	if summaryWords == 0 {
		summaryWords = finalWords
	}

	compression := 0.0
	if originalWords > 0 {
		compression = float64(summaryWords) / float64(originalWords)
	}

	return &types.SummaryResult{
		Summary:        final,
		ChunkSummaries: chunkSummaries,
		Statistics: types.SummaryStatistics{
			TotalChunks:             totalChunks,
			TotalOriginalWords:      originalWords,
			TotalSummaryWords:       summaryWords,
			OverallCompressionRatio: compression,
			FinalSummaryLength:      finalWords,
			ReductionPasses:         passes,
			ProcessingTimeMS:        time.Since(started).Milliseconds(),
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
