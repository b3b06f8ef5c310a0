package types

import "errors"

// Failure taxonomy for the summarization pipeline. Services wrap these
// sentinels with fmt.Errorf("%w: ...") so callers can match on errors.Is
// while still getting the chunk index or model name in the message.
var (
	// ErrInvalidConfiguration signals bad length/overlap bounds. Rejected
	// before any processing starts.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrExtractionFailed signals that no usable text could be pulled out
	// of the uploaded PDF (corrupt, encrypted, oversized or image-only).
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrModelUnavailable signals that the backing model could not be
	// loaded. Not retried here; callers may pick a fallback model.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrGenerationFailed signals a runtime inference error. A failed
	// chunk aborts the whole pipeline; a silently skipped chunk would
	// corrupt the final merge.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrSummaryTooLarge signals that the recursive reduction hit its
	// depth limit without converging below a single-pass input size.
	ErrSummaryTooLarge = errors.New("summary too large")
)
