package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// GeminiSummarizer runs summarization through the Google Gemini API. It
// rotates between API keys when a call fails, which rides out per-key
// quota exhaustion.
type GeminiSummarizer struct {
	apiKeys   []string
	modelName string

	// mu guards the rotating state below. Engines are shared across
	// requests, so callers snapshot the model and only the first failer
	// of a generation rotates.
	mu         sync.Mutex
	currentKey int
	generation int
	client     *genai.Client
	model      *genai.GenerativeModel

	loadOnce sync.Once
	loadErr  error
	loaded   atomic.Bool
}

func NewGeminiSummarizer(apiKeys []string, modelName string) (*GeminiSummarizer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("%w: %s: no Gemini API keys provided",
			types.ErrModelUnavailable, modelName)
	}
	return &GeminiSummarizer{
		apiKeys:   apiKeys,
		modelName: modelName,
	}, nil
}

func (s *GeminiSummarizer) ModelName() string { return s.modelName }

// Loaded reports whether the one-time load has completed successfully.
func (s *GeminiSummarizer) Loaded() bool { return s.loaded.Load() }

// Load creates the client once; concurrent callers share the result.
func (s *GeminiSummarizer) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		log.Printf("Loading summarization model %s...", s.modelName)
		if err := s.initClient(ctx); err != nil {
			s.loadErr = fmt.Errorf("%w: %s: %v", types.ErrModelUnavailable, s.modelName, err)
			return
		}
		s.loaded.Store(true)
		log.Printf("Model %s loaded", s.modelName)
	})
	return s.loadErr
}

func (s *GeminiSummarizer) initClient(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return nil
}

// snapshot returns the current model together with its generation, so a
// failing caller can tell whether rotation already happened since its
// call started.
func (s *GeminiSummarizer) snapshot() (*genai.GenerativeModel, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model, s.generation
}

// rotateAPIKey switches to the next key. When several callers fail on the
// same generation only the first one rotates; the rest see a newer
// generation and just retry on the replacement client.
func (s *GeminiSummarizer) rotateAPIKey(ctx context.Context, seen int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != seen {
		return nil
	}

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	if s.client != nil {
		s.client.Close()
	}
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	s.generation++
	return nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: input text is empty", types.ErrInvalidConfiguration)
	}
	if minLength <= 0 || maxLength < minLength {
		return "", fmt.Errorf("%w: bad length bounds min=%d max=%d",
			types.ErrInvalidConfiguration, minLength, maxLength)
	}
	if err := s.Load(ctx); err != nil {
		return "", err
	}

	prompt := genai.Text(fmt.Sprintf(
		"%s\n\nSummarize the following text in %d to %d words:\n\n%s",
		summarySystemPrompt, minLength, maxLength, text))

	model, generation := s.snapshot()
	resp, err := model.GenerateContent(ctx, prompt)
	if err != nil {
		// One rotation attempt before giving up.
		if rerr := s.rotateAPIKey(ctx, generation); rerr != nil {
			return "", fmt.Errorf("%w: model %s: %v", types.ErrGenerationFailed, s.modelName, err)
		}
		model, _ = s.snapshot()
		resp, err = model.GenerateContent(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("%w: model %s: %v", types.ErrGenerationFailed, s.modelName, err)
		}
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: model %s: no response generated", types.ErrGenerationFailed, s.modelName)
	}

	var content strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content.WriteString(string(text))
			}
		}
	}
	if content.Len() == 0 {
		return "", fmt.Errorf("%w: model %s: empty response", types.ErrGenerationFailed, s.modelName)
	}
	return strings.TrimSpace(content.String()), nil
}
