package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sashabaranov/go-openai"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

const summarySystemPrompt = "You are a summarization engine. Produce a faithful, " +
	"self-contained summary of the text you are given. Respond with the summary " +
	"only, no preamble and no commentary."

// OpenAISummarizer runs summarization through an OpenAI-compatible
// inference server (a local transformers server or the OpenAI API).
type OpenAISummarizer struct {
	client   *openai.Client
	model    string
	loadOnce sync.Once
	loadErr  error
	loaded   atomic.Bool
}

func NewOpenAISummarizer(baseURL, apiKey, model string) *OpenAISummarizer {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (s *OpenAISummarizer) ModelName() string { return s.model }

// Loaded reports whether the one-time load has completed successfully.
func (s *OpenAISummarizer) Loaded() bool { return s.loaded.Load() }

// Load verifies once that the model is actually served by the endpoint.
// Only one caller performs the check; concurrent callers wait and share
// the result, including a failure.
func (s *OpenAISummarizer) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		log.Printf("Loading summarization model %s...", s.model)
		if _, err := s.client.GetModel(ctx, s.model); err != nil {
			s.loadErr = fmt.Errorf("%w: %s: %v", types.ErrModelUnavailable, s.model, err)
			return
		}
		s.loaded.Store(true)
		log.Printf("Model %s loaded", s.model)
	})
	return s.loadErr
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
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

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Summarize the following text in %d to %d words:\n\n%s",
					minLength, maxLength, text),
			},
		},
		// Bounds are words; leave token headroom.
		MaxTokens: maxLength * 2,
	})
	if err != nil {
		return "", fmt.Errorf("%w: model %s: %v", types.ErrGenerationFailed, s.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: model %s: no response generated", types.ErrGenerationFailed, s.model)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
