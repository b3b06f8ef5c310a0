package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// SummarizationEngine wraps one pretrained summarization model. Load is a
// guarded one-time initialization; the first call may be slow (model
// download or remote round trip) and concurrent callers block on the same
// result. Length bounds are in words. Engines never retry; that is the
// caller's decision.
type SummarizationEngine interface {
	Load(ctx context.Context) error
	Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error)
	ModelName() string
}

// SupportedModels enumerates the model names the service accepts. The
// transformer models are served behind the OpenAI-compatible inference
// endpoint; gemini models go through the Google API.
var SupportedModels = []types.ModelInfo{
	{Name: "sshleifer/distilbart-cnn-6-6", Description: "Distilled BART, fast default", MaxLength: 1024},
	{Name: "facebook/bart-large-cnn", Description: "BART fine-tuned on CNN news articles (recommended)", MaxLength: 1024},
	{Name: "facebook/bart-base", Description: "Base BART model, balanced performance", MaxLength: 1024},
	{Name: "t5-small", Description: "Small T5 model, faster but less accurate", MaxLength: 512},
	{Name: "gemini-1.5-flash", Description: "Google Gemini Flash via the Gemini API", MaxLength: 8192},
}

// IsSupportedModel reports whether name is in the supported set.
func IsSupportedModel(name string) bool {
	for _, m := range SupportedModels {
		if m.Name == name {
			return true
		}
	}
	return false
}

// EngineFactory builds an engine for a model name.
type EngineFactory func(modelName string) (SummarizationEngine, error)

// EngineRegistry hands out one shared engine per model name. Engines are
// process-wide and reused across requests; construction is cheap, the
// expensive load happens lazily inside the engine itself.
type EngineRegistry struct {
	mu      sync.Mutex
	engines map[string]SummarizationEngine
	factory EngineFactory
	current string
}

func NewEngineRegistry(defaultModel string, factory EngineFactory) *EngineRegistry {
	return &EngineRegistry{
		engines: make(map[string]SummarizationEngine),
		factory: factory,
		current: defaultModel,
	}
}

// Engine returns the shared engine for the given model name, creating it
// on first use. An empty name selects the current default model.
func (r *EngineRegistry) Engine(name string) (SummarizationEngine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		name = r.current
	}
	if !IsSupportedModel(name) {
		return nil, fmt.Errorf("%w: unsupported model %q", types.ErrInvalidConfiguration, name)
	}
	if engine, ok := r.engines[name]; ok {
		return engine, nil
	}
	engine, err := r.factory(name)
	if err != nil {
		return nil, err
	}
	r.engines[name] = engine
	return engine, nil
}

// SetCurrent switches the default model.
func (r *EngineRegistry) SetCurrent(name string) error {
	if !IsSupportedModel(name) {
		return fmt.Errorf("%w: unsupported model %q", types.ErrInvalidConfiguration, name)
	}
	r.mu.Lock()
	r.current = name
	r.mu.Unlock()
	return nil
}

// Current returns the default model name.
func (r *EngineRegistry) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// ModelLoaded reports whether the current default model has finished its
// one-time load.
func (r *EngineRegistry) ModelLoaded() bool {
	r.mu.Lock()
	engine, ok := r.engines[r.current]
	r.mu.Unlock()
	if !ok {
		return false
	}
	reporter, ok := engine.(interface{ Loaded() bool })
	return ok && reporter.Loaded()
}

// Models lists the supported models.
func (r *EngineRegistry) Models() []types.ModelInfo {
	return SupportedModels
}

// DefaultEngineFactory routes gemini models to the Gemini backend and
// everything else to the OpenAI-compatible inference endpoint.
func DefaultEngineFactory(aiEndpoint, openAIKey string, geminiKeys []string) EngineFactory {
	return func(modelName string) (SummarizationEngine, error) {
		if strings.HasPrefix(modelName, "gemini") {
			return NewGeminiSummarizer(geminiKeys, modelName)
		}
		return NewOpenAISummarizer(aiEndpoint, openAIKey, modelName), nil
	}
}
