package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedGemini(t *testing.T, keys ...string) *GeminiSummarizer {
	t.Helper()
	engine, err := NewGeminiSummarizer(keys, "gemini-1.5-flash")
	require.NoError(t, err)
	require.NoError(t, engine.Load(context.Background()))
	return engine
}

func TestGeminiRotateAdvancesKeyAndGeneration(t *testing.T) {
	engine := newLoadedGemini(t, "key-a", "key-b", "key-c")

	model, generation := engine.snapshot()
	require.NotNil(t, model)
	assert.Equal(t, 0, generation)

	require.NoError(t, engine.rotateAPIKey(context.Background(), generation))
	rotated, generation := engine.snapshot()
	assert.Equal(t, 1, generation)
	assert.Equal(t, 1, engine.currentKey)
	assert.NotSame(t, model, rotated, "rotation replaces the model")

	// Wraps around the key list.
	require.NoError(t, engine.rotateAPIKey(context.Background(), 1))
	require.NoError(t, engine.rotateAPIKey(context.Background(), 2))
	_, generation = engine.snapshot()
	assert.Equal(t, 3, generation)
	assert.Equal(t, 0, engine.currentKey)
}

func TestGeminiRotateIgnoresStaleGeneration(t *testing.T) {
	engine := newLoadedGemini(t, "key-a", "key-b", "key-c")

	require.NoError(t, engine.rotateAPIKey(context.Background(), 0))
	afterFirst, generation := engine.snapshot()
	assert.Equal(t, 1, generation)

	// A second failer of the same generation must not rotate again.
	require.NoError(t, engine.rotateAPIKey(context.Background(), 0))
	model, generation := engine.snapshot()
	assert.Equal(t, 1, generation)
	assert.Equal(t, 1, engine.currentKey, "stale rotation must not skip a key")
	assert.Same(t, afterFirst, model)
}

func TestGeminiConcurrentFailersRotateOnce(t *testing.T) {
	engine := newLoadedGemini(t, "key-a", "key-b", "key-c")

	_, seen := engine.snapshot()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, engine.rotateAPIKey(context.Background(), seen))
		}()
	}
	wg.Wait()

	_, generation := engine.snapshot()
	assert.Equal(t, 1, generation)
	assert.Equal(t, 1, engine.currentKey)
}
