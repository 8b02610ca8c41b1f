package llm

import (
	"context"
	"os"
	"time"
)

const (
	// EnvGaiaMode is the environment variable name for mode selection.
	EnvGaiaMode = "GAIA_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// Options configures the completer pair built by NewCompleters.
type Options struct {
	APIKey    string
	Model     string // creative model used by the tool-using agent
	FastModel string // deterministic model used by router/judge/composer
	Timeout   time.Duration
}

// NewCompleters creates the creative and fast completers. With
// GAIA_MODE=MOCK both are the deterministic mock client.
func NewCompleters(ctx context.Context, opts Options) (creative, fast Completer, err error) {
	if os.Getenv(EnvGaiaMode) == ModeMock {
		mock := NewMockClient()
		return mock, mock, nil
	}

	creative, err = NewGeminiClient(ctx, opts.APIKey, opts.Model, 0.7, 0.95, opts.Timeout)
	if err != nil {
		return nil, nil, err
	}
	fast, err = NewGeminiClient(ctx, opts.APIKey, opts.FastModel, 0, 0.95, opts.Timeout)
	if err != nil {
		return nil, nil, err
	}
	return creative, fast, nil
}
