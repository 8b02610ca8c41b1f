// Package llm provides an abstraction for the completion service.
package llm

import "context"

// Completer is the completion capability consumed by the router, the
// specialists, the judge and the composer: rendered prompt in, text out.
// Calls are synchronous; the core never retries a failed call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Completer = (*GeminiClient)(nil)
	_ Completer = (*MockClient)(nil)
)
