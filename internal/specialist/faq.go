package specialist

import (
	"context"
	"fmt"
	"strings"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/prompt"
)

// FAQTopK is the fixed number of passages retrieved per question.
const FAQTopK = 6

// NotFoundText is the fixed fallback when retrieval yields nothing.
const NotFoundText = "Desculpe, não encontrei essa informação no FAQ. 🌿"

// Retriever is the knowledge retrieval capability. It never raises:
// failures collapse to an empty list.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) []string
}

// FAQ is the knowledge-retrieval specialist. Its answer is the final
// response verbatim: it bypasses the judge and the composer.
type FAQ struct {
	completer llm.Completer
	retriever Retriever
	persona   string
}

// NewFAQ creates the knowledge-retrieval specialist.
func NewFAQ(completer llm.Completer, retriever Retriever, persona string) *FAQ {
	return &FAQ{completer: completer, retriever: retriever, persona: persona}
}

// Answer responds grounded strictly in the retrieved passages, or with
// the fixed fallback text when there is nothing to ground on.
func (f *FAQ) Answer(ctx context.Context, question string) (string, error) {
	passages := f.retriever.Retrieve(ctx, question, FAQTopK)
	if len(passages) == 0 {
		return NotFoundText, nil
	}

	rendered, err := prompt.FAQ.Render(prompt.Slots{
		Persona: f.persona,
		Input:   question,
		Context: strings.Join(passages, "\n\n"),
	})
	if err != nil {
		return "", err
	}

	out, err := f.completer.Complete(ctx, rendered)
	if err != nil {
		return "", fmt.Errorf("faq completion failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
