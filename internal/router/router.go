// Package router classifies each utterance into a direct reply or a
// forwarding decision for one of the specialists.
package router

import (
	"context"
	"fmt"
	"time"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/prompt"
)

// Router is the intent router.
type Router struct {
	completer llm.Completer
	persona   string
	now       func() time.Time
}

// New creates a router over the given completer.
func New(completer llm.Completer, persona string) *Router {
	return &Router{completer: completer, persona: persona, now: time.Now}
}

// Route classifies the utterance. The completion output is parsed
// defensively: anything that does not begin with the forwarding marker
// is a direct reply, verbatim.
func (r *Router) Route(ctx context.Context, question string, history []domain.Message) (domain.RouteDecision, error) {
	rendered, err := prompt.Router.Render(prompt.Slots{
		Persona: r.persona,
		History: history,
		Input:   question,
		Today:   r.today(),
	})
	if err != nil {
		return domain.RouteDecision{}, err
	}

	out, err := r.completer.Complete(ctx, rendered)
	if err != nil {
		return domain.RouteDecision{}, fmt.Errorf("router completion failed: %w", err)
	}

	return Parse(out, question, r.persona), nil
}

func (r *Router) today() string {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return r.now().In(loc).Format("2006-01-02")
}
