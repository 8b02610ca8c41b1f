package specialist

import (
	"context"
	"fmt"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/prompt"
)

// Carbono is the stateless general-knowledge information specialist.
type Carbono struct {
	completer llm.Completer
	persona   string
}

// NewCarbono creates the carbono specialist.
func NewCarbono(completer llm.Completer, persona string) *Carbono {
	return &Carbono{completer: completer, persona: persona}
}

// Respond answers the forwarded question. Malformed completion output is
// absorbed into the canned apology result so the judge always receives a
// well-formed object.
func (c *Carbono) Respond(ctx context.Context, question string, history []domain.Message) (domain.SpecialistResult, error) {
	rendered, err := prompt.Carbono.Render(prompt.Slots{
		Persona: c.persona,
		History: history,
		Input:   question,
	})
	if err != nil {
		return domain.SpecialistResult{}, err
	}

	out, err := c.completer.Complete(ctx, rendered)
	if err != nil {
		return domain.SpecialistResult{}, fmt.Errorf("carbono completion failed: %w", err)
	}

	result, ok := ParseResult(out)
	if !ok || !result.WellFormed() {
		return fallbackResult(string(domain.RouteCarbono)), nil
	}
	return result, nil
}
