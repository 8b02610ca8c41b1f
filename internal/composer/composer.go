// Package composer turns an approved specialist result into final prose.
package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/prompt"
)

// Composer is the empathetic voice of Gaia.
type Composer struct {
	completer llm.Completer
	persona   string
}

// New creates a composer over the given completer.
func New(completer llm.Completer, persona string) *Composer {
	return &Composer{completer: completer, persona: persona}
}

// Compose synthesizes the approved result into a warm reply, weaving the
// recommendation in as a natural continuation. History is passed so the
// model skips greetings mid-conversation.
func (c *Composer) Compose(ctx context.Context, result domain.SpecialistResult, history []domain.Message) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal specialist result: %w", err)
	}

	rendered, err := prompt.Composer.Render(prompt.Slots{
		Persona: c.persona,
		History: history,
		Context: string(payload),
	})
	if err != nil {
		return "", err
	}

	out, err := c.completer.Complete(ctx, rendered)
	if err != nil {
		return "", fmt.Errorf("composer completion failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
