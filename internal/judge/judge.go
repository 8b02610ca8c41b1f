// Package judge validates specialist results before they reach the user.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/prompt"
)

// Judge is the quality gate applied to carbono and diagnostico results.
type Judge struct {
	completer llm.Completer
}

// New creates a judge over the given completer.
func New(completer llm.Completer) *Judge {
	return &Judge{completer: completer}
}

// Evaluate runs the four checks and returns exactly one verdict. The
// format check is decided locally: a result that fails the structural
// contract is rejected without a completion round-trip. Any token
// outside the known set maps to VerdictUnrecognized.
func (j *Judge) Evaluate(ctx context.Context, question string, result domain.SpecialistResult) (domain.Verdict, error) {
	if !result.WellFormed() {
		return domain.VerdictRejectedFormat, nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return domain.VerdictRejectedFormat, nil
	}

	rendered, err := prompt.Judge.Render(prompt.Slots{
		Question: question,
		Context:  string(payload),
	})
	if err != nil {
		return "", err
	}

	out, err := j.completer.Complete(ctx, rendered)
	if err != nil {
		return "", fmt.Errorf("judge completion failed: %w", err)
	}

	return domain.ParseVerdict(firstToken(out)), nil
}

// firstToken returns the first non-empty line, trimmed.
func firstToken(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
