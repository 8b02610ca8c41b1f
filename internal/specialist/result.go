// Package specialist implements the three responders a turn can be
// forwarded to: carbono, diagnostico and faq.
package specialist

import (
	"encoding/json"
	"strings"

	"github.com/intereco/gaia/internal/domain"
)

// ParseResult extracts a SpecialistResult from raw completion output.
// Models wrap JSON in prose or code fences often enough that the parse
// looks for the outermost object instead of unmarshalling verbatim.
func ParseResult(output string) (domain.SpecialistResult, bool) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return domain.SpecialistResult{}, false
	}

	var result domain.SpecialistResult
	if err := json.Unmarshal([]byte(output[start:end+1]), &result); err != nil {
		return domain.SpecialistResult{}, false
	}
	return result, true
}

// fallbackResult builds the canned apology result for a domain. The
// response text must stay non-empty and user-safe whatever went wrong.
func fallbackResult(dom string) domain.SpecialistResult {
	return domain.SpecialistResult{
		Domain:         dom,
		Intent:         "erro",
		Response:       "Desculpe, não consegui concluir essa análise agora. 🌿",
		Recommendation: "Por favor, tente reformular a pergunta ou repita em instantes.",
	}
}
