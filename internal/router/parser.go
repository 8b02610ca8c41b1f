package router

import (
	"strings"

	"github.com/intereco/gaia/internal/domain"
)

// ForwardMarker opens the line-oriented forwarding protocol.
const ForwardMarker = "ROUTE="

// Protocol keys.
const (
	keyRoute            = "ROUTE"
	keyOriginalQuestion = "PERGUNTA_ORIGINAL"
)

// Parse interprets the router's raw output.
//
// Defensive rules:
//   - output not beginning with the forwarding marker is a direct reply,
//     returned verbatim (whitespace-trimmed);
//   - a forwarding output missing PERGUNTA_ORIGINAL falls back to the
//     raw utterance;
//   - a missing or unknown ROUTE value is preserved so the orchestrator
//     applies its out-of-scope behavior;
//   - duplicate keys keep the first occurrence, out-of-order and unknown
//     keys are tolerated.
func Parse(output, rawQuestion, persona string) domain.RouteDecision {
	trimmed := strings.TrimSpace(output)
	if !strings.HasPrefix(trimmed, ForwardMarker) {
		return domain.RouteDecision{Direct: trimmed}
	}

	fields := map[string]string{}
	for _, line := range strings.Split(trimmed, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if _, seen := fields[key]; !seen {
			fields[key] = value
		}
	}

	route := domain.Route(fields[keyRoute])
	if route == "" {
		route = domain.RouteOutOfScope
	}

	question := fields[keyOriginalQuestion]
	if question == "" {
		question = rawQuestion
	}

	return domain.RouteDecision{Forward: &domain.ForwardDecision{
		Route:            route,
		OriginalQuestion: question,
		Persona:          persona,
	}}
}
