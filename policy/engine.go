// Package policy implements the moderation pre-filter as an OPA policy gate.
package policy

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values produced by the moderation policy.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Engine evaluates the moderation policy over an utterance.
type Engine struct {
	query  rego.PreparedEvalQuery
	banned []string
}

// NewEngine prepares the moderation policy with the given banned-term list.
func NewEngine(ctx context.Context, banned []string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.moderation.decision"),
		rego.Module("moderation.rego", ModerationPolicy),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query, banned: banned}, nil
}

// Evaluate returns DecisionBlock when any banned term occurs in the
// utterance as a case-insensitive substring, DecisionAllow otherwise.
func (e *Engine) Evaluate(ctx context.Context, text string) (string, error) {
	input := map[string]interface{}{
		"text":         text,
		"banned_terms": e.banned,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// Rejected reports whether the utterance must be hard short-circuited.
func (e *Engine) Rejected(ctx context.Context, text string) (bool, error) {
	decision, err := e.Evaluate(ctx, text)
	if err != nil {
		return false, err
	}
	return decision == DecisionBlock, nil
}

// ModerationPolicy is the rego module backing the pre-filter.
const ModerationPolicy = `
package moderation

import rego.v1

default decision := "allow"

decision := "block" if {
	some term in input.banned_terms
	contains(lower(input.text), lower(term))
}
`

// LoadBannedWords reads a newline-delimited banned-term file. A missing
// file yields an empty list, matching the original loader's tolerance.
func LoadBannedWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open banned words file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.ToLower(strings.TrimSpace(scanner.Text())); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read banned words file: %w", err)
	}
	return words, nil
}
