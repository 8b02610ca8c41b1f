package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/prompt"
	"github.com/intereco/gaia/internal/tools"
)

// maxToolIterations bounds the agent loop; exceeding it forces the
// canned error result instead of spinning on a confused model.
const maxToolIterations = 4

// Diagnostico is the tool-using data-analysis agent. Each turn walks an
// explicit loop: Thinking -> ToolCall -> ToolResult -> (Thinking | FinalAnswer).
type Diagnostico struct {
	completer llm.Completer
	registry  *tools.Registry
	persona   string
	logger    *zap.Logger
}

// NewDiagnostico creates the data-analysis agent.
func NewDiagnostico(completer llm.Completer, registry *tools.Registry, persona string, logger *zap.Logger) *Diagnostico {
	return &Diagnostico{completer: completer, registry: registry, persona: persona, logger: logger}
}

// toolRequest is a parsed TOOL protocol block.
type toolRequest struct {
	name  string
	badge *int
}

// Respond runs the bounded tool loop. Tool failures never escape: they
// become either an explanatory result (data problems reported by the
// tool) or the canned error result (unexpected execution failure).
func (d *Diagnostico) Respond(ctx context.Context, question string, history []domain.Message) (domain.SpecialistResult, error) {
	rendered, err := prompt.DiagnosticoThinking.Render(prompt.Slots{
		Persona: d.persona,
		History: history,
		Input:   question,
	})
	if err != nil {
		return domain.SpecialistResult{}, err
	}

	for i := 0; i < maxToolIterations; i++ {
		out, err := d.completer.Complete(ctx, rendered)
		if err != nil {
			return domain.SpecialistResult{}, fmt.Errorf("diagnostico completion failed: %w", err)
		}

		req, ok := parseToolRequest(out)
		if !ok {
			result, ok := ParseResult(out)
			if !ok || !result.WellFormed() {
				return fallbackResult(string(domain.RouteDiagnostico)), nil
			}
			return result, nil
		}

		toolOut := d.invoke(ctx, req)
		rendered, err = prompt.DiagnosticoToolResult.Render(prompt.Slots{
			Input:   question,
			Context: string(toolOut),
		})
		if err != nil {
			return domain.SpecialistResult{}, err
		}
	}

	d.logger.Warn("diagnostico agent exceeded tool loop bound", zap.String("question", question))
	return fallbackResult(string(domain.RouteDiagnostico)), nil
}

// invoke executes the requested tool, converting every failure into a
// status payload the model can reason about.
func (d *Diagnostico) invoke(ctx context.Context, req toolRequest) json.RawMessage {
	if !d.registry.Known(req.name) {
		return statusErrorJSON("ferramenta desconhecida: " + req.name)
	}

	var args json.RawMessage
	if req.name == tools.ToolFetchEmployeeRecord {
		if req.badge == nil {
			return statusErrorJSON("número do crachá ausente na solicitação")
		}
		args, _ = json.Marshal(map[string]int{"badge_number": *req.badge})
	}

	out, err := d.registry.Execute(ctx, req.name, args)
	if err != nil {
		d.logger.Error("tool execution failed", zap.String("tool", req.name), zap.Error(err))
		return statusErrorJSON("falha inesperada ao consultar os dados")
	}
	return out
}

// parseToolRequest recognizes the TOOL protocol block. Anything else is
// treated as a final-answer attempt.
func parseToolRequest(output string) (toolRequest, bool) {
	var req toolRequest
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "TOOL":
			if req.name == "" {
				req.name = strings.TrimSpace(value)
			}
		case "BADGE":
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				req.badge = &n
			}
		}
	}
	return req, req.name != ""
}

func statusErrorJSON(message string) json.RawMessage {
	out, _ := json.Marshal(map[string]string{"status": "error", "message": message})
	return out
}
