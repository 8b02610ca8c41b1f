package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intereco/gaia/internal/repository"
)

// Tool names exposed to the data-analysis agent.
const (
	ToolFetchEmployeeRecord   = "fetch_employee_record"
	ToolFetchAggregateSummary = "fetch_aggregate_summary"
)

type employeeRecordArgs struct {
	BadgeNumber int `json:"badge_number"`
}

// NewFormRegistry builds a registry with the two form-store tools.
// Executors report data problems inside the result payload
// ({status: error, message}) and reserve Go errors for infrastructure
// failures, so the agent can tell "not found" from "broken".
func NewFormRegistry(store repository.FormStore) *Registry {
	r := NewRegistry()

	r.MustRegister(ToolFetchEmployeeRecord, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		var a employeeRecordArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return statusError("argumento badge_number inválido"), nil
		}

		form, err := store.GetForm(ctx, a.BadgeNumber)
		if err != nil {
			return nil, fmt.Errorf("fetch_employee_record failed: %w", err)
		}
		if form == nil {
			return statusError(fmt.Sprintf("Nenhum formulário encontrado para o crachá %d", a.BadgeNumber)), nil
		}

		payload := map[string]interface{}{
			"status":         "ok",
			"badge_number":   form.BadgeNumber,
			"submitted_at":   form.SubmittedAt,
			"emission_level": form.EmissionLevel,
			"emission_class": form.EmissionClass,
			"answers":        form.Answers,
		}
		return marshal(payload)
	})

	r.MustRegister(ToolFetchAggregateSummary, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		summary, err := store.AggregateSummary(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch_aggregate_summary failed: %w", err)
		}
		if summary.TotalForms == 0 {
			return marshal(map[string]interface{}{
				"status":  "ok",
				"message": "Nenhum formulário encontrado para resumir.",
			})
		}
		return marshal(map[string]interface{}{
			"status":      "ok",
			"total_forms": summary.TotalForms,
			"questions":   summary.Questions,
		})
	})

	return r
}

func statusError(message string) json.RawMessage {
	out, _ := json.Marshal(map[string]string{"status": "error", "message": message})
	return out
}

func marshal(v interface{}) (json.RawMessage, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return out, nil
}
