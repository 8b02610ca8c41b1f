package llm

import (
	"context"
	"strings"
)

// MockClient is a deterministic Completer for local runs without API
// credentials. It sniffs the stage markers rendered into the prompt and
// answers with a plausible, well-formed output for that stage.
type MockClient struct{}

// NewMockClient creates a new mock completer.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a canned response for the pipeline stage the prompt
// belongs to.
func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "ROUTE=<"):
		return m.route(prompt), nil
	case strings.Contains(prompt, `"domain": "diagnostico"`):
		return `{"domain":"diagnostico","intent":"analisar","response":"[MOCK] Análise concluída com base nos dados da ferramenta.","recommendation":"[MOCK] Continue acompanhando suas emissões."}`, nil
	case strings.Contains(prompt, `"domain": "carbono"`):
		return `{"domain":"carbono","intent":"informar","response":"[MOCK] Pegada de carbono é o total de gases de efeito estufa emitidos.","recommendation":"[MOCK] Prefira transporte coletivo."}`, nil
	case strings.Contains(prompt, "APPROVED"):
		return "APPROVED", nil
	case strings.Contains(prompt, "TRECHOS DO FAQ"):
		return "[MOCK] Resposta baseada nos trechos do FAQ.", nil
	default:
		return "[MOCK] Que bom te ver por aqui! Como posso ajudar com sustentabilidade hoje? 🌿", nil
	}
}

func (m *MockClient) route(prompt string) string {
	lower := strings.ToLower(prompt)
	route := "fora_de_escopo"
	switch {
	case strings.Contains(lower, "crachá") || strings.Contains(lower, "média") || strings.Contains(lower, "dados"):
		route = "diagnostico"
	case strings.Contains(lower, "faq") || strings.Contains(lower, "aplicativo"):
		route = "faq"
	case strings.Contains(lower, "carbono") || strings.Contains(lower, "co2") || strings.Contains(lower, "sustent"):
		route = "carbono"
	}
	if route == "fora_de_escopo" {
		return "Olá! Meu foco é ajudar com a redução de emissões de carbono. Como posso te apoiar nesse tema hoje? 🌿"
	}
	return "ROUTE=" + route + "\nPERGUNTA_ORIGINAL=[MOCK] pergunta encaminhada"
}
