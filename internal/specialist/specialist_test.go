package specialist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/tools"
)

// scriptedCompleter returns its outputs in order, recording every prompt.
type scriptedCompleter struct {
	outputs []string
	err     error
	prompts []string
}

func (s *scriptedCompleter) Complete(ctx context.Context, p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if s.err != nil {
		return "", s.err
	}
	if len(s.outputs) == 0 {
		return "", fmt.Errorf("script exhausted")
	}
	out := s.outputs[0]
	s.outputs = s.outputs[1:]
	return out, nil
}

type fixedRetriever struct {
	passages []string
}

func (f fixedRetriever) Retrieve(ctx context.Context, query string, k int) []string {
	if len(f.passages) > k {
		return f.passages[:k]
	}
	return f.passages
}

func TestCarbonoParsesWrappedJSON(t *testing.T) {
	c := NewCarbono(&scriptedCompleter{outputs: []string{
		"Claro! Aqui está:\n```json\n{\"domain\":\"carbono\",\"intent\":\"informar\",\"response\":\"CO2 é um gás de efeito estufa.\",\"recommendation\":\"Prefira transporte coletivo.\"}\n```",
	}}, "p")

	result, err := c.Respond(context.Background(), "o que é CO2?", nil)
	assert.NoError(t, err)
	assert.Equal(t, "carbono", result.Domain)
	assert.Equal(t, "CO2 é um gás de efeito estufa.", result.Response)
}

func TestCarbonoMalformedOutputFallsBack(t *testing.T) {
	c := NewCarbono(&scriptedCompleter{outputs: []string{"não sei produzir JSON"}}, "p")

	result, err := c.Respond(context.Background(), "pergunta", nil)
	assert.NoError(t, err)
	assert.Equal(t, "carbono", result.Domain)
	assert.Equal(t, "erro", result.Intent)
	assert.NotEmpty(t, result.Response)
}

func TestCarbonoCompletionErrorPropagates(t *testing.T) {
	c := NewCarbono(&scriptedCompleter{err: errors.New("down")}, "p")
	_, err := c.Respond(context.Background(), "pergunta", nil)
	assert.Error(t, err)
}

func newAgentRegistry(t *testing.T, record tools.ExecutorFunc, aggregate tools.ExecutorFunc) *tools.Registry {
	t.Helper()
	r := tools.NewRegistry()
	if record != nil {
		r.MustRegister(tools.ToolFetchEmployeeRecord, record)
	}
	if aggregate != nil {
		r.MustRegister(tools.ToolFetchAggregateSummary, aggregate)
	}
	return r
}

func TestDiagnosticoIndividualFlow(t *testing.T) {
	var gotArgs json.RawMessage
	registry := newAgentRegistry(t, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		gotArgs = args
		return json.RawMessage(`{"status":"ok","emission_level":2.4}`), nil
	}, nil)

	c := &scriptedCompleter{outputs: []string{
		"TOOL=fetch_employee_record\nBADGE=123",
		`{"domain":"diagnostico","intent":"analisar","response":"Seu nível de emissão é 2.4.","recommendation":"Reduza o uso do carro."}`,
	}}
	agent := NewDiagnostico(c, registry, "p", zap.NewNop())

	result, err := agent.Respond(context.Background(), "dados do crachá 123", nil)
	assert.NoError(t, err)
	assert.Equal(t, "diagnostico", result.Domain)
	assert.JSONEq(t, `{"badge_number":123}`, string(gotArgs))
	// the tool result must have been fed back into the second prompt
	assert.Contains(t, c.prompts[1], `"emission_level":2.4`)
}

func TestDiagnosticoToolNotFoundBecomesExplanation(t *testing.T) {
	registry := newAgentRegistry(t, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		return json.RawMessage(`{"status":"error","message":"Nenhum formulário encontrado para o crachá 999"}`), nil
	}, nil)

	c := &scriptedCompleter{outputs: []string{
		"TOOL=fetch_employee_record\nBADGE=999",
		`{"domain":"diagnostico","intent":"analisar","response":"Não encontrei formulário para o crachá 999.","recommendation":"Confira se o número do crachá está correto."}`,
	}}
	agent := NewDiagnostico(c, registry, "p", zap.NewNop())

	result, err := agent.Respond(context.Background(), "dados do crachá 999", nil)
	assert.NoError(t, err)
	assert.Contains(t, c.prompts[1], "Nenhum formulário encontrado")
	assert.Contains(t, result.Recommendation, "crachá")
}

func TestDiagnosticoUnexpectedToolFailureIsCaught(t *testing.T) {
	registry := newAgentRegistry(t, nil, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		return nil, errors.New("database on fire")
	})

	c := &scriptedCompleter{outputs: []string{
		"TOOL=fetch_aggregate_summary",
		`{"domain":"diagnostico","intent":"erro","response":"Tive um problema ao consultar os dados.","recommendation":"Tente novamente em instantes."}`,
	}}
	agent := NewDiagnostico(c, registry, "p", zap.NewNop())

	result, err := agent.Respond(context.Background(), "qual a média do time?", nil)
	assert.NoError(t, err)
	assert.Contains(t, c.prompts[1], "falha inesperada")
	assert.NotEmpty(t, result.Response)
}

func TestDiagnosticoLoopBoundForcesFallback(t *testing.T) {
	registry := newAgentRegistry(t, nil, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		return json.RawMessage(`{"status":"ok"}`), nil
	})

	c := &scriptedCompleter{outputs: []string{
		"TOOL=fetch_aggregate_summary",
		"TOOL=fetch_aggregate_summary",
		"TOOL=fetch_aggregate_summary",
		"TOOL=fetch_aggregate_summary",
		"TOOL=fetch_aggregate_summary",
	}}
	agent := NewDiagnostico(c, registry, "p", zap.NewNop())

	result, err := agent.Respond(context.Background(), "média?", nil)
	assert.NoError(t, err)
	assert.Equal(t, "erro", result.Intent)
	assert.NotEmpty(t, result.Response)
}

func TestDiagnosticoGarbageOutputFallsBack(t *testing.T) {
	agent := NewDiagnostico(&scriptedCompleter{outputs: []string{"hmm não sei"}}, tools.NewRegistry(), "p", zap.NewNop())

	result, err := agent.Respond(context.Background(), "média?", nil)
	assert.NoError(t, err)
	assert.Equal(t, "erro", result.Intent)
	assert.Equal(t, "diagnostico", result.Domain)
}

func TestDiagnosticoMissingBadge(t *testing.T) {
	registry := newAgentRegistry(t, func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		t.Fatal("executor must not run without a badge")
		return nil, nil
	}, nil)

	c := &scriptedCompleter{outputs: []string{
		"TOOL=fetch_employee_record",
		`{"domain":"diagnostico","intent":"erro","response":"Preciso do número do crachá.","recommendation":"Informe o crachá."}`,
	}}
	agent := NewDiagnostico(c, registry, "p", zap.NewNop())

	_, err := agent.Respond(context.Background(), "meus dados", nil)
	assert.NoError(t, err)
	assert.Contains(t, c.prompts[1], "crachá ausente")
}

func TestFAQEmptyRetrievalYieldsFixedText(t *testing.T) {
	f := NewFAQ(&scriptedCompleter{}, fixedRetriever{}, "p")

	answer, err := f.Answer(context.Background(), "como funciona o app?")
	assert.NoError(t, err)
	assert.Equal(t, NotFoundText, answer)
}

func TestFAQAnswerGroundedInPassages(t *testing.T) {
	c := &scriptedCompleter{outputs: []string{"O formulário é mensal."}}
	f := NewFAQ(c, fixedRetriever{passages: []string{"O formulário deve ser respondido mensalmente."}}, "p")

	answer, err := f.Answer(context.Background(), "com que frequência respondo o formulário?")
	assert.NoError(t, err)
	assert.Equal(t, "O formulário é mensal.", answer)
	assert.Contains(t, c.prompts[0], "respondido mensalmente")
}

func TestFAQRetrieverCapsAtTopK(t *testing.T) {
	many := make([]string, 10)
	for i := range many {
		many[i] = fmt.Sprintf("trecho %d", i)
	}
	c := &scriptedCompleter{outputs: []string{"ok"}}
	f := NewFAQ(c, fixedRetriever{passages: many}, "p")

	_, err := f.Answer(context.Background(), "pergunta")
	assert.NoError(t, err)
	assert.Contains(t, c.prompts[0], "trecho 5")
	assert.NotContains(t, c.prompts[0], "trecho 6")
}

func TestParseResultRejectsNonObject(t *testing.T) {
	_, ok := ParseResult("sem json aqui")
	assert.False(t, ok)

	_, ok = ParseResult("{quebrado")
	assert.False(t, ok)
}

func TestWellFormedRequiresKnownDomain(t *testing.T) {
	r := domain.SpecialistResult{Domain: "outro", Response: "x"}
	assert.False(t, r.WellFormed())

	r = domain.SpecialistResult{Domain: "carbono", Response: ""}
	assert.False(t, r.WellFormed())

	r = domain.SpecialistResult{Domain: "diagnostico", Response: "x"}
	assert.True(t, r.WellFormed())
}
