package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/domain"
)

// Fixed user-facing texts. Every recoverable failure inside the pipeline
// maps to exactly one of these.
const (
	// ModerationText answers a pre-filter rejection. Hard short-circuit:
	// no routing, no specialist call, no history append.
	ModerationText = "Por favor, vamos manter a conversa respeitosa e focada em sustentabilidade. 🌿"

	// OutOfScopeText answers a forwarding decision with an unknown route.
	OutOfScopeText = "Olá! Sou a Gaia. Meu foco é ajudar com a redução de emissões de carbono. Como posso te apoiar nesse tema hoje? 🌿"

	fallbackRelevance     = "Hmm, a resposta que preparei fugiu do que você perguntou. Pode reformular a pergunta? 🌿"
	fallbackToxicity      = "Prefiro não enviar a resposta que foi gerada. Vamos manter o foco em sustentabilidade? 🌿"
	fallbackHallucination = "Não tenho confiança suficiente nos dados da resposta gerada. Pode tentar perguntar de outro jeito? 🌿"
	fallbackFormat        = "Tive um problema ao montar a resposta. Por favor, tente novamente. 🌿"
	fallbackUnrecognized  = "Não consegui processar sua pergunta com segurança. Pode tentar novamente? 🌿"
)

// FallbackForVerdict maps every non-approved verdict to its fixed reply.
// The mapping is total: anything outside the known rejections gets the
// generic safety fallback.
func FallbackForVerdict(v domain.Verdict) string {
	switch v {
	case domain.VerdictRejectedRelevance:
		return fallbackRelevance
	case domain.VerdictRejectedToxicity:
		return fallbackToxicity
	case domain.VerdictRejectedHallucination:
		return fallbackHallucination
	case domain.VerdictRejectedFormat:
		return fallbackFormat
	}
	return fallbackUnrecognized
}

// Chat executes one conversation turn and always returns a displayable
// string; an error here is an unexpected failure for the boundary to
// translate into a generic internal-error response.
func (s *Service) Chat(ctx context.Context, sessionID, question string) (string, error) {
	rejected, err := s.prefilter.Rejected(ctx, question)
	if err != nil {
		return "", fmt.Errorf("pre-filter failed: %w", err)
	}
	if rejected {
		s.logger.Info("utterance rejected by pre-filter", zap.String("session_id", sessionID))
		return ModerationText, nil
	}

	priorHistory, _ := s.store.History(ctx, sessionID)

	decision, err := s.router.Route(ctx, question, priorHistory)
	if err != nil {
		return "", err
	}

	final, err := s.dispatch(ctx, question, decision, priorHistory)
	if err != nil {
		return "", err
	}

	if err := s.store.AppendTurn(ctx, sessionID, question, final); err != nil {
		return "", fmt.Errorf("failed to append turn: %w", err)
	}
	return final, nil
}

// dispatch resolves the routed turn to its final text.
func (s *Service) dispatch(ctx context.Context, question string, decision domain.RouteDecision, priorHistory []domain.Message) (string, error) {
	if decision.IsDirect() {
		s.logger.Debug("router answered directly")
		return decision.Direct, nil
	}

	fwd := decision.Forward
	s.logger.Debug("forwarding turn", zap.String("route", string(fwd.Route)))

	switch fwd.Route {
	case domain.RouteFAQ:
		// Ungated: the FAQ answer is the final response verbatim.
		return s.faq.Answer(ctx, fwd.OriginalQuestion)

	case domain.RouteCarbono, domain.RouteDiagnostico:
		var result domain.SpecialistResult
		var err error
		if fwd.Route == domain.RouteCarbono {
			result, err = s.carbono.Respond(ctx, fwd.OriginalQuestion, priorHistory)
		} else {
			result, err = s.diagnostico.Respond(ctx, fwd.OriginalQuestion, priorHistory)
		}
		if err != nil {
			return "", err
		}
		return s.judgeAndCompose(ctx, fwd.OriginalQuestion, result, priorHistory)

	default:
		s.logger.Debug("unknown route, using out-of-scope fallback", zap.String("route", string(fwd.Route)))
		return OutOfScopeText, nil
	}
}

// judgeAndCompose applies the quality gate and, on approval only, the
// composer. Every rejection maps to its fixed fallback.
func (s *Service) judgeAndCompose(ctx context.Context, question string, result domain.SpecialistResult, priorHistory []domain.Message) (string, error) {
	verdict, err := s.judge.Evaluate(ctx, question, result)
	if err != nil {
		return "", err
	}
	if verdict != domain.VerdictApproved {
		s.logger.Info("specialist result rejected", zap.String("verdict", string(verdict)))
		return FallbackForVerdict(verdict), nil
	}
	return s.composer.Compose(ctx, result, priorHistory)
}

// History exposes the session log for the transport boundary. The second
// return value is false for sessions that were never referenced.
func (s *Service) History(ctx context.Context, sessionID string) ([]domain.Message, bool) {
	return s.store.History(ctx, sessionID)
}
