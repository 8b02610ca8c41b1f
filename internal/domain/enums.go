// Package domain defines the core domain models for the Gaia conversation engine.
package domain

// Route is the classification label chosen by the intent router.
type Route string

const (
	RouteDiagnostico Route = "diagnostico"
	RouteCarbono     Route = "carbono"
	RouteFAQ         Route = "faq"
	RouteOutOfScope  Route = "fora_de_escopo"
)

// KnownRoute reports whether r is a route the orchestrator can dispatch.
func KnownRoute(r Route) bool {
	switch r {
	case RouteDiagnostico, RouteCarbono, RouteFAQ:
		return true
	}
	return false
}

// Verdict is the quality-gate outcome for a specialist result.
type Verdict string

const (
	VerdictApproved              Verdict = "APPROVED"
	VerdictRejectedRelevance     Verdict = "REJECTED_RELEVANCE"
	VerdictRejectedToxicity      Verdict = "REJECTED_TOXICITY"
	VerdictRejectedHallucination Verdict = "REJECTED_HALLUCINATION"
	VerdictRejectedFormat        Verdict = "REJECTED_FORMAT"
	// VerdictUnrecognized is the defensive catch-all for any token the
	// judge emits outside the known set.
	VerdictUnrecognized Verdict = "UNRECOGNIZED"
)

// ParseVerdict maps a raw judge token to a Verdict, defaulting to
// VerdictUnrecognized for anything outside the known set.
func ParseVerdict(token string) Verdict {
	switch Verdict(token) {
	case VerdictApproved, VerdictRejectedRelevance, VerdictRejectedToxicity,
		VerdictRejectedHallucination, VerdictRejectedFormat:
		return Verdict(token)
	}
	return VerdictUnrecognized
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
