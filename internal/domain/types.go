package domain

import "time"

// Message is a single entry in a session's conversation log.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// RouteDecision is the router's output for one turn. Either Direct is set
// and the text is the final reply, or Forward carries the dispatch target.
type RouteDecision struct {
	Direct  string
	Forward *ForwardDecision
}

// ForwardDecision names the specialist a turn is handed to.
type ForwardDecision struct {
	Route            Route
	OriginalQuestion string
	Persona          string
}

// IsDirect reports whether the decision carries a direct reply.
func (d RouteDecision) IsDirect() bool {
	return d.Forward == nil
}

// SpecialistResult is the structured object produced by the carbono and
// diagnostico specialists. It must be well formed before it reaches the
// judge; specialists substitute apology text rather than emit a broken one.
type SpecialistResult struct {
	Domain         string `json:"domain"`
	Intent         string `json:"intent"`
	Response       string `json:"response"`
	Recommendation string `json:"recommendation"`
}

// WellFormed reports whether the result satisfies the minimum structural
// contract: a known domain and a non-empty response text.
func (r SpecialistResult) WellFormed() bool {
	return (r.Domain == string(RouteCarbono) || r.Domain == string(RouteDiagnostico)) &&
		r.Response != ""
}

// ChatRequest is the inbound turn request.
type ChatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the outbound turn reply.
type ChatResponse struct {
	Answer    string `json:"answer"`
	SessionID string `json:"session_id"`
}
