// Package prompt renders the prompts sent to the completion service.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/intereco/gaia/internal/domain"
)

// Slots are the named values a Builder may interpolate. A Builder is a
// pure value: constructed once, free of hidden mutable state.
type Slots struct {
	Persona  string
	Examples string
	History  []domain.Message
	Input    string
	Today    string
	Context  string // stage-specific payload (tool result, passages, result JSON)
	Question string // original user question, for judge prompts
}

// Builder renders one stage's prompt from its template and slots.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses the template text. Templates reference slots as
// {{.Persona}}, {{.History}}, {{.Input}} and so on.
func NewBuilder(name, text string) (*Builder, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %s: %w", name, err)
	}
	return &Builder{tmpl: tmpl}, nil
}

// MustBuilder parses the template or panics; for package-level templates.
func MustBuilder(name, text string) *Builder {
	b, err := NewBuilder(name, text)
	if err != nil {
		panic(err)
	}
	return b
}

type renderData struct {
	Persona  string
	Examples string
	History  string
	Input    string
	Today    string
	Context  string
	Question string
}

// Render fills the template with the given slots.
func (b *Builder) Render(slots Slots) (string, error) {
	var sb strings.Builder
	err := b.tmpl.Execute(&sb, renderData{
		Persona:  slots.Persona,
		Examples: slots.Examples,
		History:  FormatHistory(slots.History),
		Input:    slots.Input,
		Today:    slots.Today,
		Context:  slots.Context,
		Question: slots.Question,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}

// FormatHistory renders the conversation log as "role: text" lines.
func FormatHistory(messages []domain.Message) string {
	if len(messages) == 0 {
		return "(sem histórico)"
	}
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
