package domain

import "time"

// FormRecord is one employee's submitted emissions form.
type FormRecord struct {
	BadgeNumber   int          `json:"badge_number"`
	SubmittedAt   time.Time    `json:"submitted_at"`
	EmissionLevel float64      `json:"emission_level"`
	EmissionClass string       `json:"emission_class"`
	Answers       []FormAnswer `json:"answers"`
}

// FormAnswer pairs a questionnaire question with the answer given.
type FormAnswer struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Answer   string `json:"answer"`
}

// Question is one questionnaire entry.
type Question struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
}

// FormSummary aggregates every submitted form: total count plus, per
// question, how often each answer was given.
type FormSummary struct {
	TotalForms int               `json:"total_forms"`
	Questions  []QuestionSummary `json:"questions"`
}

// QuestionSummary is the per-question answer tally.
type QuestionSummary struct {
	Question string         `json:"question"`
	Category string         `json:"category"`
	Counts   map[string]int `json:"counts"`
}
