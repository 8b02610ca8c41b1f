// Package repository persists employee form submissions in SQLite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/intereco/gaia/internal/domain"
)

// FormStore is the structured data store consumed by the data-analysis tools.
type FormStore interface {
	GetForm(ctx context.Context, badgeNumber int) (*domain.FormRecord, error)
	AggregateSummary(ctx context.Context) (*domain.FormSummary, error)

	CreateQuestion(ctx context.Context, q domain.Question) error
	CreateForm(ctx context.Context, form domain.FormRecord, answers map[int]string) error

	Close() error
}

// SQLiteStore implements FormStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ FormStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and migrates) a SQLite form store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			question_id INTEGER PRIMARY KEY,
			question TEXT NOT NULL,
			category TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS forms (
			badge_number INTEGER PRIMARY KEY,
			submitted_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			emission_level REAL NOT NULL,
			emission_class TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS answers (
			badge_number INTEGER NOT NULL,
			question_id INTEGER NOT NULL,
			answer TEXT NOT NULL,
			PRIMARY KEY (badge_number, question_id),
			FOREIGN KEY (badge_number) REFERENCES forms(badge_number),
			FOREIGN KEY (question_id) REFERENCES questions(question_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_question ON answers(question_id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// GetForm returns one employee's form with its answers, or nil when the
// badge number has no submission.
func (s *SQLiteStore) GetForm(ctx context.Context, badgeNumber int) (*domain.FormRecord, error) {
	form := &domain.FormRecord{BadgeNumber: badgeNumber}
	err := s.db.QueryRowContext(ctx,
		`SELECT submitted_at, emission_level, emission_class FROM forms WHERE badge_number = ?`,
		badgeNumber,
	).Scan(&form.SubmittedAt, &form.EmissionLevel, &form.EmissionClass)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT q.question, q.category, a.answer
		 FROM answers a JOIN questions q ON q.question_id = a.question_id
		 WHERE a.badge_number = ?
		 ORDER BY a.question_id`,
		badgeNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.FormAnswer
		if err := rows.Scan(&a.Question, &a.Category, &a.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		form.Answers = append(form.Answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate answers: %w", err)
	}
	return form, nil
}

// AggregateSummary tallies every submitted form: total count plus the
// answer distribution of each question.
func (s *SQLiteStore) AggregateSummary(ctx context.Context) (*domain.FormSummary, error) {
	summary := &domain.FormSummary{}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM forms`).Scan(&summary.TotalForms); err != nil {
		return nil, fmt.Errorf("failed to count forms: %w", err)
	}
	if summary.TotalForms == 0 {
		return summary, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT q.question_id, q.question, q.category, a.answer, COUNT(*)
		 FROM answers a JOIN questions q ON q.question_id = a.question_id
		 GROUP BY q.question_id, a.answer
		 ORDER BY q.question_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate answers: %w", err)
	}
	defer rows.Close()

	byQuestion := map[int]*domain.QuestionSummary{}
	var order []int
	for rows.Next() {
		var (
			qid                        int
			question, category, answer string
			count                      int
		)
		if err := rows.Scan(&qid, &question, &category, &answer, &count); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		qs := byQuestion[qid]
		if qs == nil {
			qs = &domain.QuestionSummary{Question: question, Category: category, Counts: map[string]int{}}
			byQuestion[qid] = qs
			order = append(order, qid)
		}
		qs.Counts[answer] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aggregate rows: %w", err)
	}

	for _, qid := range order {
		summary.Questions = append(summary.Questions, *byQuestion[qid])
	}
	return summary, nil
}

// CreateQuestion inserts a questionnaire entry.
func (s *SQLiteStore) CreateQuestion(ctx context.Context, q domain.Question) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (question_id, question, category) VALUES (?, ?, ?)`,
		q.QuestionID, q.Question, q.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// CreateForm inserts a form and its answers keyed by question id.
func (s *SQLiteStore) CreateForm(ctx context.Context, form domain.FormRecord, answers map[int]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO forms (badge_number, submitted_at, emission_level, emission_class) VALUES (?, ?, ?, ?)`,
		form.BadgeNumber, form.SubmittedAt, form.EmissionLevel, form.EmissionClass,
	); err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	for qid, answer := range answers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO answers (badge_number, question_id, answer) VALUES (?, ?, ?)`,
			form.BadgeNumber, qid, answer,
		); err != nil {
			return fmt.Errorf("failed to create answer: %w", err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
