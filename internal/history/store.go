// Package history provides the append-only session conversation log.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/intereco/gaia/internal/domain"
)

// Store is the session history boundary. Sessions are created on first
// reference and never deleted; messages are append-only.
type Store interface {
	// History returns the ordered messages for a session. The second
	// return value is false when the session has never been referenced.
	History(ctx context.Context, sessionID string) ([]domain.Message, bool)

	// Append adds a single message to a session, creating it if needed.
	Append(ctx context.Context, sessionID, role, content string) error

	// AppendTurn atomically appends the user message and the assistant
	// reply of one completed turn, so concurrent turns on the same
	// session can never interleave their pairs.
	AppendTurn(ctx context.Context, sessionID, userText, assistantText string) error
}

type session struct {
	mu       sync.Mutex
	messages []domain.Message
}

// MemoryStore is an in-memory Store with single-writer-per-key discipline:
// every mutation of one session holds that session's lock.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*session)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) get(sessionID string, create bool) *session {
	s.mu.RLock()
	sess := s.sessions[sessionID]
	s.mu.RUnlock()
	if sess != nil || !create {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess = s.sessions[sessionID]; sess == nil {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	return sess
}

// History returns a copy of the session's ordered messages.
func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]domain.Message, bool) {
	sess := s.get(sessionID, false)
	if sess == nil {
		return nil, false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]domain.Message, len(sess.messages))
	copy(out, sess.messages)
	return out, true
}

// Append adds one message to the session, creating the session if needed.
func (s *MemoryStore) Append(ctx context.Context, sessionID, role, content string) error {
	sess := s.get(sessionID, true)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.append(sessionID, role, content)
	return nil
}

// AppendTurn appends the user/assistant pair of one turn under a single lock.
func (s *MemoryStore) AppendTurn(ctx context.Context, sessionID, userText, assistantText string) error {
	sess := s.get(sessionID, true)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.append(sessionID, domain.RoleUser, userText)
	sess.append(sessionID, domain.RoleAssistant, assistantText)
	return nil
}

func (sess *session) append(sessionID, role, content string) {
	sess.messages = append(sess.messages, domain.Message{
		MessageID: "msg_" + uuid.New().String()[:8],
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}
