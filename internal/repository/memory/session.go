package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// SessionRepository keeps sessions in process memory; they do not survive a restart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewSessionRepository creates an empty session store
func NewSessionRepository() repositories.SessionRepository {
	return &SessionRepository{sessions: make(map[string]models.Session)}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return conflict("session", session.ID, "session already exists")
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: "session not found"}
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

// Authenticator accepts a fixed set of credentials and issues opaque tokens.
// It stands in for the API's login mutation when no API is configured.
type Authenticator struct {
	users map[string]string
}

// NewAuthenticator creates an authenticator for identifier -> password pairs.
func NewAuthenticator(users map[string]string) repositories.Authenticator {
	return &Authenticator{users: users}
}

func (a *Authenticator) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	want, ok := a.users[identifier]
	if !ok || want != password {
		return "", nil, &domain.UnauthorizedError{Message: "invalid identifier or password"}
	}
	return fmt.Sprintf("memory-%s", uuid.NewString()), &models.User{
		ID:       identifier,
		Username: identifier,
	}, nil
}

// TransactionManager runs fn directly; the memory stores apply each call atomically.
type TransactionManager struct{}

func NewTransactionManager() repositories.TransactionManager {
	return TransactionManager{}
}

func (TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
