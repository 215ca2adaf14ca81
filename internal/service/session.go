package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"freelancedesk/internal/auth"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// sessionService implements the SessionService interface
type sessionService struct {
	authenticator repositories.Authenticator
	sessions      repositories.SessionRepository
	inspector     auth.TokenInspector
	txManager     repositories.TransactionManager
	ttl           time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	authenticator repositories.Authenticator,
	sessions repositories.SessionRepository,
	inspector auth.TokenInspector,
	txManager repositories.TransactionManager,
	ttl time.Duration,
	logger *slog.Logger,
) services.SessionService {
	return &sessionService{
		authenticator: authenticator,
		sessions:      sessions,
		inspector:     inspector,
		txManager:     txManager,
		ttl:           ttl,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *sessionService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResult, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Identifier, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	token, user, err := s.authenticator.Login(ctx, strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		s.logger.Info("login failed", "identifier", req.Identifier, "error", err)
		return nil, err
	}

	return s.start(ctx, token, user, req.Next)
}

func (s *sessionService) LoginWithToken(ctx context.Context, req *services.TokenLoginRequest) (*services.LoginResult, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Token, validation.Required),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	token := strings.TrimSpace(strings.TrimPrefix(req.Token, "Bearer "))
	return s.start(ctx, token, nil, req.Next)
}

// start inspects the token and stores a session for it. Expiry is the
// configured TTL, capped by the token's own exp claim.
func (s *sessionService) start(ctx context.Context, token string, user *models.User, next string) (*services.LoginResult, error) {
	claims, err := s.inspector.Inspect(token)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.Time.UTC()
	}

	if user == nil {
		user = &models.User{ID: claims.Subject}
		if claims.UserID != nil {
			user.ID = fmt.Sprint(claims.UserID)
		}
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      *user,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.sessions.DeleteExpired(txCtx, now); err != nil {
			return err
		}
		return s.sessions.Create(txCtx, session)
	})
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("session created",
		"id", session.ID,
		"user_id", session.User.ID,
		"expires_at", session.ExpiresAt,
	)

	return &services.LoginResult{Session: session, Redirect: SafeRedirect(next)}, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, &domain.UnauthorizedError{Message: "not signed in"}
	}
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UnauthorizedError{Message: "session not found"}
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			s.logger.Warn("failed to delete expired session", "id", id, "error", err)
		}
		return nil, &domain.UnauthorizedError{Message: "session expired"}
	}
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info("session deleted", "id", id)
	return nil
}

// SafeRedirect keeps post-login redirects on this site. Anything that is
// not a local absolute path, or points back at /login, becomes "/".
func SafeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	if u.Path == "/login" || strings.HasPrefix(u.Path, "/login/") {
		return "/"
	}
	return next
}
