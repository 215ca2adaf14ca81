package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// PostgresSessionRepository implements the SessionRepository interface
type PostgresSessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(config *RepositoryConfig) repositories.SessionRepository {
	return &PostgresSessionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create stores a new session
func (r *PostgresSessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, token, user_id, username, email, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		session.ID,
		session.Token,
		session.User.ID,
		session.User.Username,
		session.User.Email,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		return sessionError("create session", session.ID, err)
	}
	return nil
}

// GetByID retrieves a session by ID
func (r *PostgresSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := fmt.Sprintf(`
		SELECT id, token, user_id, username, email, expires_at, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Sessions)

	var s models.Session
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Token,
		&s.User.ID,
		&s.User.Username,
		&s.User.Email,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, sessionError("get session", id, err)
	}
	return &s, nil
}

// Delete removes a session
func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry
func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= $1`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// uniqueViolation is the SQLSTATE of a duplicate session id.
const uniqueViolation = "23505"

// sessionError maps driver errors onto domain errors: a missing row is
// NotFound, a duplicate id is a Conflict.
func sessionError(op, id string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Message: "session not found"}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.ConflictError{
			Message:      "session already exists",
			ResourceType: "session",
			ResourceID:   id,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
