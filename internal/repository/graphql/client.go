package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gql "github.com/hasura/go-graphql-client"
	"golang.org/x/oauth2"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
)

// ClientConfig is shared by every session-bound Client.
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
	PageSize int
	// Transport is the shared base round tripper; connections are pooled
	// across sessions. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client executes GraphQL operations against the API as one session.
type Client struct {
	gql      *gql.Client
	pageSize int
	logger   *slog.Logger
}

// NewClient creates a client that authenticates every request with the
// session's bearer token. A nil session yields an anonymous client (login).
func NewClient(cfg *ClientConfig, session *models.Session) *Client {
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	transport := base
	if session != nil && session.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: session.Token,
				TokenType:   "Bearer",
			}),
			Base: base,
		}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > config.DefaultPageSize {
		pageSize = config.DefaultPageSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		gql: gql.NewClient(cfg.Endpoint, &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		}),
		pageSize: pageSize,
		logger:   logger,
	}
}

// exec runs one operation and decodes its data object into out.
func (c *Client) exec(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	start := time.Now()
	data, err := c.gql.ExecRaw(ctx, query, vars)
	if err != nil {
		c.logger.Debug("graphql operation failed",
			"operation", operation,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return translateError(operation, err)
	}

	c.logger.Debug("graphql operation",
		"operation", operation,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.UpstreamError{Operation: operation, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// listVars builds the pagination/sort/filters variables of a list query.
func (c *Client) listVars(sortField string, filters filter) map[string]any {
	vars := map[string]any{
		"pagination": map[string]any{"pageSize": c.pageSize},
		"sort":       []string{sortField},
	}
	if len(filters) > 0 {
		vars["filters"] = map[string]any(filters)
	}
	return vars
}

// translateError maps API errors onto domain errors.
func translateError(operation string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	var gqlErrs gql.Errors
	if !errors.As(err, &gqlErrs) || len(gqlErrs) == 0 {
		return &domain.UpstreamError{Operation: operation, Err: err}
	}

	first := gqlErrs[0]
	code, _ := first.Extensions["code"].(string)
	switch code {
	case "FORBIDDEN":
		return &domain.ForbiddenError{Message: first.Message}
	case "UNAUTHENTICATED":
		return &domain.UnauthorizedError{Message: first.Message}
	case "BAD_USER_INPUT":
		fields := fieldErrors(first.Extensions)
		if isUniqueViolation(first.Message, fields) {
			return &domain.ConflictError{Message: first.Message}
		}
		return &domain.ValidationError{Message: first.Message, Fields: fields}
	case "request_error":
		// transport failures carry the HTTP status in the message
		switch {
		case strings.Contains(first.Message, "401"):
			return &domain.UnauthorizedError{Message: "api rejected the session token"}
		case strings.Contains(first.Message, "403"):
			return &domain.ForbiddenError{Message: "api denied access"}
		}
	}
	return &domain.UpstreamError{Operation: operation, Err: err}
}

// fieldErrors extracts {error: {details: {errors: [{path: [...], message}]}}}
// from the API's validation error extensions.
func fieldErrors(ext map[string]any) map[string]string {
	apiErr, _ := ext["error"].(map[string]any)
	details, _ := apiErr["details"].(map[string]any)
	list, _ := details["errors"].([]any)

	fields := make(map[string]string, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		path, _ := entry["path"].([]any)
		message, _ := entry["message"].(string)
		if len(path) == 0 {
			continue
		}
		if name, ok := path[len(path)-1].(string); ok {
			fields[name] = message
		}
	}
	return fields
}

func isUniqueViolation(message string, fields map[string]string) bool {
	if strings.Contains(strings.ToLower(message), "unique") {
		return true
	}
	for _, m := range fields {
		if strings.Contains(strings.ToLower(m), "unique") {
			return true
		}
	}
	return false
}
