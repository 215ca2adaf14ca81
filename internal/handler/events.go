package handler

import (
	"context"
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/handler/sse"
	"freelancedesk/internal/httputil"
	"freelancedesk/internal/service"
)

// eventDirectoryChanged is the SSE event name for directory updates
const eventDirectoryChanged = "directory.changed"

// EventsHandler streams directory changes over Server-Sent Events
type EventsHandler struct {
	*Responder
	feed   *service.ChangeFeed
	config *sse.Config
	logger *slog.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(feed *service.ChangeFeed, config *sse.Config, responder *Responder, logger *slog.Logger) *EventsHandler {
	if config == nil {
		config = sse.DefaultConfig()
	}
	return &EventsHandler{
		Responder: responder,
		feed:      feed,
		config:    config,
		logger:    logger,
	}
}

// Stream pushes a directory.changed event whenever the listing of kind
// (with ?search=) changes, until the client disconnects.
// GET /{entity}/events
func (h *EventsHandler) Stream(kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, ok := sessionServices(w, r)
		if !ok {
			return
		}
		session := httputil.GetSession(r)
		search := r.URL.Query().Get("search")

		writer, err := sse.NewWriter(w)
		if err != nil {
			httputil.RespondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		events, unsubscribe := h.feed.Subscribe(session.ID, kind, search, set.Directory)
		defer unsubscribe()

		h.logger.Debug("event stream opened", "entity", kind, "search", search, "session_id", session.ID)
		defer h.logger.Debug("event stream closed", "entity", kind, "session_id", session.ID)

		if err := writer.WriteRetry(h.config.Retry.Milliseconds()); err != nil {
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		keepAliveStopped := sse.KeepAlive(ctx, h.config.KeepAliveInterval, writer, h.logger)
		// The writer must be idle before the handler returns.
		defer func() {
			cancel()
			<-keepAliveStopped
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAliveStopped:
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				if err := writer.WriteEvent(eventDirectoryChanged, event.Fingerprint, event); err != nil {
					h.logger.Debug("event write failed", "error", err)
					return
				}
			}
		}
	}
}
