package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
)

// subscriberBuffer is how many undelivered events a slow subscriber may hold
// before newer events are dropped for it.
const subscriberBuffer = 4

// ChangeFeed polls watched directories and pushes an event whenever a
// directory's fingerprint changes. One poller runs per (session, entity,
// search) while it has subscribers.
type ChangeFeed struct {
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	watchers map[watchKey]*watcher
}

type watchKey struct {
	session string
	entity  models.EntityKind
	search  string
}

type watcher struct {
	key    watchKey
	cancel context.CancelFunc
	subs   map[chan models.ChangeEvent]struct{}
	// latest is replayed to late subscribers
	latest *models.ChangeEvent
}

// NewChangeFeed creates a feed polling every interval.
func NewChangeFeed(interval time.Duration, logger *slog.Logger) *ChangeFeed {
	return &ChangeFeed{
		interval: interval,
		logger:   logger,
		watchers: make(map[watchKey]*watcher),
	}
}

// Subscribe registers for changes of one directory. The first event carries
// the current listing. The returned func unsubscribes and must be called.
// search is trimmed the way directory listings trim it.
func (f *ChangeFeed) Subscribe(sessionID string, kind models.EntityKind, search string, dir services.DirectoryService) (<-chan models.ChangeEvent, func()) {
	search = strings.TrimSpace(search)
	key := watchKey{session: sessionID, entity: kind, search: search}
	ch := make(chan models.ChangeEvent, subscriberBuffer)

	f.mu.Lock()
	w, ok := f.watchers[key]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		w = &watcher{key: key, cancel: cancel, subs: make(map[chan models.ChangeEvent]struct{})}
		f.watchers[key] = w
		go f.poll(ctx, w, dir)
		f.logger.Debug("directory watch started", "entity", kind, "search", search)
	}
	w.subs[ch] = struct{}{}
	if w.latest != nil {
		ch <- *w.latest
	}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { f.unsubscribe(w, ch) })
	}
}

func (f *ChangeFeed) unsubscribe(w *watcher, ch chan models.ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(w.subs, ch)
	close(ch)
	if len(w.subs) == 0 {
		w.cancel()
		delete(f.watchers, w.key)
		f.logger.Debug("directory watch stopped", "entity", w.key.entity, "search", w.key.search)
	}
}

// Watching reports how many directories are currently polled.
func (f *ChangeFeed) Watching() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers)
}

func (f *ChangeFeed) poll(ctx context.Context, w *watcher, dir services.DirectoryService) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	last := ""
	for {
		directory, fp, err := dir.Fingerprint(ctx, w.key.entity, w.key.search)
		switch {
		case ctx.Err() != nil:
			return
		case errors.Is(err, domain.ErrUnauthorized):
			// the session is gone; clients notice on their next request
			f.logger.Info("directory watch unauthorized", "entity", w.key.entity)
		case err != nil:
			f.logger.Warn("directory poll failed", "entity", w.key.entity, "error", err)
		case fp != last:
			last = fp
			f.broadcast(w, models.ChangeEvent{
				Entity:      w.key.entity,
				Search:      w.key.search,
				Fingerprint: fp,
				Directory:   directory,
				At:          time.Now().UTC(),
			})
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// broadcast never blocks the poller: a full subscriber misses the event.
func (f *ChangeFeed) broadcast(w *watcher, ev models.ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.latest = &ev
	for ch := range w.subs {
		select {
		case ch <- ev:
		default:
			f.logger.Debug("dropped change event for slow subscriber", "entity", ev.Entity)
		}
	}
}
