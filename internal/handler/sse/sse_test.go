package sse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWriterFrames(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.WriteRetry(3000); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteEvent("directory.changed", "abc", map[string]int{"count": 2}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteKeepAlive(); err != nil {
		t.Fatal(err)
	}

	want := "retry: 3000\n\n" +
		"id: abc\nevent: directory.changed\ndata: {\"count\":2}\n\n" +
		": keepalive\n\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}
}

type noFlush struct{ http.ResponseWriter }

func TestWriterRequiresFlusher(t *testing.T) {
	_, err := NewWriter(noFlush{httptest.NewRecorder()})
	if !errors.Is(err, ErrStreamingUnsupported) {
		t.Errorf("err = %v, want ErrStreamingUnsupported", err)
	}
}

type countingWriter struct {
	n    atomic.Int32
	fail bool
}

func (c *countingWriter) WriteKeepAlive() error {
	c.n.Add(1)
	if c.fail {
		return errors.New("closed")
	}
	return nil
}

func TestKeepAliveStopsOnError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := &countingWriter{fail: true}

	select {
	case <-KeepAlive(context.Background(), time.Millisecond, w, logger):
	case <-time.After(time.Second):
		t.Fatal("keep-alive did not stop after a failed write")
	}
	if w.n.Load() != 1 {
		t.Errorf("writes = %d, want 1", w.n.Load())
	}
}

func TestKeepAliveStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	w := &countingWriter{}

	stopped := KeepAlive(ctx, time.Millisecond, w, logger)
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("keep-alive did not stop on cancel")
	}
	if w.n.Load() == 0 {
		t.Error("no keep-alive written")
	}
}
