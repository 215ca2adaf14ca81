package sse

import (
	"context"
	"log/slog"
	"time"
)

// KeepAliveWriter abstracts the mechanism for writing keep-alive messages
type KeepAliveWriter interface {
	WriteKeepAlive() error
}

// KeepAlive writes keep-alive comments every interval until ctx is done or a
// write fails. The returned channel closes when it stops.
func KeepAlive(ctx context.Context, interval time.Duration, writer KeepAliveWriter, logger *slog.Logger) <-chan struct{} {
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := writer.WriteKeepAlive(); err != nil {
					// Connection dropped
					logger.Debug("keep-alive write failed, stopping", "error", err)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return stopped
}
