package lifecycle

import (
	"context"
	"time"
)

// Handle is the lifecycle controller handed to each background service.
// It is created by a Manager and wraps the service's shutdown wiring.
type Handle struct {
	ctx context.Context
	// Close tells the Manager that the owning service has finished
	// shutting down. Call it with defer before the goroutine exits.
	Close func()
}

// Ctx returns the handle's context.
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done returns a channel that closes when the manager broadcasts shutdown.
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err reports why the context was cancelled, once Done() has closed.
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep pauses for the given duration but returns early with the context
// error if the handle is cancelled. Background loops should sleep through
// this instead of time.Sleep.
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
