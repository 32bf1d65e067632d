// Package sig turns termination signals into context cancellation, so
// the run loop gets a chance to restore the terminal before the
// process dies.
package sig

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Handler watches for OS signals on its own goroutine. It fires once:
// the first signal received is reported and the watch ends.
type Handler struct {
	onSignal func(os.Signal)
	sigCh    chan os.Signal
}

// New creates a Handler that reports the given signals to onSignal.
// With no signals listed it watches the usual termination set:
// SIGTERM, SIGINT and SIGHUP.
func New(onSignal func(os.Signal), sigs ...os.Signal) *Handler {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	return &Handler{
		onSignal: onSignal,
		sigCh:    sigCh,
	}
}

// Loop blocks until a signal arrives or ctx is canceled, then calls
// cancel and deregisters the signal channel. On a signal it invokes
// the callback before returning; on cancellation it returns ctx's
// error.
func (h *Handler) Loop(ctx context.Context, cancel func()) error {
	defer cancel()
	defer signal.Stop(h.sigCh)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case received := <-h.sigCh:
		h.onSignal(received)
		return nil
	}
}
