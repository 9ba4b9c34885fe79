// Package signal provides signal handling for graceful shutdown of the irtus
// server and CLI.
//
// SetupSignalHandler registers handlers for SIGINT and SIGTERM. On the first
// signal it runs a callback, records the signal and cancels the provided
// context, which drains the HTTP server or aborts a CLI generation.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler records the signal that triggered shutdown, if any.
type Handler struct {
	mu       sync.Mutex
	received os.Signal
}

// Signal returns the signal that was received, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// Interrupted reports whether a signal was received.
func (h *Handler) Interrupted() bool {
	return h.Signal() != nil
}

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls onInterrupt (if non-nil) with the
// signal, then cancels the context.
//
// The listening goroutine terminates when either a signal is received or
// ctx is canceled; the registration is released in both cases.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	h := signal.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
//	    logging.Warn("received " + sig.String() + ", shutting down")
//	})
//	...
//	if h.Interrupted() {
//	    os.Exit(exitcode.Interrupted)
//	}
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func(os.Signal)) *Handler {
	h := &Handler{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			h.mu.Lock()
			h.received = sig
			h.mu.Unlock()
			if onInterrupt != nil {
				onInterrupt(sig)
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}()

	return h
}
