// Package lifecycle coordinates the startup and shutdown of long-lived
// subsystems such as the database pool, blob storage, and the HTTP listener.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrShutdownTimeout is returned when shutdown hooks outlive their deadline.
var ErrShutdownTimeout = errors.New("shutdown timed out")

// Hook is a named startup or shutdown step.
type Hook struct {
	Name string
	Run  func(ctx context.Context) error
}

// Coordinator runs startup hooks concurrently and shutdown hooks in reverse
// registration order.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	startup  []Hook
	shutdown []Hook

	ready atomic.Bool
}

func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{ctx: ctx, cancel: cancel}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

func (c *Coordinator) OnStartup(name string, run func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, Hook{Name: name, Run: run})
}

func (c *Coordinator) OnShutdown(name string, run func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = append(c.shutdown, Hook{Name: name, Run: run})
}

// Start runs every startup hook concurrently and waits for all of them.
// The coordinator reports Ready only when every hook succeeded.
func (c *Coordinator) Start() error {
	c.mu.Lock()
	hooks := append([]Hook(nil), c.startup...)
	c.mu.Unlock()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, h := range hooks {
		wg.Go(func() {
			if err := h.Run(c.ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", h.Name, err))
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	c.ready.Store(true)
	return nil
}

func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the coordinator context and runs shutdown hooks, last
// registered first, sharing a single deadline.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	c.mu.Lock()
	hooks := append([]Hook(nil), c.shutdown...)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i].Run(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", hooks[i].Name, err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %v", ErrShutdownTimeout, timeout)
	}
}
