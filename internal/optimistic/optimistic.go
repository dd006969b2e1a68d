// Package optimistic applies user actions to local state before the server confirms them
// and rolls them back when the server refuses.
package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/metrics"
	"github.com/tippni/tippni/internal/notify"
)

var log = logrus.WithField("package", "optimistic")

// ErrInFlight is returned when the same action on the same entity is still waiting for the server.
var ErrInFlight = errors.New("action is in flight")

// Mode selects which state Run moves the entity to.
type Mode int

const (
	// Flip inverts the current state.
	Flip Mode = iota
	// On activates, no-op when already active.
	On
	// Off deactivates, no-op when already inactive.
	Off
)

// Toggle describes a boolean-like state of an entity with a pair of server requests.
type Toggle[T any, R any] struct {
	// Kind names the action, e.g. "follow" or "like".
	Kind string
	// Update atomically replaces the state at every cache location with f(state) and returns both values.
	Update func(id string, f func(T) T) (before, after T, err error)
	// Restore atomically writes the exact previous state back.
	Restore func(id string, before T)
	// Active reports whether state is activated.
	Active func(T) bool
	// Toggled returns inverted state.
	Toggled func(T) T
	// Activate and Deactivate are server requests.
	Activate   func(ctx context.Context, id string) (R, error)
	Deactivate func(ctx context.Context, id string) (R, error)
	// Reconcile is called with the server answer after success, optional.
	Reconcile func(id string, r R)
	// Failure is a notification message used when the server gives none.
	Failure string
}

// Coordinator runs toggles.
type Coordinator struct {
	n      notify.Notifier
	dedupe bool

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates coordinator. With dedupe a second action on the same entity fails with ErrInFlight
// until the first one settles.
func New(n notify.Notifier, dedupe bool) *Coordinator {
	return &Coordinator{
		n:       n,
		dedupe:  dedupe,
		pending: map[string]struct{}{},
	}
}

func (c *Coordinator) acquire(key string) bool {
	if !c.dedupe {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[key]; ok {
		return false
	}
	c.pending[key] = struct{}{}

	return true
}

func (c *Coordinator) release(key string) {
	if !c.dedupe {
		return
	}

	c.mu.Lock()
	delete(c.pending, key)
	c.mu.Unlock()
}

// Run applies the toggle to the entity immediately, then sends the request.
// On failure the previous state is restored and an error notification is emitted.
// It returns the state the entity has after the call.
func Run[T any, R any](ctx context.Context, c *Coordinator, t Toggle[T, R], id string, mode Mode) (T, error) {
	key := t.Kind + "/" + id
	if !c.acquire(key) {
		metrics.IncOptimistic(t.Kind, metrics.Rejected)
		var zero T
		return zero, fmt.Errorf("%s %s: %w", t.Kind, id, ErrInFlight)
	}
	defer c.release(key)

	before, after, err := t.Update(id, func(cur T) T {
		switch mode {
		case On:
			if t.Active(cur) {
				return cur
			}
		case Off:
			if !t.Active(cur) {
				return cur
			}
		}
		return t.Toggled(cur)
	})
	if err != nil {
		return before, fmt.Errorf("failed to update %s %s: %w", t.Kind, id, err)
	}

	activate := t.Active(after)
	if activate == t.Active(before) {
		return after, nil
	}

	l := log.WithFields(logrus.Fields{
		"kind":     t.Kind,
		"id":       id,
		"activate": activate,
	})

	request := t.Deactivate
	if activate {
		request = t.Activate
	}

	r, err := request(ctx, id)
	if err != nil {
		t.Restore(id, before)
		metrics.IncOptimistic(t.Kind, metrics.RolledBack)
		l.WithError(err).Info("rolled back")

		c.n.Notify(notify.Error("%s", client.Message(err, t.Failure)))

		return before, fmt.Errorf("failed to %s %s: %w", t.Kind, id, err)
	}

	if t.Reconcile != nil {
		t.Reconcile(id, r)
	}

	metrics.IncOptimistic(t.Kind, metrics.Committed)
	l.Debug("committed")

	return after, nil
}
