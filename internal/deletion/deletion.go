// Package deletion drives deletion of the viewer's posts:
// idle -> confirming -> animating -> deleting -> removed, confirming -> idle on cancel.
package deletion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/metrics"
	"github.com/tippni/tippni/internal/notify"
)

var log = logrus.WithField("package", "deletion")

var (
	// ErrNotOwner is returned when the viewer does not own the post.
	ErrNotOwner = errors.New("post does not belong to viewer")
	// ErrInvalidState is returned when the transition is not allowed in the current state.
	ErrInvalidState = errors.New("invalid deletion state")
	// ErrUnknownPost ...
	ErrUnknownPost = errors.New("unknown post")
)

// DefaultDelay bounds the exit animation when no Finished event comes.
const DefaultDelay = 1800 * time.Millisecond

// State ...
type State string

const (
	// Idle ...
	Idle State = "idle"
	// Confirming means the confirmation dialog is shown.
	Confirming State = "confirming"
	// Animating means the exit animation is running.
	Animating State = "animating"
	// Deleting means the request is sent.
	Deleting State = "deleting"
	// Removed means the server confirmed deletion and the post is gone.
	Removed State = "removed"
)

// Posts is a cache the flow works with.
type Posts interface {
	// IsBelongs reports whether the post exists and is owned by the viewer.
	IsBelongs(id string) (belongs bool, ok bool)
	RemovePost(id string)
}

// DeleteFunc sends deletion request.
type DeleteFunc func(ctx context.Context, id string) error

// Flow ...
type Flow struct {
	posts  Posts
	del    DeleteFunc
	n      notify.Notifier
	delay  time.Duration
	onMove func(id string, s State)

	mu    sync.Mutex
	flows map[string]*flow
}

type flow struct {
	state    State
	finished chan struct{}
}

// New creates flow. Zero delay skips waiting for the animation.
// onMove is called on every transition, it may be nil.
func New(posts Posts, del DeleteFunc, n notify.Notifier, delay time.Duration, onMove func(id string, s State)) *Flow {
	if onMove == nil {
		onMove = func(string, State) {}
	}

	return &Flow{
		posts:  posts,
		del:    del,
		n:      n,
		delay:  delay,
		onMove: onMove,
		flows:  map[string]*flow{},
	}
}

// State returns the state of the post's flow.
func (f *Flow) State(id string) State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.flows[id]; ok {
		return v.state
	}

	return Idle
}

// States returns every post which is not idle.
func (f *Flow) States() map[string]State {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]State, len(f.flows))
	for k, v := range f.flows {
		out[k] = v.state
	}

	return out
}

// move sets the state under lock, idle drops the flow. It is false when the flow is gone.
func (f *Flow) move(id string, s State) bool {
	v, ok := f.flows[id]
	if !ok {
		return false
	}

	if s == Idle {
		delete(f.flows, id)
	} else {
		v.state = s
	}

	return true
}

// Reset drops every flow, e.g. on sign out. A running Confirm stops waiting for the animation
// but its request is not cancelled.
func (f *Flow) Reset() {
	f.mu.Lock()
	dropped := make([]string, 0, len(f.flows))
	for id, v := range f.flows {
		select {
		case <-v.finished:
		default:
			close(v.finished)
		}
		dropped = append(dropped, id)
	}
	f.flows = map[string]*flow{}
	f.mu.Unlock()

	for _, id := range dropped {
		f.onMove(id, Idle)
	}
}

// Request opens confirmation for the post.
func (f *Flow) Request(id string) error {
	belongs, ok := f.posts.IsBelongs(id)
	if !ok {
		return ErrUnknownPost
	}
	if !belongs {
		return ErrNotOwner
	}

	f.mu.Lock()
	if v, ok := f.flows[id]; ok {
		f.mu.Unlock()
		return fmt.Errorf("%w: post %s is %s", ErrInvalidState, id, v.state)
	}
	f.flows[id] = &flow{state: Confirming, finished: make(chan struct{})}
	f.mu.Unlock()

	f.onMove(id, Confirming)

	return nil
}

// Cancel closes confirmation, the post stays.
func (f *Flow) Cancel(id string) error {
	if err := f.transit(id, Confirming, Idle); err != nil {
		return err
	}

	f.onMove(id, Idle)

	return nil
}

// Finished tells that the exit animation of the post is over.
func (f *Flow) Finished(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.flows[id]
	if !ok || v.state != Animating {
		return fmt.Errorf("%w: post %s is not animating", ErrInvalidState, id)
	}

	select {
	case <-v.finished:
	default:
		close(v.finished)
	}

	return nil
}

// Confirm runs animation, sends deletion request and removes the post once the server confirms.
// It blocks until the flow is over. On failure the post stays and the flow returns to idle.
func (f *Flow) Confirm(ctx context.Context, id string) error {
	f.mu.Lock()
	v, ok := f.flows[id]
	if !ok || v.state != Confirming {
		f.mu.Unlock()
		return fmt.Errorf("%w: post %s is not confirming", ErrInvalidState, id)
	}
	f.move(id, Animating)
	f.mu.Unlock()

	f.onMove(id, Animating)

	l := log.WithField("id", id)

	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		select {
		case <-v.finished:
			timer.Stop()
		case <-timer.C:
			l.Debug("animation is not finished in time")
		case <-ctx.Done():
			timer.Stop()
			f.settle(id, Idle)
			return ctx.Err()
		}
	}

	f.settle(id, Deleting)

	if err := f.del(ctx, id); err != nil {
		f.settle(id, Idle)
		metrics.IncDeletion("failed")
		l.WithError(err).Info("failed to delete post")

		f.n.Notify(notify.Error("%s", client.Message(err, "Failed to delete post")))

		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	f.posts.RemovePost(id)

	f.mu.Lock()
	delete(f.flows, id)
	f.mu.Unlock()

	f.onMove(id, Removed)
	metrics.IncDeletion("removed")
	f.n.Notify(notify.Success("Post deleted"))

	return nil
}

func (f *Flow) settle(id string, s State) {
	f.mu.Lock()
	ok := f.move(id, s)
	f.mu.Unlock()

	if ok {
		f.onMove(id, s)
	}
}

func (f *Flow) transit(id string, from, to State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.flows[id]
	if !ok || v.state != from {
		return fmt.Errorf("%w: post %s is not %s", ErrInvalidState, id, from)
	}

	f.move(id, to)

	return nil
}
