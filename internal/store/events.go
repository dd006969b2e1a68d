package store

import (
	"github.com/tippni/tippni/internal/notify"
)

// EventType ...
type EventType string

const (
	// ResetEvent is emitted when the store is dropped.
	ResetEvent EventType = "reset"
	// PageEvent ...
	PageEvent EventType = "page"
	// ProfileEvent ...
	ProfileEvent EventType = "profile"
	// FollowEvent ...
	FollowEvent EventType = "follow"
	// ConnectionsEvent ...
	ConnectionsEvent EventType = "connections"
	// TimelineEvent ...
	TimelineEvent EventType = "timeline"
	// PostEvent ...
	PostEvent EventType = "post"
	// PostRemovedEvent ...
	PostRemovedEvent EventType = "post_removed"
	// FetchEvent ...
	FetchEvent EventType = "fetch"
	// NotificationEvent ...
	NotificationEvent EventType = "notification"
	// DeletionEvent is emitted by delete flow on every transition.
	DeletionEvent EventType = "deletion"
)

// Event tells subscribers that something has changed. Subscribers read the new state from the store.
type Event struct {
	Type EventType `json:"type"`
	// ID of the changed entity or operation if any.
	ID           string               `json:"id,omitempty"`
	State        string               `json:"state,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// Subscribe returns channel of events and function which stops the subscription.
// Events are dropped for a subscriber which does not keep up.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	return ch, func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()

		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// Emit sends event to every subscriber.
func (s *Store) Emit(e Event) {
	s.emit(e)
}

func (s *Store) emit(e Event) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for id, ch := range s.subs {
		select {
		case ch <- e:
		default:
			log.WithField("subscriber", id).WithField("type", e.Type).Debug("subscriber is full, event dropped")
		}
	}
}
