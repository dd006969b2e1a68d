package store

// FetchStatus is a lifecycle of an asynchronous fetch.
type FetchStatus string

const (
	// Idle ...
	Idle FetchStatus = "idle"
	// Pending ...
	Pending FetchStatus = "pending"
	// Fulfilled ...
	Fulfilled FetchStatus = "fulfilled"
	// Rejected ...
	Rejected FetchStatus = "rejected"
)

// Fetch operations tracked by the store.
const (
	MyProfileOp       = "myProfile"
	SelectedProfileOp = "selectedProfile"
	ConnectionsOp     = "connections"
	TimelineOp        = "timeline"
	UserPostsOp       = "userPosts"
	SearchOp          = "search"
)

// FetchState ...
type FetchState struct {
	Status FetchStatus
	// Error is a message of the last rejection.
	Error string
}

// IsLoading ...
func (f FetchState) IsLoading() bool {
	return f.Status == Pending
}

// Fetch returns state of the operation, Idle when it never ran.
func (s *Store) Fetch(op string) FetchState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.fetch[op]; ok {
		return v
	}

	return FetchState{Status: Idle}
}

// Pending marks the operation as started. The previous error is kept until the operation settles.
func (s *Store) Pending(op string) {
	s.setFetch(op, func(v FetchState) FetchState {
		v.Status = Pending
		return v
	})
}

// Fulfilled marks the operation as succeeded.
func (s *Store) Fulfilled(op string) {
	s.setFetch(op, func(FetchState) FetchState {
		return FetchState{Status: Fulfilled}
	})
}

// Rejected marks the operation as failed. Data of the operation stays as it was.
func (s *Store) Rejected(op string, message string) {
	s.setFetch(op, func(FetchState) FetchState {
		return FetchState{Status: Rejected, Error: message}
	})
}

func (s *Store) setFetch(op string, f func(FetchState) FetchState) {
	s.mu.Lock()
	v, ok := s.fetch[op]
	if !ok {
		v = FetchState{Status: Idle}
	}
	s.fetch[op] = f(v)
	s.mu.Unlock()

	s.emit(Event{Type: FetchEvent, ID: op})
}
