package impl

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/store"
)

const (
	recentSearchesLimit = 10
	searchPageSize      = 10
)

// recentSearches keeps latest distinct queries, the latest first.
type recentSearches struct {
	mu    sync.Mutex
	limit int
	list  []string
}

func newRecentSearches(limit int) *recentSearches {
	return &recentSearches{limit: limit}
}

func (r *recentSearches) add(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, r.limit)
	out = append(out, q)
	for _, v := range r.list {
		if v != q && len(out) < r.limit {
			out = append(out, v)
		}
	}
	r.list = out
}

func (r *recentSearches) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string{}, r.list...)
}

func (r *recentSearches) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.list = nil
}

// Search looks profiles up by username. Blank query gives no results without a request.
func (s *srv) Search(ctx context.Context, username string) ([]*entities.Profile, error) {
	q := strings.TrimSpace(username)
	if q == "" {
		return []*entities.Profile{}, nil
	}

	s.st.Pending(store.SearchOp)

	p, err := s.c.SearchProfiles(ctx, &client.SearchQuery{
		Username: q,
		Page:     0,
		Size:     searchPageSize,
	})
	if err != nil {
		s.st.Rejected(store.SearchOp, client.Message(err, "Search failed"))
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	s.st.Fulfilled(store.SearchOp)
	s.rememberSearch(ctx, q)

	return p, nil
}

func (s *srv) rememberSearch(ctx context.Context, q string) {
	s.recent.add(q)

	if s.s == nil || s.owner() == "" {
		return
	}

	if err := s.s.AddRecentSearch(ctx, s.owner(), q, recentSearchesLimit); err != nil {
		log.WithError(err).Warn("failed to save recent search")
	}
}

// RecentSearches returns persisted queries of the session when storage is configured, in-memory ones otherwise.
func (s *srv) RecentSearches(ctx context.Context) ([]string, error) {
	if s.s == nil || s.owner() == "" {
		return s.recent.get(), nil
	}

	list, err := s.s.ListRecentSearches(ctx, s.owner(), recentSearchesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}

	return list, nil
}

// OpenProfile switches to profile page and selects the profile.
func (s *srv) OpenProfile(ctx context.Context, id string) (*entities.Profile, error) {
	s.st.SetPage(entities.ProfilePage)

	return s.FetchProfile(ctx, id)
}

func (s *srv) SetPage(p entities.Page) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %s", service.ErrInvalidPage, p)
	}

	s.st.SetPage(p)

	return nil
}
