package impl

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/store"
)

// LoadConnections fetches followers and followees of the profile in parallel and returns the tab.
func (s *srv) LoadConnections(ctx context.Context, profileID string, tab service.ConnectionsTab) ([]normalize.Connection, error) {
	if !tab.IsValid() {
		return nil, fmt.Errorf("%w: %s", service.ErrInvalidTab, tab)
	}

	s.st.Pending(store.ConnectionsOp)

	var followers, followees []*entities.Profile

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		var err error
		if followers, err = s.c.GetFollowers(gctx, profileID); err != nil {
			return fmt.Errorf("failed to get followers: %w", err)
		}
		return nil
	})
	gr.Go(func() error {
		var err error
		if followees, err = s.c.GetFollowees(gctx, profileID); err != nil {
			return fmt.Errorf("failed to get followees: %w", err)
		}
		return nil
	})

	if err := gr.Wait(); err != nil {
		s.st.Rejected(store.ConnectionsOp, client.Message(err, "Failed to load connections"))
		return nil, err
	}

	fs, fe := normalize.Connections(followers, followees)
	s.st.SetConnections(profileID, fs, fe)
	s.st.Fulfilled(store.ConnectionsOp)

	return s.connections(profileID, tab), nil
}

func (s *srv) connections(profileID string, tab service.ConnectionsTab) []normalize.Connection {
	fs, fe := s.st.Connections(profileID)

	switch tab {
	case service.FollowersTab:
		return fs
	case service.FollowingTab:
		return fe
	}

	seen := map[string]struct{}{}
	out := []normalize.Connection{}
	for _, list := range [][]normalize.Connection{fs, fe} {
		for _, v := range list {
			if !v.Profile.Verified {
				continue
			}
			if _, ok := seen[v.Profile.ID]; ok {
				continue
			}
			seen[v.Profile.ID] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

func (s *srv) followToggle() optimistic.Toggle[store.FollowState, struct{}] {
	return optimistic.Toggle[store.FollowState, struct{}]{
		Kind: "follow",
		Update: func(id string, f func(store.FollowState) store.FollowState) (store.FollowState, store.FollowState, error) {
			before, after := s.st.UpdateFollow(id, f)
			return before, after, nil
		},
		Restore: s.st.RestoreFollow,
		Active:  func(v store.FollowState) bool { return v.Following },
		Toggled: func(v store.FollowState) store.FollowState {
			return store.FollowState{Known: true, Following: !v.Following}
		},
		Activate: func(ctx context.Context, id string) (struct{}, error) {
			return struct{}{}, s.c.Follow(ctx, id)
		},
		Deactivate: func(ctx context.Context, id string) (struct{}, error) {
			return struct{}{}, s.c.Unfollow(ctx, id)
		},
		Failure: "Failed to update follow status",
	}
}

func (s *srv) follow(ctx context.Context, profileID string, mode optimistic.Mode) (bool, error) {
	if err := s.requireSession(); err != nil {
		return false, err
	}

	v, err := optimistic.Run(ctx, s.co, s.followToggle(), profileID, mode)
	return v.Following, err
}

// ToggleFollow flips the viewer's relation to the profile and returns the resulting one.
func (s *srv) ToggleFollow(ctx context.Context, profileID string) (bool, error) {
	return s.follow(ctx, profileID, optimistic.Flip)
}

func (s *srv) Follow(ctx context.Context, profileID string) error {
	_, err := s.follow(ctx, profileID, optimistic.On)
	return err
}

func (s *srv) Unfollow(ctx context.Context, profileID string) error {
	_, err := s.follow(ctx, profileID, optimistic.Off)
	return err
}
