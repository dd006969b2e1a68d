package impl

import (
	"context"
	"fmt"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

func (s *srv) LoadHomeTimeline(ctx context.Context) ([]entities.PostView, error) {
	s.st.Pending(store.TimelineOp)

	feed, err := s.c.HomeTimeline(ctx)
	if err != nil {
		s.st.Rejected(store.TimelineOp, client.Message(err, "Failed to load timeline"))
		return nil, fmt.Errorf("failed to get home timeline: %w", err)
	}

	s.st.SetTimeline(feed)
	s.st.Fulfilled(store.TimelineOp)

	return s.st.Timeline(), nil
}

func (s *srv) LoadUserPosts(ctx context.Context, profileID string, tab service.PostsTab) ([]entities.PostView, error) {
	if !tab.IsValid() {
		return nil, fmt.Errorf("%w: %s", service.ErrInvalidTab, tab)
	}

	s.st.Pending(store.UserPostsOp)

	feed, err := s.c.UserPosts(ctx, profileID)
	if err != nil {
		s.st.Rejected(store.UserPostsOp, client.Message(err, "Failed to load posts"))
		return nil, fmt.Errorf("failed to get posts of %s: %w", profileID, err)
	}

	s.st.SetUserPosts(profileID, feed)
	s.st.Fulfilled(store.UserPostsOp)

	posts, _ := s.st.UserPosts(profileID)

	return filterPosts(posts, tab), nil
}

func filterPosts(posts []entities.PostView, tab service.PostsTab) []entities.PostView {
	if tab == service.PostsPostsTab {
		return posts
	}

	out := make([]entities.PostView, 0, len(posts))
	for _, v := range posts {
		var ok bool
		switch tab {
		case service.MediaPostsTab:
			ok = v.HasMedia()
		case service.RepliesPostsTab:
			ok = v.Type == entities.ReplyPostType || v.ReplyToID != ""
		case service.LikesPostsTab:
			ok = v.Likes.Active
		}

		if ok {
			out = append(out, v)
		}
	}

	return out
}

func (s *srv) CreatePost(ctx context.Context, p *client.NewPost) (*entities.PostView, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	sizes := make([]int64, len(p.Files))
	for i, f := range p.Files {
		sizes[i] = f.Size
	}

	if err := validate.Post(p.Text, sizes...); err != nil {
		return nil, err
	}

	feed, err := s.c.CreatePost(ctx, p)
	if err != nil {
		s.n.Notify(notifyError(err, "Failed to post Tippni."))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.n.Notify(notifySuccess("Tippni posted successfully!"))

	if len(feed.Posts) == 0 {
		return nil, nil
	}

	s.st.AddPost(feed)

	v, ok := s.st.PostView(feed.Posts[0].ID)
	if !ok {
		return nil, nil
	}

	return &v, nil
}

type counterUpdate func(id string, f func(entities.Counter) entities.Counter) (entities.Counter, entities.Counter, error)

func (s *srv) counterToggle(kind, failure string, update counterUpdate, restore func(string, entities.Counter),
	set func(string, int), on, off func(context.Context, string) (*client.Reaction, error),
) optimistic.Toggle[entities.Counter, *client.Reaction] {
	return optimistic.Toggle[entities.Counter, *client.Reaction]{
		Kind:       kind,
		Update:     update,
		Restore:    restore,
		Active:     func(v entities.Counter) bool { return v.Active },
		Toggled:    entities.Counter.Toggled,
		Activate:   on,
		Deactivate: off,
		Reconcile: func(id string, r *client.Reaction) {
			if r != nil {
				set(id, r.Count)
			}
		},
		Failure: failure,
	}
}

func (s *srv) likeToggle() optimistic.Toggle[entities.Counter, *client.Reaction] {
	return s.counterToggle("like", "Failed to update like",
		s.st.UpdateLikes, s.st.RestoreLikes, s.st.SetLikesCount, s.c.Like, s.c.Unlike)
}

func (s *srv) repostToggle() optimistic.Toggle[entities.Counter, *client.Reaction] {
	return s.counterToggle("repost", "Failed to update repost",
		s.st.UpdateReposts, s.st.RestoreReposts, s.st.SetRepostsCount, s.c.Repost, s.c.Unrepost)
}

// interact runs the toggle against the post interactions apply to, the original one for reposts.
func (s *srv) interact(ctx context.Context, t optimistic.Toggle[entities.Counter, *client.Reaction], postID string, mode optimistic.Mode) (entities.Counter, error) {
	if err := s.requireSession(); err != nil {
		return entities.Counter{}, err
	}

	target := postID
	if v, ok := s.st.PostView(postID); ok {
		target = v.TargetID
	}

	return optimistic.Run(ctx, s.co, t, target, mode)
}

func (s *srv) ToggleLike(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.likeToggle(), postID, optimistic.Flip)
}

func (s *srv) Like(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.likeToggle(), postID, optimistic.On)
}

func (s *srv) Unlike(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.likeToggle(), postID, optimistic.Off)
}

func (s *srv) ToggleRepost(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.repostToggle(), postID, optimistic.Flip)
}

func (s *srv) Repost(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.repostToggle(), postID, optimistic.On)
}

func (s *srv) Unrepost(ctx context.Context, postID string) (entities.Counter, error) {
	return s.interact(ctx, s.repostToggle(), postID, optimistic.Off)
}

// ownedPosts adapts store to delete flow.
type ownedPosts struct {
	st *store.Store
}

func (o ownedPosts) IsBelongs(id string) (bool, bool) {
	p, ok := o.st.Post(id)
	if !ok {
		return false, false
	}

	return p.IsBelongs, true
}

func (o ownedPosts) RemovePost(id string) {
	o.st.RemovePost(id)
}

func (s *srv) RequestDelete(postID string) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	return s.delFlow.Request(postID)
}

func (s *srv) CancelDelete(postID string) error {
	return s.delFlow.Cancel(postID)
}

func (s *srv) ConfirmDelete(ctx context.Context, postID string) error {
	return s.delFlow.Confirm(ctx, postID)
}

func (s *srv) FinishDeleteAnimation(postID string) error {
	return s.delFlow.Finished(postID)
}
