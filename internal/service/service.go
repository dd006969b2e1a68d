// Package service contains interface for client business-logic.
package service

import (
	"context"
	"errors"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/deletion"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotSignedIn is returned by actions which need a session.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrInvalidPage ...
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidTab ...
	ErrInvalidTab = errors.New("invalid tab")
)

// ConnectionsTab ...
type ConnectionsTab string

const (
	// VerifiedTab shows verified profiles of both lists.
	VerifiedTab ConnectionsTab = "verified"
	// FollowersTab ...
	FollowersTab ConnectionsTab = "followers"
	// FollowingTab ...
	FollowingTab ConnectionsTab = "following"
)

// IsValid ...
func (t ConnectionsTab) IsValid() bool {
	switch t {
	case VerifiedTab, FollowersTab, FollowingTab:
		return true
	default:
		return false
	}
}

// PostsTab ...
type PostsTab string

const (
	// PostsPostsTab ...
	PostsPostsTab PostsTab = "posts"
	// MediaPostsTab shows posts with media.
	MediaPostsTab PostsTab = "media"
	// RepliesPostsTab ...
	RepliesPostsTab PostsTab = "replies"
	// LikesPostsTab shows posts liked by viewer.
	LikesPostsTab PostsTab = "likes"
)

// IsValid ...
func (t PostsTab) IsValid() bool {
	switch t {
	case PostsPostsTab, MediaPostsTab, RepliesPostsTab, LikesPostsTab:
		return true
	default:
		return false
	}
}

// State is what views render.
type State struct {
	store.Snapshot
	SignedIn  bool
	Deletions map[string]deletion.State
}

// Service ...
type Service interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, f validate.SignUpForm) (string, error)
	Activate(ctx context.Context, code string) error
	SignOut(ctx context.Context) error
	// RestoreSnapshot loads the last known viewer's profile as stale data.
	RestoreSnapshot(ctx context.Context) error

	FetchMyProfile(ctx context.Context) (*entities.Profile, error)
	FetchProfile(ctx context.Context, id string) (*entities.Profile, error)
	ClearProfile()
	ClearSelectedUser()
	UpdateProfile(ctx context.Context, u *client.ProfileUpdate) (*entities.Profile, error)
	UploadAvatar(ctx context.Context, f *client.File) (*entities.Profile, error)
	UploadBanner(ctx context.Context, f *client.File) (*entities.Profile, error)

	LoadConnections(ctx context.Context, profileID string, tab ConnectionsTab) ([]normalize.Connection, error)
	ToggleFollow(ctx context.Context, profileID string) (bool, error)
	Follow(ctx context.Context, profileID string) error
	Unfollow(ctx context.Context, profileID string) error

	LoadHomeTimeline(ctx context.Context) ([]entities.PostView, error)
	LoadUserPosts(ctx context.Context, profileID string, tab PostsTab) ([]entities.PostView, error)
	CreatePost(ctx context.Context, p *client.NewPost) (*entities.PostView, error)
	ToggleLike(ctx context.Context, postID string) (entities.Counter, error)
	Like(ctx context.Context, postID string) (entities.Counter, error)
	Unlike(ctx context.Context, postID string) (entities.Counter, error)
	ToggleRepost(ctx context.Context, postID string) (entities.Counter, error)
	Repost(ctx context.Context, postID string) (entities.Counter, error)
	Unrepost(ctx context.Context, postID string) (entities.Counter, error)

	RequestDelete(postID string) error
	CancelDelete(postID string) error
	ConfirmDelete(ctx context.Context, postID string) error
	FinishDeleteAnimation(postID string) error

	Search(ctx context.Context, username string) ([]*entities.Profile, error)
	RecentSearches(ctx context.Context) ([]string, error)
	OpenProfile(ctx context.Context, id string) (*entities.Profile, error)
	SetPage(p entities.Page) error

	State() State
	Subscribe() (<-chan store.Event, func())
}
