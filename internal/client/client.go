// Package client contains an interface of Tippni REST backend client.
package client

import (
	"context"
	"io"

	"github.com/tippni/tippni/internal/entities"
)

//go:generate mockgen -destination=./mock/client.go -package=mock -source=client.go

// Client provides methods for interacting with Tippni REST API.
type Client interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, r *RegisterRequest) (string, error)
	Activate(ctx context.Context, code string) error

	GetMyProfile(ctx context.Context) (*entities.Profile, error)
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, id string, u *ProfileUpdate) error
	UploadAvatar(ctx context.Context, f *File) error
	UploadBanner(ctx context.Context, f *File) error
	SearchProfiles(ctx context.Context, q *SearchQuery) ([]*entities.Profile, error)

	GetFollowers(ctx context.Context, id string) ([]*entities.Profile, error)
	GetFollowees(ctx context.Context, id string) ([]*entities.Profile, error)
	Follow(ctx context.Context, id string) error
	Unfollow(ctx context.Context, id string) error

	HomeTimeline(ctx context.Context) (*entities.Feed, error)
	UserPosts(ctx context.Context, profileID string) (*entities.Feed, error)
	CreatePost(ctx context.Context, p *NewPost) (*entities.Feed, error)
	DeletePost(ctx context.Context, id string) error

	Like(ctx context.Context, postID string) (*Reaction, error)
	Unlike(ctx context.Context, postID string) (*Reaction, error)
	Repost(ctx context.Context, postID string) (*Reaction, error)
	Unrepost(ctx context.Context, postID string) (*Reaction, error)
}

// RegisterRequest ...
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DateOfBirth     string `json:"dob"`
	Gender          string `json:"gender"`
}

// ProfileUpdate ...
type ProfileUpdate struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	BirthDate string `json:"birthDate"`
}

// SearchQuery ...
type SearchQuery struct {
	Username string
	Page     int
	Size     int
	Sort     string
}

// NewPost ...
type NewPost struct {
	Text      string
	ReplyToID string
	Files     []*File
}

// File is a file to be uploaded with multipart request.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Reaction is a server answer on like or repost request.
// It is nil when the server does not report the counter.
type Reaction struct {
	Count int
}
