// Package entities contains main entities of the client.
package entities

import (
	"time"
)

// Profile ...
type Profile struct {
	ID        string
	Username  string
	Name      string
	Email     string
	Bio       string
	Location  string
	Website   string
	BirthDate string
	AvatarURL string
	BannerURL string
	Verified  bool
	Followers int
	Followees int
	// HasCounts is false when the payload carried no follower counts, zero counts are unknown then.
	HasCounts bool
}

// DisplayName returns name if it is set, username otherwise.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}

	return p.Username
}

// PostType ...
type PostType string

const (
	// OriginalPostType ...
	OriginalPostType PostType = "ORIGINAL"
	// ReplyPostType ...
	ReplyPostType PostType = "REPLY"
	// RepostPostType ...
	RepostPostType PostType = "RETIPPNI"
)

// Post ...
type Post struct {
	ID         string
	AuthorID   string
	Type       PostType
	Text       string
	Media      []string
	Likes      Counter
	Reposts    Counter
	RepostOfID string
	ReplyToID  string
	// IsBelongs is set by the server when the viewer owns the post.
	IsBelongs bool
	CreatedAt time.Time
}

// IsRepost ...
func (p Post) IsRepost() bool {
	return p.RepostOfID != ""
}

// IsReply ...
func (p Post) IsReply() bool {
	return p.Type == ReplyPostType || p.ReplyToID != ""
}

// Counter is a viewer's boolean flag paired with the public count, e.g. liked/likes.
type Counter struct {
	Active bool
	Count  int
}

// Toggled returns the counter after the viewer toggles the flag.
// Count never goes below zero.
func (c Counter) Toggled() Counter {
	if c.Active {
		c.Active = false
		if c.Count > 0 {
			c.Count--
		}
		return c
	}

	c.Active = true
	c.Count++

	return c
}

// Feed is a list of posts together with every entity the posts reference.
type Feed struct {
	// Posts in server order.
	Posts []*Post
	// Included contains reposted originals by id.
	Included map[string]*Post
	// Profiles contains authors by id.
	Profiles map[string]*Profile
}

// NewFeed returns empty feed.
func NewFeed() *Feed {
	return &Feed{
		Included: map[string]*Post{},
		Profiles: map[string]*Profile{},
	}
}

// Page is an active view of the client.
type Page string

const (
	// HomePage ...
	HomePage Page = "home"
	// ForYouPage ...
	ForYouPage Page = "foryou"
	// NotificationPage ...
	NotificationPage Page = "notification"
	// BookmarksPage ...
	BookmarksPage Page = "bookmarks"
	// ProfilePage ...
	ProfilePage Page = "profile"
	// SettingsPage ...
	SettingsPage Page = "settings"
)

// IsValid ...
func (p Page) IsValid() bool {
	switch p {
	case HomePage, ForYouPage, NotificationPage, BookmarksPage, ProfilePage, SettingsPage:
		return true
	default:
		return false
	}
}

// PostView is a post as it is rendered: a repost shows the content and counters of the original.
type PostView struct {
	// ID is the id of the post in the list.
	ID string
	// TargetID is the id of the post interactions apply to, the original one for reposts.
	TargetID  string
	Type      PostType
	Author    *Profile
	Text      string
	Media     []string
	Likes     Counter
	Reposts   Counter
	ReplyToID string
	IsBelongs bool
	CreatedAt time.Time
	// RepostedBy is set when the post is a repost.
	RepostedBy *Profile
}

// HasMedia ...
func (v PostView) HasMedia() bool {
	return len(v.Media) > 0
}
