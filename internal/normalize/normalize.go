// Package normalize maps raw Tippni API payloads into entities.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tippni/tippni/internal/entities"
)

// Profile is a raw profile payload.
type Profile struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	BirthDate string `json:"birthDate"`
	AvatarURL string `json:"avatarUrl"`
	BannerURL string `json:"bannerUrl"`
	Verified  bool   `json:"verified"`
	Followers *int   `json:"followers"`
	Followees *int   `json:"followees"`
}

// Post is a raw post payload.
type Post struct {
	ID            string          `json:"id"`
	Profile       *Profile        `json:"profile"`
	Type          string          `json:"type"`
	Text          string          `json:"text"`
	MediaURLs     []string        `json:"mediaUrls"`
	Likes         int             `json:"likes"`
	Liked         bool            `json:"liked"`
	IsLiked       bool            `json:"isLiked"`
	RetippniCount int             `json:"retippniCount"`
	Retippned     bool            `json:"retippned"`
	RetippniTo    json.RawMessage `json:"retippniTo"`
	ReplyToID     string          `json:"replyToId"`
	IsBelongs     bool            `json:"isBelongs"`
	CreatedAt     *time.Time      `json:"createdAt"`
}

// Reaction is a raw like/repost response.
type Reaction struct {
	Count *int `json:"count"`
}

// Unwrap strips one level of known envelope (e.g. {"data": ...}) from body.
// Body is returned as is when it is not an object or has none of keys.
func Unwrap(body []byte, keys ...string) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return trimmed
	}

	for _, k := range keys {
		if v, ok := m[k]; ok && len(v) > 0 && string(v) != "null" {
			return v
		}
	}

	return trimmed
}

// DecodeProfile decodes single profile payload, {"data": profile} is accepted as well.
func DecodeProfile(body []byte) (*entities.Profile, error) {
	var p Profile
	if err := json.Unmarshal(Unwrap(body, "data"), &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return ToProfile(&p), nil
}

// DecodeProfiles decodes list of profiles, {"data": [...]} and {"content": [...]} are accepted as well.
func DecodeProfiles(body []byte) ([]*entities.Profile, error) {
	var raw []*Profile
	b := Unwrap(body, "data", "content")
	if len(b) == 0 {
		return []*entities.Profile{}, nil
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	out := make([]*entities.Profile, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		out = append(out, ToProfile(v))
	}

	return out, nil
}

// DecodeFeed decodes list of posts.
func DecodeFeed(body []byte) (*entities.Feed, error) {
	var raw []*Post
	b := Unwrap(body, "data", "content")
	if len(b) == 0 {
		return entities.NewFeed(), nil
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return ToFeed(raw...)
}

// DecodePost decodes a single post into feed with one post.
func DecodePost(body []byte) (*entities.Feed, error) {
	b := Unwrap(body, "data")
	if len(b) == 0 || string(b) == "null" {
		return entities.NewFeed(), nil
	}

	var p Post
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}

	return ToFeed(&p)
}

// DecodeReaction returns count reported by server, nil when there is none.
func DecodeReaction(body []byte) *int {
	var r Reaction
	if err := json.Unmarshal(Unwrap(body, "data"), &r); err != nil {
		return nil
	}

	return r.Count
}

// ToProfile ...
func ToProfile(p *Profile) *entities.Profile {
	if p == nil {
		return nil
	}

	id := p.ProfileID
	if id == "" {
		id = p.ID
	}

	out := &entities.Profile{
		ID:        id,
		Username:  p.Username,
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		BirthDate: p.BirthDate,
		AvatarURL: p.AvatarURL,
		BannerURL: p.BannerURL,
		Verified:  p.Verified,
	}

	if p.Followers != nil && p.Followees != nil {
		out.Followers, out.Followees = *p.Followers, *p.Followees
		out.HasCounts = true
	}

	return out
}

// ToFeed flattens posts: reposted originals and authors become separate entities referenced by id.
func ToFeed(posts ...*Post) (*entities.Feed, error) {
	feed := entities.NewFeed()
	feed.Posts = make([]*entities.Post, 0, len(posts))

	for _, v := range posts {
		if v == nil {
			continue
		}

		p, err := toPost(feed, v)
		if err != nil {
			return nil, err
		}

		feed.Posts = append(feed.Posts, p)
	}

	return feed, nil
}

func toPost(feed *entities.Feed, p *Post) (*entities.Post, error) {
	out := &entities.Post{
		ID:        p.ID,
		Type:      entities.PostType(strings.ToUpper(p.Type)),
		Text:      p.Text,
		Media:     p.MediaURLs,
		Likes:     entities.Counter{Active: p.Liked || p.IsLiked, Count: p.Likes},
		Reposts:   entities.Counter{Active: p.Retippned, Count: p.RetippniCount},
		ReplyToID: p.ReplyToID,
		IsBelongs: p.IsBelongs,
	}

	if out.Media == nil {
		out.Media = []string{}
	}

	if p.CreatedAt != nil {
		out.CreatedAt = *p.CreatedAt
	}

	if author := ToProfile(p.Profile); author != nil && author.ID != "" {
		out.AuthorID = author.ID
		feed.Profiles[author.ID] = author
	}

	ref := bytes.TrimSpace(p.RetippniTo)
	switch {
	case len(ref) == 0 || string(ref) == "null":
	case ref[0] == '"':
		if err := json.Unmarshal(ref, &out.RepostOfID); err != nil {
			return nil, fmt.Errorf("failed to decode retippniTo of %s: %w", p.ID, err)
		}
	default:
		var original Post
		if err := json.Unmarshal(ref, &original); err != nil {
			return nil, fmt.Errorf("failed to decode retippniTo of %s: %w", p.ID, err)
		}

		o, err := toPost(feed, &original)
		if err != nil {
			return nil, err
		}

		out.RepostOfID = o.ID
		feed.Included[o.ID] = o
	}

	if out.RepostOfID != "" && out.Type == "" {
		out.Type = entities.RepostPostType
	}

	return out, nil
}

// Connection is a profile shown in followers or followees list.
type Connection struct {
	Profile *entities.Profile
	// IsFollowing is true when the viewer follows the profile.
	IsFollowing bool
}

// Connections marks every followee as followed and every follower as followed
// iff the follower is present among followees. It is the viewer's relation only for the viewer's own lists.
func Connections(followers, followees []*entities.Profile) (fs []Connection, fe []Connection) {
	followed := make(map[string]struct{}, len(followees))

	fe = make([]Connection, 0, len(followees))
	for _, v := range followees {
		followed[v.ID] = struct{}{}
		fe = append(fe, Connection{Profile: v, IsFollowing: true})
	}

	fs = make([]Connection, 0, len(followers))
	for _, v := range followers {
		_, ok := followed[v.ID]
		fs = append(fs, Connection{Profile: v, IsFollowing: ok})
	}

	return fs, fe
}
