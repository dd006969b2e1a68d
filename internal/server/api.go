package server

import (
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/store"
)

// Error ...
type Error struct {
	Error string `json:"error"`
	// Fields contains validation errors by form field.
	Fields map[string]string `json:"fields,omitempty"`
}

// SignInRequest ...
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest ...
type SignUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DateOfBirth     string `json:"dob"`
	Gender          string `json:"gender"`
}

// ActivateRequest ...
type ActivateRequest struct {
	Code string `json:"code"`
}

// MessageResponse ...
type MessageResponse struct {
	Message string `json:"message"`
}

// PageRequest ...
type PageRequest struct {
	Page entities.Page `json:"page"`
}

// UpdateProfileRequest ...
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	BirthDate string `json:"birth_date"`
}

// Profile ...
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Location  string `json:"location,omitempty"`
	Website   string `json:"website,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Banner    string `json:"banner,omitempty"`
	Verified  bool   `json:"verified"`
	Followers int    `json:"followers"`
	Followees int    `json:"followees"`
}

// Connection ...
type Connection struct {
	Profile
	IsFollowing bool `json:"is_following"`
}

// Counter ...
type Counter struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

// Post ...
type Post struct {
	ID         string            `json:"id"`
	TargetID   string            `json:"target_id"`
	Type       entities.PostType `json:"type"`
	Author     *Profile          `json:"author,omitempty"`
	Text       string            `json:"text"`
	Media      []string          `json:"media,omitempty"`
	Likes      Counter           `json:"likes"`
	Reposts    Counter           `json:"reposts"`
	ReplyToID  string            `json:"reply_to_id,omitempty"`
	IsBelongs  bool              `json:"is_belongs"`
	CreatedAt  int64             `json:"created_at"`
	RepostedBy *Profile          `json:"reposted_by,omitempty"`
}

// FollowResponse ...
type FollowResponse struct {
	Following bool `json:"following"`
}

// FetchState ...
type FetchState struct {
	Status store.FetchStatus `json:"status"`
	Error  string            `json:"error,omitempty"`
}

// StateResponse ...
type StateResponse struct {
	Page      entities.Page         `json:"page"`
	SignedIn  bool                  `json:"signed_in"`
	Me        *Profile              `json:"me,omitempty"`
	Selected  *Profile              `json:"selected,omitempty"`
	Timeline  []Post                `json:"timeline"`
	Following map[string]bool       `json:"following"`
	Fetch     map[string]FetchState `json:"fetch"`
	Deletions map[string]string     `json:"deletions"`
}

func newProfile(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		ID:        p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		BirthDate: p.BirthDate,
		Avatar:    p.AvatarURL,
		Banner:    p.BannerURL,
		Verified:  p.Verified,
		Followers: p.Followers,
		Followees: p.Followees,
	}
}

func newProfiles(p []*entities.Profile) []Profile {
	out := make([]Profile, 0, len(p))
	for _, v := range p {
		if v != nil {
			out = append(out, *newProfile(v))
		}
	}

	return out
}

func newConnections(c []normalize.Connection) []Connection {
	out := make([]Connection, 0, len(c))
	for _, v := range c {
		if v.Profile == nil {
			continue
		}
		out = append(out, Connection{
			Profile:     *newProfile(v.Profile),
			IsFollowing: v.IsFollowing,
		})
	}

	return out
}

func newCounter(c entities.Counter) Counter {
	return Counter{Active: c.Active, Count: c.Count}
}

func newPost(v entities.PostView) Post {
	p := Post{
		ID:         v.ID,
		TargetID:   v.TargetID,
		Type:       v.Type,
		Author:     newProfile(v.Author),
		Text:       v.Text,
		Media:      v.Media,
		Likes:      newCounter(v.Likes),
		Reposts:    newCounter(v.Reposts),
		ReplyToID:  v.ReplyToID,
		IsBelongs:  v.IsBelongs,
		RepostedBy: newProfile(v.RepostedBy),
	}

	if !v.CreatedAt.IsZero() {
		p.CreatedAt = v.CreatedAt.Unix()
	}

	return p
}

func newPosts(v []entities.PostView) []Post {
	out := make([]Post, len(v))
	for i := range v {
		out[i] = newPost(v[i])
	}

	return out
}

func newStateResponse(s service.State) StateResponse {
	fetch := make(map[string]FetchState, len(s.Fetch))
	for k, v := range s.Fetch {
		fetch[k] = FetchState{Status: v.Status, Error: v.Error}
	}

	deletions := make(map[string]string, len(s.Deletions))
	for k, v := range s.Deletions {
		deletions[k] = string(v)
	}

	following := s.Following
	if following == nil {
		following = map[string]bool{}
	}

	return StateResponse{
		Page:      s.Page,
		SignedIn:  s.SignedIn,
		Me:        newProfile(s.Me),
		Selected:  newProfile(s.Selected),
		Timeline:  newPosts(s.Timeline),
		Following: following,
		Fetch:     fetch,
		Deletions: deletions,
	}
}
