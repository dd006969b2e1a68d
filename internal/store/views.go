package store

import (
	"github.com/tippni/tippni/internal/entities"
)

// Snapshot is a consistent copy of the state shown by views.
type Snapshot struct {
	Page      entities.Page
	Me        *entities.Profile
	Selected  *entities.Profile
	Timeline  []entities.PostView
	Following map[string]bool
	Fetch     map[string]FetchState
}

// Snapshot ...
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	following := make(map[string]bool, len(s.follows))
	for k, v := range s.follows {
		following[k] = v
	}

	fetch := make(map[string]FetchState, len(s.fetch))
	for k, v := range s.fetch {
		fetch[k] = v
	}

	return Snapshot{
		Page:      s.page,
		Me:        copyProfile(s.profiles[s.me]),
		Selected:  copyProfile(s.profiles[s.selected]),
		Timeline:  s.views(s.timeline),
		Following: following,
		Fetch:     fetch,
	}
}

// PostView returns the post as it is rendered.
func (s *Store) PostView(id string) (entities.PostView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return entities.PostView{}, false
	}

	return s.view(p), true
}

// Timeline returns home timeline.
func (s *Store) Timeline() []entities.PostView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.views(s.timeline)
}

// UserPosts returns posts of the profile, ok is false when they were never loaded.
func (s *Store) UserPosts(profileID string) ([]entities.PostView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.userPosts[profileID]
	if !ok {
		return nil, false
	}

	return s.views(ids), true
}

func (s *Store) views(ids []string) []entities.PostView {
	out := make([]entities.PostView, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			out = append(out, s.view(p))
		}
	}

	return out
}

// view resolves a repost into the original's content. A repost whose original is unknown shows its own content.
func (s *Store) view(p *entities.Post) entities.PostView {
	v := entities.PostView{
		ID:        p.ID,
		TargetID:  p.ID,
		Type:      p.Type,
		Author:    copyProfile(s.profiles[p.AuthorID]),
		Text:      p.Text,
		Media:     append([]string{}, p.Media...),
		Likes:     p.Likes,
		Reposts:   p.Reposts,
		ReplyToID: p.ReplyToID,
		IsBelongs: p.IsBelongs,
		CreatedAt: p.CreatedAt,
	}

	if !p.IsRepost() {
		return v
	}

	v.RepostedBy = v.Author

	o, ok := s.posts[p.RepostOfID]
	if !ok {
		return v
	}

	v.TargetID = o.ID
	v.Author = copyProfile(s.profiles[o.AuthorID])
	v.Text = o.Text
	v.Media = append([]string{}, o.Media...)
	v.Likes = o.Likes
	v.Reposts = o.Reposts
	v.ReplyToID = o.ReplyToID
	v.CreatedAt = o.CreatedAt

	return v
}
