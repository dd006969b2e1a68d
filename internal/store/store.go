// Package store contains an in-memory entity store of the client.
// Every profile and post is kept once, keyed by id; lists and references hold ids only.
package store

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/notify"
)

var log = logrus.WithField("package", "store")

// ErrUnknownPost is returned when the post is not in the store.
var ErrUnknownPost = errors.New("unknown post")

// subscriberBuffer is a number of events buffered per subscriber, events to a full subscriber are dropped.
const subscriberBuffer = 64

// FollowState is the viewer's follow relation to a profile.
type FollowState struct {
	// Known is false when the relation was never loaded.
	Known     bool
	Following bool
}

// Store ...
type Store struct {
	mu sync.RWMutex

	profiles map[string]*entities.Profile
	posts    map[string]*entities.Post
	follows  map[string]bool

	me       string
	selected string
	page     entities.Page

	timeline  []string
	userPosts map[string][]string
	followers map[string][]string
	followees map[string][]string

	fetch map[string]FetchState

	subsMu  sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// New returns empty store on home page.
func New() *Store {
	s := &Store{
		subs: map[int]chan Event{},
	}
	s.reset()

	return s
}

func (s *Store) reset() {
	s.profiles = map[string]*entities.Profile{}
	s.posts = map[string]*entities.Post{}
	s.follows = map[string]bool{}
	s.me, s.selected = "", ""
	s.page = entities.HomePage
	s.timeline = nil
	s.userPosts = map[string][]string{}
	s.followers = map[string][]string{}
	s.followees = map[string][]string{}
	s.fetch = map[string]FetchState{}
}

// Reset drops every entity, e.g. on sign out.
func (s *Store) Reset() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	s.emit(Event{Type: ResetEvent})
}

// SetPage ...
func (s *Store) SetPage(p entities.Page) {
	s.mu.Lock()
	s.page = p
	s.mu.Unlock()

	s.emit(Event{Type: PageEvent, ID: string(p)})
}

// Page ...
func (s *Store) Page() entities.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.page
}

// PutProfile replaces the profile wholesale.
func (s *Store) PutProfile(p *entities.Profile) {
	s.mu.Lock()
	s.profiles[p.ID] = copyProfile(p)
	s.mu.Unlock()

	s.emit(Event{Type: ProfileEvent, ID: p.ID})
}

// Profile ...
func (s *Store) Profile(id string) (*entities.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, false
	}

	return copyProfile(p), true
}

// SetMe puts the profile and marks it as the viewer's one.
func (s *Store) SetMe(p *entities.Profile) {
	s.mu.Lock()
	s.profiles[p.ID] = copyProfile(p)
	s.me = p.ID
	s.mu.Unlock()

	s.emit(Event{Type: ProfileEvent, ID: p.ID})
}

// Me returns the viewer's profile or nil.
func (s *Store) Me() *entities.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyProfile(s.profiles[s.me])
}

// ClearMe drops the reference to the viewer's profile.
func (s *Store) ClearMe() {
	s.mu.Lock()
	s.me = ""
	s.mu.Unlock()

	s.emit(Event{Type: ProfileEvent})
}

// SetSelected puts the profile and marks it as selected one.
func (s *Store) SetSelected(p *entities.Profile) {
	s.mu.Lock()
	s.profiles[p.ID] = copyProfile(p)
	s.selected = p.ID
	s.mu.Unlock()

	s.emit(Event{Type: ProfileEvent, ID: p.ID})
}

// Selected returns selected profile or nil.
func (s *Store) Selected() *entities.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyProfile(s.profiles[s.selected])
}

// ClearSelected drops the reference to the selected profile.
func (s *Store) ClearSelected() {
	s.mu.Lock()
	s.selected = ""
	s.mu.Unlock()

	s.emit(Event{Type: ProfileEvent})
}

// Follow returns the viewer's relation to the profile.
func (s *Store) Follow(id string) FollowState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.follows[id]
	return FollowState{Known: ok, Following: v}
}

// UpdateFollow atomically replaces the relation with f(relation).
func (s *Store) UpdateFollow(id string, f func(FollowState) FollowState) (before, after FollowState) {
	s.mu.Lock()
	v, ok := s.follows[id]
	before = FollowState{Known: ok, Following: v}
	after = f(before)
	s.setFollow(id, after)
	s.mu.Unlock()

	s.emit(Event{Type: FollowEvent, ID: id})

	return before, after
}

// RestoreFollow writes the exact previous relation back, an unknown relation is removed.
func (s *Store) RestoreFollow(id string, before FollowState) {
	s.mu.Lock()
	s.setFollow(id, before)
	s.mu.Unlock()

	s.emit(Event{Type: FollowEvent, ID: id})
}

func (s *Store) setFollow(id string, v FollowState) {
	if !v.Known {
		delete(s.follows, id)
		return
	}
	s.follows[id] = v.Following
}

// SetConnections stores followers and followees of the profile.
// Entries are merged into known profiles. The follow relation is taken from entries
// only for the viewer's own lists, lists of other profiles never touch it.
func (s *Store) SetConnections(profileID string, followers, followees []normalize.Connection) {
	s.mu.Lock()
	own := s.me != "" && s.me == profileID
	s.followers[profileID] = s.putConnections(followers, own)
	s.followees[profileID] = s.putConnections(followees, own)
	s.mu.Unlock()

	s.emit(Event{Type: ConnectionsEvent, ID: profileID})
}

func (s *Store) putConnections(c []normalize.Connection, own bool) []string {
	ids := make([]string, 0, len(c))
	for _, v := range c {
		if v.Profile == nil || v.Profile.ID == "" {
			continue
		}
		s.mergeProfile(v.Profile)
		if own {
			s.follows[v.Profile.ID] = v.IsFollowing
		}
		ids = append(ids, v.Profile.ID)
	}

	return ids
}

// Connections returns followers and followees of the profile with the viewer's relation to each.
func (s *Store) Connections(profileID string) (followers, followees []normalize.Connection) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.connections(s.followers[profileID]), s.connections(s.followees[profileID])
}

func (s *Store) connections(ids []string) []normalize.Connection {
	out := make([]normalize.Connection, 0, len(ids))
	for _, id := range ids {
		p, ok := s.profiles[id]
		if !ok {
			continue
		}
		out = append(out, normalize.Connection{Profile: copyProfile(p), IsFollowing: s.follows[id]})
	}

	return out
}

// PutFeed stores every post and profile of the feed.
func (s *Store) PutFeed(f *entities.Feed) {
	s.mu.Lock()
	s.putFeed(f)
	s.mu.Unlock()
}

func (s *Store) putFeed(f *entities.Feed) []string {
	for _, v := range f.Profiles {
		s.mergeProfile(v)
	}

	for id, v := range f.Included {
		s.posts[id] = copyPost(v)
	}

	ids := make([]string, 0, len(f.Posts))
	for _, v := range f.Posts {
		s.posts[v.ID] = copyPost(v)
		ids = append(ids, v.ID)
	}

	return ids
}

// SetTimeline stores the feed as home timeline.
func (s *Store) SetTimeline(f *entities.Feed) {
	s.mu.Lock()
	s.timeline = s.putFeed(f)
	s.mu.Unlock()

	s.emit(Event{Type: TimelineEvent})
}

// SetUserPosts stores the feed as posts of the profile.
func (s *Store) SetUserPosts(profileID string, f *entities.Feed) {
	s.mu.Lock()
	s.userPosts[profileID] = s.putFeed(f)
	s.mu.Unlock()

	s.emit(Event{Type: TimelineEvent, ID: profileID})
}

// AddPost stores a new post of the viewer at the head of timeline and of the author's posts.
func (s *Store) AddPost(f *entities.Feed) {
	s.mu.Lock()
	ids := s.putFeed(f)
	for _, id := range ids {
		s.timeline = append([]string{id}, s.timeline...)
		if author := s.posts[id].AuthorID; author != "" {
			if list, ok := s.userPosts[author]; ok {
				s.userPosts[author] = append([]string{id}, list...)
			}
		}
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.emit(Event{Type: PostEvent, ID: id})
	}
}

// Post ...
func (s *Store) Post(id string) (*entities.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, false
	}

	return copyPost(p), true
}

// RemovePost drops the post from the store and from every list.
func (s *Store) RemovePost(id string) {
	s.mu.Lock()
	delete(s.posts, id)
	s.timeline = without(s.timeline, id)
	for k, v := range s.userPosts {
		s.userPosts[k] = without(v, id)
	}
	s.mu.Unlock()

	s.emit(Event{Type: PostRemovedEvent, ID: id})
}

// UpdateLikes atomically replaces like counter of the post with f(counter).
func (s *Store) UpdateLikes(id string, f func(entities.Counter) entities.Counter) (before, after entities.Counter, err error) {
	return s.updateCounter(id, likes, f)
}

// RestoreLikes ...
func (s *Store) RestoreLikes(id string, before entities.Counter) {
	s.restoreCounter(id, likes, before)
}

// SetLikesCount sets the count reported by server.
func (s *Store) SetLikesCount(id string, n int) {
	s.setCount(id, likes, n)
}

// UpdateReposts atomically replaces repost counter of the post with f(counter).
func (s *Store) UpdateReposts(id string, f func(entities.Counter) entities.Counter) (before, after entities.Counter, err error) {
	return s.updateCounter(id, reposts, f)
}

// RestoreReposts ...
func (s *Store) RestoreReposts(id string, before entities.Counter) {
	s.restoreCounter(id, reposts, before)
}

// SetRepostsCount sets the count reported by server.
func (s *Store) SetRepostsCount(id string, n int) {
	s.setCount(id, reposts, n)
}

type counterField func(p *entities.Post) *entities.Counter

func likes(p *entities.Post) *entities.Counter   { return &p.Likes }
func reposts(p *entities.Post) *entities.Counter { return &p.Reposts }

func (s *Store) updateCounter(id string, field counterField, f func(entities.Counter) entities.Counter) (before, after entities.Counter, err error) {
	s.mu.Lock()
	p, ok := s.posts[id]
	if !ok {
		s.mu.Unlock()
		return before, after, ErrUnknownPost
	}

	c := field(p)
	before = *c
	after = f(before)
	*c = after
	s.mu.Unlock()

	s.emit(Event{Type: PostEvent, ID: id})

	return before, after, nil
}

func (s *Store) restoreCounter(id string, field counterField, before entities.Counter) {
	s.mu.Lock()
	p, ok := s.posts[id]
	if ok {
		*field(p) = before
	}
	s.mu.Unlock()

	if !ok {
		log.WithField("id", id).Debug("post is gone before rollback")
		return
	}

	s.emit(Event{Type: PostEvent, ID: id})
}

func (s *Store) setCount(id string, field counterField, n int) {
	if n < 0 {
		n = 0
	}

	s.mu.Lock()
	p, ok := s.posts[id]
	if ok {
		field(p).Count = n
	}
	s.mu.Unlock()

	if ok {
		s.emit(Event{Type: PostEvent, ID: id})
	}
}

// Notify emits notification to subscribers.
func (s *Store) Notify(n notify.Notification) {
	s.emit(Event{Type: NotificationEvent, Notification: &n})
}

var _ notify.Notifier = (*Store)(nil)

func (s *Store) mergeProfile(p *entities.Profile) {
	if p == nil || p.ID == "" {
		return
	}

	cur, ok := s.profiles[p.ID]
	if !ok {
		s.profiles[p.ID] = copyProfile(p)
		return
	}

	merged := *cur
	mergeString(&merged.Username, p.Username)
	mergeString(&merged.Name, p.Name)
	mergeString(&merged.Email, p.Email)
	mergeString(&merged.Bio, p.Bio)
	mergeString(&merged.Location, p.Location)
	mergeString(&merged.Website, p.Website)
	mergeString(&merged.BirthDate, p.BirthDate)
	mergeString(&merged.AvatarURL, p.AvatarURL)
	mergeString(&merged.BannerURL, p.BannerURL)
	merged.Verified = merged.Verified || p.Verified
	if p.HasCounts {
		merged.Followers, merged.Followees = p.Followers, p.Followees
		merged.HasCounts = true
	}

	s.profiles[p.ID] = &merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}

func copyProfile(p *entities.Profile) *entities.Profile {
	if p == nil {
		return nil
	}

	c := *p
	return &c
}

func copyPost(p *entities.Post) *entities.Post {
	if p == nil {
		return nil
	}

	c := *p
	c.Media = append([]string{}, p.Media...)

	return &c
}
