package store

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/notify"
)

func fakeProfile(id string) *entities.Profile {
	return &entities.Profile{
		ID:        id,
		Username:  gofakeit.Username(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Location:  gofakeit.City(),
		Followers: gofakeit.Number(1, 100),
		Followees: gofakeit.Number(1, 100),
	}
}

func TestStore_MeAndSelectedShareEntity(t *testing.T) {
	s := New()

	me := fakeProfile("p1")
	s.SetMe(me)
	s.SetSelected(me)

	updated := *me
	updated.Bio = "updated"
	s.PutProfile(&updated)

	require.Equal(t, "updated", s.Me().Bio)
	require.Equal(t, "updated", s.Selected().Bio)

	s.ClearSelected()
	require.Nil(t, s.Selected())
	require.NotNil(t, s.Me())

	s.ClearMe()
	require.Nil(t, s.Me())
}

func TestStore_PutProfileReplacesWholesale(t *testing.T) {
	s := New()

	s.PutProfile(&entities.Profile{ID: "p1", Username: "al", Bio: "bio"})
	s.PutProfile(&entities.Profile{ID: "p1", Username: "al"})

	p, ok := s.Profile("p1")
	require.True(t, ok)
	require.Empty(t, p.Bio)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	s.SetMe(&entities.Profile{ID: "p1", Username: "al"})

	s.Me().Username = "changed"
	require.Equal(t, "al", s.Me().Username)
}

func TestStore_Connections(t *testing.T) {
	s := New()
	s.SetMe(&entities.Profile{ID: "me", Username: "me"})
	s.PutProfile(&entities.Profile{ID: "a", Username: "a", Bio: "kept"})

	followers, followees := normalize.Connections(
		[]*entities.Profile{{ID: "a", Name: "A"}, {ID: "b"}},
		[]*entities.Profile{{ID: "a"}, {ID: "c"}},
	)
	s.SetConnections("me", followers, followees)

	p, _ := s.Profile("a")
	assert.Equal(t, "kept", p.Bio)
	assert.Equal(t, "A", p.Name)

	fs, fe := s.Connections("me")
	require.Len(t, fs, 2)
	require.Len(t, fe, 2)
	assert.True(t, fs[0].IsFollowing)
	assert.False(t, fs[1].IsFollowing)
	assert.True(t, fe[1].IsFollowing)

	assert.Equal(t, FollowState{Known: true, Following: false}, s.Follow("b"))
	assert.Equal(t, FollowState{}, s.Follow("unknown"))
}

func TestStore_ConnectionsOfOtherProfile(t *testing.T) {
	s := New()
	s.SetMe(&entities.Profile{ID: "me", Username: "me"})

	fs, fe := normalize.Connections(nil, []*entities.Profile{{ID: "z", Username: "z"}})
	s.SetConnections("me", fs, fe)
	require.Equal(t, FollowState{Known: true, Following: true}, s.Follow("z"))

	// x is followed by z and y and follows y, it says nothing about the viewer.
	fs, fe = normalize.Connections(
		[]*entities.Profile{{ID: "z"}, {ID: "y"}},
		[]*entities.Profile{{ID: "y"}},
	)
	s.SetConnections("x", fs, fe)

	assert.Equal(t, FollowState{Known: true, Following: true}, s.Follow("z"))
	assert.Equal(t, FollowState{}, s.Follow("y"))

	fs, fe = s.Connections("x")
	require.Len(t, fs, 2)
	assert.True(t, fs[0].IsFollowing)
	assert.False(t, fs[1].IsFollowing)
	require.Len(t, fe, 1)
	assert.False(t, fe[0].IsFollowing)
}

func TestStore_MergeCounts(t *testing.T) {
	s := New()
	s.PutProfile(&entities.Profile{ID: "a", Username: "a", Followers: 5, Followees: 2, HasCounts: true})

	fs, _ := normalize.Connections([]*entities.Profile{{ID: "a"}}, nil)
	s.SetConnections("x", fs, nil)
	p, _ := s.Profile("a")
	assert.Equal(t, 5, p.Followers)
	assert.Equal(t, 2, p.Followees)

	fs, _ = normalize.Connections([]*entities.Profile{{ID: "a", HasCounts: true}}, nil)
	s.SetConnections("x", fs, nil)
	p, _ = s.Profile("a")
	assert.Equal(t, 0, p.Followers)
	assert.Equal(t, 0, p.Followees)
}

func TestStore_FollowUpdateAndRestore(t *testing.T) {
	s := New()

	flip := func(v FollowState) FollowState {
		return FollowState{Known: true, Following: !v.Following}
	}

	before, after := s.UpdateFollow("u1", flip)
	require.Equal(t, FollowState{}, before)
	require.Equal(t, FollowState{Known: true, Following: true}, after)
	require.True(t, s.Follow("u1").Following)

	s.RestoreFollow("u1", before)
	require.Equal(t, FollowState{}, s.Follow("u1"))
	require.NotContains(t, s.Snapshot().Following, "u1")
}

func feed() *entities.Feed {
	f := entities.NewFeed()
	f.Profiles["u1"] = &entities.Profile{ID: "u1", Username: "al"}
	f.Profiles["u2"] = &entities.Profile{ID: "u2", Username: "bob"}
	f.Included["o1"] = &entities.Post{
		ID:       "o1",
		AuthorID: "u1",
		Text:     "original",
		Media:    []string{"m1"},
		Likes:    entities.Counter{Count: 4},
		Reposts:  entities.Counter{Active: true, Count: 1},
	}
	f.Posts = []*entities.Post{
		{ID: "r1", AuthorID: "u2", Type: entities.RepostPostType, RepostOfID: "o1", IsBelongs: true, Media: []string{}},
		{ID: "p2", AuthorID: "u1", Text: "plain", Media: []string{}},
		{ID: "r3", AuthorID: "u2", RepostOfID: "missing", Text: "own", Media: []string{}},
	}

	return f
}

func TestStore_TimelineViews(t *testing.T) {
	s := New()
	s.SetTimeline(feed())

	tl := s.Timeline()
	require.Len(t, tl, 3)

	r1 := tl[0]
	assert.Equal(t, "r1", r1.ID)
	assert.Equal(t, "o1", r1.TargetID)
	assert.Equal(t, "original", r1.Text)
	assert.Equal(t, []string{"m1"}, r1.Media)
	assert.Equal(t, "al", r1.Author.Username)
	assert.Equal(t, "bob", r1.RepostedBy.Username)
	assert.Equal(t, 4, r1.Likes.Count)
	assert.True(t, r1.IsBelongs)

	assert.Equal(t, "p2", tl[1].TargetID)
	assert.Nil(t, tl[1].RepostedBy)

	assert.Equal(t, "r3", tl[2].TargetID)
	assert.Equal(t, "own", tl[2].Text)
}

func TestStore_CountersAreSingleSource(t *testing.T) {
	s := New()
	s.SetTimeline(feed())
	s.SetUserPosts("u2", feed())

	before, after, err := s.UpdateLikes("o1", entities.Counter.Toggled)
	require.NoError(t, err)
	require.Equal(t, entities.Counter{Count: 4}, before)
	require.Equal(t, entities.Counter{Active: true, Count: 5}, after)

	v, ok := s.PostView("r1")
	require.True(t, ok)
	require.Equal(t, after, v.Likes)

	up, ok := s.UserPosts("u2")
	require.True(t, ok)
	require.Equal(t, after, up[0].Likes)

	s.RestoreLikes("o1", before)
	v, _ = s.PostView("r1")
	require.Equal(t, before, v.Likes)

	s.SetRepostsCount("o1", 9)
	v, _ = s.PostView("r1")
	require.Equal(t, entities.Counter{Active: true, Count: 9}, v.Reposts)

	_, _, err = s.UpdateReposts("unknown", entities.Counter.Toggled)
	require.ErrorIs(t, err, ErrUnknownPost)
}

func TestStore_AddAndRemovePost(t *testing.T) {
	s := New()
	s.SetTimeline(feed())
	s.SetUserPosts("u1", entities.NewFeed())

	f := entities.NewFeed()
	f.Posts = []*entities.Post{{ID: "n1", AuthorID: "u1", Text: "new", IsBelongs: true}}
	s.AddPost(f)

	tl := s.Timeline()
	require.Len(t, tl, 4)
	require.Equal(t, "n1", tl[0].ID)

	up, _ := s.UserPosts("u1")
	require.Len(t, up, 1)

	s.RemovePost("n1")
	require.Len(t, s.Timeline(), 3)
	up, _ = s.UserPosts("u1")
	require.Empty(t, up)

	_, ok := s.Post("n1")
	require.False(t, ok)

	_, ok = s.UserPosts("nobody")
	require.False(t, ok)
}

func TestStore_Fetch(t *testing.T) {
	s := New()
	require.Equal(t, FetchState{Status: Idle}, s.Fetch(MyProfileOp))

	s.Pending(MyProfileOp)
	require.True(t, s.Fetch(MyProfileOp).IsLoading())

	s.Rejected(MyProfileOp, "boom")
	require.Equal(t, FetchState{Status: Rejected, Error: "boom"}, s.Fetch(MyProfileOp))

	s.Pending(MyProfileOp)
	require.Equal(t, FetchState{Status: Pending, Error: "boom"}, s.Fetch(MyProfileOp))

	s.Fulfilled(MyProfileOp)
	require.Equal(t, FetchState{Status: Fulfilled}, s.Fetch(MyProfileOp))
}

func TestStore_Subscribe(t *testing.T) {
	s := New()

	events, unsubscribe := s.Subscribe()

	s.SetPage(entities.ProfilePage)
	s.Notify(notify.Error("failed"))

	select {
	case e := <-events:
		require.Equal(t, Event{Type: PageEvent, ID: "profile"}, e)
	case <-time.After(time.Second):
		t.Fatal("no event")
	}

	e := <-events
	require.Equal(t, NotificationEvent, e.Type)
	require.Equal(t, "failed", e.Notification.Message)

	unsubscribe()
	unsubscribe()

	_, ok := <-events
	require.False(t, ok)

	require.NotPanics(t, func() { s.SetPage(entities.HomePage) })
}

func TestStore_SlowSubscriberDoesNotBlock(t *testing.T) {
	s := New()

	_, unsubscribe := s.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer*2; i++ {
		s.SetPage(entities.HomePage)
	}
}

func TestStore_Reset(t *testing.T) {
	s := New()
	s.SetMe(fakeProfile("p1"))
	s.SetTimeline(feed())
	s.SetPage(entities.SettingsPage)

	s.Reset()

	snap := s.Snapshot()
	require.Nil(t, snap.Me)
	require.Empty(t, snap.Timeline)
	require.Equal(t, entities.HomePage, snap.Page)
}
