package impl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippni/tippni/internal/client"
	clientmock "github.com/tippni/tippni/internal/client/mock"
	"github.com/tippni/tippni/internal/deletion"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/notify"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/session"
	"github.com/tippni/tippni/internal/storage"
	storagemock "github.com/tippni/tippni/internal/storage/mock"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

var ctx = context.Background()

type collector struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (c *collector) Notify(n notify.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = append(c.notes, n)
}

func (c *collector) last() notify.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.notes) == 0 {
		return notify.Notification{}
	}

	return c.notes[len(c.notes)-1]
}

type fixture struct {
	srv   *srv
	c     *clientmock.MockClient
	s     *storagemock.MockStorage
	st    *store.Store
	sess  *session.Session
	notes *collector
}

func jwtToken(t *testing.T, sub string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

// newFixture creates service. Token "" means anonymous session, withStorage enables persistence.
func newFixture(t *testing.T, token string, withStorage bool) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		c:     clientmock.NewMockClient(ctrl),
		st:    store.New(),
		sess:  session.New(token),
		notes: &collector{},
	}

	var s storage.Storage
	if withStorage {
		f.s = storagemock.NewMockStorage(ctrl)
		s = f.s
	}

	f.srv = New(f.c, f.sess, f.st, s, f.notes, Options{Dedupe: true}).(*srv)

	return f
}

func fakeProfile(id string) *entities.Profile {
	return &entities.Profile{
		ID:        id,
		Username:  gofakeit.Username(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Location:  gofakeit.City(),
		Followers: gofakeit.Number(0, 1000),
		Followees: gofakeit.Number(0, 1000),
	}
}

var errServer = &client.Error{Status: http.StatusInternalServerError, Message: "boom"}

func TestSrv_SignIn(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		f := newFixture(t, "", false)

		err := f.srv.SignIn(ctx, "bad", "short")

		var verr validate.Errors
		require.True(t, errors.As(err, &verr))
		require.Contains(t, verr, "email")
		require.Contains(t, verr, "password")
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, "", false)
		me := fakeProfile("p1")

		f.c.EXPECT().Authenticate(gomock.Any(), "al@tippni.com", "12345678").Return("token", nil)
		f.c.EXPECT().GetMyProfile(gomock.Any()).Return(me, nil)

		require.NoError(t, f.srv.SignIn(ctx, "al@tippni.com", "12345678"))
		require.True(t, f.sess.IsSignedIn())
		require.Equal(t, me, f.st.Me())
		require.Equal(t, notify.SuccessLevel, f.notes.notes[0].Level)
	})

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(t, "", false)

		f.c.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", &client.Error{Status: http.StatusUnauthorized, Message: "Bad credentials"})

		require.Error(t, f.srv.SignIn(ctx, "al@tippni.com", "12345678"))
		require.False(t, f.sess.IsSignedIn())
		require.Equal(t, "Bad credentials", f.notes.last().Message)
	})
}

func TestSrv_SignOut(t *testing.T) {
	f := newFixture(t, "token", false)
	f.st.SetMe(fakeProfile("p1"))

	f.st.SetTimeline(timeline())
	require.NoError(t, f.srv.RequestDelete("r1"))
	require.NotEmpty(t, f.srv.State().Deletions)

	require.NoError(t, f.srv.SignOut(ctx))
	require.False(t, f.sess.IsSignedIn())
	require.Nil(t, f.st.Me())
	require.Empty(t, f.srv.State().Deletions)
}

func TestSrv_SignUpAndActivate(t *testing.T) {
	f := newFixture(t, "", false)

	form := validate.SignUpForm{
		Username:        "al",
		Email:           "al@tippni.com",
		Password:        "password",
		ConfirmPassword: "password",
		DateOfBirth:     "2000-01-01",
		Gender:          "female",
	}

	f.c.EXPECT().Register(gomock.Any(), &client.RegisterRequest{
		Username:        "al",
		Email:           "al@tippni.com",
		Password:        "password",
		ConfirmPassword: "password",
		DateOfBirth:     "2000-01-01",
		Gender:          "female",
	}).Return("Check your email", nil)

	msg, err := f.srv.SignUp(ctx, form)
	require.NoError(t, err)
	require.Equal(t, "Check your email", msg)

	_, err = f.srv.SignUp(ctx, validate.SignUpForm{})
	require.Error(t, err)

	require.Error(t, f.srv.Activate(ctx, "12"))

	f.c.EXPECT().Activate(gomock.Any(), "123456").Return(nil)
	require.NoError(t, f.srv.Activate(ctx, "123456"))
}

func TestSrv_FetchMyProfile(t *testing.T) {
	f := newFixture(t, jwtToken(t, "al@tippni.com"), true)
	me := fakeProfile("p1")

	f.c.EXPECT().GetMyProfile(gomock.Any()).Return(me, nil)
	f.s.EXPECT().SaveProfileSnapshot(gomock.Any(), "al@tippni.com", me).Return(nil)

	p, err := f.srv.FetchMyProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, me, p)
	require.Equal(t, store.FetchState{Status: store.Fulfilled}, f.st.Fetch(store.MyProfileOp))

	// rejection keeps stale data
	f.c.EXPECT().GetMyProfile(gomock.Any()).Return(nil, errServer)

	_, err = f.srv.FetchMyProfile(ctx)
	require.ErrorIs(t, err, errServer)
	require.Equal(t, me, f.st.Me())
	require.Equal(t, store.FetchState{Status: store.Rejected, Error: "boom"}, f.st.Fetch(store.MyProfileOp))
}

func TestSrv_RestoreSnapshot(t *testing.T) {
	f := newFixture(t, jwtToken(t, "al@tippni.com"), true)
	me := fakeProfile("p1")

	f.s.EXPECT().GetProfileSnapshot(gomock.Any(), "al@tippni.com").Return(me, nil)
	require.NoError(t, f.srv.RestoreSnapshot(ctx))
	require.Equal(t, me, f.st.Me())
	require.Equal(t, store.Idle, f.st.Fetch(store.MyProfileOp).Status)

	f.s.EXPECT().GetProfileSnapshot(gomock.Any(), "al@tippni.com").Return(nil, storage.ErrNotFound)
	require.NoError(t, f.srv.RestoreSnapshot(ctx))
}

func TestSrv_FetchProfile(t *testing.T) {
	f := newFixture(t, "", false)
	u1 := fakeProfile("u1")

	f.c.EXPECT().GetProfile(gomock.Any(), "u1").Return(u1, nil)
	_, err := f.srv.FetchProfile(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, u1, f.st.Selected())

	f.c.EXPECT().GetProfile(gomock.Any(), "u2").Return(nil, &client.Error{Status: http.StatusNotFound, Message: "not found"})
	_, err = f.srv.FetchProfile(ctx, "u2")
	require.Error(t, err)
	require.Equal(t, u1, f.st.Selected())
	require.Equal(t, store.Rejected, f.st.Fetch(store.SelectedProfileOp).Status)

	f.srv.ClearSelectedUser()
	require.Nil(t, f.st.Selected())
}

func TestSrv_UpdateProfile(t *testing.T) {
	f := newFixture(t, "token", false)
	me := fakeProfile("p1")
	f.st.SetMe(me)

	u := &client.ProfileUpdate{Username: me.Username, Bio: "new bio"}
	updated := *me
	updated.Bio = "new bio"

	gomock.InOrder(
		f.c.EXPECT().UpdateProfile(gomock.Any(), "p1", u).Return(nil),
		f.c.EXPECT().GetMyProfile(gomock.Any()).Return(&updated, nil),
	)

	p, err := f.srv.UpdateProfile(ctx, u)
	require.NoError(t, err)
	require.Equal(t, "new bio", p.Bio)
	require.Equal(t, "new bio", f.st.Me().Bio)

	_, err = newFixture(t, "", false).srv.UpdateProfile(ctx, u)
	require.ErrorIs(t, err, service.ErrNotSignedIn)
}

func TestSrv_UploadAvatar(t *testing.T) {
	f := newFixture(t, "token", false)

	_, err := f.srv.UploadAvatar(ctx, &client.File{Size: validate.MaxProfileImageSize + 1})
	require.Error(t, err)

	file := &client.File{Name: "a.png", Size: 10, Body: strings.NewReader("0123456789")}
	f.c.EXPECT().UploadAvatar(gomock.Any(), file).Return(nil)
	f.c.EXPECT().GetMyProfile(gomock.Any()).Return(fakeProfile("p1"), nil)

	_, err = f.srv.UploadAvatar(ctx, file)
	require.NoError(t, err)
	require.Equal(t, "Avatar updated successfully!", f.notes.last().Message)

	f.c.EXPECT().UploadBanner(gomock.Any(), file).Return(errServer)
	_, err = f.srv.UploadBanner(ctx, file)
	require.Error(t, err)
	require.Equal(t, notify.ErrorLevel, f.notes.last().Level)
}

func TestSrv_LoadConnections(t *testing.T) {
	a, b, c := fakeProfile("a"), fakeProfile("b"), fakeProfile("c")
	a.Verified, c.Verified = true, true

	tt := []struct {
		name string
		tab  service.ConnectionsTab
		ids  []string
	}{
		{name: "followers", tab: service.FollowersTab, ids: []string{"a", "b"}},
		{name: "following", tab: service.FollowingTab, ids: []string{"a", "c"}},
		{name: "verified", tab: service.VerifiedTab, ids: []string{"a", "c"}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, "token", false)

			f.c.EXPECT().GetFollowers(gomock.Any(), "me").Return([]*entities.Profile{a, b}, nil)
			f.c.EXPECT().GetFollowees(gomock.Any(), "me").Return([]*entities.Profile{a, c}, nil)

			list, err := f.srv.LoadConnections(ctx, "me", tc.tab)
			require.NoError(t, err)

			ids := make([]string, len(list))
			for i, v := range list {
				ids[i] = v.Profile.ID
			}
			require.Equal(t, tc.ids, ids)
		})
	}

	t.Run("failure", func(t *testing.T) {
		f := newFixture(t, "token", false)

		f.c.EXPECT().GetFollowers(gomock.Any(), "me").Return(nil, errServer)
		f.c.EXPECT().GetFollowees(gomock.Any(), "me").Return([]*entities.Profile{a}, nil).AnyTimes()

		_, err := f.srv.LoadConnections(ctx, "me", service.FollowersTab)
		require.ErrorIs(t, err, errServer)
		require.Equal(t, store.Rejected, f.st.Fetch(store.ConnectionsOp).Status)
	})

	t.Run("other_profile_keeps_relation", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetMe(fakeProfile("me"))
		z := fakeProfile("z")

		f.c.EXPECT().GetFollowers(gomock.Any(), "me").Return([]*entities.Profile{}, nil)
		f.c.EXPECT().GetFollowees(gomock.Any(), "me").Return([]*entities.Profile{z}, nil)
		_, err := f.srv.LoadConnections(ctx, "me", service.FollowingTab)
		require.NoError(t, err)

		f.c.EXPECT().GetFollowers(gomock.Any(), "x").Return([]*entities.Profile{z}, nil)
		f.c.EXPECT().GetFollowees(gomock.Any(), "x").Return([]*entities.Profile{}, nil)
		list, err := f.srv.LoadConnections(ctx, "x", service.FollowersTab)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.True(t, list[0].IsFollowing)

		f.c.EXPECT().Unfollow(gomock.Any(), "z").Return(nil)
		following, err := f.srv.ToggleFollow(ctx, "z")
		require.NoError(t, err)
		require.False(t, following)
	})

	t.Run("invalid_tab", func(t *testing.T) {
		_, err := newFixture(t, "token", false).srv.LoadConnections(ctx, "me", "bad")
		require.ErrorIs(t, err, service.ErrInvalidTab)
	})
}

func TestSrv_ToggleFollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t, "token", false)

		f.c.EXPECT().Follow(gomock.Any(), "u1").DoAndReturn(func(context.Context, string) error {
			// applied before the server answers
			require.True(t, f.st.Follow("u1").Following)
			return nil
		})

		following, err := f.srv.ToggleFollow(ctx, "u1")
		require.NoError(t, err)
		require.True(t, following)

		f.c.EXPECT().Unfollow(gomock.Any(), "u1").Return(nil)

		following, err = f.srv.ToggleFollow(ctx, "u1")
		require.NoError(t, err)
		require.False(t, following)
		require.Empty(t, f.notes.notes)
	})

	t.Run("rollback", func(t *testing.T) {
		f := newFixture(t, "token", false)
		profile := fakeProfile("u1")
		f.st.SetSelected(profile)

		f.c.EXPECT().Follow(gomock.Any(), "u1").Return(errServer)

		following, err := f.srv.ToggleFollow(ctx, "u1")
		require.ErrorIs(t, err, errServer)
		require.False(t, following)
		require.Equal(t, store.FollowState{}, f.st.Follow("u1"))
		require.Equal(t, notify.ErrorLevel, f.notes.last().Level)

		// follower counts are not touched
		require.Equal(t, profile, f.st.Selected())
	})

	t.Run("follow_is_idempotent", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.UpdateFollow("u1", func(store.FollowState) store.FollowState {
			return store.FollowState{Known: true, Following: true}
		})

		require.NoError(t, f.srv.Follow(ctx, "u1"))

		f.c.EXPECT().Unfollow(gomock.Any(), "u1").Return(nil)
		require.NoError(t, f.srv.Unfollow(ctx, "u1"))
		require.False(t, f.st.Follow("u1").Following)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := newFixture(t, "", false).srv.ToggleFollow(ctx, "u1")
		require.ErrorIs(t, err, service.ErrNotSignedIn)
	})
}

func timeline() *entities.Feed {
	f := entities.NewFeed()
	f.Profiles["u1"] = &entities.Profile{ID: "u1", Username: "al"}
	f.Profiles["u2"] = &entities.Profile{ID: "u2", Username: "bob"}
	f.Included["o1"] = &entities.Post{ID: "o1", AuthorID: "u1", Text: "original", Likes: entities.Counter{Count: 2}}
	f.Posts = []*entities.Post{
		{ID: "r1", AuthorID: "u2", RepostOfID: "o1", Type: entities.RepostPostType, IsBelongs: true},
		{ID: "p2", AuthorID: "u1", Text: "with media", Media: []string{"m"}, Likes: entities.Counter{Active: true, Count: 1}},
		{ID: "p3", AuthorID: "u1", Text: "reply", ReplyToID: "p2", Type: entities.ReplyPostType},
	}

	return f
}

func TestSrv_LoadUserPosts(t *testing.T) {
	tt := []struct {
		tab service.PostsTab
		ids []string
	}{
		{tab: service.PostsPostsTab, ids: []string{"r1", "p2", "p3"}},
		{tab: service.MediaPostsTab, ids: []string{"p2"}},
		{tab: service.RepliesPostsTab, ids: []string{"p3"}},
		{tab: service.LikesPostsTab, ids: []string{"p2"}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(string(tc.tab), func(t *testing.T) {
			f := newFixture(t, "", false)
			f.c.EXPECT().UserPosts(gomock.Any(), "u1").Return(timeline(), nil)

			posts, err := f.srv.LoadUserPosts(ctx, "u1", tc.tab)
			require.NoError(t, err)

			ids := make([]string, len(posts))
			for i, v := range posts {
				ids[i] = v.ID
			}
			require.Equal(t, tc.ids, ids)
		})
	}
}

func TestSrv_ToggleLike(t *testing.T) {
	t.Run("repost_targets_original", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.c.EXPECT().HomeTimeline(gomock.Any()).Return(timeline(), nil)

		_, err := f.srv.LoadHomeTimeline(ctx)
		require.NoError(t, err)

		f.c.EXPECT().Like(gomock.Any(), "o1").Return(&client.Reaction{Count: 7}, nil)

		c, err := f.srv.ToggleLike(ctx, "r1")
		require.NoError(t, err)
		require.Equal(t, entities.Counter{Active: true, Count: 3}, c)

		v, _ := f.st.PostView("r1")
		require.Equal(t, entities.Counter{Active: true, Count: 7}, v.Likes)
	})

	t.Run("rollback", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		f.c.EXPECT().Unlike(gomock.Any(), "p2").Return(nil, errors.New("connection reset"))

		c, err := f.srv.ToggleLike(ctx, "p2")
		require.Error(t, err)
		require.Equal(t, entities.Counter{Active: true, Count: 1}, c)

		v, _ := f.st.PostView("p2")
		require.Equal(t, entities.Counter{Active: true, Count: 1}, v.Likes)
		require.Equal(t, "Failed to update like", f.notes.last().Message)
	})

	t.Run("repost_counter_is_independent", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		f.c.EXPECT().Repost(gomock.Any(), "p2").Return(nil, nil)

		c, err := f.srv.Repost(ctx, "p2")
		require.NoError(t, err)
		require.Equal(t, entities.Counter{Active: true, Count: 1}, c)

		v, _ := f.st.PostView("p2")
		require.Equal(t, entities.Counter{Active: true, Count: 1}, v.Likes)
	})

	t.Run("unknown_post", func(t *testing.T) {
		f := newFixture(t, "token", false)

		_, err := f.srv.Like(ctx, "nope")
		require.ErrorIs(t, err, store.ErrUnknownPost)
	})

	t.Run("in_flight", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		release := make(chan struct{})
		f.c.EXPECT().Like(gomock.Any(), "p3").DoAndReturn(func(context.Context, string) (*client.Reaction, error) {
			<-release
			return nil, nil
		})

		done := make(chan error)
		go func() {
			_, err := f.srv.ToggleLike(ctx, "p3")
			done <- err
		}()

		require.Eventually(t, func() bool {
			v, _ := f.st.PostView("p3")
			return v.Likes.Active
		}, time.Second, time.Millisecond)

		_, err := f.srv.ToggleLike(ctx, "p3")
		require.ErrorIs(t, err, optimistic.ErrInFlight)

		close(release)
		require.NoError(t, <-done)
	})
}

func TestSrv_CreatePost(t *testing.T) {
	f := newFixture(t, "token", false)
	f.st.SetTimeline(timeline())

	_, err := f.srv.CreatePost(ctx, &client.NewPost{Text: "  "})
	require.Error(t, err)

	p := &client.NewPost{Text: "hello"}
	created := entities.NewFeed()
	created.Posts = []*entities.Post{{ID: "n1", AuthorID: "u1", Text: "hello", IsBelongs: true}}
	f.c.EXPECT().CreatePost(gomock.Any(), p).Return(created, nil)

	v, err := f.srv.CreatePost(ctx, p)
	require.NoError(t, err)
	require.Equal(t, "n1", v.ID)
	require.Equal(t, "n1", f.st.Timeline()[0].ID)
	require.Equal(t, notify.SuccessLevel, f.notes.last().Level)
}

func TestSrv_Delete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		require.ErrorIs(t, f.srv.RequestDelete("p2"), deletion.ErrNotOwner)

		events, unsubscribe := f.srv.Subscribe()
		defer unsubscribe()

		require.NoError(t, f.srv.RequestDelete("r1"))
		require.Equal(t, deletion.Confirming, f.srv.State().Deletions["r1"])

		f.c.EXPECT().DeletePost(gomock.Any(), "r1").Return(nil)
		require.NoError(t, f.srv.ConfirmDelete(ctx, "r1"))

		_, ok := f.st.Post("r1")
		require.False(t, ok)
		require.Len(t, f.st.Timeline(), 2)

		var states []string
		for len(events) > 0 {
			if e := <-events; e.Type == store.DeletionEvent {
				states = append(states, e.State)
			}
		}
		assert.Equal(t, []string{"confirming", "animating", "deleting", "removed"}, states)
	})

	t.Run("cancelled", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		require.NoError(t, f.srv.RequestDelete("r1"))
		require.NoError(t, f.srv.CancelDelete("r1"))
		require.Empty(t, f.srv.State().Deletions)

		_, ok := f.st.Post("r1")
		require.True(t, ok)
	})

	t.Run("failed", func(t *testing.T) {
		f := newFixture(t, "token", false)
		f.st.SetTimeline(timeline())

		require.NoError(t, f.srv.RequestDelete("r1"))
		f.c.EXPECT().DeletePost(gomock.Any(), "r1").Return(errServer)

		require.ErrorIs(t, f.srv.ConfirmDelete(ctx, "r1"), errServer)

		_, ok := f.st.Post("r1")
		require.True(t, ok)
		require.Equal(t, "boom", f.notes.last().Message)
	})
}

func TestSrv_Search(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		f := newFixture(t, "", false)

		p, err := f.srv.Search(ctx, "   ")
		require.NoError(t, err)
		require.Empty(t, p)
	})

	t.Run("in_memory_recent", func(t *testing.T) {
		f := newFixture(t, "", false)

		f.c.EXPECT().SearchProfiles(gomock.Any(), gomock.Any()).Return([]*entities.Profile{fakeProfile("u1")}, nil).Times(12)

		for i := 0; i < 11; i++ {
			_, err := f.srv.Search(ctx, fmt.Sprintf("%s%d", gofakeit.FirstName(), i))
			require.NoError(t, err)
		}
		_, err := f.srv.Search(ctx, " al ")
		require.NoError(t, err)

		recent, err := f.srv.RecentSearches(ctx)
		require.NoError(t, err)
		require.Len(t, recent, 10)
		require.Equal(t, "al", recent[0])
	})

	t.Run("persisted_recent", func(t *testing.T) {
		f := newFixture(t, jwtToken(t, "al@tippni.com"), true)

		f.c.EXPECT().SearchProfiles(gomock.Any(), &client.SearchQuery{Username: "bob", Size: 10}).Return([]*entities.Profile{}, nil)
		f.s.EXPECT().AddRecentSearch(gomock.Any(), "al@tippni.com", "bob", 10).Return(nil)
		f.s.EXPECT().ListRecentSearches(gomock.Any(), "al@tippni.com", 10).Return([]string{"bob"}, nil)

		_, err := f.srv.Search(ctx, "bob")
		require.NoError(t, err)

		recent, err := f.srv.RecentSearches(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"bob"}, recent)
	})

	t.Run("failure", func(t *testing.T) {
		f := newFixture(t, "", false)
		f.c.EXPECT().SearchProfiles(gomock.Any(), gomock.Any()).Return(nil, errServer)

		_, err := f.srv.Search(ctx, "al")
		require.Error(t, err)
		require.Equal(t, store.Rejected, f.st.Fetch(store.SearchOp).Status)

		recent, _ := f.srv.RecentSearches(ctx)
		require.Empty(t, recent)
	})
}

func TestSrv_OpenProfileAndPage(t *testing.T) {
	f := newFixture(t, "", false)

	require.ErrorIs(t, f.srv.SetPage("nowhere"), service.ErrInvalidPage)
	require.NoError(t, f.srv.SetPage(entities.SettingsPage))
	require.Equal(t, entities.SettingsPage, f.srv.State().Page)

	u1 := fakeProfile("u1")
	f.c.EXPECT().GetProfile(gomock.Any(), "u1").Return(u1, nil)

	p, err := f.srv.OpenProfile(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, u1, p)

	state := f.srv.State()
	require.Equal(t, entities.ProfilePage, state.Page)
	require.Equal(t, u1, state.Selected)
	require.False(t, state.SignedIn)
}
