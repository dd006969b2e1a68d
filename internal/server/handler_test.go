package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/deletion"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/normalize"
	"github.com/tippni/tippni/internal/notify"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/service/mock"
	"github.com/tippni/tippni/internal/session"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

func newRouter(t *testing.T) (chi.Router, *mock.MockService) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)

	r := chi.NewRouter()
	SetupRouter(s, r, Options{Timeout: time.Second, SearchCacheTTL: time.Minute})

	return r, s
}

func serve(r http.Handler, method, uri string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, uri, body))
	return w
}

func Test_writeError(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    validate.Errors{"email": "Email is required"},
			status: http.StatusBadRequest,
			body:   `{"error":"email: Email is required","fields":{"email":"Email is required"}}`,
		},
		{
			name:   "not_signed_in",
			err:    fmt.Errorf("failed: %w", service.ErrNotSignedIn),
			status: http.StatusUnauthorized,
		},
		{
			name:   "expired",
			err:    fmt.Errorf("failed to get token: %w", session.ErrExpired),
			status: http.StatusUnauthorized,
		},
		{
			name:   "in_flight",
			err:    fmt.Errorf("like 1: %w", optimistic.ErrInFlight),
			status: http.StatusConflict,
		},
		{
			name:   "deletion_state",
			err:    fmt.Errorf("%w: post 1 is not confirming", deletion.ErrInvalidState),
			status: http.StatusConflict,
		},
		{
			name:   "not_owner",
			err:    deletion.ErrNotOwner,
			status: http.StatusForbidden,
		},
		{
			name:   "unknown_post",
			err:    fmt.Errorf("failed to update like 1: %w", store.ErrUnknownPost),
			status: http.StatusNotFound,
		},
		{
			name:   "upstream_4xx",
			err:    fmt.Errorf("failed to get profile: %w", &client.Error{Status: http.StatusNotFound, Message: "User not found"}),
			status: http.StatusNotFound,
			body:   `{"error":"User not found"}`,
		},
		{
			name:   "upstream_5xx",
			err:    &client.Error{Status: http.StatusInternalServerError, Message: "boom"},
			status: http.StatusBadGateway,
			body:   `{"error":"boom"}`,
		},
		{
			name:   "transport",
			err:    errors.New("connection refused"),
			status: http.StatusBadGateway,
			body:   `{"error":"Tippni API is unavailable"}`,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			require.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				require.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func Test_getState(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().State().Return(service.State{
		Snapshot: store.Snapshot{
			Page: entities.HomePage,
			Me:   &entities.Profile{ID: "1", Username: "al", Followers: 2},
			Timeline: []entities.PostView{
				{
					ID:         "r1",
					TargetID:   "o1",
					Type:       entities.OriginalPostType,
					Author:     &entities.Profile{ID: "2", Username: "bob"},
					Text:       "hi",
					Likes:      entities.Counter{Active: true, Count: 3},
					RepostedBy: &entities.Profile{ID: "1", Username: "al"},
					CreatedAt:  time.Unix(100, 0),
				},
			},
			Following: map[string]bool{"2": true},
			Fetch:     map[string]store.FetchState{store.TimelineOp: {Status: store.Rejected, Error: "boom"}},
		},
		SignedIn:  true,
		Deletions: map[string]deletion.State{"r1": deletion.Confirming},
	})

	w := serve(r, http.MethodGet, "/v1/state", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"page": "home",
		"signed_in": true,
		"me": {"id": "1", "username": "al", "name": "", "verified": false, "followers": 2, "followees": 0},
		"timeline": [{
			"id": "r1",
			"target_id": "o1",
			"type": "ORIGINAL",
			"author": {"id": "2", "username": "bob", "name": "", "verified": false, "followers": 0, "followees": 0},
			"text": "hi",
			"likes": {"active": true, "count": 3},
			"reposts": {"active": false, "count": 0},
			"is_belongs": false,
			"created_at": 100,
			"reposted_by": {"id": "1", "username": "al", "name": "", "verified": false, "followers": 0, "followees": 0}
		}],
		"following": {"2": true},
		"fetch": {"` + store.TimelineOp + `": {"status": "rejected", "error": "boom"}},
		"deletions": {"r1": "confirming"}
	}`, w.Body.String())
}

func Test_signIn(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().SignIn(gomock.Any(), "al@tippni.com", "password").Return(nil)
	s.EXPECT().State().Return(service.State{SignedIn: true})

	w := serve(r, http.MethodPost, "/v1/session", strings.NewReader(`{"email":"al@tippni.com","password":"password"}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"signed_in":true`)

	w = serve(r, http.MethodPost, "/v1/session", strings.NewReader(`{`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	s.EXPECT().SignOut(gomock.Any()).Return(nil)
	w = serve(r, http.MethodDelete, "/v1/session", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func Test_setPage(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().SetPage(entities.Page("nowhere")).Return(fmt.Errorf("%w: nowhere", service.ErrInvalidPage))
	w := serve(r, http.MethodPut, "/v1/page", strings.NewReader(`{"page":"nowhere"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	s.EXPECT().SetPage(entities.SettingsPage).Return(nil)
	w = serve(r, http.MethodPut, "/v1/page", strings.NewReader(`{"page":"settings"}`))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func Test_openProfile(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().OpenProfile(gomock.Any(), "42").Return(&entities.Profile{ID: "42", Username: "al", Verified: true}, nil)

	w := serve(r, http.MethodGet, "/v1/profiles/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"42","username":"al","name":"","verified":true,"followers":0,"followees":0}`, w.Body.String())
}

func Test_listConnections(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().LoadConnections(gomock.Any(), "42", service.FollowersTab).Return([]normalize.Connection{
		{Profile: &entities.Profile{ID: "1", Username: "al"}, IsFollowing: true},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/profiles/42/connections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"id":"1","username":"al","name":"","verified":false,"followers":0,"followees":0,"is_following":true}]`, w.Body.String())

	s.EXPECT().LoadConnections(gomock.Any(), "42", service.ConnectionsTab("bad")).Return(nil, service.ErrInvalidTab)
	w = serve(r, http.MethodGet, "/v1/profiles/42/connections?tab=bad", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_follow(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().Follow(gomock.Any(), "42").Return(nil)
	w := serve(r, http.MethodPost, "/v1/follows/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"following":true}`, w.Body.String())

	s.EXPECT().Unfollow(gomock.Any(), "42").Return(fmt.Errorf("failed to follow 42: %w", &client.Error{Status: http.StatusBadGateway, Message: "down"}))
	w = serve(r, http.MethodDelete, "/v1/follows/42", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func Test_reactions(t *testing.T) {
	tt := []struct {
		method string
		path   string
		setup  func(s *mock.MockService)
	}{
		{
			method: http.MethodPost,
			path:   "/v1/posts/7/like",
			setup: func(s *mock.MockService) {
				s.EXPECT().Like(gomock.Any(), "7").Return(entities.Counter{Active: true, Count: 5}, nil)
			},
		},
		{
			method: http.MethodDelete,
			path:   "/v1/posts/7/like",
			setup: func(s *mock.MockService) {
				s.EXPECT().Unlike(gomock.Any(), "7").Return(entities.Counter{Active: true, Count: 5}, nil)
			},
		},
		{
			method: http.MethodPost,
			path:   "/v1/posts/7/repost",
			setup: func(s *mock.MockService) {
				s.EXPECT().Repost(gomock.Any(), "7").Return(entities.Counter{Active: true, Count: 5}, nil)
			},
		},
		{
			method: http.MethodDelete,
			path:   "/v1/posts/7/repost",
			setup: func(s *mock.MockService) {
				s.EXPECT().Unrepost(gomock.Any(), "7").Return(entities.Counter{Active: true, Count: 5}, nil)
			},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.method+tc.path, func(t *testing.T) {
			r, s := newRouter(t)
			tc.setup(s)

			w := serve(r, tc.method, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.JSONEq(t, `{"active":true,"count":5}`, w.Body.String())
		})
	}
}

func Test_deletion(t *testing.T) {
	r, s := newRouter(t)

	gomock.InOrder(
		s.EXPECT().RequestDelete("7").Return(nil),
		s.EXPECT().FinishDeleteAnimation("7").Return(nil),
		s.EXPECT().ConfirmDelete(gomock.Any(), "7").Return(nil),
		s.EXPECT().CancelDelete("7").Return(fmt.Errorf("%w: post 7 is not confirming", deletion.ErrInvalidState)),
	)

	require.Equal(t, http.StatusAccepted, serve(r, http.MethodPost, "/v1/posts/7/deletion", nil).Code)
	require.Equal(t, http.StatusNoContent, serve(r, http.MethodPost, "/v1/posts/7/deletion/finished", nil).Code)
	require.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/v1/posts/7/deletion", nil).Code)
	require.Equal(t, http.StatusConflict, serve(r, http.MethodDelete, "/v1/posts/7/deletion", nil).Code)
}

func Test_createPost(t *testing.T) {
	r, s := newRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", "hello"))
	require.NoError(t, mw.WriteField("reply_to_id", "3"))
	fw, err := mw.CreateFormFile("files", "cat.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *client.NewPost) (*entities.PostView, error) {
		assert.Equal(t, "hello", p.Text)
		assert.Equal(t, "3", p.ReplyToID)
		require.Len(t, p.Files, 1)
		assert.Equal(t, "cat.png", p.Files[0].Name)
		assert.EqualValues(t, 3, p.Files[0].Size)

		b, err := io.ReadAll(p.Files[0].Body)
		assert.NoError(t, err)
		assert.Equal(t, "png", string(b))

		return &entities.PostView{ID: "9", TargetID: "9", Text: "hello", ReplyToID: "3", IsBelongs: true}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"id":"9"`)
}

func Test_search(t *testing.T) {
	r, s := newRouter(t)

	s.EXPECT().Search(gomock.Any(), "al").Return([]*entities.Profile{{ID: "1", Username: "al"}}, nil).Times(1)

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodGet, "/v1/search?username=al", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[{"id":"1","username":"al","name":"","verified":false,"followers":0,"followees":0}]`, w.Body.String())
	}

	s.EXPECT().RecentSearches(gomock.Any()).Return(nil, nil)
	w := serve(r, http.MethodGet, "/v1/search/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func Test_health(t *testing.T) {
	r, _ := newRouter(t)

	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", nil).Code)
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics", nil).Code)
}

func Test_events(t *testing.T) {
	r, s := newRouter(t)

	events := make(chan store.Event, 1)
	unsubscribed := make(chan struct{})
	s.EXPECT().Subscribe().Return((<-chan store.Event)(events), func() { close(unsubscribed) })

	ts := httptest.NewServer(r)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/v1/events", nil)
	require.NoError(t, err)

	n := notify.Error("Failed to update like")
	events <- store.Event{Type: store.NotificationEvent, Notification: &n}

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var e store.Event
	require.NoError(t, json.Unmarshal(data, &e))
	require.Equal(t, store.NotificationEvent, e.Type)
	require.Equal(t, notify.ErrorLevel, e.Notification.Level)
	require.Equal(t, "Failed to update like", e.Notification.Message)

	require.NoError(t, conn.Close())

	select {
	case <-unsubscribed:
	case <-time.After(time.Second):
		t.Fatal("subscription is not closed")
	}
}
