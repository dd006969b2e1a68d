// Package rest is an HTTP implementation of client.Client.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/metrics"
	"github.com/tippni/tippni/internal/normalize"
)

var log = logrus.WithField("package", "rest")

var errNoToken = errors.New("token is missing in response")

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// TokenSource provides bearer token. Empty token means the request is sent without Authorization header.
type TokenSource interface {
	Token() (string, error)
}

type restClient struct {
	baseURL string
	c       *http.Client
	tokens  TokenSource
}

// New creates new instance of client.
func New(baseURL string, timeout time.Duration, tokens TokenSource) client.Client {
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		c:       &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

type request struct {
	method string
	// endpoint is a path pattern used as metric label.
	endpoint    string
	path        string
	query       url.Values
	contentType string
	body        io.Reader
}

func jsonRequest(method, endpoint, path string, v interface{}) (request, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return request{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	return request{
		method:      method,
		endpoint:    endpoint,
		path:        path,
		contentType: "application/json",
		body:        bytes.NewReader(b),
	}, nil
}

func (c *restClient) do(ctx context.Context, r request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	l := log.WithFields(logrus.Fields{
		"method":     r.method,
		"path":       r.path,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.c.Do(req)
	if err != nil {
		metrics.ObserveUpstream(r.method, r.endpoint, 0, time.Since(start))
		l.WithError(err).Debug("request failed")
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	metrics.ObserveUpstream(r.method, r.endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	l.WithField("status", resp.StatusCode).Debug("request done")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &client.Error{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, body),
		}
	}

	return body, nil
}

// errorMessage returns `message` field of JSON body, else the body itself, else status text.
func errorMessage(status int, body []byte) string {
	var v struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &v); err == nil && v.Message != "" {
		return v.Message
	}

	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}

	return http.StatusText(status)
}

func (c *restClient) Authenticate(ctx context.Context, email, password string) (string, error) {
	r, err := jsonRequest(http.MethodPost, "/auth/authenticate", "/api/v1/auth/authenticate", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, r)
	if err != nil {
		return "", err
	}

	var v struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(normalize.Unwrap(body, "data"), &v); err != nil {
		return "", fmt.Errorf("failed to decode token: %w", err)
	}

	if v.Token == "" {
		return "", errNoToken
	}

	return v.Token, nil
}

func (c *restClient) Register(ctx context.Context, rr *client.RegisterRequest) (string, error) {
	r, err := jsonRequest(http.MethodPost, "/auth/register", "/api/v1/auth/register", rr)
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, r)
	if err != nil {
		return "", err
	}

	var v struct {
		Message string `json:"message"`
	}
	// message is informational only
	_ = json.Unmarshal(normalize.Unwrap(body, "data"), &v)

	return v.Message, nil
}

func (c *restClient) Activate(ctx context.Context, code string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/auth/activate",
		path:     "/api/v1/auth/activate",
		query:    url.Values{"activationCode": {code}},
	})

	return err
}

func (c *restClient) getProfile(ctx context.Context, endpoint, path string) (*entities.Profile, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: endpoint, path: path})
	if err != nil {
		return nil, err
	}

	p, err := normalize.DecodeProfile(body)
	if err != nil {
		return nil, err
	}

	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		log.Trace(spew.Sdump(p))
	}

	return p, nil
}

func (c *restClient) GetMyProfile(ctx context.Context) (*entities.Profile, error) {
	return c.getProfile(ctx, "/profiles/me", "/api/v1/profiles/me")
}

func (c *restClient) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	return c.getProfile(ctx, "/profiles/{id}", "/api/v1/profiles/"+url.PathEscape(id))
}

func (c *restClient) UpdateProfile(ctx context.Context, id string, u *client.ProfileUpdate) error {
	r, err := jsonRequest(http.MethodPatch, "/profiles/{id}", "/api/v1/profiles/"+url.PathEscape(id), u)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, r)
	return err
}

func (c *restClient) upload(ctx context.Context, endpoint string, f *client.File) error {
	b := &bytes.Buffer{}
	w := multipart.NewWriter(b)

	if err := writeFile(w, "file", f); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart: %w", err)
	}

	_, err := c.do(ctx, request{
		method:      http.MethodPost,
		endpoint:    endpoint,
		path:        "/api/v1" + endpoint,
		contentType: w.FormDataContentType(),
		body:        b,
	})

	return err
}

func (c *restClient) UploadAvatar(ctx context.Context, f *client.File) error {
	return c.upload(ctx, "/profiles/images/avatar", f)
}

func (c *restClient) UploadBanner(ctx context.Context, f *client.File) error {
	return c.upload(ctx, "/profiles/images/banner", f)
}

func (c *restClient) SearchProfiles(ctx context.Context, q *client.SearchQuery) ([]*entities.Profile, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/profiles/",
		path:     "/api/v1/profiles/",
		query: url.Values{
			"username": {q.Username},
			"page":     {strconv.Itoa(q.Page)},
			"size":     {strconv.Itoa(q.Size)},
			"sort":     {q.Sort},
		},
	})
	if err != nil {
		return nil, err
	}

	return normalize.DecodeProfiles(body)
}

func (c *restClient) getProfiles(ctx context.Context, endpoint, path string) ([]*entities.Profile, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: endpoint, path: path})
	if err != nil {
		return nil, err
	}

	return normalize.DecodeProfiles(body)
}

func (c *restClient) GetFollowers(ctx context.Context, id string) ([]*entities.Profile, error) {
	return c.getProfiles(ctx, "/follows/{id}/followers", "/api/v1/follows/"+url.PathEscape(id)+"/followers")
}

func (c *restClient) GetFollowees(ctx context.Context, id string) ([]*entities.Profile, error) {
	return c.getProfiles(ctx, "/follows/{id}/followees", "/api/v1/follows/"+url.PathEscape(id)+"/followees")
}

func (c *restClient) Follow(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/follows/{id}",
		path:     "/api/v1/follows/" + url.PathEscape(id),
	})
	return err
}

func (c *restClient) Unfollow(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodDelete,
		endpoint: "/follows/{id}",
		path:     "/api/v1/follows/" + url.PathEscape(id),
	})
	return err
}

func (c *restClient) getFeed(ctx context.Context, endpoint, path string) (*entities.Feed, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: endpoint, path: path})
	if err != nil {
		return nil, err
	}

	return normalize.DecodeFeed(body)
}

func (c *restClient) HomeTimeline(ctx context.Context) (*entities.Feed, error) {
	return c.getFeed(ctx, "/timeline/home", "/api/v1/timeline/home")
}

func (c *restClient) UserPosts(ctx context.Context, profileID string) (*entities.Feed, error) {
	return c.getFeed(ctx, "/tippnis/user/{id}", "/api/v1/tippnis/user/"+url.PathEscape(profileID))
}

func (c *restClient) CreatePost(ctx context.Context, p *client.NewPost) (*entities.Feed, error) {
	b := &bytes.Buffer{}
	w := multipart.NewWriter(b)

	meta, err := json.Marshal(struct {
		Text      string `json:"text"`
		ReplyToID string `json:"replyToId,omitempty"`
	}{
		Text:      strings.TrimSpace(p.Text),
		ReplyToID: p.ReplyToID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post: %w", err)
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="request"`)
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create request part: %w", err)
	}
	if _, err := part.Write(meta); err != nil {
		return nil, fmt.Errorf("failed to write request part: %w", err)
	}

	for _, f := range p.Files {
		if err := writeFile(w, "files", f); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart: %w", err)
	}

	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		endpoint:    "/tippni",
		path:        "/api/v1/tippni",
		contentType: w.FormDataContentType(),
		body:        b,
	})
	if err != nil {
		return nil, err
	}

	return normalize.DecodePost(body)
}

func (c *restClient) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodDelete,
		endpoint: "/tippni/{id}",
		path:     "/api/v1/tippni/" + url.PathEscape(id),
	})
	return err
}

func (c *restClient) react(ctx context.Context, method, endpoint, path string) (*client.Reaction, error) {
	body, err := c.do(ctx, request{method: method, endpoint: endpoint, path: path})
	if err != nil {
		return nil, err
	}

	if n := normalize.DecodeReaction(body); n != nil {
		return &client.Reaction{Count: *n}, nil
	}

	return nil, nil
}

func (c *restClient) Like(ctx context.Context, postID string) (*client.Reaction, error) {
	return c.react(ctx, http.MethodPost, "/like/{id}", "/api/v1/like/"+url.PathEscape(postID))
}

func (c *restClient) Unlike(ctx context.Context, postID string) (*client.Reaction, error) {
	return c.react(ctx, http.MethodDelete, "/like/{id}", "/api/v1/like/"+url.PathEscape(postID))
}

func (c *restClient) Repost(ctx context.Context, postID string) (*client.Reaction, error) {
	return c.react(ctx, http.MethodPost, "/tippni/{id}/retippni", "/api/v1/tippni/"+url.PathEscape(postID)+"/retippni")
}

func (c *restClient) Unrepost(ctx context.Context, postID string) (*client.Reaction, error) {
	return c.react(ctx, http.MethodDelete, "/tippni/{id}/retippni", "/api/v1/tippni/"+url.PathEscape(postID)+"/retippni")
}

func writeFile(w *multipart.Writer, field string, f *client.File) error {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(f.Name)))

	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}

	if _, err := io.Copy(part, f.Body); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}

	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
