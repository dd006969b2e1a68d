package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/deletion"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/session"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

var errInvalidRequest = errors.New("invalid request")

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

// writeError maps err to response status. Upstream client errors pass through, other upstream failures are 502.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr   validate.Errors
		apiErr *client.Error
	)

	switch {
	case errors.As(err, &verr):
		writeOK(w, http.StatusBadRequest, Error{Error: verr.Error(), Fields: verr})
		return
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, service.ErrInvalidPage),
		errors.Is(err, service.ErrInvalidTab):
		writeOK(w, http.StatusBadRequest, Error{Error: err.Error()})
		return
	case errors.Is(err, service.ErrNotSignedIn), errors.Is(err, session.ErrExpired):
		writeOK(w, http.StatusUnauthorized, Error{Error: err.Error()})
		return
	case errors.Is(err, deletion.ErrNotOwner):
		writeOK(w, http.StatusForbidden, Error{Error: err.Error()})
		return
	case errors.Is(err, deletion.ErrUnknownPost), errors.Is(err, store.ErrUnknownPost):
		writeOK(w, http.StatusNotFound, Error{Error: err.Error()})
		return
	case errors.Is(err, optimistic.ErrInFlight), errors.Is(err, deletion.ErrInvalidState):
		writeOK(w, http.StatusConflict, Error{Error: err.Error()})
		return
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		writeOK(w, apiErr.Status, Error{Error: apiErr.Message})
		return
	}

	log.WithError(err).WithField("uri", r.RequestURI).Warn("upstream failed")

	writeOK(w, http.StatusBadGateway, Error{Error: client.Message(err, "Tippni API is unavailable")})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	return nil
}

func (s server) getState(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, newStateResponse(s.s.State()))
}

func (s server) setPage(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.s.SetPage(req.Page); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) signIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.s.SignIn(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	s.searchCache.Purge()

	writeOK(w, http.StatusOK, newStateResponse(s.s.State()))
}

func (s server) signOut(w http.ResponseWriter, r *http.Request) {
	if err := s.s.SignOut(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	s.searchCache.Purge()

	w.WriteHeader(http.StatusNoContent)
}

func (s server) signUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	msg, err := s.s.SignUp(r.Context(), validate.SignUpForm{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, MessageResponse{Message: msg})
}

func (s server) activate(w http.ResponseWriter, r *http.Request) {
	var req ActivateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.s.Activate(r.Context(), req.Code); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) fetchMyProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.FetchMyProfile(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newProfile(p))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := s.s.UpdateProfile(r.Context(), &client.ProfileUpdate{
		Username:  req.Username,
		Bio:       req.Bio,
		Location:  req.Location,
		Website:   req.Website,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newProfile(p))
}

type upload func(r *http.Request, f *client.File) (*entities.Profile, error)

func (s server) uploadImage(w http.ResponseWriter, r *http.Request, do upload) {
	files, err := multipartFiles(w, r, "file")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer closeFiles(files)

	if len(files) != 1 {
		writeError(w, r, fmt.Errorf("%w: exactly one file is expected", errInvalidRequest))
		return
	}

	p, err := do(r, files[0])
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newProfile(p))
}

func (s server) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	s.uploadImage(w, r, func(r *http.Request, f *client.File) (*entities.Profile, error) {
		return s.s.UploadAvatar(r.Context(), f)
	})
}

func (s server) uploadBanner(w http.ResponseWriter, r *http.Request) {
	s.uploadImage(w, r, func(r *http.Request, f *client.File) (*entities.Profile, error) {
		return s.s.UploadBanner(r.Context(), f)
	})
}

func (s server) clearSelected(w http.ResponseWriter, r *http.Request) {
	s.s.ClearSelectedUser()

	w.WriteHeader(http.StatusNoContent)
}

func (s server) openProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.OpenProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newProfile(p))
}

func (s server) listConnections(w http.ResponseWriter, r *http.Request) {
	tab := service.ConnectionsTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = service.FollowersTab
	}

	c, err := s.s.LoadConnections(r.Context(), chi.URLParam(r, "id"), tab)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newConnections(c))
}

func (s server) listUserPosts(w http.ResponseWriter, r *http.Request) {
	tab := service.PostsTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = service.PostsPostsTab
	}

	p, err := s.s.LoadUserPosts(r.Context(), chi.URLParam(r, "id"), tab)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPosts(p))
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Follow(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, FollowResponse{Following: true})
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Unfollow(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, FollowResponse{Following: false})
}

func (s server) getTimeline(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.LoadHomeTimeline(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPosts(p))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	files, err := multipartFiles(w, r, "files")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer closeFiles(files)

	p, err := s.s.CreatePost(r.Context(), &client.NewPost{
		Text:      r.FormValue("text"),
		ReplyToID: r.FormValue("reply_to_id"),
		Files:     files,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if p == nil {
		w.WriteHeader(http.StatusCreated)
		return
	}

	writeOK(w, http.StatusCreated, newPost(*p))
}

type reaction func(r *http.Request, postID string) (entities.Counter, error)

func (s server) react(w http.ResponseWriter, r *http.Request, do reaction) {
	c, err := do(r, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newCounter(c))
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, func(r *http.Request, id string) (entities.Counter, error) {
		return s.s.Like(r.Context(), id)
	})
}

func (s server) unlike(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, func(r *http.Request, id string) (entities.Counter, error) {
		return s.s.Unlike(r.Context(), id)
	})
}

func (s server) repost(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, func(r *http.Request, id string) (entities.Counter, error) {
		return s.s.Repost(r.Context(), id)
	})
}

func (s server) unrepost(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, func(r *http.Request, id string) (entities.Counter, error) {
		return s.s.Unrepost(r.Context(), id)
	})
}

func (s server) requestDeletion(w http.ResponseWriter, r *http.Request) {
	if err := s.s.RequestDelete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s server) cancelDeletion(w http.ResponseWriter, r *http.Request) {
	if err := s.s.CancelDelete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) confirmDeletion(w http.ResponseWriter, r *http.Request) {
	if err := s.s.ConfirmDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) finishDeletion(w http.ResponseWriter, r *http.Request) {
	if err := s.s.FinishDeleteAnimation(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) search(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.Search(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newProfiles(p))
}

func (s server) recentSearches(w http.ResponseWriter, r *http.Request) {
	list, err := s.s.RecentSearches(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if list == nil {
		list = []string{}
	}

	writeOK(w, http.StatusOK, list)
}

// multipartFiles opens every file of the field. Caller closes them with closeFiles.
func multipartFiles(w http.ResponseWriter, r *http.Request, field string) ([]*client.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartSize)
	if err := r.ParseMultipartForm(maxMultipartSize); err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	var files []*client.File
	for _, fh := range r.MultipartForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeFiles(files)
			return nil, fmt.Errorf("%w: failed to open %s: %s", errInvalidRequest, fh.Filename, err.Error())
		}

		files = append(files, &client.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return files, nil
}

func closeFiles(files []*client.File) {
	for _, f := range files {
		if c, ok := f.Body.(io.Closer); ok {
			_ = c.Close()
		}
	}
}
