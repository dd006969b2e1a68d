// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/deletion"
	"github.com/tippni/tippni/internal/notify"
	"github.com/tippni/tippni/internal/optimistic"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/session"
	"github.com/tippni/tippni/internal/storage"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

var log = logrus.WithField("package", "impl")

// Options ...
type Options struct {
	// Dedupe rejects an optimistic action while the same action on the same entity is in flight.
	Dedupe bool
	// DeleteDelay bounds the exit animation of a deleted post.
	DeleteDelay time.Duration
}

// srv ...
type srv struct {
	c    client.Client
	sess *session.Session
	st   *store.Store
	// s is optional.
	s storage.Storage
	n notify.Notifier

	co      *optimistic.Coordinator
	delFlow *deletion.Flow

	recent *recentSearches
}

// New creates new instance of service. Storage may be nil, then nothing is persisted.
func New(c client.Client, sess *session.Session, st *store.Store, s storage.Storage, n notify.Notifier, opts Options) service.Service {
	srv := &srv{
		c:      c,
		sess:   sess,
		st:     st,
		s:      s,
		n:      n,
		co:     optimistic.New(n, opts.Dedupe),
		recent: newRecentSearches(recentSearchesLimit),
	}

	srv.delFlow = deletion.New(ownedPosts{st}, c.DeletePost, n, opts.DeleteDelay, func(id string, state deletion.State) {
		st.Emit(store.Event{Type: store.DeletionEvent, ID: id, State: string(state)})
	})

	return srv
}

func notifyError(err error, fallback string) notify.Notification {
	return notify.Error("%s", client.Message(err, fallback))
}

func notifySuccess(msg string) notify.Notification {
	return notify.Success("%s", msg)
}

func (s *srv) requireSession() error {
	if !s.sess.IsSignedIn() {
		return service.ErrNotSignedIn
	}

	return nil
}

// owner is a key of persisted records of the session.
func (s *srv) owner() string {
	return s.sess.Subject()
}

func (s *srv) SignIn(ctx context.Context, email, password string) error {
	if err := validate.SignIn(email, password); err != nil {
		return err
	}

	token, err := s.c.Authenticate(ctx, email, password)
	if err != nil {
		s.n.Notify(notifyError(err, "Invalid email or password."))
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	s.st.Reset()
	s.delFlow.Reset()
	s.sess.Set(token)
	s.n.Notify(notifySuccess("Signed in successfully!"))

	if err := s.RestoreSnapshot(ctx); err != nil {
		log.WithError(err).Warn("failed to restore profile snapshot")
	}

	if _, err := s.FetchMyProfile(ctx); err != nil {
		log.WithError(err).Warn("failed to fetch profile after sign in")
	}

	return nil
}

func (s *srv) SignUp(ctx context.Context, f validate.SignUpForm) (string, error) {
	if err := validate.SignUp(f); err != nil {
		return "", err
	}

	msg, err := s.c.Register(ctx, &client.RegisterRequest{
		Username:        f.Username,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		DateOfBirth:     f.DateOfBirth,
		Gender:          f.Gender,
	})
	if err != nil {
		s.n.Notify(notifyError(err, "Registration failed."))
		return "", fmt.Errorf("failed to register: %w", err)
	}

	if msg == "" {
		msg = "Registration successful! Check your email for the activation code."
	}
	s.n.Notify(notifySuccess(msg))

	return msg, nil
}

func (s *srv) Activate(ctx context.Context, code string) error {
	if err := validate.ActivationCode(code); err != nil {
		return err
	}

	if err := s.c.Activate(ctx, code); err != nil {
		s.n.Notify(notifyError(err, "Invalid OTP."))
		return fmt.Errorf("failed to activate: %w", err)
	}

	s.n.Notify(notifySuccess("Account activated successfully!"))

	return nil
}

func (s *srv) SignOut(_ context.Context) error {
	s.sess.Clear()
	s.st.Reset()
	s.delFlow.Reset()
	s.recent.reset()

	return nil
}

func (s *srv) RestoreSnapshot(ctx context.Context) error {
	if s.s == nil || !s.sess.IsSignedIn() || s.owner() == "" {
		return nil
	}

	p, err := s.s.GetProfileSnapshot(ctx, s.owner())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get profile snapshot: %w", err)
	}

	if s.st.Me() == nil {
		s.st.SetMe(p)
	}

	return nil
}

func (s *srv) State() service.State {
	return service.State{
		Snapshot:  s.st.Snapshot(),
		SignedIn:  s.sess.IsSignedIn(),
		Deletions: s.delFlow.States(),
	}
}

func (s *srv) Subscribe() (<-chan store.Event, func()) {
	return s.st.Subscribe()
}
