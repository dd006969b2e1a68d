package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/tippni/tippni/internal/client"
	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/store"
	"github.com/tippni/tippni/internal/validate"
)

func (s *srv) FetchMyProfile(ctx context.Context) (*entities.Profile, error) {
	s.st.Pending(store.MyProfileOp)

	p, err := s.c.GetMyProfile(ctx)
	if err != nil {
		s.st.Rejected(store.MyProfileOp, client.Message(err, "Failed to fetch profile"))
		return nil, fmt.Errorf("failed to get my profile: %w", err)
	}

	s.st.SetMe(p)
	s.st.Fulfilled(store.MyProfileOp)

	if s.s != nil && s.owner() != "" {
		if err := s.s.SaveProfileSnapshot(ctx, s.owner(), p); err != nil {
			log.WithError(err).Warn("failed to save profile snapshot")
		}
	}

	return p, nil
}

// FetchProfile loads the profile and selects it. The selection changes only when the fetch succeeds.
func (s *srv) FetchProfile(ctx context.Context, id string) (*entities.Profile, error) {
	s.st.Pending(store.SelectedProfileOp)

	p, err := s.c.GetProfile(ctx, id)
	if err != nil {
		s.st.Rejected(store.SelectedProfileOp, client.Message(err, "Failed to fetch profile"))
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	s.st.SetSelected(p)
	s.st.Fulfilled(store.SelectedProfileOp)

	return p, nil
}

func (s *srv) ClearProfile() {
	s.st.ClearMe()
}

func (s *srv) ClearSelectedUser() {
	s.st.ClearSelected()
}

// myID returns id of the viewer's profile fetching it when it is unknown.
func (s *srv) myID(ctx context.Context) (string, error) {
	if me := s.st.Me(); me != nil {
		return me.ID, nil
	}

	me, err := s.FetchMyProfile(ctx)
	if err != nil {
		return "", err
	}

	return me.ID, nil
}

func (s *srv) UpdateProfile(ctx context.Context, u *client.ProfileUpdate) (*entities.Profile, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	id, err := s.myID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.c.UpdateProfile(ctx, id, u); err != nil {
		s.n.Notify(notifyError(err, "Failed to update profile."))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.n.Notify(notifySuccess("Profile updated successfully!"))

	return s.FetchMyProfile(ctx)
}

func (s *srv) UploadAvatar(ctx context.Context, f *client.File) (*entities.Profile, error) {
	return s.uploadImage(ctx, f, s.c.UploadAvatar, "Avatar")
}

func (s *srv) UploadBanner(ctx context.Context, f *client.File) (*entities.Profile, error) {
	return s.uploadImage(ctx, f, s.c.UploadBanner, "Banner")
}

func (s *srv) uploadImage(ctx context.Context, f *client.File, upload func(context.Context, *client.File) error, kind string) (*entities.Profile, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	if err := validate.ProfileImage(f.Size); err != nil {
		return nil, err
	}

	if err := upload(ctx, f); err != nil {
		s.n.Notify(notifyError(err, fmt.Sprintf("Failed to upload %s.", strings.ToLower(kind))))
		return nil, fmt.Errorf("failed to upload %s: %w", strings.ToLower(kind), err)
	}

	s.n.Notify(notifySuccess(kind + " updated successfully!"))

	return s.FetchMyProfile(ctx)
}
