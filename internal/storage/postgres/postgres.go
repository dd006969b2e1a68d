// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/entities"
	"github.com/tippni/tippni/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not call InTx within tx")

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	Owner     string `db:"owner"`
	ProfileID string `db:"profile_id"`
	Username  string `db:"username"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Bio       string `db:"bio"`
	Location  string `db:"location"`
	Website   string `db:"website"`
	BirthDate string `db:"birth_date"`
	AvatarURL string `db:"avatar_url"`
	BannerURL string `db:"banner_url"`
	Verified  bool   `db:"verified"`
	Followers int    `db:"followers"`
	Followees int    `db:"followees"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	var one int
	if err := sqlx.GetContext(ctx, s.ext, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) AddRecentSearch(ctx context.Context, owner, query string, keep int) error {
	if _, ok := s.ext.(*sqlx.DB); !ok {
		return s.addRecentSearch(ctx, owner, query, keep)
	}

	return s.InTx(ctx, func(tx storage.Storage) error {
		return tx.(pg).addRecentSearch(ctx, owner, query, keep)
	})
}

func (s pg) addRecentSearch(ctx context.Context, owner, query string, keep int) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO recent_search(owner, query, searched_at) VALUES($1, $2, clock_timestamp())
			ON CONFLICT(owner, query) DO UPDATE SET searched_at=excluded.searched_at
		`, owner, query,
	); err != nil {
		return fmt.Errorf("failed to exec insert: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx, `
			DELETE FROM recent_search WHERE owner=$1 AND query NOT IN (
				SELECT query FROM recent_search WHERE owner=$1 ORDER BY searched_at DESC LIMIT $2
			)
		`, owner, keep,
	); err != nil {
		return fmt.Errorf("failed to exec trim: %w", err)
	}

	return nil
}

func (s pg) ListRecentSearches(ctx context.Context, owner string, limit int) ([]string, error) {
	out := []string{}

	if err := sqlx.SelectContext(ctx, s.ext, &out, `
			SELECT query FROM recent_search WHERE owner=$1 ORDER BY searched_at DESC LIMIT $2
		`, owner, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) SaveProfileSnapshot(ctx context.Context, owner string, p *entities.Profile) error {
	profile := profileDTO{
		Owner:     owner,
		ProfileID: p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		BirthDate: p.BirthDate,
		AvatarURL: p.AvatarURL,
		BannerURL: p.BannerURL,
		Verified:  p.Verified,
		Followers: p.Followers,
		Followees: p.Followees,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile_snapshot(owner, profile_id, username, name, email, bio, location, website,
				birth_date, avatar_url, banner_url, verified, followers, followees)
			VALUES(:owner, :profile_id, :username, :name, :email, :bio, :location, :website,
				:birth_date, :avatar_url, :banner_url, :verified, :followers, :followees)
			ON CONFLICT(owner) DO UPDATE SET
				profile_id=excluded.profile_id, username=excluded.username, name=excluded.name,
				email=excluded.email, bio=excluded.bio, location=excluded.location, website=excluded.website,
				birth_date=excluded.birth_date, avatar_url=excluded.avatar_url, banner_url=excluded.banner_url,
				verified=excluded.verified, followers=excluded.followers, followees=excluded.followees,
				updated_at=now()
		`, profile,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfileSnapshot(ctx context.Context, owner string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT owner, profile_id, username, name, email, bio, location, website,
				birth_date, avatar_url, banner_url, verified, followers, followees
			FROM profile_snapshot
			WHERE owner = $1
		`,
		owner,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		ID:        p.ProfileID,
		Username:  p.Username,
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		BirthDate: p.BirthDate,
		AvatarURL: p.AvatarURL,
		BannerURL: p.BannerURL,
		Verified:  p.Verified,
		Followers: p.Followers,
		Followees: p.Followees,
		HasCounts: true,
	}, nil
}
