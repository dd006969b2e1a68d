// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/tippni/tippni/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage persists the part of client state which survives restarts.
// Every record belongs to an owner, the subject of the session.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	// AddRecentSearch puts query at the head of owner's recent searches and keeps only keep latest ones.
	AddRecentSearch(ctx context.Context, owner, query string, keep int) error
	// ListRecentSearches returns latest queries first.
	ListRecentSearches(ctx context.Context, owner string, limit int) ([]string, error)

	SaveProfileSnapshot(ctx context.Context, owner string, p *entities.Profile) error
	GetProfileSnapshot(ctx context.Context, owner string) (*entities.Profile, error)
}
