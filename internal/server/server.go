// Package server is the local API of the Tippni agent.
//
// It exposes the client state of the signed-in viewer to any view layer:
// JSON over HTTP for actions and a websocket stream of state changes.
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/health"
	mm "github.com/tippni/tippni/internal/middleware"
	"github.com/tippni/tippni/internal/service"
)

const (
	maxBodySize      = 64 << 10
	maxMultipartSize = 32 << 20

	healthTimeout = 5 * time.Second
)

var log = logrus.WithField("package", "server")

// Options ...
type Options struct {
	// Timeout bounds every action except the event stream.
	Timeout time.Duration
	// SearchCacheTTL is lifetime of cached search responses, zero disables the cache.
	SearchCacheTTL time.Duration
	// Pingers are checked by /health.
	Pingers []health.Pinger
}

type server struct {
	s           service.Service
	searchCache *mm.Cache
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, opts Options) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		middleware.Recoverer,
		mm.Metrics,
	)

	srv := server{
		s:           s,
		searchCache: mm.NewCache(opts.SearchCacheTTL),
	}

	r.Get("/health", health.Handler(healthTimeout, opts.Pingers...))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/events", srv.events)

		r.Group(func(r chi.Router) {
			if opts.Timeout > 0 {
				r.Use(middleware.Timeout(opts.Timeout))
			}

			r.Get("/state", srv.getState)
			r.Put("/page", srv.setPage)

			r.Post("/session", srv.signIn)
			r.Delete("/session", srv.signOut)
			r.Post("/accounts", srv.signUp)
			r.Post("/accounts/activation", srv.activate)

			r.Post("/profiles/me", srv.fetchMyProfile)
			r.Patch("/profiles/me", srv.updateProfile)
			r.Put("/profiles/me/avatar", srv.uploadAvatar)
			r.Put("/profiles/me/banner", srv.uploadBanner)
			r.Delete("/profiles/selected", srv.clearSelected)
			r.Get("/profiles/{id}", srv.openProfile)
			r.Get("/profiles/{id}/connections", srv.listConnections)
			r.Get("/profiles/{id}/posts", srv.listUserPosts)

			r.Post("/follows/{id}", srv.follow)
			r.Delete("/follows/{id}", srv.unfollow)

			r.Get("/timeline", srv.getTimeline)
			r.Post("/posts", srv.createPost)
			r.Post("/posts/{id}/like", srv.like)
			r.Delete("/posts/{id}/like", srv.unlike)
			r.Post("/posts/{id}/repost", srv.repost)
			r.Delete("/posts/{id}/repost", srv.unrepost)
			r.Post("/posts/{id}/deletion", srv.requestDeletion)
			r.Delete("/posts/{id}/deletion", srv.cancelDeletion)
			r.Put("/posts/{id}/deletion", srv.confirmDeletion)
			r.Post("/posts/{id}/deletion/finished", srv.finishDeletion)

			r.Get("/search", srv.searchCache.Cached(srv.search))
			r.Get("/search/recent", srv.recentSearches)
		})
	})
}
