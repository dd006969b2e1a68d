package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tippni/tippni/internal/health"
	"github.com/tippni/tippni/internal/server"
)

var errTerminated = errors.New("terminated")

// nolint:lll
type serveCommand struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"127.0.0.1" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"7070" description:"port to listen on"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"30s" description:"timeout of an action request"`
	SearchCacheTTL time.Duration `long:"search.cache_ttl" env:"SEARCH_CACHE_TTL" default:"30s" description:"lifetime of cached search responses, 0 disables the cache"`
}

func (c *serveCommand) Execute(_ []string) error {
	setupLogging()

	a, err := newAgent(agentOptions{persistent: true, deleteDelay: opts.DeleteDelay})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create agent")
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.svc.RestoreSnapshot(ctx); err != nil {
		logrus.WithError(err).Warn("failed to restore profile snapshot")
	}

	var pingers []health.Pinger
	if a.storage != nil {
		pingers = append(pingers, health.SubjectPinger("postgres", a.storage.Ping))
	}

	r := chi.NewMux()
	server.SetupRouter(a.svc, r, server.Options{
		Timeout:        c.RequestTimeout,
		SearchCacheTTL: c.SearchCacheTTL,
		Pingers:        pingers,
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", c.Host, c.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		if !a.sess.IsSignedIn() {
			return nil
		}
		if _, err := a.svc.FetchMyProfile(ctx); err != nil {
			logrus.WithError(err).Warn("failed to fetch profile")
		}
		return nil
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		return errTerminated
	})

	logrus.WithField("addr", srv.Addr).Info("agent started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Error("agent unexpectedly closed")
		return err
	}

	return nil
}
