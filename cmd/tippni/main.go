package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/tippni/tippni/internal/client/rest"
	"github.com/tippni/tippni/internal/health"
	"github.com/tippni/tippni/internal/notify"
	"github.com/tippni/tippni/internal/service"
	"github.com/tippni/tippni/internal/service/impl"
	"github.com/tippni/tippni/internal/session"
	"github.com/tippni/tippni/internal/storage"
	"github.com/tippni/tippni/internal/storage/postgres"
	"github.com/tippni/tippni/internal/store"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	APIURL     string        `long:"api.url" env:"API_URL" default:"http://localhost:8080" description:"Tippni API base url"`
	APITimeout time.Duration `long:"api.timeout" env:"API_TIMEOUT" default:"10s" description:"timeout for requests to Tippni API"`
	Token      string        `long:"token" env:"TIPPNI_TOKEN" description:"bearer token of the session, see login command"`

	Postgres                   string `long:"postgres" env:"POSTGRES" description:"postgres dsn, persistence is disabled when empty"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	NATSURL     string `long:"nats.url" env:"NATS_URL" description:"nats url, notifications are published when set"`
	NATSSubject string `long:"nats.subject" env:"NATS_SUBJECT" default:"tippni.notifications" description:"nats subject for notifications"`

	OptimisticNoDedupe bool          `long:"optimistic.no_dedupe" env:"OPTIMISTIC_NO_DEDUPE" description:"allow an optimistic action while the same one is in flight"`
	DeleteDelay        time.Duration `long:"delete.delay" env:"DELETE_DELAY" default:"1800ms" description:"maximal duration of post exit animation"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Tippni"
	parser.LongDescription = "Tippni client agent"

	mustAddCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func setupLogging() {
	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)

	if opts.SentryDSN == "" {
		logrus.Debug("empty sentry dsn, skip sentry initialization")
		return
	}

	hook, err := sentry.NewHook(sentry.Options{
		Dsn:              opts.SentryDSN,
		AttachStacktrace: true,
		Release:          health.GetVersion(),
		ServerName:       "tippni",
	}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

	if err != nil {
		logrus.WithError(err).Fatal("failed to init sentry")
	}

	logrus.AddHook(hook)
}

// agent is the wired client state of one viewer.
type agent struct {
	svc     service.Service
	sess    *session.Session
	st      *store.Store
	storage storage.Storage
	db      *sql.DB
	nc      *nats.Conn
}

func (a *agent) Close() {
	if a.nc != nil {
		a.nc.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logrus.WithError(err).Error("failed to close postgres connection")
		}
	}
}

type agentOptions struct {
	// persistent enables postgres and nats when they are configured.
	persistent  bool
	deleteDelay time.Duration
}

func newAgent(o agentOptions) (*agent, error) {
	a := &agent{
		sess: session.New(opts.Token),
		st:   store.New(),
	}

	notifiers := []notify.Notifier{a.st, notify.NewLogNotifier()}

	if o.persistent && opts.Postgres != "" {
		db, err := getDB()
		if err != nil {
			return nil, err
		}
		a.db = db
		a.storage = postgres.New(db)
	}

	if o.persistent && opts.NATSURL != "" {
		nc, err := nats.Connect(opts.NATSURL, nats.Name("tippni"))
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to nats: %w", err)
		}
		a.nc = nc
		notifiers = append(notifiers, notify.NewNATS(nc, opts.NATSSubject))
	}

	c := rest.New(opts.APIURL, opts.APITimeout, a.sess)

	a.svc = impl.New(c, a.sess, a.st, a.storage, notify.Multi(notifiers...), impl.Options{
		Dedupe:      !opts.OptimisticNoDedupe,
		DeleteDelay: o.deleteDelay,
	})

	return a, nil
}

func getDB() (*sql.DB, error) {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres connection: %w", err)
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := migrateDB(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrateDB(db *sql.DB) error {
	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database migrate driver: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		return fmt.Errorf("failed to get version: %w", err)
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	return nil
}
