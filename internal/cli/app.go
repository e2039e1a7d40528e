package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/session"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var ErrNotLoggedIn = errors.New("not logged in, run `fittrack login` first")

// App wires the resource client, the session and the toaster shared by all commands.
type App struct {
	Config  *config.Config
	Client  *api.Client
	Session *session.Manager
	Toaster *viewstate.RecordingToaster

	closers []func() error
}

type AppParams struct {
	Config        *config.Config
	Storage       session.Storage // overrides the configured session backend
	RedisPassword string
	ClientOptions []api.Option
}

func NewApp(params AppParams) (*App, error) {
	cfg := params.Config
	app := &App{
		Config:  cfg,
		Toaster: &viewstate.RecordingToaster{},
	}

	storage := params.Storage
	if storage == nil {
		switch cfg.SessionBackend {
		case config.SessionBackendRedis:
			rdb := session.NewRedisClient(cfg.RedisHost, cfg.RedisPort, params.RedisPassword)
			app.closers = append(app.closers, rdb.Close)
			storage = session.NewRedisStorage(rdb, session.DefaultRedisKeyPrefix)
		case config.SessionBackendFile, "":
			storage = session.NewFileStorage(cfg.SessionFilePath)
		default:
			return nil, fmt.Errorf("unknown session backend: %s", cfg.SessionBackend)
		}
	}

	clientOpts := append([]api.Option{
		api.WithHTTPClient(api.NewHTTPClient(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)),
		api.WithRateLimit(cfg.RequestsPerSecond),
		api.WithStatsCache(cfg.StatsCacheTTLSeconds),
	}, params.ClientOptions...)
	app.Client = api.NewClient(cfg.ApiBaseURL, clientOpts...)
	app.Session = session.NewManager(storage, app.Client)
	app.Client.SetTokenSource(app.Session)

	return app, nil
}

// Restore loads the persisted session. A corrupt session is cleared, not fatal.
func (a *App) Restore(ctx context.Context) {
	if err := a.Session.Restore(ctx); err != nil {
		log.Warnf("restore session: %s", err)
	}
}

func (a *App) RequireAuth() error {
	if !a.Session.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

func (a *App) Close() error {
	var err error
	for _, c := range a.closers {
		if cErr := c(); cErr != nil && !errors.Is(cErr, redis.ErrClosed) {
			err = multierr.Append(err, cErr)
		}
	}
	return err
}
