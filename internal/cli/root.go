package cli

import (
	"context"
	"errors"
	"os"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GlobalOptions are the persistent flags of the root command.
type GlobalOptions struct {
	Env        string
	ConfigPath string
	EnvFile    string
	Verbose    bool
}

// AppFactory builds the App for one invocation.
type AppFactory func(ctx context.Context, opts GlobalOptions) (*App, error)

type state struct {
	opts   GlobalOptions
	newApp AppFactory
	app    *App
}

// NewRootCommand builds the fittrack command tree. A nil factory uses DefaultAppFactory.
func NewRootCommand(newApp AppFactory) *cobra.Command {
	if newApp == nil {
		newApp = DefaultAppFactory
	}
	s := &state{newApp: newApp}

	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Personal fitness tracker client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.newApp(cmd.Context(), s.opts)
			if err != nil {
				return err
			}
			s.app = app
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if s.app == nil {
				return nil
			}
			return s.app.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.opts.Env, "env", "development", "environment [dev | development | prod | production | test]")
	flags.StringVar(&s.opts.ConfigPath, "config", "./config.toml", "path to TOML config file")
	flags.StringVar(&s.opts.EnvFile, "env-file", ".env", "optional dotenv file with secrets")
	flags.BoolVarP(&s.opts.Verbose, "verbose", "v", false, "also log to stdout")

	root.AddCommand(
		newLoginCommand(s),
		newRegisterCommand(s),
		newLogoutCommand(s),
		newWhoAmICommand(s),
		newGroupsCommand(s),
		newExercisesCommand(s),
		newLogCommand(s),
		newEssentialsCommand(s),
		newStatsCommand(s),
		newProfileCommand(s),
	)

	return root
}

// DefaultAppFactory loads secrets and config, sets up logging and tracing,
// and restores the persisted session.
func DefaultAppFactory(ctx context.Context, opts GlobalOptions) (*App, error) {
	if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load env file [%s]: %s", opts.EnvFile, err)
	}

	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout || opts.Verbose,
		Quiet:            true,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fittrack-cli",
	})

	otelShutdown, err := tracing.HoneycombSetup(os.Getenv("HONEYCOMB_ENABLED") == "true", "fittrack-cli")
	if err != nil {
		log.Warnf("tracing setup: %s", err)
		otelShutdown = func() {}
	}

	app, err := NewApp(AppParams{
		Config:        cfg,
		RedisPassword: os.Getenv("FITTRACK_REDIS_PASS"),
	})
	if err != nil {
		otelShutdown()
		return nil, err
	}
	app.closers = append(app.closers, func() error {
		otelShutdown()
		return nil
	})

	app.Restore(ctx)
	return app, nil
}
