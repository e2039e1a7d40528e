// Package main runs the fittrack MCP server, exposing the logged in user's
// exercise groups, logs, stats, daily essentials and profile as read-only tools.
// Use stdio for local assistants, or http to serve /mcp with metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/cli"
	"github.com/2beens/fittrack/internal/config"
	gymstatsmcp "github.com/2beens/fittrack/internal/gymstats/mcp"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/session"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | test]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional dotenv file with secrets")
	mode := flag.String("mode", "stdio", "transport [stdio | http]")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load env file [%s]: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logsPath := cfg.LogsPath
	if *mode == "stdio" && logsPath == "" {
		// stdout carries the MCP protocol
		logsPath = "fittrack-mcp.log"
	}
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      logsPath,
		LogToStdout:      cfg.LogToStdout && *mode != "stdio",
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    *mode == "http",
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fittrack-mcp",
	})
	log.Warnf("---->> running in [%s] environment, mode [%s]", *env, *mode)

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "fittrack-mcp")
	if err != nil {
		log.Errorf("honeycomb setup: %s", err)
		otelShutdown = func() {}
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fittrack", "mcp", promRegistry)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisPassword := os.Getenv("FITTRACK_REDIS_PASS")
	app, err := cli.NewApp(cli.AppParams{
		Config:        cfg,
		RedisPassword: redisPassword,
		ClientOptions: []api.Option{api.WithMetrics(metricsManager)},
	})
	if err != nil {
		log.Fatalf("new app: %s", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Errorf("close app: %s", err)
		}
	}()

	app.Restore(ctx)
	if !app.Session.IsAuthenticated() {
		log.Warnln("no stored session, tools will fail until `fittrack login` is run")
	}

	switch *mode {
	case "stdio":
		defer otelShutdown()
		server := gymstatsmcp.NewServer(app.Client, metricsManager)
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("mcp stdio: %s", err)
		}
	case "http":
		serveHTTP(ctx, cfg, app.Client, metricsManager, promRegistry, otelShutdown, redisPassword)
	default:
		log.Fatalf("unknown mode [%s]", *mode)
	}
}

func serveHTTP(
	ctx context.Context,
	cfg *config.Config,
	backend *api.Client,
	metricsManager *metrics.Manager,
	promRegistry *prometheus.Registry,
	otelShutdown func(),
	redisPassword string,
) {
	mcpSecret := os.Getenv("FITTRACK_MCP_SECRET")
	if mcpSecret == "" {
		log.Errorf("mcp secret not set. use FITTRACK_MCP_SECRET")
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" && cfg.McpRateLimitPerMin > 0 {
		redisClient = session.NewRedisClient(cfg.RedisHost, cfg.RedisPort, redisPassword)
	}

	server := internal.NewServer(internal.NewServerParams{
		Config:         cfg,
		Backend:        backend,
		RedisClient:    redisClient,
		MetricsManager: metricsManager,
		PromRegistry:   promRegistry,
		OtelShutdown:   otelShutdown,
		MCPSecret:      mcpSecret,
		VersionInfo:    versionInfo,
	})
	server.Serve(cfg.McpHost, cfg.McpPort)

	<-ctx.Done()
	log.Warnln("signal received, shutting down ...")

	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the binary runs from the repository root.
func tryGetLastCommitHash() (string, error) {
	out, err := exec.Command("/usr/bin/git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
