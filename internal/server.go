package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/config"
	gymstatsmcp "github.com/2beens/fittrack/internal/gymstats/mcp"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// Server exposes the fittrack MCP tools over streamable HTTP at /mcp,
// with prometheus metrics on a separate listener.
type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mcpServer         *mcp.Server
	mcpSecret         string // shared secret MCP clients send in X-MCP-Secret
	versionInfo       string

	config      *config.Config
	redisClient *redis.Client // optional, enables rate limiting of /mcp

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config         *config.Config
	Backend        *api.Client
	RedisClient    *redis.Client
	MetricsManager *metrics.Manager
	PromRegistry   *prometheus.Registry
	OtelShutdown   func()
	MCPSecret      string
	VersionInfo    string
}

func NewServer(params NewServerParams) *Server {
	otelShutdown := params.OtelShutdown
	if otelShutdown == nil {
		otelShutdown = func() {}
	}
	if params.MCPSecret == "" {
		log.Warnln("MCP secret not set, /mcp is open to anyone who can reach it")
	}

	params.MetricsManager.GaugeLifeSignal.Set(0)

	return &Server{
		mcpServer:      gymstatsmcp.NewServer(params.Backend, params.MetricsManager),
		mcpSecret:      params.MCPSecret,
		versionInfo:    params.VersionInfo,
		config:         params.Config,
		redisClient:    params.RedisClient,
		metricsManager: params.MetricsManager,
		promRegistry:   params.PromRegistry,
		otelShutdown:   otelShutdown,
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("mcp-router"))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONResponseOK(w, `{"status":"ok"}`)
	}).Methods("GET").Name("health")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte(s.versionInfo), http.StatusOK)
	}).Methods("GET").Name("version")

	var mcpHandler http.Handler = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	if s.redisClient != nil && s.config.McpRateLimitPerMin > 0 {
		mcpHandler = middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"mcp",
			s.config.McpRateLimitPerMin,
			s.metricsManager,
		)(mcpHandler)
	}
	r.Handle("/mcp", mcpHandler).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.NewSecretMiddlewareHandler(s.mcpSecret).SecretCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:     s.routerSetup(),
		Addr:        ipAndPort,
		ReadTimeout: time.Minute,
		// no write timeout, MCP responses may be streamed
		ConnState: s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > mcp server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("mcp service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
