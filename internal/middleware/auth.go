package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const HeaderMCPSecret = "X-MCP-Secret"

type SecretMiddlewareHandler struct {
	secret       string
	allowedPaths map[string]bool
}

// NewSecretMiddlewareHandler guards every path except health and metrics with a shared
// secret header. An empty secret lets every request through.
func NewSecretMiddlewareHandler(secret string) *SecretMiddlewareHandler {
	return &SecretMiddlewareHandler{
		secret: secret,
		allowedPaths: map[string]bool{
			"/health":  true,
			"/metrics": true,
		},
	}
}

func (h *SecretMiddlewareHandler) SecretCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.secret")
			defer span.End()

			if r.Method == http.MethodOptions || h.secret == "" || h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderMCPSecret)
			if provided == "" {
				log.Tracef("[missing secret] [secret middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-secret")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
				log.Warnf("[invalid secret] [secret middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-secret")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
