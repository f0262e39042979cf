package middleware

import (
	"net/http"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/nutridiary/internal/telemetry/tracing"
	"github.com/2beens/nutridiary/pkg"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareHandler checks the API token of every request against a
// bcrypt hash. A token that once matched is remembered to skip rehashing.
type AuthMiddlewareHandler struct {
	tokenHash    string
	allowedPaths map[string]bool

	mutex         sync.RWMutex
	verifiedToken string
}

func NewAuthMiddlewareHandler(tokenHash string, allowedPaths ...string) *AuthMiddlewareHandler {
	h := &AuthMiddlewareHandler{
		tokenHash: tokenHash,
		allowedPaths: map[string]bool{
			"/health":  true,
			"/version": true,
		},
	}
	for _, p := range allowedPaths {
		h.allowedPaths[p] = true
	}
	return h
}

func (h *AuthMiddlewareHandler) tokenValid(token string) bool {
	h.mutex.RLock()
	known := h.verifiedToken != "" && h.verifiedToken == token
	h.mutex.RUnlock()
	if known {
		return true
	}

	if !pkg.CheckTokenHash(token, h.tokenHash) {
		return false
	}

	h.mutex.Lock()
	h.verifiedToken = token
	h.mutex.Unlock()
	return true
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.tokenValid(strings.TrimPrefix(authHeader, bearerPrefix)) {
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s from %s", r.URL.Path, pkg.ClientIP(r))
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
