package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/config"
	"github.com/osse101/Stockroom_Go/internal/dashboard"
	"github.com/osse101/Stockroom_Go/internal/database"
	"github.com/osse101/Stockroom_Go/internal/handler"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
)

// InventoryPath is where an authenticated visit to the root lands
const InventoryPath = "/api/v1/inventory"

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	inventoryService inventory.Service
	dashboardService dashboard.Service
	authService      auth.Service
}

// NewServer creates a new Server instance. Everything under /api/v1 sits
// behind the session boundary; requests without a live session are
// redirected to the login page.
func NewServer(cfg *config.Config, trustedProxies []string, dbPool database.Pool, inventoryService inventory.Service, dashboardService dashboard.Service, authService auth.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	secureCookie := !cfg.IsDevelopment()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Login flow (public)
	r.Post(cfg.LoginPath, handler.HandleLogin(authService, cfg.CookieName, secureCookie))
	r.Post("/logout", handler.HandleLogout(authService, cfg.CookieName))

	// Everything else requires a session
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(authService, cfg.CookieName, cfg.LoginPath, trustedProxies, detector))

		// Home redirects to the inventory listing
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, InventoryPath, http.StatusSeeOther)
		})

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", handler.HandleListInventory(inventoryService))
				r.Post("/", handler.HandleCreateItem(inventoryService))
				r.Get("/new", handler.HandleNewItemForm(inventoryService))
				r.Get("/{id}", handler.HandleGetItem(inventoryService))
				r.Put("/{id}", handler.HandleUpdateItem(inventoryService))
				r.Patch("/{id}", handler.HandleUpdateItem(inventoryService))
				r.Delete("/{id}", handler.HandleDeleteItem(inventoryService))
			})

			r.Get("/dashboard", handler.HandleDashboard(dashboardService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		inventoryService: inventoryService,
		dashboardService: dashboardService,
		authService:      authService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, "Cookie") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
