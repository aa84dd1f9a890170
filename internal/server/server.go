package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/handler"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
	"github.com/osse101/ArcFarmia_Go/internal/sse"
	"github.com/osse101/ArcFarmia_Go/internal/ws"
)

// Deps are the services exposed over HTTP
type Deps struct {
	Farm    farm.Service
	Bridge  bridge.Service
	Catalog *catalog.Catalog
	Sky     *ambience.Sky
	Clock   clock.Clock
	Store   handler.Pinger
	SSEHub  *sse.Hub
	WSHub   *ws.Hub
}

type Server struct {
	httpServer *http.Server
	wsHub      *ws.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, d Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, d),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		wsHub: d.WSHub,
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(apiKey string, trustedProxies []string, d Deps) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(d.Store))

	// Version endpoint (public, for deployment verification)
	r.Get(PathVersion, handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle(PathMetrics, promhttp.Handler())

	game := handler.NewGameHandler(d.Farm, d.Catalog, d.Sky, d.Clock, d.Bridge)
	shop := handler.NewShopHandler(d.Farm, d.Catalog, d.Bridge)
	wallet := handler.NewWalletHandler(d.Farm, d.Bridge)
	saves := handler.NewSaveHandler(d.Farm)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/state", game.State)
		r.Get("/catalog", handler.HandleCatalog(d.Catalog))

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/connect", wallet.Connect)
			r.Post("/disconnect", wallet.Disconnect)
		})
		r.Get("/save/export", saves.Export)

		// Everything that changes the farm waits for a connected wallet
		r.Group(func(r chi.Router) {
			r.Use(handler.RequireSession(d.Bridge))

			r.Route("/field/{index}", func(r chi.Router) {
				r.Post("/plant", game.Plant)
				r.Post("/water", game.Water)
				r.Post("/harvest", game.Harvest)
				r.Post("/click", game.Click)
			})
			r.Post("/player/move", game.Move)
			r.Post("/mode", game.SetMode)
			r.Post("/crop", game.SelectCrop)
			r.Post("/levelup/{noticeID}/dismiss", game.DismissLevelUp)

			r.Route("/shop", func(r chi.Router) {
				r.Post("/sell/harvest", shop.SellHarvest)
				r.Post("/sell/produce", shop.SellProduce)
				r.Post("/buy", shop.BuySeeds)
				r.Post("/daily", shop.ClaimDaily)
			})

			r.Route("/barn/{slot}", func(r chi.Router) {
				r.Post("/buy", shop.BuyAnimal)
				r.Post("/collect", shop.CollectProduce)
			})

			r.Post("/quests/{questID}/claim", shop.ClaimQuest)

			r.Route("/chain", func(r chi.Router) {
				r.Post("/save", wallet.SaveToChain)
				r.Post("/load", wallet.LoadFromChain)
			})
			r.Post("/save/import", saves.Import)
		})

		// Streaming endpoints
		if d.SSEHub != nil {
			r.Get(strings.TrimPrefix(PathEvents, APIPrefix), sse.Handler(d.SSEHub))
		}
		if d.WSHub != nil {
			r.Handle(strings.TrimPrefix(PathWebSocket, APIPrefix), ws.NewHandler(d.WSHub, ws.NewDispatcher(d.Farm, d.Bridge, d.Catalog), nil))
		}
	})

	return r
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

// Flush forwards to the underlying writer for the event stream
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack forwards to the underlying writer for websocket upgrades
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := rw.ResponseWriter.(http.Hijacker); ok {
		rw.statusCode = http.StatusSwitchingProtocols
		return h.Hijack()
	}
	return nil, nil, errors.New("response writer does not support hijacking")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, PathHealthz) ||
			strings.HasPrefix(r.URL.Path, PathReadyz) ||
			strings.HasPrefix(r.URL.Path, PathMetrics) {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
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
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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

// Stop stops the server gracefully. WebSocket connections are hijacked and
// not tracked by Shutdown, so they are closed through the hub.
func (s *Server) Stop(ctx context.Context) error {
	if s.wsHub != nil {
		s.wsHub.Close()
	}
	return s.httpServer.Shutdown(ctx)
}
