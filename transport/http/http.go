package http

import (
	"context"
	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/infras/postgres"
	recordService "desk/internal/domains/record/service"
	"desk/shared/constant"
	"desk/transport/http/middleware"
	"desk/transport/http/response"
	"desk/transport/http/router"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

// Resources are released once the server has stopped. Records has its
// stores initialized before the first request is routed.
type Resources struct {
	Otel     otel.Otel
	Events   kafka.Client
	Postgres *postgres.Connection
	Records  recordService.Record
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Resources  Resources

	state  atomic.Int32
	once   sync.Once
	mux    chi.Router
	server *http.Server
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, resources Resources) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Resources:  resources,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()

	address := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)
	h.server = &http.Server{
		Addr:              address,
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stopped := make(chan struct{})

	go h.respondToSigterm(stopped)

	log.Info().Str("address", address).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-stopped

	h.release()
}

// ServeHTTP lets the application run behind another server or a serverless adapter.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.initializeStores()
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

// initializeStores creates missing tables and header rows. A failure is
// logged and the server still starts; affected requests report storage errors.
func (h *HTTP) initializeStores() {
	if h.Resources.Records == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
	defer cancel()

	if err := h.Resources.Records.EnsureInitialized(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to initialize record stores")

		return
	}

	log.Info().Msg("Record stores ready.")
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(h.Middleware.Tracing)
	mux.Use(h.Middleware.RequestLog)
	mux.Use(h.shutdownGate)

	if corsConfig := h.Config.App.CORS; corsConfig.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	mux.Use(h.Middleware.RateLimit())

	h.Router.SetupRoutes(mux)
	h.mux = mux
}

// shutdownGate turns new requests away once the grace period has started.
func (h *HTTP) shutdownGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) respondToSigterm(stopped chan<- struct{}) {
	defer close(stopped)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(0)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(timeout time.Duration) {
	ctx := context.Background()

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not shut down cleanly")
	}
}

func (h *HTTP) release() {
	ctx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
	defer cancel()

	if h.Resources.Events != nil {
		if err := h.Resources.Events.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}

	if err := h.Resources.Postgres.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Postgres connection")
	}

	if h.Resources.Otel != nil {
		if err := h.Resources.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}
}
