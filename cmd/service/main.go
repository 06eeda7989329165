package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/deliveries_available_get"
	"dispatch/internal/handlers/rest/deliveries_get"
	"dispatch/internal/handlers/rest/delivery_accept_post"
	"dispatch/internal/handlers/rest/delivery_advance_post"
	"dispatch/internal/handlers/rest/delivery_assign_post"
	"dispatch/internal/handlers/rest/delivery_cancel_post"
	"dispatch/internal/handlers/rest/delivery_delete"
	"dispatch/internal/handlers/rest/delivery_get"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_reassign_post"
	"dispatch/internal/handlers/rest/delivery_types_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/login_post"
	"dispatch/internal/handlers/rest/notification_read_post"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/profile_get"
	"dispatch/internal/handlers/rest/profile_status_post"
	"dispatch/internal/handlers/rest/profiles_get"
	"dispatch/internal/handlers/rest/promote_admin_post"
	"dispatch/internal/handlers/rest/rider_approve_post"
	"dispatch/internal/handlers/rest/rider_get"
	"dispatch/internal/handlers/rest/rider_post"
	"dispatch/internal/handlers/rest/rider_put"
	"dispatch/internal/handlers/rest/riders_get"
	"dispatch/internal/handlers/rest/signup_post"
	"dispatch/internal/handlers/rest/stats_get"
	"dispatch/internal/handlers/rest/track_get"
	"dispatch/internal/handlers/rest/transactions_get"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/kafka"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/postgres"
	"dispatch/internal/pkg/token"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные точки: регистрация, вход и трекинг по номеру без сессии
	router.Handle("/signup", signup_post.New(log, app.ServiceProfile)).Methods("POST")
	router.Handle("/login", login_post.New(log, app.ServiceProfile)).Methods("POST")
	router.Handle("/promote-admin", promote_admin_post.New(log, app.ServiceProfile)).Methods("POST")
	router.Handle("/track/{number}", track_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery-types", delivery_types_get.New(log, app.ServiceDelivery)).Methods("GET")

	// всё остальное за auth middleware, роль проверяется в сервисах
	api := router.PathPrefix("/").Subrouter()
	tokenParser := token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	api.Use(auth.Middleware(log, tokenParser))

	api.Handle("/delivery", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/accept", delivery_accept_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/assign", delivery_assign_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/reassign", delivery_reassign_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/advance", delivery_advance_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/delivery/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/delivery/{id}", delivery_delete.New(log, app.ServiceDelivery)).Methods("DELETE")
	api.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/deliveries/available", deliveries_available_get.New(log, app.ServiceDelivery)).Methods("GET")

	api.Handle("/rider", rider_post.New(log, app.ServiceRider)).Methods("POST")
	api.Handle("/rider", rider_put.New(log, app.ServiceRider)).Methods("PUT")
	api.Handle("/rider/approve", rider_approve_post.New(log, app.ServiceRider)).Methods("POST")
	api.Handle("/rider/{id}", rider_get.New(log, app.ServiceRider)).Methods("GET")
	api.Handle("/riders", riders_get.New(log, app.ServiceRider)).Methods("GET")

	api.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	api.Handle("/notifications/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")

	api.Handle("/transactions", transactions_get.New(log, app.ServiceTransaction)).Methods("GET")

	api.Handle("/stats", stats_get.New(log, app.ServiceStats)).Methods("GET")

	api.Handle("/profiles", profiles_get.New(log, app.ServiceProfile)).Methods("GET")
	api.Handle("/profile/status", profile_status_post.New(log, app.ServiceProfile)).Methods("POST")
	api.Handle("/profile/{id}", profile_get.New(log, app.ServiceProfile)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
