package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/tair/packing-checklist/docs"
	checklisthttp "github.com/tair/packing-checklist/internal/checklist/delivery/http"
	checklistdomain "github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/facade"
	favoritegrpc "github.com/tair/packing-checklist/internal/favorite/delivery/grpc"
	favoritehttp "github.com/tair/packing-checklist/internal/favorite/delivery/http"
	favoritedomain "github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/internal/platform/grpcserver"
	"github.com/tair/packing-checklist/internal/platform/httpmw"
	"github.com/tair/packing-checklist/kafka"
	"github.com/tair/packing-checklist/pkg/auth"
	"github.com/tair/packing-checklist/pkg/config"
	"github.com/tair/packing-checklist/pkg/database"
	"github.com/tair/packing-checklist/pkg/logger"
	"github.com/tair/packing-checklist/pkg/ratelimit"
	"github.com/tair/packing-checklist/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("store_driver", cfg.StoreDriver).
		Msg("Starting checklist service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.Environment)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracing.Shutdown(shutdownCtx, tp)
		}()
	}

	publisher := newPublisher(cfg)
	if closer, ok := publisher.(*kafka.Publisher); ok {
		defer closer.Close()
	}

	reg := prometheus.DefaultRegisterer

	var (
		svc   *facade.Service
		ready func(context.Context) error
	)
	switch cfg.StoreDriver {
	case "memory":
		svc, err = facade.InitializeInMemoryService(publisher, reg)
		ready = func(context.Context) error { return nil }
	case "postgres":
		var db *gorm.DB
		db, err = openDatabase(ctx, cfg)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize database")
		}
		sqlDB, ping, dbErr := poolOf(db)
		if dbErr != nil {
			logger.Logger.Fatal().Err(dbErr).Msg("Failed to initialize database")
		}
		defer sqlDB.Close()

		svc, err = facade.InitializeService(db, cfg.Tx, publisher, reg)
		ready = ping
	default:
		logger.Logger.Fatal().Str("store_driver", cfg.StoreDriver).Msg("Unknown store driver")
	}
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize service")
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		rl := ratelimit.NewRedisLimiter(client, "favorite", cfg.FavoriteRateLimit, cfg.FavoriteRateWin)
		defer rl.Close()
		limiter = rl
		logger.Logger.Info().Str("redis_addr", cfg.RedisAddr).Int("limit", cfg.FavoriteRateLimit).Msg("Favorite rate limiting enabled")
	}

	grpcSrv := grpcserver.New(cfg.ServiceName, tokens, grpcserver.NewMetrics(reg, "checklist"))
	favoritegrpc.Register(grpcSrv.Registrar(), favoritegrpc.NewFavoriteGRPCServer(svc))
	go grpcSrv.WatchReadiness(ctx, 10*time.Second, ready)
	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("port", cfg.GRPCPort).Msg("Failed to listen")
		}
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(cfg, svc, tokens, limiter, ready),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/").
			Msg("HTTP server started")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP shutdown failed")
	}
	grpcSrv.Stop()
}

func openDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewGormConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	logger.Logger.Info().Msg("Database initialized successfully")
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&checklistdomain.Item{},
		&checklistdomain.Checklist{},
		&checklistdomain.ChecklistItem{},
		&favoritedomain.ItemReview{},
		&favoritedomain.Favorite{},
	)
}

// poolOf returns the pool behind db and a readiness check that pings it
func poolOf(db *gorm.DB) (*sql.DB, func(context.Context) error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB, sqlDB.PingContext, nil
}

func newPublisher(cfg *config.Config) facade.EventPublisher {
	if !cfg.KafkaEnabled {
		logger.Logger.Info().Msg("Kafka disabled, events are not published")
		return facade.NoopPublisher{}
	}

	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		// the service keeps working without events
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka publisher")
		return facade.NoopPublisher{}
	}
	return publisher
}

func newRouter(cfg *config.Config, svc *facade.Service, tokens *auth.Manager, limiter httpmw.Limiter, ready func(context.Context) error) http.Handler {
	router := mux.NewRouter()
	mwConfig := httpmw.DefaultConfig(cfg.RequestTimeout)
	httpmw.Register(router, mwConfig)

	metrics := httpmw.NewMetrics(prometheus.DefaultRegisterer, "checklist")
	authn := httpmw.AuthMiddleware(tokens)

	checklisthttp.NewChecklistHandler(svc).RegisterRoutes(router, authn, metrics)
	favoritehttp.NewFavoriteHandler(svc).RegisterRoutes(router, authn, limiter, metrics)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := ready(r.Context()); err != nil {
			httpmw.RespondFailure(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unavailable")
			return
		}
		httpmw.RespondOK(w, http.StatusOK, "Checklist service is healthy", nil)
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTPPort
	checklisthttp.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return httpmw.CORS(mwConfig, router)
}
