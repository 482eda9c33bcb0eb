package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/packing-checklist/kafka"
	"github.com/tair/packing-checklist/pkg/config"
	"github.com/tair/packing-checklist/pkg/logger"
)

func main() {
	cfg := config.Load()
	cfg.ServiceName = "checklist-audit"

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, kafka.AllTopics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	trail := newAuditTrail(prometheus.DefaultRegisterer)
	for _, eventType := range []string{
		kafka.EventTypeChecklistCreated,
		kafka.EventTypeChecklistDeleted,
		kafka.EventTypeChecklistEdited,
		kafka.EventTypeChecklistShared,
		kafka.EventTypeChecklistUnshared,
		kafka.EventTypeFavoriteToggled,
	} {
		consumer.RegisterHandler(eventType, trail.Handle)
	}

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error().Err(err).Msg("Metrics server stopped")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down audit consumer...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}
