package database

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/packing-checklist/pkg/logger"
)

// Postgres SQLSTATE codes used for classification
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

var txRetries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "checklist_store_tx_retries_total",
		Help: "Number of transactions retried after a serialization failure or deadlock",
	},
	[]string{"code"},
)

func init() {
	prometheus.MustRegister(txRetries)
}

// TxOptions controls retry of aborted transactions
type TxOptions struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultTxOptions is used when no options are configured
var DefaultTxOptions = TxOptions{MaxAttempts: 3, Backoff: 20 * time.Millisecond}

// RunInTx runs fn in a transaction bound to ctx. Serialization failures and deadlocks
// roll back and rerun fn up to MaxAttempts times. A cancelled ctx rolls back.
func RunInTx(ctx context.Context, db *gorm.DB, opts TxOptions, fn func(tx *gorm.DB) error) error {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}

		code, retryable := retryCode(err)
		if !retryable || attempt >= opts.MaxAttempts || ctx.Err() != nil {
			return err
		}

		txRetries.WithLabelValues(code).Inc()
		logger.Warn(ctx).
			Err(err).
			Int("attempt", attempt).
			Str("sqlstate", code).
			Msg("Retrying aborted transaction")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Backoff * time.Duration(attempt)):
		}
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeUniqueViolation
}

// retryCode returns the SQLSTATE of err and whether it is a serialization failure or deadlock
func retryCode(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", false
	}
	code := string(pqErr.Code)
	return code, code == codeSerializationFailure || code == codeDeadlockDetected
}
