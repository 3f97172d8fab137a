package transaction

import (
	"context"
	"time"
)

// Config holds tunables for the service.
type Config struct {
	// Now stamps status transitions and settlements. Defaults to time.Now.
	Now func() time.Time
}

// MetricsCollector defines the interface for collecting ledger metrics
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)
	RecordTransactionVolume(operation string, amount float64)
}

type noopCache struct{}

func (noopCache) InvalidateWallet(context.Context, uint) error { return nil }
