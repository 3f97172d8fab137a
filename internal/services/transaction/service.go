package transaction

import (
	"context"
	"fmt"
	"strconv"
	"time"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   WalletCache
	metrics MetricsCollector
	config  Config
}

// NewService creates a new transaction service. cache and metrics may be
// nil.
func NewService(repo repositories.LedgerRepository, cache WalletCache, metrics MetricsCollector, cfg Config) Service {
	if repo == nil {
		panic("repository is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		config:  cfg,
	}
}

func (s *service) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return tx, nil
}

// ListUserTransactions lists credit requests and settlements touching the
// user's wallet, newest first.
func (s *service) ListUserTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, int64, error) {
	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, 0, translate(err)
	}
	txs, total, err := s.repo.ListTransactions(ctx, repositories.TransactionFilter{WalletID: &wallet.ID}, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// validateAmount accepts positive amounts that fit numeric(12,2).
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainErrors.InvalidAmount.New()
	}
	if !amount.Equal(amount.Round(amountScale)) {
		return domainErrors.InvalidAmount.New()
	}
	if amount.Truncate(0).NumDigits() > maxAmountDigits-amountScale {
		return domainErrors.InvalidAmount.New()
	}
	return nil
}

func (s *service) observe(op string, start time.Time, amount decimal.Decimal, err error) {
	s.metrics.RecordOperationDuration(op, time.Since(start))
	if err != nil {
		result := ResultError
		if de, ok := domainErrors.As(err); ok {
			result = strconv.Itoa(de.Code)
		}
		s.metrics.RecordOperationResult(op, result)
		return
	}
	s.metrics.RecordOperationResult(op, ResultSuccess)
	s.metrics.RecordTransactionVolume(op, amount.InexactFloat64())
}

func (s *service) invalidateWallet(ctx context.Context, userID uint) {
	if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
		logf("failed to invalidate wallet cache for user %d: %v", userID, err)
	}
}

func wrap(op string, err error) error {
	if _, ok := domainErrors.As(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
