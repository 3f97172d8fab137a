package transaction

import (
	"context"
	"time"

	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func (m *MockLedger) GetWalletByID(ctx context.Context, id uint) (*models.Wallet, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*models.Wallet)
	return w, args.Error(1)
}

func (m *MockLedger) GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	w, _ := args.Get(0).(*models.Wallet)
	return w, args.Error(1)
}

func (m *MockLedger) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	args := m.Called(ctx)
	w, _ := args.Get(0).([]models.Wallet)
	return w, args.Error(1)
}

func (m *MockLedger) CreditWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	return m.Called(ctx, walletID, amount).Error(0)
}

func (m *MockLedger) DebitWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	return m.Called(ctx, walletID, amount).Error(0)
}

func (m *MockLedger) CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *MockLedger) GetPhoneNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	args := m.Called(ctx, number)
	p, _ := args.Get(0).(*models.PhoneNumber)
	return p, args.Error(1)
}

func (m *MockLedger) ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]models.PhoneNumber)
	return p, args.Error(1)
}

func (m *MockLedger) CreditPhoneNumber(ctx context.Context, phoneID uint, amount decimal.Decimal) error {
	return m.Called(ctx, phoneID, amount).Error(0)
}

func (m *MockLedger) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockLedger) GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*models.Transaction)
	return tx, args.Error(1)
}

func (m *MockLedger) TransitionStatus(ctx context.Context, id uint, from, to models.TransactionStatus, actorID uint, at time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, actorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) ListTransactions(ctx context.Context, filter repositories.TransactionFilter, limit, offset int) ([]models.Transaction, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	txs, _ := args.Get(0).([]models.Transaction)
	return txs, args.Get(1).(int64), args.Error(2)
}

func (m *MockLedger) SumApprovedWalletCredits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedger) SumApprovedWalletDebits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedger) ApprovedWalletFlows(ctx context.Context) (map[uint]repositories.WalletFlow, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(map[uint]repositories.WalletFlow)
	return f, args.Error(1)
}

func (m *MockLedger) SumPhoneBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedger) SumApprovedSettlements(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// ExecuteInTransaction runs fn against the mock itself.
func (m *MockLedger) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	m.Called(ctx)
	return fn(m)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateWallet(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordOperationDuration(operation string, d time.Duration) {
	m.Called(operation, d)
}

func (m *MockMetrics) RecordOperationResult(operation, result string) {
	m.Called(operation, result)
}

func (m *MockMetrics) RecordTransactionVolume(operation string, amount float64) {
	m.Called(operation, amount)
}
