package transaction

import (
	"context"

	"chargeflow/internal/models"

	"github.com/shopspring/decimal"
)

// CreditService manages the credit request lifecycle.
type CreditService interface {
	CreateCreditRequest(ctx context.Context, userID uint, amount decimal.Decimal) (*models.Transaction, error)
	UpdateStatusCreditRequest(ctx context.Context, transactionID uint, admin *models.User, status models.TransactionStatus) (*models.Transaction, error)
	ListCreditRequests(ctx context.Context, status *models.TransactionStatus, limit, offset int) ([]models.Transaction, int64, error)
}

// ChargeService settles phone top ups against seller wallets.
type ChargeService interface {
	SellCharge(ctx context.Context, userID uint, phoneNumber string, amount decimal.Decimal) (*models.Transaction, error)
}

type Reconciler interface {
	ReconcileWallet(ctx context.Context, walletID uint) (*WalletReconciliation, error)
	ReconcileLedger(ctx context.Context) (*LedgerReconciliation, error)
}

type HistoryService interface {
	GetTransaction(ctx context.Context, id uint) (*models.Transaction, error)
	ListUserTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, int64, error)
}

type Service interface {
	CreditService
	ChargeService
	Reconciler
	HistoryService
}

// WalletCache drops cached wallet reads after a balance change.
type WalletCache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}
