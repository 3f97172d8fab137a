package repositories

import (
	"context"
	"errors"
	"time"

	"chargeflow/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrPhoneNumberNotFound  = errors.New("phone number not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrDuplicatePhoneNumber = errors.New("phone number already exists")
)

// TransactionFilter narrows ListTransactions. Nil fields are ignored.
type TransactionFilter struct {
	// WalletID matches transactions with the wallet on either side.
	WalletID *uint
	Status   *models.TransactionStatus
	FromType *models.SourceType
	ToType   *models.DestinationType
}

// WalletFlow is the approved value that moved into and out of one wallet.
type WalletFlow struct {
	Credits decimal.Decimal
	Debits  decimal.Decimal
}

// LedgerRepository defines the storage operations of the ledger. Balance
// mutations are single relative updates and status changes are conditional
// updates, so callers never load-modify-store a balance or a status.
type LedgerRepository interface {
	// Wallets
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	GetWalletByID(ctx context.Context, id uint) (*models.Wallet, error)
	GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	ListWallets(ctx context.Context) ([]models.Wallet, error)
	CreditWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error
	// DebitWallet returns ErrInsufficientBalance when the store rejects the
	// resulting negative balance.
	DebitWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error

	// Phone numbers
	CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error
	GetPhoneNumber(ctx context.Context, number string) (*models.PhoneNumber, error)
	ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error)
	CreditPhoneNumber(ctx context.Context, phoneID uint, amount decimal.Decimal) error

	// Transactions
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error)
	// TransitionStatus moves a transaction from one status to another only
	// if it is still in the from status. It reports whether this call won.
	TransitionStatus(ctx context.Context, id uint, from, to models.TransactionStatus, actorID uint, at time.Time) (bool, error)
	ListTransactions(ctx context.Context, filter TransactionFilter, limit, offset int) ([]models.Transaction, int64, error)

	// Reconciliation aggregates
	SumApprovedWalletCredits(ctx context.Context, walletID uint) (decimal.Decimal, error)
	SumApprovedWalletDebits(ctx context.Context, walletID uint) (decimal.Decimal, error)
	ApprovedWalletFlows(ctx context.Context) (map[uint]WalletFlow, error)
	SumPhoneBalances(ctx context.Context) (decimal.Decimal, error)
	SumApprovedSettlements(ctx context.Context) (decimal.Decimal, error)

	// ExecuteInTransaction runs fn in one store transaction. Returning an
	// error from fn rolls everything back.
	ExecuteInTransaction(ctx context.Context, fn func(LedgerRepository) error) error
}
