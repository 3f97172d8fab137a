package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chargeflow/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db        *gorm.DB
	txOptions *sql.TxOptions
}

// NewLedgerRepository returns a gorm backed LedgerRepository. Every unit of
// work started by ExecuteInTransaction uses the given isolation level;
// sql.LevelDefault keeps the store default.
func NewLedgerRepository(db *gorm.DB, isolation sql.IsolationLevel) LedgerRepository {
	r := &ledgerRepository{db: db}
	if isolation != sql.LevelDefault {
		r.txOptions = &sql.TxOptions{Isolation: isolation}
	}
	return r
}

func (r *ledgerRepository) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetWalletByID(ctx context.Context, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := r.db.WithContext(ctx).Order("id").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *ledgerRepository) CreditWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *ledgerRepository) DebitWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			return ErrInsufficientBalance
		}
		return fmt.Errorf("failed to debit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *ledgerRepository) CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error {
	if err := r.db.WithContext(ctx).Create(phone).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhoneNumber
		}
		return fmt.Errorf("failed to create phone number: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetPhoneNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	var phone models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("phone_number = ?", number).First(&phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhoneNumberNotFound
		}
		return nil, fmt.Errorf("failed to get phone number: %w", err)
	}
	return &phone, nil
}

func (r *ledgerRepository) ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error) {
	var phones []models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&phones).Error; err != nil {
		return nil, fmt.Errorf("failed to list phone numbers: %w", err)
	}
	return phones, nil
}

func (r *ledgerRepository) CreditPhoneNumber(ctx context.Context, phoneID uint, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.PhoneNumber{}).
		Where("id = ?", phoneID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit phone number: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPhoneNumberNotFound
	}
	return nil
}

func (r *ledgerRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Omit("FromWallet", "FromUser", "ToWallet", "ToPhone", "UpdatedBy").Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).Preload("ToPhone").First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *ledgerRepository) TransitionStatus(ctx context.Context, id uint, from, to models.TransactionStatus, actorID uint, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":        to,
			"updated_at":    at,
			"updated_by_id": actorID,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, filter TransactionFilter, limit, offset int) ([]models.Transaction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txs []models.Transaction
	err := r.db.WithContext(ctx).Scopes(filter.scope).
		Preload("ToPhone").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

func (f TransactionFilter) scope(db *gorm.DB) *gorm.DB {
	if f.WalletID != nil {
		db = db.Where("from_wallet_id = ? OR to_wallet_id = ?", *f.WalletID, *f.WalletID)
	}
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	if f.FromType != nil {
		db = db.Where("from_type = ?", *f.FromType)
	}
	if f.ToType != nil {
		db = db.Where("to_type = ?", *f.ToType)
	}
	return db
}

func (r *ledgerRepository) SumApprovedWalletCredits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	return r.sum(ctx, &models.Transaction{}, "status = ? AND to_wallet_id = ?", models.StatusApproved, walletID)
}

func (r *ledgerRepository) SumApprovedWalletDebits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	return r.sum(ctx, &models.Transaction{}, "status = ? AND from_wallet_id = ?", models.StatusApproved, walletID)
}

func (r *ledgerRepository) SumApprovedSettlements(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, &models.Transaction{}, "status = ? AND to_type = ?", models.StatusApproved, models.DestinationPhone)
}

func (r *ledgerRepository) SumPhoneBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&models.PhoneNumber{}).Select("COALESCE(SUM(balance), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum phone balances: %w", err)
	}
	return total, nil
}

func (r *ledgerRepository) sum(ctx context.Context, model interface{}, cond string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(model).
		Select("COALESCE(SUM(amount), 0)").
		Where(cond, args...).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}

type walletTotal struct {
	WalletID uint
	Total    decimal.Decimal
}

func (r *ledgerRepository) ApprovedWalletFlows(ctx context.Context) (map[uint]WalletFlow, error) {
	var credits, debits []walletTotal

	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("to_wallet_id AS wallet_id, COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND to_wallet_id IS NOT NULL", models.StatusApproved).
		Group("to_wallet_id").
		Scan(&credits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum wallet credits: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("from_wallet_id AS wallet_id, COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND from_wallet_id IS NOT NULL", models.StatusApproved).
		Group("from_wallet_id").
		Scan(&debits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum wallet debits: %w", err)
	}

	flows := make(map[uint]WalletFlow, len(credits))
	for _, c := range credits {
		f := flows[c.WalletID]
		f.Credits = c.Total
		flows[c.WalletID] = f
	}
	for _, d := range debits {
		f := flows[d.WalletID]
		f.Debits = d.Total
		flows[d.WalletID] = f
	}
	return flows, nil
}

func (r *ledgerRepository) ExecuteInTransaction(ctx context.Context, fn func(LedgerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &ledgerRepository{db: tx, txOptions: r.txOptions}
		return fn(txRepo)
	}, r.txOptions)
}
