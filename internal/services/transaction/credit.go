package transaction

import (
	"context"
	"time"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// CreateCreditRequest records a pending top up of the user's wallet. No
// balance changes until an admin approves it.
func (s *service) CreateCreditRequest(ctx context.Context, userID uint, amount decimal.Decimal) (tx *models.Transaction, err error) {
	start := time.Now()
	defer func() { s.observe(OpCreateCreditRequest, start, amount, err) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}

	tx = models.NewCreditRequest(userID, wallet.ID, amount)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, wrap("create credit request", err)
	}
	return tx, nil
}

// UpdateStatusCreditRequest approves or rejects a pending credit request.
// Of any number of concurrent callers for the same request exactly one
// succeeds; the others get AlreadyProcessed. Approval credits the
// destination wallet in the same store transaction as the status change.
func (s *service) UpdateStatusCreditRequest(ctx context.Context, transactionID uint, admin *models.User, status models.TransactionStatus) (tx *models.Transaction, err error) {
	start := time.Now()
	defer func() {
		amount := decimal.Zero
		if tx != nil && status == models.StatusApproved {
			amount = tx.Amount
		}
		s.observe(OpUpdateCreditRequest, start, amount, err)
	}()

	if !admin.HasAdminRights() {
		return nil, domainErrors.PermissionDenied.New()
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, domainErrors.InvalidStatus.New(int(status))
	}

	var walletOwner uint
	err = s.repo.ExecuteInTransaction(ctx, func(repo repositories.LedgerRepository) error {
		won, err := repo.TransitionStatus(ctx, transactionID, models.StatusPending, status, admin.ID, s.config.Now())
		if err != nil {
			return err
		}
		if !won {
			if _, err := repo.GetTransactionByID(ctx, transactionID); err != nil {
				return err
			}
			return domainErrors.AlreadyProcessed.New()
		}

		tx, err = repo.GetTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if status != models.StatusApproved {
			return nil
		}
		if tx.ToWalletID == nil {
			return domainErrors.WalletNotFound.New()
		}

		if err := repo.CreditWallet(ctx, *tx.ToWalletID, tx.Amount); err != nil {
			return err
		}
		wallet, err := repo.GetWalletByID(ctx, *tx.ToWalletID)
		if err != nil {
			return err
		}
		walletOwner = wallet.UserID
		return nil
	})
	if err != nil {
		tx = nil
		return nil, wrap("update credit request", translate(err))
	}

	if walletOwner != 0 {
		s.invalidateWallet(ctx, walletOwner)
	}
	logf("credit request %d set to %s by admin %d", transactionID, status, admin.ID)
	return tx, nil
}

// ListCreditRequests lists user to wallet transactions, newest first. A nil
// status lists every request.
func (s *service) ListCreditRequests(ctx context.Context, status *models.TransactionStatus, limit, offset int) ([]models.Transaction, int64, error) {
	from := models.SourceUser
	to := models.DestinationWallet
	return s.repo.ListTransactions(ctx, repositories.TransactionFilter{
		Status:   status,
		FromType: &from,
		ToType:   &to,
	}, limit, offset)
}
