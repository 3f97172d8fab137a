package transaction

import (
	"context"
	"time"

	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// SellCharge moves amount from the seller's wallet to a phone number. The
// debit relies on the store's non-negative balance constraint instead of a
// read-then-check, so concurrent sales can never overdraw the wallet.
func (s *service) SellCharge(ctx context.Context, userID uint, phoneNumber string, amount decimal.Decimal) (tx *models.Transaction, err error) {
	start := time.Now()
	defer func() { s.observe(OpSellCharge, start, amount, err) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	phone, err := s.repo.GetPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, translate(err)
	}

	err = s.repo.ExecuteInTransaction(ctx, func(repo repositories.LedgerRepository) error {
		if err := repo.DebitWallet(ctx, wallet.ID, amount); err != nil {
			return err
		}
		if err := repo.CreditPhoneNumber(ctx, phone.ID, amount); err != nil {
			return err
		}
		tx = models.NewSettlement(wallet.ID, phone.ID, userID, amount, s.config.Now())
		return repo.CreateTransaction(ctx, tx)
	})
	if err != nil {
		tx = nil
		return nil, wrap("sell charge", translate(err))
	}

	s.invalidateWallet(ctx, userID)
	tx.ToPhone = phone
	return tx, nil
}
