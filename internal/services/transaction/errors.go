package transaction

import (
	"errors"
	"log"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/repositories"
)

// translate maps repository sentinels onto the error catalog. Anything else
// is returned unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrInsufficientBalance):
		return domainErrors.InsufficientBalance.New()
	case errors.Is(err, repositories.ErrWalletNotFound):
		return domainErrors.WalletNotFound.New()
	case errors.Is(err, repositories.ErrPhoneNumberNotFound):
		return domainErrors.PhoneNumberNotFound.New()
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return domainErrors.TransactionNotFound.New()
	}
	return err
}

var logf = log.Printf
