package transaction

import (
	"context"
	"testing"

	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txFilterToPhone() repositories.TransactionFilter {
	to := models.DestinationPhone
	return repositories.TransactionFilter{ToType: &to}
}

func TestReconcileWallet(t *testing.T) {
	ledger := newMemLedger()
	wallet := ledger.seedWallet(1, decimal.Zero)
	phone := ledger.seedPhone(2, "+15553334444")
	s := newTestService(ledger, nil)
	ctx := context.Background()

	fund(t, s, 1, decimal.RequireFromString("150.50"))
	fund(t, s, 1, decimal.NewFromInt(50))

	rejected, err := s.CreateCreditRequest(ctx, 1, decimal.NewFromInt(999))
	require.NoError(t, err)
	_, err = s.UpdateStatusCreditRequest(ctx, rejected.ID, testAdmin, models.StatusRejected)
	require.NoError(t, err)
	_, err = s.CreateCreditRequest(ctx, 1, decimal.NewFromInt(42))
	require.NoError(t, err)

	_, err = s.SellCharge(ctx, 1, phone.PhoneNumber, decimal.RequireFromString("20.25"))
	require.NoError(t, err)

	rec, err := s.ReconcileWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, rec.Credits.Equal(decimal.RequireFromString("200.50")))
	assert.True(t, rec.Debits.Equal(decimal.RequireFromString("20.25")))
	assert.True(t, rec.Balance.Equal(decimal.RequireFromString("180.25")))
	assert.True(t, rec.Consistent())
}

func TestReconcileDetectsDrift(t *testing.T) {
	ledger := newMemLedger()
	wallet := ledger.seedWallet(1, decimal.NewFromInt(10))
	s := newTestService(ledger, nil)

	rec, err := s.ReconcileWallet(context.Background(), wallet.ID)
	require.NoError(t, err)
	assert.False(t, rec.Consistent())
	assert.True(t, rec.Expected().IsZero())

	ledgerRec, err := s.ReconcileLedger(context.Background())
	require.NoError(t, err)
	assert.False(t, ledgerRec.Consistent())
	assert.Len(t, ledgerRec.Inconsistent(), 1)
}

func TestReconcileWalletNotFound(t *testing.T) {
	s := newTestService(newMemLedger(), nil)
	_, err := s.ReconcileWallet(context.Background(), 404)
	assert.Error(t, err)
}
