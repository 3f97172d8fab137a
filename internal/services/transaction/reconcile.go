package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// WalletReconciliation compares a wallet's stored balance with the balance
// implied by its approved transactions.
type WalletReconciliation struct {
	WalletID uint            `json:"wallet_id"`
	UserID   uint            `json:"user_id"`
	Balance  decimal.Decimal `json:"balance"`
	Credits  decimal.Decimal `json:"credits"`
	Debits   decimal.Decimal `json:"debits"`
}

// Expected is approved credits minus approved debits.
func (r WalletReconciliation) Expected() decimal.Decimal {
	return r.Credits.Sub(r.Debits)
}

func (r WalletReconciliation) Consistent() bool {
	return r.Balance.Equal(r.Expected())
}

// LedgerReconciliation covers every wallet and the phone balance total.
type LedgerReconciliation struct {
	Wallets             []WalletReconciliation `json:"wallets"`
	PhoneBalanceTotal   decimal.Decimal        `json:"phone_balance_total"`
	ApprovedSettlements decimal.Decimal        `json:"approved_settlements"`
}

// Inconsistent returns the wallets whose balance disagrees with the log.
func (r LedgerReconciliation) Inconsistent() []WalletReconciliation {
	var out []WalletReconciliation
	for _, w := range r.Wallets {
		if !w.Consistent() {
			out = append(out, w)
		}
	}
	return out
}

func (r LedgerReconciliation) Consistent() bool {
	return len(r.Inconsistent()) == 0 && r.PhoneBalanceTotal.Equal(r.ApprovedSettlements)
}

func (s *service) ReconcileWallet(ctx context.Context, walletID uint) (*WalletReconciliation, error) {
	wallet, err := s.repo.GetWalletByID(ctx, walletID)
	if err != nil {
		return nil, translate(err)
	}
	credits, err := s.repo.SumApprovedWalletCredits(ctx, walletID)
	if err != nil {
		return nil, err
	}
	debits, err := s.repo.SumApprovedWalletDebits(ctx, walletID)
	if err != nil {
		return nil, err
	}

	return &WalletReconciliation{
		WalletID: wallet.ID,
		UserID:   wallet.UserID,
		Balance:  wallet.Balance,
		Credits:  credits,
		Debits:   debits,
	}, nil
}

func (s *service) ReconcileLedger(ctx context.Context) (*LedgerReconciliation, error) {
	wallets, err := s.repo.ListWallets(ctx)
	if err != nil {
		return nil, err
	}
	flows, err := s.repo.ApprovedWalletFlows(ctx)
	if err != nil {
		return nil, err
	}
	phones, err := s.repo.SumPhoneBalances(ctx)
	if err != nil {
		return nil, err
	}
	settled, err := s.repo.SumApprovedSettlements(ctx)
	if err != nil {
		return nil, err
	}

	result := &LedgerReconciliation{
		Wallets:             make([]WalletReconciliation, 0, len(wallets)),
		PhoneBalanceTotal:   phones,
		ApprovedSettlements: settled,
	}
	for _, w := range wallets {
		flow := flows[w.ID]
		result.Wallets = append(result.Wallets, WalletReconciliation{
			WalletID: w.ID,
			UserID:   w.UserID,
			Balance:  w.Balance,
			Credits:  flow.Credits,
			Debits:   flow.Debits,
		})
	}

	if bad := result.Inconsistent(); len(bad) > 0 {
		logf("reconciliation found %d inconsistent wallets", len(bad))
	}
	if !phones.Equal(settled) {
		logf("reconciliation: phone balances %s differ from approved settlements %s", phones, settled)
	}
	return result, nil
}

func (r WalletReconciliation) String() string {
	return fmt.Sprintf("wallet %d: balance=%s credits=%s debits=%s", r.WalletID, r.Balance, r.Credits, r.Debits)
}
