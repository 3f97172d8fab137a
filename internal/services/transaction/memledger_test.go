package transaction

import (
	"context"
	"sort"
	"sync"
	"time"

	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memLedger is an in-memory LedgerRepository with the store semantics the
// service depends on: relative updates, a conditional status update, a
// non-negative balance check and all-or-nothing units of work. Units are
// serialized by a single mutex.
type memLedger struct {
	mu   *sync.Mutex
	st   *ledgerState
	inTx bool

	// failCreate, when set, makes CreateTransaction fail.
	failCreate error
}

type ledgerState struct {
	nextID  uint
	wallets map[uint]models.Wallet
	phones  map[uint]models.PhoneNumber
	txs     map[uint]models.Transaction
}

func newMemLedger() *memLedger {
	return &memLedger{
		mu: &sync.Mutex{},
		st: &ledgerState{
			wallets: map[uint]models.Wallet{},
			phones:  map[uint]models.PhoneNumber{},
			txs:     map[uint]models.Transaction{},
		},
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := &ledgerState{
		nextID:  s.nextID,
		wallets: make(map[uint]models.Wallet, len(s.wallets)),
		phones:  make(map[uint]models.PhoneNumber, len(s.phones)),
		txs:     make(map[uint]models.Transaction, len(s.txs)),
	}
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.phones {
		c.phones[k] = v
	}
	for k, v := range s.txs {
		c.txs[k] = v
	}
	return c
}

func (m *memLedger) lock() func() {
	if m.inTx {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *memLedger) id() uint {
	m.st.nextID++
	return m.st.nextID
}

// seedWallet creates a wallet for userID holding balance.
func (m *memLedger) seedWallet(userID uint, balance decimal.Decimal) models.Wallet {
	defer m.lock()()
	w := models.Wallet{ID: m.id(), UserID: userID, Balance: balance}
	m.st.wallets[w.ID] = w
	return w
}

func (m *memLedger) seedPhone(userID uint, number string) models.PhoneNumber {
	defer m.lock()()
	p := models.PhoneNumber{ID: m.id(), UserID: userID, PhoneNumber: number, Balance: decimal.Zero}
	m.st.phones[p.ID] = p
	return p
}

func (m *memLedger) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	defer m.lock()()
	wallet.ID = m.id()
	wallet.Balance = decimal.Zero
	m.st.wallets[wallet.ID] = *wallet
	return nil
}

func (m *memLedger) GetWalletByID(ctx context.Context, id uint) (*models.Wallet, error) {
	defer m.lock()()
	w, ok := m.st.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	return &w, nil
}

func (m *memLedger) GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	defer m.lock()()
	for _, w := range m.st.wallets {
		if w.UserID == userID {
			return &w, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (m *memLedger) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	defer m.lock()()
	out := make([]models.Wallet, 0, len(m.st.wallets))
	for _, w := range m.st.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLedger) CreditWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	defer m.lock()()
	w, ok := m.st.wallets[walletID]
	if !ok {
		return repositories.ErrWalletNotFound
	}
	w.Balance = w.Balance.Add(amount)
	m.st.wallets[walletID] = w
	return nil
}

func (m *memLedger) DebitWallet(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	defer m.lock()()
	w, ok := m.st.wallets[walletID]
	if !ok {
		return repositories.ErrWalletNotFound
	}
	next := w.Balance.Sub(amount)
	if next.IsNegative() {
		return repositories.ErrInsufficientBalance
	}
	w.Balance = next
	m.st.wallets[walletID] = w
	return nil
}

func (m *memLedger) CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error {
	defer m.lock()()
	for _, p := range m.st.phones {
		if p.PhoneNumber == phone.PhoneNumber {
			return repositories.ErrDuplicatePhoneNumber
		}
	}
	phone.ID = m.id()
	m.st.phones[phone.ID] = *phone
	return nil
}

func (m *memLedger) GetPhoneNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	defer m.lock()()
	for _, p := range m.st.phones {
		if p.PhoneNumber == number {
			return &p, nil
		}
	}
	return nil, repositories.ErrPhoneNumberNotFound
}

func (m *memLedger) ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error) {
	defer m.lock()()
	var out []models.PhoneNumber
	for _, p := range m.st.phones {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLedger) CreditPhoneNumber(ctx context.Context, phoneID uint, amount decimal.Decimal) error {
	defer m.lock()()
	p, ok := m.st.phones[phoneID]
	if !ok {
		return repositories.ErrPhoneNumberNotFound
	}
	p.Balance = p.Balance.Add(amount)
	m.st.phones[phoneID] = p
	return nil
}

func (m *memLedger) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	defer m.lock()()
	if m.failCreate != nil {
		return m.failCreate
	}
	tx.ID = m.id()
	if tx.Reference == uuid.Nil {
		tx.Reference = uuid.New()
	}
	tx.CreatedAt = time.Now()
	m.st.txs[tx.ID] = *tx
	return nil
}

func (m *memLedger) GetTransactionByID(ctx context.Context, id uint) (*models.Transaction, error) {
	defer m.lock()()
	tx, ok := m.st.txs[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	return &tx, nil
}

func (m *memLedger) TransitionStatus(ctx context.Context, id uint, from, to models.TransactionStatus, actorID uint, at time.Time) (bool, error) {
	defer m.lock()()
	tx, ok := m.st.txs[id]
	if !ok || tx.Status != from {
		return false, nil
	}
	tx.Status = to
	tx.UpdatedAt = &at
	tx.UpdatedByID = &actorID
	m.st.txs[id] = tx
	return true, nil
}

func (m *memLedger) ListTransactions(ctx context.Context, filter repositories.TransactionFilter, limit, offset int) ([]models.Transaction, int64, error) {
	defer m.lock()()
	var all []models.Transaction
	for _, tx := range m.st.txs {
		if filter.WalletID != nil && !eqPtr(tx.FromWalletID, *filter.WalletID) && !eqPtr(tx.ToWalletID, *filter.WalletID) {
			continue
		}
		if filter.Status != nil && tx.Status != *filter.Status {
			continue
		}
		if filter.FromType != nil && tx.FromType != *filter.FromType {
			continue
		}
		if filter.ToType != nil && tx.ToType != *filter.ToType {
			continue
		}
		all = append(all, tx)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *memLedger) SumApprovedWalletCredits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	defer m.lock()()
	return m.sumTx(func(tx models.Transaction) bool { return eqPtr(tx.ToWalletID, walletID) }), nil
}

func (m *memLedger) SumApprovedWalletDebits(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	defer m.lock()()
	return m.sumTx(func(tx models.Transaction) bool { return eqPtr(tx.FromWalletID, walletID) }), nil
}

func (m *memLedger) SumApprovedSettlements(ctx context.Context) (decimal.Decimal, error) {
	defer m.lock()()
	return m.sumTx(func(tx models.Transaction) bool { return tx.ToType == models.DestinationPhone }), nil
}

func (m *memLedger) ApprovedWalletFlows(ctx context.Context) (map[uint]repositories.WalletFlow, error) {
	defer m.lock()()
	flows := map[uint]repositories.WalletFlow{}
	for _, tx := range m.st.txs {
		if tx.Status != models.StatusApproved {
			continue
		}
		if tx.ToWalletID != nil {
			f := flows[*tx.ToWalletID]
			f.Credits = f.Credits.Add(tx.Amount)
			flows[*tx.ToWalletID] = f
		}
		if tx.FromWalletID != nil {
			f := flows[*tx.FromWalletID]
			f.Debits = f.Debits.Add(tx.Amount)
			flows[*tx.FromWalletID] = f
		}
	}
	return flows, nil
}

func (m *memLedger) SumPhoneBalances(ctx context.Context) (decimal.Decimal, error) {
	defer m.lock()()
	total := decimal.Zero
	for _, p := range m.st.phones {
		total = total.Add(p.Balance)
	}
	return total, nil
}

func (m *memLedger) sumTx(match func(models.Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range m.st.txs {
		if tx.Status == models.StatusApproved && match(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func (m *memLedger) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	if m.inTx {
		return fn(m)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.st.clone()
	err := fn(&memLedger{mu: m.mu, st: m.st, inTx: true, failCreate: m.failCreate})
	if err != nil {
		*m.st = *snapshot
	}
	return err
}

func eqPtr(p *uint, v uint) bool {
	return p != nil && *p == v
}
