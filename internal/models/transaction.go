package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus int8

const (
	StatusPending  TransactionStatus = 1
	StatusApproved TransactionStatus = 2
	StatusRejected TransactionStatus = 3
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// IsFinal reports whether no further transition is allowed.
func (s TransactionStatus) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseTransactionStatus(name string) (TransactionStatus, bool) {
	switch name {
	case "pending", "PENDING", "1":
		return StatusPending, true
	case "approved", "APPROVED", "2":
		return StatusApproved, true
	case "rejected", "REJECTED", "3":
		return StatusRejected, true
	}
	return 0, false
}

type SourceType int8

const (
	SourceWallet SourceType = 1
	SourceUser   SourceType = 2
)

type DestinationType int8

const (
	DestinationWallet DestinationType = 1
	DestinationPhone  DestinationType = 2
)

// Transaction is one entry of the ledger log. Credit requests move value
// from a user (outside the system) into a wallet; settlements move value
// from a wallet to a phone number.
type Transaction struct {
	ID        uint              `gorm:"primarykey"`
	Reference uuid.UUID         `gorm:"type:char(36);uniqueIndex;not null"`
	Amount    decimal.Decimal   `gorm:"type:numeric(12,2);not null;check:transaction_amount_positive,amount > 0"`
	Status    TransactionStatus `gorm:"type:smallint;not null;default:1;index:tx_status_created_idx,priority:1;index:tx_status_updated_idx,priority:1;index:tx_from_wallet_status_idx,priority:2;index:tx_to_wallet_status_idx,priority:2;index:tx_to_phone_status_idx,priority:2"`

	FromType     SourceType `gorm:"type:smallint;not null;check:valid_source,(from_type = 1 AND from_wallet_id IS NOT NULL AND from_user_id IS NULL) OR (from_type = 2 AND from_wallet_id IS NULL AND from_user_id IS NOT NULL)"`
	FromWalletID *uint      `gorm:"index:tx_from_wallet_status_idx,priority:1"`
	FromWallet   *Wallet    `gorm:"foreignKey:FromWalletID;constraint:OnDelete:RESTRICT"`
	FromUserID   *uint
	FromUser     *User `gorm:"foreignKey:FromUserID;constraint:OnDelete:RESTRICT"`

	ToType     DestinationType `gorm:"type:smallint;not null;check:valid_destination,(to_type = 1 AND to_wallet_id IS NOT NULL AND to_phone_id IS NULL) OR (to_type = 2 AND to_wallet_id IS NULL AND to_phone_id IS NOT NULL)"`
	ToWalletID *uint           `gorm:"index:tx_to_wallet_status_idx,priority:1"`
	ToWallet   *Wallet         `gorm:"foreignKey:ToWalletID;constraint:OnDelete:RESTRICT"`
	ToPhoneID  *uint           `gorm:"index:tx_to_phone_status_idx,priority:1"`
	ToPhone    *PhoneNumber    `gorm:"foreignKey:ToPhoneID;constraint:OnDelete:RESTRICT"`

	CreatedAt   time.Time  `gorm:"index:tx_status_created_idx,priority:2"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false;index:tx_status_updated_idx,priority:2"`
	UpdatedByID *uint
	UpdatedBy   *User `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:RESTRICT"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == uuid.Nil {
		t.Reference = uuid.New()
	}
	return nil
}

// IsCreditRequest reports whether t moves value from a user into a wallet.
func (t *Transaction) IsCreditRequest() bool {
	return t.FromType == SourceUser && t.ToType == DestinationWallet
}

// NewCreditRequest builds a pending USER to WALLET transaction.
func NewCreditRequest(userID, walletID uint, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Amount:     amount,
		Status:     StatusPending,
		FromType:   SourceUser,
		FromUserID: &userID,
		ToType:     DestinationWallet,
		ToWalletID: &walletID,
	}
}

// NewSettlement builds an approved WALLET to PHONE transaction executed by
// sellerID at the given time.
func NewSettlement(walletID, phoneID, sellerID uint, amount decimal.Decimal, at time.Time) *Transaction {
	return &Transaction{
		Amount:       amount,
		Status:       StatusApproved,
		FromType:     SourceWallet,
		FromWalletID: &walletID,
		ToType:       DestinationPhone,
		ToPhoneID:    &phoneID,
		UpdatedAt:    &at,
		UpdatedByID:  &sellerID,
	}
}
