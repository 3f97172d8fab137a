package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:wallet_balance_non_negative,balance >= 0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Wallets are only funded through approved credit requests.
	w.Balance = decimal.Zero
	return nil
}
