package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhoneNumber is an end-customer mobile account topped up by sellers.
type PhoneNumber struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	PhoneNumber string          `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	User        *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Balance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:phone_balance_non_negative,balance >= 0" json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
