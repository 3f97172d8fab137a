package handlers

import (
	"time"

	"chargeflow/internal/models"

	"github.com/google/uuid"
)

// TransactionResponse is the public view of a ledger entry.
type TransactionResponse struct {
	ID            uint                     `json:"id"`
	Reference     uuid.UUID                `json:"reference"`
	Amount        string                   `json:"amount"`
	Status        models.TransactionStatus `json:"status"`
	StatusDisplay string                   `json:"status_display"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     *time.Time               `json:"updated_at"`
	UpdatedByID   *uint                    `json:"updated_by_id"`
	FromType      models.SourceType        `json:"from_type"`
	FromUserID    *uint                    `json:"from_user_id"`
	FromWalletID  *uint                    `json:"from_wallet_id"`
	ToType        models.DestinationType   `json:"to_type"`
	ToWalletID    *uint                    `json:"to_wallet_id"`
	ToPhoneNumber *string                  `json:"to_phone_number"`
}

func newTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            tx.ID,
		Reference:     tx.Reference,
		Amount:        tx.Amount.StringFixed(2),
		Status:        tx.Status,
		StatusDisplay: tx.Status.String(),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
		UpdatedByID:   tx.UpdatedByID,
		FromType:      tx.FromType,
		FromUserID:    tx.FromUserID,
		FromWalletID:  tx.FromWalletID,
		ToType:        tx.ToType,
		ToWalletID:    tx.ToWalletID,
	}
	if tx.ToPhone != nil {
		number := tx.ToPhone.PhoneNumber
		resp.ToPhoneNumber = &number
	}
	return resp
}

func newTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, newTransactionResponse(&txs[i]))
	}
	return out
}
