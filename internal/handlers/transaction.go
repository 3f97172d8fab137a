package handlers

import (
	"chargeflow/internal/middleware"
	"chargeflow/internal/models"
	"chargeflow/internal/services/transaction"
	"chargeflow/internal/utils"
	"chargeflow/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type creditRequestInput struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type processTransactionInput struct {
	TransactionID uint                     `json:"transaction_id" validate:"required"`
	Status        models.TransactionStatus `json:"status" validate:"required"`
}

type sellChargeInput struct {
	PhoneNumber string           `json:"phone_number" validate:"required,max=20"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
}

// CreateCreditRequest opens a pending credit request for the caller's wallet.
func (h *TransactionHandler) CreateCreditRequest(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	var input creditRequestInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tx, err := h.transactionService.CreateCreditRequest(c.UserContext(), user.ID, *input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, newTransactionResponse(tx))
}

// ProcessCreditRequest approves or rejects a pending credit request. Only
// administrators get past the service's permission check.
func (h *TransactionHandler) ProcessCreditRequest(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	var input processTransactionInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tx, err := h.transactionService.UpdateStatusCreditRequest(c.UserContext(), input.TransactionID, user, input.Status)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, newTransactionResponse(tx))
}

// SellCharge tops up a phone number from the caller's wallet.
func (h *TransactionHandler) SellCharge(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	var input sellChargeInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tx, err := h.transactionService.SellCharge(c.UserContext(), user.ID, input.PhoneNumber, *input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, newTransactionResponse(tx))
}

// ListTransactions returns the caller's wallet history, newest first.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	p := pagination.ParseFromRequest(c)
	txs, total, err := h.transactionService.ListUserTransactions(c.UserContext(), user.ID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	p.Total = total
	return c.JSON(pagination.Response(p, newTransactionResponses(txs)))
}
