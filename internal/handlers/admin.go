package handlers

import (
	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/services/transaction"
	"chargeflow/internal/utils"
	"chargeflow/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	transactionService transaction.Service
}

func NewAdminHandler(transactionService transaction.Service) *AdminHandler {
	return &AdminHandler{transactionService: transactionService}
}

// ListCreditRequests pages through credit requests, optionally filtered by
// ?status=pending|approved|rejected.
func (h *AdminHandler) ListCreditRequests(c *fiber.Ctx) error {
	var status *models.TransactionStatus
	if raw := c.Query("status"); raw != "" {
		s, ok := models.ParseTransactionStatus(raw)
		if !ok {
			return respondError(c, domainErrors.InvalidStatus.New(raw))
		}
		status = &s
	}

	p := pagination.ParseFromRequest(c)
	txs, total, err := h.transactionService.ListCreditRequests(c.UserContext(), status, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	p.Total = total
	return c.JSON(pagination.Response(p, newTransactionResponses(txs)))
}

// Reconciliation recomputes every wallet balance from the transaction log.
func (h *AdminHandler) Reconciliation(c *fiber.Ctx) error {
	report, err := h.transactionService.ReconcileLedger(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	inconsistent := report.Inconsistent()
	if inconsistent == nil {
		inconsistent = []transaction.WalletReconciliation{}
	}
	return utils.Success(c, fiber.Map{
		"consistent":           report.Consistent(),
		"wallets":              report.Wallets,
		"inconsistent_wallets": inconsistent,
		"phone_balance_total":  report.PhoneBalanceTotal,
		"approved_settlements": report.ApprovedSettlements,
	})
}
