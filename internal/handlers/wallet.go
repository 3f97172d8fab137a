package handlers

import (
	"chargeflow/internal/middleware"
	"chargeflow/internal/services/wallet"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

type walletResponse struct {
	UserEmail string `json:"user_email"`
	Balance   string `json:"balance"`
}

// GetWallet returns the caller's balance.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	w, err := h.walletService.GetWallet(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, walletResponse{
		UserEmail: user.EmailAddress(),
		Balance:   w.Balance.StringFixed(2),
	})
}
