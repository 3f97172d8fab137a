package handlers

import (
	"log"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// statusFor picks the HTTP status for a catalog error.
func statusFor(code int) int {
	switch code {
	case domainErrors.WalletNotFound.Code,
		domainErrors.TransactionNotFound.Code,
		domainErrors.PhoneNumberNotFound.Code:
		return fiber.StatusNotFound
	case domainErrors.PermissionDenied.Code,
		domainErrors.NotAllowed.Code:
		return fiber.StatusForbidden
	}
	if code >= 1000 && code < 5000 {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as an API error. Anything outside the catalog is
// logged and hidden behind a 500.
func respondError(c *fiber.Ctx, err error) error {
	if de, ok := domainErrors.As(err); ok {
		return utils.DomainError(c, statusFor(de.Code), de)
	}
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return utils.InternalError(c, "A server error occurred.")
}
