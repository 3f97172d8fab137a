package handlers

import (
	"chargeflow/internal/middleware"
	"chargeflow/internal/services/phone"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PhoneHandler struct {
	phones phone.Service
}

func NewPhoneHandler(phones phone.Service) *PhoneHandler {
	return &PhoneHandler{phones: phones}
}

type phoneNumberInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	UserEmail   string `json:"user_email" validate:"max=255"`
}

// List returns the caller's phone numbers.
func (h *PhoneHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	phones, err := h.phones.List(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, phones)
}

// Create registers a phone number for the caller.
func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	var input phoneNumberInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	created, err := h.phones.Create(c.UserContext(), user, input.PhoneNumber, input.UserEmail)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, created)
}
