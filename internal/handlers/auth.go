package handlers

import (
	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/middleware"
	"chargeflow/internal/services/auth"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsInput struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=255"`
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"max=500"`
}

// Register creates a seller with an empty wallet and returns a token pair.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tokens, err := h.authService.Register(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, tokens)
}

// Login handles user authentication and returns JWT tokens
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tokens, err := h.authService.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, tokens)
}

// Refresh rotates the presented refresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input refreshInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tokens, err := h.authService.Refresh(c.UserContext(), input.RefreshToken)
	if err != nil {
		if domainErrors.InvalidToken.Is(err) {
			de, _ := domainErrors.As(err)
			return utils.DomainError(c, fiber.StatusUnauthorized, de)
		}
		return respondError(c, err)
	}
	return utils.Success(c, tokens)
}

// Logout revokes the caller's refresh token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Authentication credentials were not provided.")
	}

	var input refreshInput
	if err := parseBody(c, &input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := h.authService.Logout(c.UserContext(), user.ID, input.RefreshToken); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
