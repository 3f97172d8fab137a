package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"chargeflow/internal/config"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[uint]*models.User

func (s stubUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

var testJWT = config.JWTConfig{
	Secret:     "test-secret",
	Issuer:     "chargeflow-test",
	AccessTTL:  time.Minute,
	RefreshTTL: time.Hour,
}

func newTestApp(users stubUsers, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{NewAuthMiddleware(users, testJWT).Handler()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		claims, err := utils.GetUserClaims(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	app.Get("/me", handlers...)
	return app
}

func tokensFor(t *testing.T, user *models.User) (string, string) {
	t.Helper()
	access, refresh, err := utils.GenerateTokens(models.NewUserClaims(user), testJWT)
	require.NoError(t, err)
	return access, refresh
}

func get(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware_Handler(t *testing.T) {
	seller := &models.User{ID: 1, Username: "seller", Role: models.RoleSeller, TokenVersion: 1}
	stale := &models.User{ID: 2, Username: "stale", Role: models.RoleSeller, TokenVersion: 1}
	users := stubUsers{1: seller}

	access, refresh := tokensFor(t, seller)
	staleAccess, _ := tokensFor(t, stale)
	revoked := &models.User{ID: 1, Role: models.RoleSeller, TokenVersion: 0}
	revokedAccess, _ := tokensFor(t, revoked)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid access token", "Bearer " + access, fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic " + access, fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + refresh, fiber.StatusUnauthorized},
		{"unknown user", "Bearer " + staleAccess, fiber.StatusUnauthorized},
		{"outdated token version", "Bearer " + revokedAccess, fiber.StatusUnauthorized},
	}

	app := newTestApp(users)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(t, app, tt.header))
		})
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	admin := &models.User{ID: 1, Username: "admin", IsAdmin: true, Role: models.RoleAdmin, TokenVersion: 1}
	seller := &models.User{ID: 2, Username: "seller", Role: models.RoleSeller, TokenVersion: 1}
	app := newTestApp(stubUsers{1: admin, 2: seller}, AdminAuthMiddleware())

	adminToken, _ := tokensFor(t, admin)
	sellerToken, _ := tokensFor(t, seller)

	assert.Equal(t, fiber.StatusOK, get(t, app, "Bearer "+adminToken))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "Bearer "+sellerToken))
}

func TestHasPermission(t *testing.T) {
	seller := &models.User{ID: 2, Username: "seller", Role: models.RoleSeller, TokenVersion: 1}
	sellerToken, _ := tokensFor(t, seller)

	allowed := newTestApp(stubUsers{2: seller}, HasPermission(models.PermissionWalletRead))
	assert.Equal(t, fiber.StatusOK, get(t, allowed, "Bearer "+sellerToken))

	denied := newTestApp(stubUsers{2: seller}, HasPermission(models.PermissionWriteAdmin))
	assert.Equal(t, fiber.StatusForbidden, get(t, denied, "Bearer "+sellerToken))
}
