package middleware

import (
	"context"
	"log"
	"strings"

	"chargeflow/internal/config"
	"chargeflow/internal/models"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// UserLookup loads the account behind a token.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// UserKey is the fiber Locals key holding the authenticated *models.User.
const UserKey = "user"

type AuthMiddleware struct {
	users UserLookup
	jwt   config.JWTConfig
}

func NewAuthMiddleware(users UserLookup, jwtCfg config.JWTConfig) *AuthMiddleware {
	return &AuthMiddleware{
		users: users,
		jwt:   jwtCfg,
	}
}

// Handler authenticates the request with a Bearer access token. Tokens
// minted before the user's token version was bumped are rejected.
func (m *AuthMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "Authentication credentials were not provided.")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return utils.Unauthorized(c, "Invalid authorization header format.")
		}

		_, claims, err := utils.ParseToken(parts[1], m.jwt)
		if err != nil {
			return utils.Unauthorized(c, "Given token not valid for any token type.")
		}
		if claims.Type != models.TokenTypeAccess {
			return utils.Unauthorized(c, "Given token not valid for any token type.")
		}

		user, err := m.users.GetByID(c.UserContext(), claims.UserID)
		if err != nil {
			log.Printf("auth: user %d lookup failed: %v", claims.UserID, err)
			return utils.Unauthorized(c, "User not found.")
		}
		if user.TokenVersion != claims.TokenVersion {
			return utils.Unauthorized(c, "Token has been revoked.")
		}

		c.Locals(utils.ClaimsKey, claims)
		c.Locals("userID", user.ID)
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// AdminAuthMiddleware only lets administrators through. It must run after
// Handler.
func AdminAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(UserKey).(*models.User)
		if !ok {
			return utils.Unauthorized(c, "Authentication credentials were not provided.")
		}
		if !user.HasAdminRights() {
			return utils.Forbidden(c, "You do not have permission to perform this action.")
		}
		return c.Next()
	}
}

// HasPermission checks that the access token carries the given permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.GetUserClaims(c)
		if err != nil {
			return utils.Unauthorized(c, "Authentication credentials were not provided.")
		}
		if !claims.HasPermission(permission) {
			return utils.Forbidden(c, "You do not have permission to perform this action.")
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by Handler.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(UserKey).(*models.User)
	return user, ok
}
