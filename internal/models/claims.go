package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionWalletRead        = "wallet:read"
	PermissionTransactionRead   = "transaction:read"
	PermissionTransactionWrite  = "transaction:write"
	PermissionPhoneNumberWrite  = "phone:write"
	PermissionCreditRequestOpen = "credit:request"

	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Type         string   `json:"typ"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// NewUserClaims builds the claims shared by access and refresh tokens.
func NewUserClaims(user *User) *UserClaims {
	role := user.Role
	if user.IsAdmin {
		role = RoleAdmin
	}
	return &UserClaims{
		UserID:       user.ID,
		Email:        user.EmailAddress(),
		Role:         role.String(),
		Permissions:  GetDefaultPermissions(role),
		TokenVersion: user.TokenVersion,
	}
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role UserRole) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionWalletRead,
			PermissionTransactionRead,
			PermissionTransactionWrite,
			PermissionPhoneNumberWrite,
			PermissionCreditRequestOpen,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case RoleSeller:
		return []string{
			PermissionWalletRead,
			PermissionTransactionRead,
			PermissionTransactionWrite,
			PermissionPhoneNumberWrite,
			PermissionCreditRequestOpen,
		}
	default:
		return []string{}
	}
}
