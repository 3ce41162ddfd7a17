package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin       = "admin:read"
	PermissionWriteAdmin      = "admin:write"
	PermissionDecideSale      = "transaction:decide"
	PermissionManageServices  = "service:write"
	PermissionManagePartners  = "partner:write"

	// Partner permissions
	PermissionCatalogRead     = "catalog:read"
	PermissionTransactionRead = "transaction:read"
	PermissionCreateSale      = "transaction:write"
	PermissionChangePassword  = "user:change-password"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
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

// CanView reports whether the actor may read resources owned by ownerID.
// Partners see only their own rows; admins see everything.
func (c *UserClaims) CanView(ownerID uint) bool {
	return c.Role == RoleAdmin || c.UserID == ownerID
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionDecideSale,
			PermissionManageServices,
			PermissionManagePartners,
			PermissionCatalogRead,
			PermissionTransactionRead,
			PermissionChangePassword,
		}
	case RolePartner:
		return []string{
			PermissionCatalogRead,
			PermissionTransactionRead,
			PermissionCreateSale,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
